package format

import (
	"fmt"
	"strings"

	"github.com/theory/datetime/datetime/field"
)

// offsetStyle selects the rendered shape of a UTC offset.
type offsetStyle int

const (
	offsetHour        offsetStyle = iota // +HH
	offsetMinute                         // +HHMM
	offsetColonMinute                    // +HH:MM
	offsetSecond                         // +HHMMSS
	offsetColonSecond                    // +HH:MM:SS
)

// offsetPatterns maps the appendOffset pattern argument to a style.
var offsetPatterns = map[string]offsetStyle{
	"+HH":       offsetHour,
	"+HHMM":     offsetMinute,
	"+HH:MM":    offsetColonMinute,
	"+HHMMSS":   offsetSecond,
	"+HH:MM:SS": offsetColonSecond,
}

// offsetParser prints and parses the OffsetSeconds field as a UTC offset
// such as "+02:00". When the offset is zero and noOffsetText is non-empty,
// that text is used instead, ISO-8601's "Z" convention.
type offsetParser struct {
	style        offsetStyle
	noOffsetText string
}

func (p offsetParser) print(ctx *printContext, buf *strings.Builder) error {
	v, err := ctx.getField(field.OffsetSeconds)
	if err != nil {
		return err
	}
	if v == 0 && p.noOffsetText != "" {
		buf.WriteString(p.noOffsetText)
		return nil
	}
	secs := v
	sign := byte('+')
	if secs < 0 {
		secs = -secs
		sign = '-'
	}
	hours, minutes, seconds := secs/3600, secs/60%60, secs%60
	buf.WriteByte(sign)
	fmt.Fprintf(buf, "%02d", hours)
	if p.style == offsetHour {
		return nil
	}
	if p.style == offsetColonMinute || p.style == offsetColonSecond {
		buf.WriteByte(':')
	}
	fmt.Fprintf(buf, "%02d", minutes)
	switch p.style {
	case offsetSecond:
		fmt.Fprintf(buf, "%02d", seconds)
	case offsetColonSecond:
		fmt.Fprintf(buf, ":%02d", seconds)
	}
	return nil
}

func (p offsetParser) parse(ctx *ParseContext, text string, pos int) int {
	start := pos
	if p.noOffsetText != "" {
		if n, ok := ctx.subMatch(text, pos, p.noOffsetText); ok {
			if err := ctx.setParsed(field.OffsetSeconds, 0); err != nil {
				return ^start
			}
			return pos + n
		}
	}
	if pos >= len(text) || (text[pos] != '+' && text[pos] != '-') {
		return ^pos
	}
	negative := text[pos] == '-'
	pos++

	hours, pos, ok := twoDigits(text, pos)
	if !ok {
		return ^pos
	}
	var minutes, seconds int64
	if p.style != offsetHour {
		if p.style == offsetColonMinute || p.style == offsetColonSecond {
			if pos >= len(text) || text[pos] != ':' {
				return ^pos
			}
			pos++
		}
		if minutes, pos, ok = twoDigits(text, pos); !ok {
			return ^pos
		}
	}
	switch p.style {
	case offsetSecond:
		if seconds, pos, ok = twoDigits(text, pos); !ok {
			return ^pos
		}
	case offsetColonSecond:
		if pos >= len(text) || text[pos] != ':' {
			return ^pos
		}
		pos++
		if seconds, pos, ok = twoDigits(text, pos); !ok {
			return ^pos
		}
	}
	if hours > 18 || minutes > 59 || seconds > 59 {
		return ^start
	}
	total := hours*3600 + minutes*60 + seconds
	if negative {
		total = -total
	}
	if total < -64_800 || total > 64_800 {
		return ^start
	}
	if err := ctx.setParsed(field.OffsetSeconds, total); err != nil {
		return ^start
	}
	return pos
}

// twoDigits reads exactly two digits at pos.
func twoDigits(text string, pos int) (int64, int, bool) {
	if pos+2 > len(text) || !isDigit(text[pos]) || !isDigit(text[pos+1]) {
		return 0, pos, false
	}
	return int64(text[pos]-'0')*10 + int64(text[pos+1]-'0'), pos + 2, true
}
