package format

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/theory/datetime/datetime/chrono"
	"github.com/theory/datetime/datetime/field"
)

// Builder assembles a Formatter's node chain. Methods chain; the first
// construction error is remembered and returned by ToFormatter, so a
// mis-built chain cannot be used by accident.
type Builder struct {
	active []printerParser
	stack  [][]printerParser
	// activeValue indexes the numeric node in active that absorbs the
	// widths of directly-following fixed-width numeric nodes, -1 when the
	// last node appended was not numeric.
	activeValue int
	err         error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder { return &Builder{activeValue: -1} }

// fail records the first construction error.
func (b *Builder) fail(err error) *Builder {
	if b.err == nil {
		b.err = err
	}
	return b
}

func (b *Builder) append(p printerParser) *Builder {
	if b.err != nil {
		return b
	}
	b.active = append(b.active, p)
	b.activeValue = -1
	return b
}

// appendNumber appends a numeric node. A fixed-width unsigned node directly
// following another numeric node registers its width with that node instead
// of winning a greedy-digits race against it, so a pattern like "uuuuMMdd"
// parses "20080630".
func (b *Builder) appendNumber(p numberParser) *Builder {
	if b.err != nil {
		return b
	}
	if b.activeValue >= 0 && p.minWidth == p.maxWidth && p.signStyle == SignNotNegative {
		base := b.active[b.activeValue].(numberParser)
		base.subsequentWidth += p.maxWidth
		b.active[b.activeValue] = base
		b.active = append(b.active, p)
		return b
	}
	b.active = append(b.active, p)
	b.activeValue = len(b.active) - 1
	return b
}

// AppendLiteral appends text matched and printed exactly, honoring the
// case-sensitivity flag on parse.
func (b *Builder) AppendLiteral(text string) *Builder {
	switch len(text) {
	case 0:
		return b
	case 1:
		return b.append(literalParser{literal: rune(text[0])})
	default:
		return b.append(stringLiteralParser{literal: text})
	}
}

// AppendValue appends f as a variable-width number, one to nineteen
// digits, sign printed only when negative.
func (b *Builder) AppendValue(f field.Field) *Builder {
	return b.appendNumber(numberParser{field: f, minWidth: 1, maxWidth: 19, signStyle: SignNormal})
}

// AppendValueWidth appends f as a zero-padded fixed-width number that
// rejects a sign. When it directly follows another numeric node the two
// parse adjacently: the earlier node leaves exactly width digits for this
// one.
func (b *Builder) AppendValueWidth(f field.Field, width int) *Builder {
	if width < 1 || width > 19 {
		return b.fail(fmt.Errorf("width %d outside 1 - 19 for %v", width, f))
	}
	return b.appendNumber(numberParser{
		field: f, minWidth: width, maxWidth: width, signStyle: SignNotNegative,
	})
}

// AppendValueStyled appends f as a number with explicit widths and sign
// style.
func (b *Builder) AppendValueStyled(f field.Field, minWidth, maxWidth int, style SignStyle) *Builder {
	if minWidth < 1 || maxWidth > 19 || minWidth > maxWidth {
		return b.fail(fmt.Errorf(
			"widths %d - %d invalid for %v", minWidth, maxWidth, f,
		))
	}
	return b.appendNumber(numberParser{
		field: f, minWidth: minWidth, maxWidth: maxWidth, signStyle: style,
	})
}

// AppendFraction appends f as a decimal fraction of its range, optionally
// preceded by a decimal point. The field's range must be fixed, start at
// zero, and span a power of ten, as nano-of-second does.
func (b *Builder) AppendFraction(f field.Field, minWidth, maxWidth int, decimalPoint bool) *Builder {
	if minWidth < 0 || maxWidth > 9 || minWidth > maxWidth || maxWidth == 0 {
		return b.fail(fmt.Errorf(
			"fraction widths %d - %d invalid for %v", minWidth, maxWidth, f,
		))
	}
	rng := f.Range()
	if !f.IsRangeFixed() || rng.Min() != 0 || !powerOfTen(rng.Max()+1) {
		return b.fail(fmt.Errorf("%v does not support fractions", f))
	}
	return b.append(fractionParser{
		field: f, minWidth: minWidth, maxWidth: maxWidth, decimalPoint: decimalPoint,
	})
}

// AppendText appends f by localized name, such as "June" for month six.
func (b *Builder) AppendText(f field.Field, style TextStyle) *Builder {
	if style < TextFull || style > TextNarrow {
		return b.fail(fmt.Errorf("unknown text style %d", style))
	}
	return b.append(textParser{field: f, style: style})
}

// AppendOffset appends the UTC offset in the shape of pattern, one of
// "+HH", "+HHMM", "+HH:MM", "+HHMMSS", or "+HH:MM:SS". A zero offset
// prints as noOffsetText when non-empty, the "Z" convention.
func (b *Builder) AppendOffset(pattern, noOffsetText string) *Builder {
	style, ok := offsetPatterns[pattern]
	if !ok {
		return b.fail(fmt.Errorf("unknown offset pattern %q", pattern))
	}
	return b.append(offsetParser{style: style, noOffsetText: noOffsetText})
}

// ParseCaseSensitive makes subsequent parsing match case exactly, the
// default.
func (b *Builder) ParseCaseSensitive() *Builder {
	return b.append(caseParser{sensitive: true})
}

// ParseCaseInsensitive makes subsequent parsing ignore case.
func (b *Builder) ParseCaseInsensitive() *Builder {
	return b.append(caseParser{sensitive: false})
}

// OptionalStart begins a section that may be absent on parse. A failure
// inside the section rolls back the position and any fields it added;
// printing omits the section when the value lacks a field it needs.
// Sections nest.
func (b *Builder) OptionalStart() *Builder {
	if b.err != nil {
		return b
	}
	b.stack = append(b.stack, b.active)
	b.active = nil
	b.activeValue = -1
	return b
}

// OptionalEnd closes the innermost optional section.
func (b *Builder) OptionalEnd() *Builder {
	if b.err != nil {
		return b
	}
	if len(b.stack) == 0 {
		return b.fail(fmt.Errorf("OptionalEnd without OptionalStart"))
	}
	section := compositeParser{parsers: b.active, optional: true}
	b.active = b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return b.append(section)
}

// ToFormatter seals the chain into an immutable Formatter. The formatter
// defaults to the ISO chronology and English locale; adjust with
// WithChronology and WithLocale.
func (b *Builder) ToFormatter() (*Formatter, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.stack) > 0 {
		return nil, fmt.Errorf("OptionalStart without OptionalEnd")
	}
	return &Formatter{
		node:     compositeParser{parsers: b.active},
		chrono:   chrono.ISO,
		locale:   language.English,
		provider: newEnglishProvider(),
	}, nil
}

// powerOfTen returns true for 10, 100, ..., up to 10^18.
func powerOfTen(n int64) bool {
	for p := int64(10); p <= 1_000_000_000_000_000_000; p *= 10 {
		if n == p {
			return true
		}
	}
	return false
}

// AppendPattern compiles a pattern such as "uuuu-MM-dd['T'HH:mm]" onto the
// chain. Letters select fields and widths, quoted text is literal with ”
// escaping a quote, and square brackets delimit optional sections:
//
//	G   era name                 u   year          y  year of era
//	M   month (3-5 letters name) d   day of month  D  day of year
//	E   day-of-week name         a  AM/PM
//	h   clock hour (1-12)        H  hour of day    m  minute
//	s   second                   S  fraction of second
//	n   nano of second           X  offset, Z for zero
//	x   offset                   Z  offset, "+0000" style
//
// Any other letter is an error. Adjacent numeric fields such as "uuuuMMdd"
// share one digit run on parse: each fixed-width field claims its digits
// from the end of the run, and the leading field takes the rest.
func (b *Builder) AppendPattern(pattern string) *Builder {
	if b.err != nil {
		return b
	}
	for i := 0; i < len(pattern); {
		c := pattern[i]
		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z':
			count := 1
			for i+count < len(pattern) && pattern[i+count] == c {
				count++
			}
			if err := b.appendPatternLetter(rune(c), count); err != nil {
				return b.fail(fmt.Errorf("pattern %q: %w", pattern, err))
			}
			i += count
		case c == '\'':
			literal, width, err := parseQuoted(pattern[i:])
			if err != nil {
				return b.fail(fmt.Errorf("pattern %q: %w", pattern, err))
			}
			b.AppendLiteral(literal)
			i += width
		case c == '[':
			b.OptionalStart()
			i++
		case c == ']':
			b.OptionalEnd()
			i++
		case c == '{' || c == '}' || c == '#':
			return b.fail(fmt.Errorf("pattern %q: %q is reserved", pattern, c))
		default:
			b.AppendLiteral(string(c))
			i++
		}
	}
	return b
}

// parseQuoted reads a '...'-quoted literal at the start of s, returning
// the unescaped text and the bytes consumed. A doubled quote is a single
// quote; a lone pair is a literal quote.
func parseQuoted(s string) (string, int, error) {
	buf := new(strings.Builder)
	for i := 1; i < len(s); i++ {
		if s[i] != '\'' {
			buf.WriteByte(s[i])
			continue
		}
		if i+1 < len(s) && s[i+1] == '\'' {
			buf.WriteByte('\'')
			i++
			continue
		}
		if buf.Len() == 0 {
			return "'", i + 1, nil
		}
		return buf.String(), i + 1, nil
	}
	return "", 0, fmt.Errorf("unterminated quote")
}

// appendPatternLetter translates one letter run into a node.
func (b *Builder) appendPatternLetter(c rune, count int) error {
	switch c {
	case 'G':
		b.AppendText(field.Era, textStyleFor(count))
	case 'u':
		b.appendYear(field.Year, count)
	case 'y':
		b.appendYear(field.YearOfEra, count)
	case 'M':
		switch {
		case count <= 2:
			b.appendDigits(field.MonthOfYear, count, 2)
		case count <= 5:
			b.AppendText(field.MonthOfYear, textStyleFor(count))
		default:
			return fmt.Errorf("too many letters: %q x %d", c, count)
		}
	case 'd':
		b.appendDigits(field.DayOfMonth, count, 2)
	case 'D':
		if count > 3 {
			return fmt.Errorf("too many letters: %q x %d", c, count)
		}
		b.appendDigits(field.DayOfYear, count, 3)
	case 'E':
		b.AppendText(field.DayOfWeek, textStyleFor(count))
	case 'a':
		b.AppendText(field.AmPmOfDay, TextShort)
	case 'h':
		b.appendDigits(field.ClockHourOfAmPm, count, 2)
	case 'H':
		b.appendDigits(field.HourOfDay, count, 2)
	case 'm':
		b.appendDigits(field.MinuteOfHour, count, 2)
	case 's':
		b.appendDigits(field.SecondOfMinute, count, 2)
	case 'S':
		b.AppendFraction(field.NanoOfSecond, count, count, false)
	case 'n':
		b.AppendValueStyled(field.NanoOfSecond, count, 19, SignNotNegative)
	case 'X':
		return b.appendOffsetLetter(count, true)
	case 'x':
		return b.appendOffsetLetter(count, false)
	case 'Z':
		switch count {
		case 1, 2, 3:
			b.AppendOffset("+HHMM", "+0000")
		case 5:
			b.AppendOffset("+HH:MM:SS", "Z")
		default:
			return fmt.Errorf("too many letters: %q x %d", c, count)
		}
	default:
		return fmt.Errorf("unknown pattern letter %q", c)
	}
	return b.err
}

// appendYear handles u and y: up to three letters parse flexibly, four or
// more pad and print a sign beyond the padding.
func (b *Builder) appendYear(f field.Field, count int) {
	if count < 4 {
		b.AppendValueStyled(f, count, 19, SignNormal)
		return
	}
	b.AppendValueStyled(f, count, 19, SignExceedsPad)
}

// appendDigits handles the two-digit numeric letters: one letter parses
// flexibly, more pad to the count.
func (b *Builder) appendDigits(f field.Field, count, max int) {
	if count > max {
		b.fail(fmt.Errorf("too many letters: %v x %d", f, count))
		return
	}
	if count == 1 {
		b.AppendValueStyled(f, 1, max, SignNotNegative)
		return
	}
	b.AppendValueWidth(f, count)
}

// appendOffsetLetter handles X (zero prints the given text) and x.
func (b *Builder) appendOffsetLetter(count int, zuluZero bool) error {
	noOffset := ""
	if zuluZero {
		noOffset = "Z"
	}
	patterns := []string{"+HH", "+HHMM", "+HH:MM", "+HHMMSS", "+HH:MM:SS"}
	if count < 1 || count > len(patterns) {
		return fmt.Errorf("too many letters: offset x %d", count)
	}
	b.AppendOffset(patterns[count-1], noOffset)
	return b.err
}

// textStyleFor maps a pattern letter count to a text style: up to three
// letters short, four full, five narrow.
func textStyleFor(count int) TextStyle {
	switch {
	case count >= 5:
		return TextNarrow
	case count == 4:
		return TextFull
	default:
		return TextShort
	}
}
