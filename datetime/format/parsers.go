package format

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/theory/datetime/datetime/field"
)

// printerParser is one node in a formatter's chain. Printing appends to buf
// and is all-or-nothing across the chain. Parsing follows the signed
// position contract: on success it returns the new position, at or beyond
// pos; on failure it returns the bitwise complement of the index where the
// failure was detected, so callers test the sign rather than an error
// value on this hot path. Complementing the result again recovers the
// failure index.
type printerParser interface {
	print(ctx *printContext, buf *strings.Builder) error
	parse(ctx *ParseContext, text string, pos int) int
}

// SignStyle controls how a numeric node prints and parses a leading sign.
type SignStyle int

const (
	// SignNormal prints a sign only for negative values and accepts either
	// on parse.
	SignNormal SignStyle = iota // Normal

	// SignAlways prints a sign for every value and requires one on parse.
	SignAlways // Always

	// SignNever prints no sign and rejects one on parse.
	SignNever // Never

	// SignNotNegative is SignNever for fields that cannot be negative.
	SignNotNegative // NotNegative

	// SignExceedsPad prints a positive sign only when the value needs more
	// digits than the minimum width, the year-beyond-9999 convention.
	SignExceedsPad // ExceedsPad
)

var signStyleNames = []string{"Normal", "Always", "Never", "NotNegative", "ExceedsPad"}

func (s SignStyle) String() string {
	if s < SignNormal || s > SignExceedsPad {
		return "SignStyle(unknown)"
	}
	return signStyleNames[s]
}

// literalParser matches one exact rune.
type literalParser struct {
	literal rune
}

func (p literalParser) print(_ *printContext, buf *strings.Builder) error {
	buf.WriteRune(p.literal)
	return nil
}

func (p literalParser) parse(ctx *ParseContext, text string, pos int) int {
	n, ok := ctx.subMatch(text, pos, string(p.literal))
	if !ok {
		return ^pos
	}
	return pos + n
}

// stringLiteralParser matches an exact multi-character string.
type stringLiteralParser struct {
	literal string
}

func (p stringLiteralParser) print(_ *printContext, buf *strings.Builder) error {
	buf.WriteString(p.literal)
	return nil
}

func (p stringLiteralParser) parse(ctx *ParseContext, text string, pos int) int {
	n, ok := ctx.subMatch(text, pos, p.literal)
	if !ok {
		return ^pos
	}
	return pos + n
}

// caseParser is a zero-width control node. It prints nothing and consumes
// nothing; parsing flips the context's case-sensitivity flag for every node
// after it and always succeeds at the unchanged position.
type caseParser struct {
	sensitive bool
}

func (caseParser) print(_ *printContext, _ *strings.Builder) error { return nil }

func (p caseParser) parse(ctx *ParseContext, _ string, pos int) int {
	ctx.caseSensitive = p.sensitive
	return pos
}

// numberParser prints and parses a whole-number field value within a digit
// width window, with sign handling per SignStyle. subsequentWidth counts the
// digits claimed by the fixed-width numeric nodes directly after this one;
// parsing leaves them unconsumed, so adjacent runs such as "20080630" under
// "uuuuMMdd" split correctly.
type numberParser struct {
	field           field.Field
	minWidth        int
	maxWidth        int
	signStyle       SignStyle
	subsequentWidth int
}

func (p numberParser) print(ctx *printContext, buf *strings.Builder) error {
	v, err := ctx.getField(p.field)
	if err != nil {
		return err
	}
	digits := fmt.Sprintf("%d", abs64(v))
	if len(digits) > p.maxWidth {
		return fmt.Errorf(
			"%w: %v value %d exceeds %d digits", ErrFormat, p.field, v, p.maxWidth,
		)
	}
	switch {
	case v < 0:
		buf.WriteByte('-')
	case p.signStyle == SignAlways:
		buf.WriteByte('+')
	case p.signStyle == SignExceedsPad && len(digits) > p.minWidth:
		buf.WriteByte('+')
	}
	for i := len(digits); i < p.minWidth; i++ {
		buf.WriteByte('0')
	}
	buf.WriteString(digits)
	return nil
}

func (p numberParser) parse(ctx *ParseContext, text string, pos int) int {
	start := pos
	negative := false
	if pos < len(text) && (text[pos] == '+' || text[pos] == '-') {
		switch p.signStyle {
		case SignNever, SignNotNegative:
			return ^pos
		}
		negative = text[pos] == '-'
		pos++
	} else if p.signStyle == SignAlways {
		return ^pos
	}

	// 18 digits always fit an int64; no field spans more.
	width := p.maxWidth
	if width > 18 {
		width = 18
	}
	if p.subsequentWidth > 0 {
		// Measure the digit run first and leave the reserved tail for the
		// fixed-width nodes that follow.
		run := 0
		for pos+run < len(text) && run < width+p.subsequentWidth && isDigit(text[pos+run]) {
			run++
		}
		if w := run - p.subsequentWidth; w < width {
			width = w
		}
		if width < p.minWidth {
			width = p.minWidth
		}
	}
	var value int64
	digits := 0
	for pos < len(text) && digits < width && isDigit(text[pos]) {
		value = value*10 + int64(text[pos]-'0')
		digits++
		pos++
	}
	if digits < p.minWidth {
		return ^pos
	}
	if negative {
		if value == 0 {
			// "-0" is not a number.
			return ^start
		}
		value = -value
	}
	if err := ctx.setParsed(p.field, value); err != nil {
		return ^start
	}
	return pos
}

// fractionParser prints and parses a field as a decimal fraction of its
// range, the way nano-of-second renders as ".123456789". The field's range
// must be fixed, zero-based, and one less than a power of ten.
type fractionParser struct {
	field        field.Field
	minWidth     int
	maxWidth     int
	decimalPoint bool
}

// scaleDigits returns the number of decimal digits spanned by the field's
// range, e.g. 9 for nano-of-second.
func (p fractionParser) scaleDigits() int {
	max := p.field.Range().Max()
	digits := 0
	for n := max; n > 0; n /= 10 {
		digits++
	}
	return digits
}

func (p fractionParser) print(ctx *printContext, buf *strings.Builder) error {
	v, err := ctx.getField(p.field)
	if err != nil {
		return err
	}
	if _, err := p.field.CheckValidValue(v); err != nil {
		return fmt.Errorf("%w: %v", ErrFormat, err)
	}
	digits := fmt.Sprintf("%0*d", p.scaleDigits(), v)
	if len(digits) > p.maxWidth {
		digits = digits[:p.maxWidth]
	}
	// Trim trailing zeros down to the minimum width.
	width := len(digits)
	for width > p.minWidth && digits[width-1] == '0' {
		width--
	}
	if width == 0 {
		return nil
	}
	if p.decimalPoint {
		buf.WriteByte('.')
	}
	buf.WriteString(digits[:width])
	return nil
}

func (p fractionParser) parse(ctx *ParseContext, text string, pos int) int {
	start := pos
	if p.decimalPoint {
		if pos >= len(text) || text[pos] != '.' {
			if p.minWidth == 0 {
				return pos
			}
			return ^pos
		}
		pos++
	}
	scale := p.scaleDigits()
	var value int64
	digits := 0
	for pos < len(text) && digits < p.maxWidth && isDigit(text[pos]) {
		value = value*10 + int64(text[pos]-'0')
		digits++
		pos++
	}
	if digits < p.minWidth {
		return ^pos
	}
	for i := digits; i < scale; i++ {
		value *= 10
	}
	if err := ctx.setParsed(p.field, value); err != nil {
		return ^start
	}
	return pos
}

// textParser prints and parses a field by its localized name, such as
// "June" for month six. Era names come from the chronology in effect;
// everything else from the context's TextProvider.
type textParser struct {
	field field.Field
	style TextStyle
}

func (p textParser) print(ctx *printContext, buf *strings.Builder) error {
	v, err := ctx.getField(p.field)
	if err != nil {
		return err
	}
	name := p.nameOf(ctx.provider, ctx, v)
	if name == "" {
		return fmt.Errorf("%w: no text for %v value %d", ErrFormat, p.field, v)
	}
	buf.WriteString(name)
	return nil
}

// nameOf looks up the printable name of value. Era names are
// chronology-specific and bypass the provider.
func (p textParser) nameOf(provider TextProvider, ctx *printContext, value int64) string {
	if p.field == field.Era {
		era, err := ctx.chronology().EraOf(int(value))
		if err != nil {
			return ""
		}
		return era.Name
	}
	return provider.Name(ctx.locale, p.field, value, p.style)
}

func (p textParser) parse(ctx *ParseContext, text string, pos int) int {
	for _, entry := range p.entries(ctx) {
		n, ok := ctx.subMatch(text, pos, entry.Name)
		if !ok {
			continue
		}
		if err := ctx.setParsed(p.field, entry.Value); err != nil {
			return ^pos
		}
		return pos + n
	}
	return ^pos
}

// entries returns the candidate names, longest first.
func (p textParser) entries(ctx *ParseContext) []TextEntry {
	if p.field == field.Era {
		eras := ctx.chrono.Eras()
		entries := make([]TextEntry, len(eras))
		for i, e := range eras {
			entries[i] = TextEntry{Value: int64(e.Value), Name: e.Name}
		}
		sort.SliceStable(entries, func(i, j int) bool {
			return len(entries[i].Name) > len(entries[j].Name)
		})
		return entries
	}
	return ctx.provider.Lookup(ctx.locale, p.field, p.style)
}

// compositeParser runs its children in order. Printing stops at the first
// child error; when the composite is optional and the error is only a
// missing field, the whole section is omitted instead. Parsing propagates
// the first child failure, except that an optional composite rolls back
// the position and any accumulated fields and succeeds at the original
// position.
type compositeParser struct {
	parsers  []printerParser
	optional bool
}

func (p compositeParser) print(ctx *printContext, buf *strings.Builder) error {
	if !p.optional {
		for _, pp := range p.parsers {
			if err := pp.print(ctx, buf); err != nil {
				return err
			}
		}
		return nil
	}
	section := new(strings.Builder)
	for _, pp := range p.parsers {
		if err := pp.print(ctx, section); err != nil {
			if errors.Is(err, field.ErrUnsupported) {
				return nil
			}
			return err
		}
	}
	buf.WriteString(section.String())
	return nil
}

func (p compositeParser) parse(ctx *ParseContext, text string, pos int) int {
	if !p.optional {
		for _, pp := range p.parsers {
			if pos = pp.parse(ctx, text, pos); pos < 0 {
				return pos
			}
		}
		return pos
	}
	start := pos
	mark := ctx.parsed.Snapshot()
	for _, pp := range p.parsers {
		if pos = pp.parse(ctx, text, pos); pos < 0 {
			ctx.parsed.RestoreTo(mark)
			return start
		}
	}
	return pos
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// abs64 returns |v| without overflow trouble for formatting: the one value
// it cannot negate, MinInt64, never reaches a numeric node because every
// field range is narrower.
func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
