// Package format prints and parses date-time values through a chain of
// composable printer-parser nodes, then resolves parsed fields into
// concrete values.
//
// A [Formatter] owns an immutable node sequence, built with a [Builder] or
// compiled from a pattern. Printing walks the sequence reading fields from
// the source value; it is all-or-nothing. Parsing walks the same sequence
// the other way, accumulating raw field values, then hands the accumulator
// to the resolution engine, which derives a single consistent date, time,
// and offset and rejects contradictory input.
package format

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/theory/datetime/datetime/chrono"
	"github.com/theory/datetime/datetime/field"
)

// Package errors.
var (
	// ErrFormat wraps errors printing a value, such as a value too wide
	// for its node.
	ErrFormat = errors.New("format error")

	// ErrParse wraps errors parsing text, carrying the input and the index
	// where matching failed.
	ErrParse = errors.New("parse error")

	// ErrResolve wraps errors deriving a value from parsed fields:
	// conflicting, invalid, or missing fields.
	ErrResolve = errors.New("resolution error")
)

// Formatter prints and parses date-time values. It is immutable and safe
// for concurrent use; the With* methods return adjusted copies.
type Formatter struct {
	node     compositeParser
	chrono   chrono.Chronology
	locale   language.Tag
	provider TextProvider
}

// WithChronology returns a copy of the formatter that parses into c when
// the input itself does not select a chronology.
func (f *Formatter) WithChronology(c chrono.Chronology) *Formatter {
	cp := *f
	cp.chrono = c
	return &cp
}

// WithLocale returns a copy of the formatter using loc for localized
// names.
func (f *Formatter) WithLocale(loc language.Tag) *Formatter {
	cp := *f
	cp.locale = loc
	return &cp
}

// Format renders v. Printing is all-or-nothing: a value missing a field
// the chain requires fails without partial output.
func (f *Formatter) Format(v field.Accessor) (string, error) {
	ctx := &printContext{
		value:    v,
		chrono:   f.chrono,
		locale:   f.locale,
		provider: f.provider,
	}
	buf := new(strings.Builder)
	if err := f.node.print(ctx, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Parse runs the node chain over text, requires it to consume the whole
// input, and resolves the accumulated fields.
func (f *Formatter) Parse(text string) (*Parsed, error) {
	fv, pos := f.ParseUnresolved(text, 0)
	if pos < 0 {
		return nil, fmt.Errorf(
			"%w: %q does not match at index %d", ErrParse, text, ^pos,
		)
	}
	if pos < len(text) {
		return nil, fmt.Errorf(
			"%w: %q has unparsed text at index %d", ErrParse, text, pos,
		)
	}
	return resolve(fv, f.chrono)
}

// ParseUnresolved runs the node chain from pos and returns the raw
// accumulator with the final position, following the signed contract: a
// negative position is the bitwise complement of the failure index, and
// the accumulator holds whatever was collected before the failure.
func (f *Formatter) ParseUnresolved(text string, pos int) (*FieldValues, int) {
	ctx := newParseContext(f.chrono, f.locale, f.provider)
	return ctx.parsed, f.node.parse(ctx, text, pos)
}
