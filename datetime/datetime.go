// Package datetime provides immutable calendar and clock values across
// multiple calendar systems, with a composable pattern-driven formatter and
// parser.
//
// Values are created through the subpackages: types for the ISO date and
// time value types, chrono for calendar-system-aware dates. This package
// compiles patterns into formatters and carries stock ISO-8601 formatters,
// so most uses need only Compile or one of the ISO* variables.
package datetime

import (
	"golang.org/x/text/language"

	"github.com/theory/datetime/datetime/chrono"
	"github.com/theory/datetime/datetime/field"
	"github.com/theory/datetime/datetime/format"
	"github.com/theory/datetime/datetime/types"
)

// Option adjusts a compiled formatter.
type Option func(*format.Formatter) *format.Formatter

// WithChronology makes the formatter parse into c when the input itself
// does not select a calendar system. The default is the ISO calendar.
func WithChronology(c chrono.Chronology) Option {
	return func(f *format.Formatter) *format.Formatter {
		return f.WithChronology(c)
	}
}

// WithLocale selects the locale for month, day, and am/pm names. The
// built-in provider carries English and serves any locale that matches it,
// such as en-GB; a locale it cannot match has no names, so textual fields
// fail to format or parse under it.
func WithLocale(loc language.Tag) Option {
	return func(f *format.Formatter) *format.Formatter {
		return f.WithLocale(loc)
	}
}

// Compile compiles pattern into a Formatter. Returns an error when the
// pattern is malformed. The pattern grammar is documented on
// [format.Builder.AppendPattern].
func Compile(pattern string, opts ...Option) (*format.Formatter, error) {
	f, err := format.NewBuilder().AppendPattern(pattern).ToFormatter()
	if err != nil {
		return nil, err
	}
	for _, opt := range opts {
		f = opt(f)
	}
	return f, nil
}

// MustCompile is like Compile but panics on a malformed pattern.
func MustCompile(pattern string, opts ...Option) *format.Formatter {
	f, err := Compile(pattern, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Stock ISO-8601 formatters.
var (
	// ISODate formats and parses dates such as "2008-06-30".
	ISODate = MustCompile("uuuu-MM-dd")

	// ISOTime formats and parses times such as "10:15:30" or
	// "10:15:30.123". Seconds and fraction are optional on parse; the
	// fraction prints only when non-zero.
	ISOTime = mustBuild(func(b *format.Builder) { isoTime(b) })

	// ISODateTime combines ISODate and ISOTime with a "T" separator.
	ISODateTime = mustBuild(func(b *format.Builder) {
		b.AppendPattern("uuuu-MM-dd'T'")
		isoTime(b)
	})

	// ISOOffsetTime is ISOTime plus a UTC offset, "Z" for zero.
	ISOOffsetTime = mustBuild(func(b *format.Builder) {
		isoTime(b)
		b.AppendOffset("+HH:MM", "Z")
	})

	// ISOOffsetDateTime is ISODateTime plus a UTC offset, "Z" for zero.
	ISOOffsetDateTime = mustBuild(func(b *format.Builder) {
		b.AppendPattern("uuuu-MM-dd'T'")
		isoTime(b)
		b.AppendOffset("+HH:MM", "Z")
	})
)

// isoTime appends the ISO time chain: HH:mm, optional seconds, optional
// variable-width fraction.
func isoTime(b *format.Builder) {
	b.AppendPattern("HH:mm").
		OptionalStart().
		AppendLiteral(":").
		AppendValueWidth(field.SecondOfMinute, 2).
		OptionalStart().
		AppendFraction(field.NanoOfSecond, 0, 9, true).
		OptionalEnd().
		OptionalEnd()
}

// mustBuild assembles a stock formatter, panicking on a build error.
func mustBuild(fn func(*format.Builder)) *format.Formatter {
	b := format.NewBuilder()
	fn(b)
	f, err := b.ToFormatter()
	if err != nil {
		panic(err)
	}
	return f
}

// Format renders v with f. It is all-or-nothing: a value missing a field
// the pattern requires returns an error and no partial text.
func Format(f *format.Formatter, v field.Accessor) (string, error) {
	return f.Format(v)
}

// Parse parses text with f, requiring full consumption, and resolves the
// fields. The result may be partial; see the extractors on
// [format.Parsed].
func Parse(f *format.Formatter, text string) (*format.Parsed, error) {
	return f.Parse(text)
}

// ParseDate parses text with f into an ISO date.
func ParseDate(f *format.Formatter, text string) (types.LocalDate, error) {
	p, err := f.Parse(text)
	if err != nil {
		return types.LocalDate{}, err
	}
	return p.LocalDate()
}

// ParseTime parses text with f into a time of day.
func ParseTime(f *format.Formatter, text string) (types.LocalTime, error) {
	p, err := f.Parse(text)
	if err != nil {
		return types.LocalTime{}, err
	}
	return p.LocalTime()
}

// ParseOffsetTime parses text with f into an offset time.
func ParseOffsetTime(f *format.Formatter, text string) (types.OffsetTime, error) {
	p, err := f.Parse(text)
	if err != nil {
		return types.OffsetTime{}, err
	}
	return p.OffsetTime()
}

// ParseDateTime parses text with f into an ISO date-time.
func ParseDateTime(f *format.Formatter, text string) (types.LocalDateTime, error) {
	p, err := f.Parse(text)
	if err != nil {
		return types.LocalDateTime{}, err
	}
	return p.LocalDateTime()
}

// ParseOffsetDateTime parses text with f into an offset date-time.
func ParseOffsetDateTime(f *format.Formatter, text string) (types.OffsetDateTime, error) {
	p, err := f.Parse(text)
	if err != nil {
		return types.OffsetDateTime{}, err
	}
	return p.OffsetDateTime()
}
