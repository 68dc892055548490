// Package types provides the immutable date and time value types the
// formatting and resolution engines operate on.
//
// Every type implements the [field.Accessor] capability set, and those with
// adjustable fields implement [field.Adjustable], so the generic field model
// can read and write them without knowing their concrete types. All values
// are immutable: adjustments return new values.
package types

import (
	"fmt"

	"github.com/theory/datetime/datetime/chrono"
	"github.com/theory/datetime/datetime/field"
)

// LocalDate is a date in the ISO calendar without a time or zone, such as
// 2008-06-30.
type LocalDate struct {
	date chrono.Date
}

// DateOf returns the LocalDate for an ISO year, month, and day. The day is
// validated against the actual month length.
func DateOf(year int64, month, day int) (LocalDate, error) {
	d, err := chrono.ISO.DateFrom(year, int64(month), int64(day))
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{date: d}, nil
}

// MustDateOf is like DateOf but panics on invalid input. For tests and
// constants.
func MustDateOf(year int64, month, day int) LocalDate {
	d, err := DateOf(year, month, day)
	if err != nil {
		panic(err)
	}
	return d
}

// DateOfEpochDay returns the LocalDate for a day count from 1970-01-01.
func DateOfEpochDay(epochDay int64) (LocalDate, error) {
	d, err := chrono.ISO.DateFromEpochDay(epochDay)
	if err != nil {
		return LocalDate{}, err
	}
	return LocalDate{date: d}, nil
}

// Chrono returns the date as a chronology-tagged [chrono.Date].
func (d LocalDate) Chrono() chrono.Date { return d.date }

// Year returns the proleptic ISO year.
func (d LocalDate) Year() int64 { return d.date.Year() }

// Month returns the month of year, from 1.
func (d LocalDate) Month() int { return d.date.Month() }

// Day returns the day of month, from 1.
func (d LocalDate) Day() int { return d.date.Day() }

// EpochDay returns the day count from 1970-01-01.
func (d LocalDate) EpochDay() int64 { return d.date.EpochDay() }

// DayOfWeek returns the ISO day of week, Monday = 1 through Sunday = 7.
func (d LocalDate) DayOfWeek() int { return d.date.DayOfWeek() }

// DayOfYear returns the day within the year, from 1.
func (d LocalDate) DayOfYear() int { return d.date.DayOfYear() }

// IsLeapYear returns true in Gregorian leap years.
func (d LocalDate) IsLeapYear() bool { return d.date.IsLeapYear() }

// IsSupported implements [field.Accessor].
func (d LocalDate) IsSupported(f field.Field) bool { return d.date.IsSupported(f) }

// GetLong implements [field.Accessor].
func (d LocalDate) GetLong(f field.Field) (int64, error) { return d.date.GetLong(f) }

// Range implements [field.Accessor].
func (d LocalDate) Range(f field.Field) (field.ValueRange, error) { return d.date.Range(f) }

// WithField implements [field.Adjustable].
func (d LocalDate) WithField(f field.Field, v int64) (field.Adjustable, error) {
	adj, err := d.date.WithField(f, v)
	if err != nil {
		return nil, err
	}
	return LocalDate{date: adj.(chrono.Date)}, nil
}

// Plus implements [field.Adjustable].
func (d LocalDate) Plus(amount int64, u field.Unit) (field.Adjustable, error) {
	adj, err := d.date.Plus(amount, u)
	if err != nil {
		return nil, err
	}
	return LocalDate{date: adj.(chrono.Date)}, nil
}

// PlusDays returns the date amount days later.
func (d LocalDate) PlusDays(amount int64) (LocalDate, error) {
	return d.plus(amount, field.Days)
}

// PlusMonths returns the date amount months later, with the day of month
// clamped to the length of the target month.
func (d LocalDate) PlusMonths(amount int64) (LocalDate, error) {
	return d.plus(amount, field.Months)
}

// PlusYears returns the date amount years later, with the day of month
// clamped to the length of the target month.
func (d LocalDate) PlusYears(amount int64) (LocalDate, error) {
	return d.plus(amount, field.Years)
}

func (d LocalDate) plus(amount int64, u field.Unit) (LocalDate, error) {
	adj, err := d.Plus(amount, u)
	if err != nil {
		return LocalDate{}, err
	}
	return adj.(LocalDate), nil
}

// Compare orders d and other chronologically.
func (d LocalDate) Compare(other LocalDate) int { return d.date.Compare(other.date) }

// Equal returns true when d and other denote the same date.
func (d LocalDate) Equal(other LocalDate) bool { return d.date.Equal(other.date) }

// String returns the ISO-8601 representation, e.g. "2008-06-30". Years
// outside [0, 9999] carry a sign, as the standard requires.
func (d LocalDate) String() string {
	return fmt.Sprintf("%s-%02d-%02d", formatYear(d.Year()), d.Month(), d.Day())
}

// formatYear renders an ISO-8601 year: four digits zero-padded, with a sign
// for years beyond them.
func formatYear(y int64) string {
	switch {
	case y < 0:
		return fmt.Sprintf("-%04d", -y)
	case y > 9_999:
		return fmt.Sprintf("+%d", y)
	default:
		return fmt.Sprintf("%04d", y)
	}
}
