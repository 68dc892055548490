// Package chrono provides calendar systems and the calendar dates they
// produce.
//
// A [Chronology] defines a calendar system's era structure, leap-year and
// month-length rules, and the conversion between its proleptic year scheme
// and the epoch-day count shared by every calendar. The package includes the
// ISO calendar plus the Hijrah (tabular Islamic civil), Japanese, Minguo,
// and Thai Buddhist calendars. A [Date] belongs to exactly one Chronology;
// dates from different chronologies that land on the same epoch day denote
// the same day but are never Equal.
package chrono

import (
	"errors"
	"fmt"
	"sort"

	"golang.org/x/exp/maps"

	"github.com/theory/datetime/datetime/field"
)

// ErrChronology is returned for unknown chronologies and eras.
var ErrChronology = errors.New("chronology")

// Era identifies one era of a chronology by numeric value and name. Values
// follow the convention that the current era is 1 and the era before it 0;
// the Japanese calendar extends the value range in both directions.
type Era struct {
	Value int
	Name  string
}

// String returns the era's name.
func (e Era) String() string { return e.Name }

// Chronology defines a calendar system.
type Chronology interface {
	// Name returns the unique name of the calendar, e.g. "ISO".
	Name() string

	// CalendarType returns the Unicode LDML calendar type code, e.g.
	// "iso8601".
	CalendarType() string

	// Eras returns the chronology's eras in ascending value order.
	Eras() []Era

	// EraOf returns the era with the given numeric value, or ErrChronology.
	EraOf(value int) (Era, error)

	// IsLeapYear returns true if the given proleptic year is a leap year in
	// this calendar.
	IsLeapYear(prolepticYear int64) bool

	// ProlepticYear computes the proleptic year from an era and a
	// year within that era.
	ProlepticYear(era Era, yearOfEra int64) (int64, error)

	// MonthsInYear returns the number of months in every year of the
	// calendar.
	MonthsInYear() int

	// DaysInMonth returns the length of a month in a year.
	DaysInMonth(prolepticYear int64, month int) int

	// DaysInYear returns the length of a year.
	DaysInYear(prolepticYear int64) int

	// Range returns the calendar-wide span of valid values for f, which may
	// be narrower or wider than the field's own declaration, e.g. the
	// Hijrah day-of-month never exceeds 30.
	Range(f field.Field) field.ValueRange

	// DateFrom builds a validated date from a proleptic year, month, and
	// day. Validation checks the year, then the month, then the day against
	// the actual month length; the first violation is reported and names
	// the offending field.
	DateFrom(prolepticYear, month, day int64) (Date, error)

	// DateFromEra builds a validated date from an era, year-of-era, month,
	// and day. The era is validated first, then the rest as for DateFrom.
	DateFromEra(era Era, yearOfEra, month, day int64) (Date, error)

	// DateFromYearDay builds a validated date from a proleptic year and
	// day-of-year.
	DateFromYearDay(prolepticYear, dayOfYear int64) (Date, error)

	// DateFromEpochDay builds the date for an epoch-day count. Every valid
	// date maps to exactly one epoch day and back.
	DateFromEpochDay(epochDay int64) (Date, error)

	// eraYear splits a date into its era and year-of-era. Most calendars
	// derive both from the proleptic year alone; the Japanese calendar
	// consults the epoch day because its eras change mid-year. The method
	// is unexported to close the set of calendars; every variant lives in
	// this package.
	eraYear(prolepticYear, epochDay int64) (Era, int64)
}

// chronologies registers every built-in chronology by name.
var chronologies = map[string]Chronology{
	ISO.Name():          ISO,
	Hijrah.Name():       Hijrah,
	Japanese.Name():     Japanese,
	Minguo.Name():       Minguo,
	ThaiBuddhist.Name(): ThaiBuddhist,
}

// Of returns the chronology registered under name, or ErrChronology.
func Of(name string) (Chronology, error) {
	if c, ok := chronologies[name]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: unknown calendar %q", ErrChronology, name)
}

// OfCalendarType returns the chronology with the given Unicode LDML calendar
// type code, or ErrChronology.
func OfCalendarType(calendarType string) (Chronology, error) {
	for _, name := range sortedNames() {
		if c := chronologies[name]; c.CalendarType() == calendarType {
			return c, nil
		}
	}
	return nil, fmt.Errorf(
		"%w: unknown calendar type %q", ErrChronology, calendarType,
	)
}

// All returns every registered chronology, ordered by name.
func All() []Chronology {
	all := make([]Chronology, 0, len(chronologies))
	for _, name := range sortedNames() {
		all = append(all, chronologies[name])
	}
	return all
}

func sortedNames() []string {
	names := maps.Keys(chronologies)
	sort.Strings(names)
	return names
}

// unknownEra constructs the error for an era that does not belong to c.
func unknownEra(c Chronology, value int) error {
	return fmt.Errorf(
		"%w: no era %d in %v calendar", ErrChronology, value, c.Name(),
	)
}

// eraOf scans eras for the era with the given value.
func eraOf(c Chronology, eras []Era, value int) (Era, error) {
	for _, e := range eras {
		if e.Value == value {
			return e, nil
		}
	}
	return Era{}, unknownEra(c, value)
}
