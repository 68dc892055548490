package chrono

import (
	"github.com/theory/datetime/datetime/arith"
	"github.com/theory/datetime/datetime/field"
)

// Hijrah is the tabular Islamic civil calendar: a purely arithmetic
// rendition of the Hijri calendar with a 30-year leap cycle, months
// alternating 30 and 29 days, and one extra day on the last month of leap
// years. Its single era is AH, anno Hegirae.
var Hijrah Chronology = &hijrahChronology{}

type hijrahChronology struct{}

var hijrahEras = []Era{{1, "AH"}}

const (
	// hijrahEpochDay is the epoch day of Hijrah 1-01-01, ISO 622-07-19.
	hijrahEpochDay = -492_148

	// Supported span of Hijrah years.
	hijrahYearMin = 1
	hijrahYearMax = 9_999

	// hijrahMaxEpochDay is the epoch day of Hijrah 9999-12-30.
	hijrahMaxEpochDay = 3_051_164

	// hijrahDaysPerYear is the length of a common year. A full 30-year
	// cycle has 30*354 + 11 = 10,631 days, the divisor in the year
	// estimate below.
	hijrahDaysPerYear = 354
)

func (c *hijrahChronology) Name() string         { return "Hijrah" }
func (c *hijrahChronology) CalendarType() string { return "islamicc" }
func (c *hijrahChronology) Eras() []Era          { return hijrahEras }
func (c *hijrahChronology) MonthsInYear() int    { return 12 }

func (c *hijrahChronology) EraOf(value int) (Era, error) {
	return eraOf(c, hijrahEras, value)
}

// IsLeapYear applies the civil leap rule: years with remainder 2, 5, 7, 10,
// 13, 16, 18, 21, 24, 26, or 29 in the 30-year cycle, equivalently years
// where 11y+14 mod 30 falls below 11.
func (c *hijrahChronology) IsLeapYear(year int64) bool {
	return arith.FloorMod(11*year+14, 30) < 11
}

func (c *hijrahChronology) ProlepticYear(era Era, yearOfEra int64) (int64, error) {
	if era.Value != 1 {
		return 0, unknownEra(c, era.Value)
	}
	return c.Range(field.YearOfEra).CheckValid(yearOfEra, field.YearOfEra)
}

func (c *hijrahChronology) eraYear(year, _ int64) (Era, int64) {
	return hijrahEras[0], year
}

func (c *hijrahChronology) DaysInMonth(year int64, month int) int {
	switch {
	case month == 12 && c.IsLeapYear(year):
		return 30
	case month%2 == 1:
		return 30
	default:
		return 29
	}
}

func (c *hijrahChronology) DaysInYear(year int64) int {
	if c.IsLeapYear(year) {
		return hijrahDaysPerYear + 1
	}
	return hijrahDaysPerYear
}

func (c *hijrahChronology) Range(f field.Field) field.ValueRange {
	switch f {
	case field.Year, field.YearOfEra:
		return field.RangeOf(hijrahYearMin, hijrahYearMax)
	case field.Era:
		return field.RangeOf(1, 1)
	case field.DayOfMonth:
		return field.RangeOfVariable(1, 29, 30)
	case field.DayOfYear:
		return field.RangeOfVariable(1, hijrahDaysPerYear, hijrahDaysPerYear+1)
	case field.EpochDay:
		return field.RangeOf(hijrahEpochDay, hijrahMaxEpochDay)
	case field.ProlepticMonth:
		return field.RangeOf(hijrahYearMin*12, hijrahYearMax*12+11)
	default:
		return f.Range()
	}
}

func (c *hijrahChronology) DateFrom(year, month, day int64) (Date, error) {
	return dateFromParts(c, year, month, day, func(y int64, m, d int) (int64, error) {
		return hijrahToEpochDay(y, m, d), nil
	})
}

func (c *hijrahChronology) DateFromEra(era Era, yearOfEra, month, day int64) (Date, error) {
	year, err := c.ProlepticYear(era, yearOfEra)
	if err != nil {
		return Date{}, err
	}
	return c.DateFrom(year, month, day)
}

func (c *hijrahChronology) DateFromYearDay(year, dayOfYear int64) (Date, error) {
	return dateFromYearDay(c, year, dayOfYear)
}

func (c *hijrahChronology) DateFromEpochDay(epochDay int64) (Date, error) {
	if _, err := c.Range(field.EpochDay).CheckValid(epochDay, field.EpochDay); err != nil {
		return Date{}, err
	}
	// Estimate the year from the mean cycle length, then correct against
	// the exact year start.
	days := epochDay - hijrahEpochDay
	year := arith.FloorDiv(30*days+10_646, 10_631)
	for hijrahYearStart(year) > days {
		year--
	}
	for hijrahYearStart(year+1) <= days {
		year++
	}
	rem := int(days - hijrahYearStart(year))
	month := 1
	for rem >= c.DaysInMonth(year, month) {
		rem -= c.DaysInMonth(year, month)
		month++
	}
	return Date{
		chrono:   c,
		epochDay: epochDay,
		year:     year,
		month:    month,
		day:      rem + 1,
	}, nil
}

// hijrahYearStart returns the day count from the Hijrah epoch to the first
// day of year.
func hijrahYearStart(year int64) int64 {
	return (year-1)*hijrahDaysPerYear + arith.FloorDiv(3+11*year, 30)
}

// hijrahToEpochDay converts a validated Hijrah date to its epoch day.
func hijrahToEpochDay(y int64, m, d int) int64 {
	monthDays := int64(29*(m-1) + m/2)
	return hijrahYearStart(y) + monthDays + int64(d-1) + hijrahEpochDay
}
