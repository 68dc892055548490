package chrono

import (
	"fmt"

	"github.com/theory/datetime/datetime/arith"
	"github.com/theory/datetime/datetime/field"
)

// ISO is the ISO-8601 calendar, the proleptic Gregorian calendar with eras
// BCE (0) and CE (1).
var ISO Chronology = &isoChronology{}

type isoChronology struct{}

// Eras of the ISO calendar.
var isoEras = []Era{{0, "BCE"}, {1, "CE"}}

// daysPer400Years is the length of the full Gregorian leap cycle.
const daysPer400Years = 146_097

// daysFrom0000To1970 is the day count from 0000-01-01 to the 1970-01-01
// epoch: 719,527 days plus the leap day of year 0.
const daysFrom0000To1970 = (daysPer400Years * 5) - (30*365 + 7)

func (c *isoChronology) Name() string         { return "ISO" }
func (c *isoChronology) CalendarType() string { return "iso8601" }
func (c *isoChronology) Eras() []Era          { return isoEras }
func (c *isoChronology) MonthsInYear() int    { return 12 }

func (c *isoChronology) EraOf(value int) (Era, error) {
	return eraOf(c, isoEras, value)
}

// IsLeapYear applies the Gregorian rule: every fourth year except century
// years not divisible by 400.
func (c *isoChronology) IsLeapYear(year int64) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func (c *isoChronology) ProlepticYear(era Era, yearOfEra int64) (int64, error) {
	if _, err := c.Range(field.YearOfEra).CheckValid(yearOfEra, field.YearOfEra); err != nil {
		return 0, err
	}
	switch era.Value {
	case 1:
		return yearOfEra, nil
	case 0:
		return 1 - yearOfEra, nil
	default:
		return 0, unknownEra(c, era.Value)
	}
}

func (c *isoChronology) eraYear(year, _ int64) (Era, int64) {
	if year >= 1 {
		return isoEras[1], year
	}
	return isoEras[0], 1 - year
}

// isoMonthLengths is the length of each ISO month in a non-leap year.
var isoMonthLengths = [...]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

func (c *isoChronology) DaysInMonth(year int64, month int) int {
	if month == 2 && c.IsLeapYear(year) {
		return 29
	}
	if month < 1 || month > 12 {
		return 0
	}
	return isoMonthLengths[month-1]
}

func (c *isoChronology) DaysInYear(year int64) int {
	if c.IsLeapYear(year) {
		return 366
	}
	return 365
}

func (c *isoChronology) Range(f field.Field) field.ValueRange {
	if f == field.Era {
		return field.RangeOf(0, 1)
	}
	return f.Range()
}

func (c *isoChronology) DateFrom(year, month, day int64) (Date, error) {
	return dateFromParts(c, year, month, day, func(y int64, m, d int) (int64, error) {
		return isoEpochDay(y, m, d), nil
	})
}

func (c *isoChronology) DateFromEra(era Era, yearOfEra, month, day int64) (Date, error) {
	year, err := c.ProlepticYear(era, yearOfEra)
	if err != nil {
		return Date{}, err
	}
	return c.DateFrom(year, month, day)
}

func (c *isoChronology) DateFromYearDay(year, dayOfYear int64) (Date, error) {
	return dateFromYearDay(c, year, dayOfYear)
}

func (c *isoChronology) DateFromEpochDay(epochDay int64) (Date, error) {
	if _, err := field.EpochDay.CheckValidValue(epochDay); err != nil {
		return Date{}, err
	}
	y, m, d := isoFromEpochDay(epochDay)
	return Date{chrono: c, epochDay: epochDay, year: y, month: m, day: d}, nil
}

// isoEpochDay converts a validated ISO date to its day count from
// 1970-01-01. The formula counts days year by year from year zero, then
// adjusts for the epoch offset.
func isoEpochDay(y int64, m, d int) int64 {
	total := 365 * y
	if y >= 0 {
		total += (y+3)/4 - (y+99)/100 + (y+399)/400
	} else {
		total -= y/-4 - y/-100 + y/-400
	}
	total += int64(367*m-362) / 12
	total += int64(d - 1)
	if m > 2 {
		total--
		if !ISO.IsLeapYear(y) {
			total--
		}
	}
	return total - daysFrom0000To1970
}

// isoFromEpochDay converts an epoch-day count to an ISO year, month, and
// day. The computation shifts to a March-based year so leap days land at the
// end, estimates the year from 400-year cycles, and fixes up the estimate.
func isoFromEpochDay(epochDay int64) (int64, int, int) {
	zeroDay := epochDay + daysFrom0000To1970
	// Shift so the cycle reckons from 0000-03-01.
	zeroDay -= 60
	var adjust int64
	if zeroDay < 0 {
		adjustCycles := (zeroDay+1)/daysPer400Years - 1
		adjust = adjustCycles * 400
		zeroDay += -adjustCycles * daysPer400Years
	}
	yearEst := (400*zeroDay + 591) / daysPer400Years
	doyEst := zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	if doyEst < 0 {
		yearEst--
		doyEst = zeroDay - (365*yearEst + yearEst/4 - yearEst/100 + yearEst/400)
	}
	yearEst += adjust

	// Convert the March-based day of year back to calendar month and day.
	marchMonth0 := (doyEst*5 + 2) / 153
	month := int((marchMonth0+2)%12) + 1
	day := int(doyEst-(marchMonth0*306+5)/10) + 1
	yearEst += marchMonth0 / 10

	return yearEst, month, day
}

// dateFromYearDay derives the month and day from a day-of-year count for any
// chronology, validating the year first and the day count against the
// year's actual length.
func dateFromYearDay(c Chronology, year, dayOfYear int64) (Date, error) {
	if _, err := c.Range(field.Year).CheckValid(year, field.Year); err != nil {
		return Date{}, err
	}
	diy := int64(c.DaysInYear(year))
	if _, err := field.RangeOf(1, diy).CheckValid(dayOfYear, field.DayOfYear); err != nil {
		return Date{}, err
	}
	start, err := c.DateFrom(year, 1, 1)
	if err != nil {
		return Date{}, err
	}
	ed, err := arith.Add(start.epochDay, dayOfYear-1)
	if err != nil {
		return Date{}, err
	}
	date, err := c.DateFromEpochDay(ed)
	if err != nil {
		return Date{}, err
	}
	if date.year != year {
		// Cannot happen once dayOfYear is validated against the year
		// length, but guard the invariant.
		return Date{}, fmt.Errorf(
			"%w: %d for %v in year %d", field.ErrRange, dayOfYear, field.DayOfYear, year,
		)
	}
	return date, nil
}
