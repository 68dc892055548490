package chrono

import (
	"github.com/theory/datetime/datetime/arith"
	"github.com/theory/datetime/datetime/field"
)

// offsetChronology implements the calendars that reuse the ISO date
// structure with a shifted year count: Minguo (Republic of China, ISO year
// minus 1911) and Thai Buddhist (ISO year plus 543). Leap years, month
// lengths, and epoch-day conversion all delegate to ISO after the year
// shift.
type offsetChronology struct {
	name    string
	calType string
	shift   int64 // isoYear = prolepticYear + shift
	eras    []Era
}

// Minguo is the Republic of China calendar: the ISO calendar with years
// counted from 1912 (ROC 1).
var Minguo Chronology = &offsetChronology{
	name:    "Minguo",
	calType: "roc",
	shift:   1911,
	eras:    []Era{{0, "BEFORE_ROC"}, {1, "ROC"}},
}

// ThaiBuddhist is the Thai Buddhist calendar: the ISO calendar with years
// counted in the Buddhist era, ISO year plus 543.
var ThaiBuddhist Chronology = &offsetChronology{
	name:    "ThaiBuddhist",
	calType: "buddhist",
	shift:   -543,
	eras:    []Era{{0, "BEFORE_BE"}, {1, "BE"}},
}

func (c *offsetChronology) Name() string         { return c.name }
func (c *offsetChronology) CalendarType() string { return c.calType }
func (c *offsetChronology) Eras() []Era          { return c.eras }
func (c *offsetChronology) MonthsInYear() int    { return 12 }

func (c *offsetChronology) EraOf(value int) (Era, error) {
	return eraOf(c, c.eras, value)
}

func (c *offsetChronology) IsLeapYear(year int64) bool {
	return ISO.IsLeapYear(year + c.shift)
}

func (c *offsetChronology) ProlepticYear(era Era, yearOfEra int64) (int64, error) {
	if _, err := field.YearOfEra.CheckValidValue(yearOfEra); err != nil {
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

func (c *offsetChronology) eraYear(year, _ int64) (Era, int64) {
	if year >= 1 {
		return c.eras[1], year
	}
	return c.eras[0], 1 - year
}

func (c *offsetChronology) DaysInMonth(year int64, month int) int {
	return ISO.DaysInMonth(year+c.shift, month)
}

func (c *offsetChronology) DaysInYear(year int64) int {
	return ISO.DaysInYear(year + c.shift)
}

func (c *offsetChronology) Range(f field.Field) field.ValueRange {
	switch f {
	case field.Year:
		// The year span is the ISO span displaced by the era offset.
		return field.RangeOf(field.YearMin-c.shift, field.YearMax-c.shift)
	case field.YearOfEra:
		// The current era runs out at the shifted ISO maximum; the era
		// before it runs the other way from year 1.
		ceMax := field.YearMax - c.shift
		bceMax := 1 - field.YearMin + c.shift
		if ceMax > bceMax {
			ceMax, bceMax = bceMax, ceMax
		}
		return field.RangeOfVariable(1, ceMax, bceMax)
	case field.Era:
		return field.RangeOf(0, 1)
	default:
		return f.Range()
	}
}

func (c *offsetChronology) DateFrom(year, month, day int64) (Date, error) {
	return dateFromParts(c, year, month, day, func(y int64, m, d int) (int64, error) {
		iso, err := arith.Add(y, c.shift)
		if err != nil {
			return 0, err
		}
		return isoEpochDay(iso, m, d), nil
	})
}

func (c *offsetChronology) DateFromEra(era Era, yearOfEra, month, day int64) (Date, error) {
	year, err := c.ProlepticYear(era, yearOfEra)
	if err != nil {
		return Date{}, err
	}
	return c.DateFrom(year, month, day)
}

func (c *offsetChronology) DateFromYearDay(year, dayOfYear int64) (Date, error) {
	return dateFromYearDay(c, year, dayOfYear)
}

func (c *offsetChronology) DateFromEpochDay(epochDay int64) (Date, error) {
	if _, err := field.EpochDay.CheckValidValue(epochDay); err != nil {
		return Date{}, err
	}
	y, m, d := isoFromEpochDay(epochDay)
	return Date{
		chrono:   c,
		epochDay: epochDay,
		year:     y - c.shift,
		month:    m,
		day:      d,
	}, nil
}
