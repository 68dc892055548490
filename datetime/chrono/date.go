package chrono

import (
	"fmt"

	"github.com/theory/datetime/datetime/arith"
	"github.com/theory/datetime/datetime/field"
)

// Date is a date in one specific chronology. The canonical representation is
// the epoch-day count; the proleptic year, month, and day for the owning
// chronology are cached alongside it. Dates are immutable: every adjustment
// produces a new value.
type Date struct {
	chrono   Chronology
	epochDay int64
	year     int64
	month    int
	day      int
}

// Chronology returns the calendar system the date belongs to.
func (d Date) Chronology() Chronology { return d.chrono }

// EpochDay returns the canonical day count from 1970-01-01 (ISO), shared by
// all chronologies.
func (d Date) EpochDay() int64 { return d.epochDay }

// Year returns the proleptic year in the date's chronology.
func (d Date) Year() int64 { return d.year }

// Month returns the month of year, from 1.
func (d Date) Month() int { return d.month }

// Day returns the day of month, from 1.
func (d Date) Day() int { return d.day }

// Era returns the date's era in its chronology.
func (d Date) Era() Era {
	era, _ := d.chrono.eraYear(d.year, d.epochDay)
	return era
}

// YearOfEra returns the year within the date's era, from 1.
func (d Date) YearOfEra() int64 {
	_, yoe := d.chrono.eraYear(d.year, d.epochDay)
	return yoe
}

// DayOfWeek returns the ISO day of week, Monday = 1 through Sunday = 7. The
// seven-day week cycles identically through every chronology.
func (d Date) DayOfWeek() int {
	return int(arith.FloorMod(d.epochDay+3, 7)) + 1
}

// DayOfYear returns the day within the date's year, from 1.
func (d Date) DayOfYear() int {
	start, err := d.chrono.DateFrom(d.year, 1, 1)
	if err != nil {
		// The year of a valid date always has a day 1-1.
		panic(err)
	}
	return int(d.epochDay-start.epochDay) + 1
}

// IsLeapYear returns true when the date's year is a leap year in its
// chronology.
func (d Date) IsLeapYear() bool { return d.chrono.IsLeapYear(d.year) }

// IsSupported implements [field.Accessor]. Dates carry every date-based
// field and no time or offset fields.
func (d Date) IsSupported(f field.Field) bool { return f.IsDateBased() }

// GetLong implements [field.Accessor].
func (d Date) GetLong(f field.Field) (int64, error) {
	switch f {
	case field.DayOfWeek:
		return int64(d.DayOfWeek()), nil
	case field.DayOfMonth:
		return int64(d.day), nil
	case field.DayOfYear:
		return int64(d.DayOfYear()), nil
	case field.EpochDay:
		return d.epochDay, nil
	case field.MonthOfYear:
		return int64(d.month), nil
	case field.ProlepticMonth:
		months, err := arith.Mul(d.year, int64(d.chrono.MonthsInYear()))
		if err != nil {
			return 0, err
		}
		return arith.Add(months, int64(d.month-1))
	case field.YearOfEra:
		return d.YearOfEra(), nil
	case field.Year:
		return d.year, nil
	case field.Era:
		return int64(d.Era().Value), nil
	default:
		return 0, fmt.Errorf("%w: %v on %v date", field.ErrUnsupported, f, d.chrono.Name())
	}
}

// Range implements [field.Accessor], narrowing day-of-month and day-of-year
// to the date's month and year.
func (d Date) Range(f field.Field) (field.ValueRange, error) {
	if !d.IsSupported(f) {
		return field.ValueRange{}, fmt.Errorf(
			"%w: %v on %v date", field.ErrUnsupported, f, d.chrono.Name(),
		)
	}
	switch f {
	case field.DayOfMonth:
		return field.RangeOf(1, int64(d.chrono.DaysInMonth(d.year, d.month))), nil
	case field.DayOfYear:
		return field.RangeOf(1, int64(d.chrono.DaysInYear(d.year))), nil
	default:
		return d.chrono.Range(f), nil
	}
}

// WithField implements [field.Adjustable]. The adjustment is strict: setting
// a field to a value invalid in the resulting context fails with
// field.ErrRange rather than clamping.
func (d Date) WithField(f field.Field, v int64) (field.Adjustable, error) {
	switch f {
	case field.DayOfWeek:
		if _, err := f.Range().CheckValid(v, f); err != nil {
			return nil, err
		}
		return d.Plus(v-int64(d.DayOfWeek()), field.Days)
	case field.DayOfMonth:
		return d.chrono.DateFrom(d.year, int64(d.month), v)
	case field.DayOfYear:
		return d.chrono.DateFromYearDay(d.year, v)
	case field.EpochDay:
		return d.chrono.DateFromEpochDay(v)
	case field.MonthOfYear:
		return d.chrono.DateFrom(d.year, v, int64(d.day))
	case field.ProlepticMonth:
		cur, err := d.GetLong(field.ProlepticMonth)
		if err != nil {
			return nil, err
		}
		diff, err := arith.Sub(v, cur)
		if err != nil {
			return nil, err
		}
		return d.Plus(diff, field.Months)
	case field.YearOfEra:
		year, err := d.chrono.ProlepticYear(d.Era(), v)
		if err != nil {
			return nil, err
		}
		return d.chrono.DateFrom(year, int64(d.month), int64(d.day))
	case field.Year:
		return d.chrono.DateFrom(v, int64(d.month), int64(d.day))
	case field.Era:
		era, err := d.chrono.EraOf(int(v))
		if err != nil {
			return nil, err
		}
		year, err := d.chrono.ProlepticYear(era, d.YearOfEra())
		if err != nil {
			return nil, err
		}
		return d.chrono.DateFrom(year, int64(d.month), int64(d.day))
	default:
		return nil, fmt.Errorf(
			"%w: %v on %v date", field.ErrUnsupported, f, d.chrono.Name(),
		)
	}
}

// Plus implements [field.Adjustable], advancing the date by amount of u.
// Month and year arithmetic clamps the day of month to the length of the
// resulting month, so the last day of a long month moves to the last day of
// a short one.
func (d Date) Plus(amount int64, u field.Unit) (field.Adjustable, error) {
	switch u {
	case field.Days:
		return d.plusDays(amount)
	case field.Weeks:
		days, err := arith.Mul(amount, 7)
		if err != nil {
			return nil, err
		}
		return d.plusDays(days)
	case field.Months:
		return d.plusMonths(amount)
	case field.Years:
		return d.plusScaledYears(amount, 1)
	case field.Decades:
		return d.plusScaledYears(amount, 10)
	case field.Centuries:
		return d.plusScaledYears(amount, 100)
	case field.Millennia:
		return d.plusScaledYears(amount, 1_000)
	case field.Eras:
		// Era arithmetic moves between eras holding the year of era.
		cur := int64(d.Era().Value)
		v, err := arith.Add(cur, amount)
		if err != nil {
			return nil, err
		}
		return d.WithField(field.Era, v)
	default:
		return nil, fmt.Errorf(
			"%w: unit %v on %v date", field.ErrUnsupported, u, d.chrono.Name(),
		)
	}
}

func (d Date) plusDays(days int64) (Date, error) {
	if days == 0 {
		return d, nil
	}
	ed, err := arith.Add(d.epochDay, days)
	if err != nil {
		return Date{}, err
	}
	return d.chrono.DateFromEpochDay(ed)
}

func (d Date) plusMonths(months int64) (Date, error) {
	if months == 0 {
		return d, nil
	}
	miy := int64(d.chrono.MonthsInYear())
	cur, err := arith.Mul(d.year, miy)
	if err != nil {
		return Date{}, err
	}
	cur, err = arith.Add(cur, int64(d.month-1))
	if err != nil {
		return Date{}, err
	}
	total, err := arith.Add(cur, months)
	if err != nil {
		return Date{}, err
	}
	year := arith.FloorDiv(total, miy)
	month := int(arith.FloorMod(total, miy)) + 1
	return d.resolvePreviousValid(year, month)
}

func (d Date) plusScaledYears(amount, scale int64) (Date, error) {
	years, err := arith.Mul(amount, scale)
	if err != nil {
		return Date{}, err
	}
	year, err := arith.Add(d.year, years)
	if err != nil {
		return Date{}, err
	}
	return d.resolvePreviousValid(year, d.month)
}

// resolvePreviousValid builds the date for year and month keeping d's day of
// month, clamped to the length of the target month.
func (d Date) resolvePreviousValid(year int64, month int) (Date, error) {
	day := d.day
	if max := d.chrono.DaysInMonth(year, month); day > max {
		day = max
	}
	return d.chrono.DateFrom(year, int64(month), int64(day))
}

// Compare orders d and other by epoch day. It is defined across
// chronologies: two dates compare equal when they denote the same day, even
// in different calendars.
func (d Date) Compare(other Date) int {
	switch {
	case d.epochDay < other.epochDay:
		return -1
	case d.epochDay > other.epochDay:
		return 1
	default:
		return 0
	}
}

// Equal returns true when d and other are the same day in the same
// chronology. Dates in different calendars are never Equal even when they
// denote the same day; use Compare for instant-style equivalence.
func (d Date) Equal(other Date) bool {
	return d.epochDay == other.epochDay && d.chrono == other.chrono
}

// String renders the date as "<name> <era> <year-of-era>-<month>-<day>",
// e.g. "Minguo ROC 113-04-29".
func (d Date) String() string {
	era, yoe := d.chrono.eraYear(d.year, d.epochDay)
	return fmt.Sprintf(
		"%s %s %d-%02d-%02d", d.chrono.Name(), era.Name, yoe, d.month, d.day,
	)
}

// dateFromParts validates year, month, and day in order against c and
// assembles the Date. The epoch-day conversion is supplied by the caller so
// each calendar keeps its own formula.
func dateFromParts(
	c Chronology, year, month, day int64, toEpochDay func(y int64, m, d int) (int64, error),
) (Date, error) {
	if _, err := c.Range(field.Year).CheckValid(year, field.Year); err != nil {
		return Date{}, err
	}
	if _, err := c.Range(field.MonthOfYear).CheckValid(month, field.MonthOfYear); err != nil {
		return Date{}, err
	}
	// The day check is month-aware: day 31 fails in a 30-day month even
	// though 31 is within the calendar-wide maximum.
	dim := int64(c.DaysInMonth(year, int(month)))
	if _, err := field.RangeOf(1, dim).CheckValid(day, field.DayOfMonth); err != nil {
		return Date{}, err
	}
	ed, err := toEpochDay(year, int(month), int(day))
	if err != nil {
		return Date{}, err
	}
	return Date{
		chrono:   c,
		epochDay: ed,
		year:     year,
		month:    int(month),
		day:      int(day),
	}, nil
}
