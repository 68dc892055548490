package chrono

import (
	"fmt"

	"github.com/theory/datetime/datetime/field"
)

// Japanese is the Japanese imperial calendar: ISO dates with years counted
// within imperial eras from Meiji onward. Dates before 1868-01-01 are not
// supported.
var Japanese Chronology = &japaneseChronology{}

type japaneseChronology struct{}

// japaneseEra pairs an Era with the ISO date its reign begins.
type japaneseEra struct {
	era       Era
	startYear int64
	startDay  int64 // epoch day of the era's first day
}

// japaneseEras lists the supported eras in ascending order with their
// accession days.
var japaneseEras = []japaneseEra{
	{Era{-1, "Meiji"}, 1868, isoEpochDayOf(1868, 1, 1)},
	{Era{0, "Taisho"}, 1912, isoEpochDayOf(1912, 7, 30)},
	{Era{1, "Showa"}, 1926, isoEpochDayOf(1926, 12, 25)},
	{Era{2, "Heisei"}, 1989, isoEpochDayOf(1989, 1, 8)},
	{Era{3, "Reiwa"}, 2019, isoEpochDayOf(2019, 5, 1)},
}

// isoEpochDayOf wraps isoEpochDay for static initialization.
func isoEpochDayOf(y int64, m, d int) int64 { return isoEpochDay(y, m, d) }

func (c *japaneseChronology) Name() string         { return "Japanese" }
func (c *japaneseChronology) CalendarType() string { return "japanese" }
func (c *japaneseChronology) MonthsInYear() int    { return 12 }

func (c *japaneseChronology) Eras() []Era {
	eras := make([]Era, len(japaneseEras))
	for i, je := range japaneseEras {
		eras[i] = je.era
	}
	return eras
}

func (c *japaneseChronology) EraOf(value int) (Era, error) {
	for _, je := range japaneseEras {
		if je.era.Value == value {
			return je.era, nil
		}
	}
	return Era{}, unknownEra(c, value)
}

// The proleptic year of the Japanese calendar is the ISO year itself, so
// leap years and month lengths delegate directly.

func (c *japaneseChronology) IsLeapYear(year int64) bool {
	return ISO.IsLeapYear(year)
}

func (c *japaneseChronology) DaysInMonth(year int64, month int) int {
	return ISO.DaysInMonth(year, month)
}

func (c *japaneseChronology) DaysInYear(year int64) int {
	return ISO.DaysInYear(year)
}

func (c *japaneseChronology) ProlepticYear(era Era, yearOfEra int64) (int64, error) {
	je, err := c.eraFor(era)
	if err != nil {
		return 0, err
	}
	year := je.startYear + yearOfEra - 1
	// Year of era must stay within the era's reign.
	if yearOfEra < 1 || year > c.lastYearOf(je) {
		return 0, fmt.Errorf(
			"%w: %d for %v in %v era", field.ErrRange, yearOfEra, field.YearOfEra, era.Name,
		)
	}
	return year, nil
}

// lastYearOf returns the last ISO year attributable to je: the accession
// year of the next era, or the supported maximum for the current era.
func (c *japaneseChronology) lastYearOf(je japaneseEra) int64 {
	for i, cand := range japaneseEras {
		if cand.era.Value == je.era.Value && i+1 < len(japaneseEras) {
			return japaneseEras[i+1].startYear
		}
	}
	return field.YearMax
}

func (c *japaneseChronology) eraFor(era Era) (japaneseEra, error) {
	for _, je := range japaneseEras {
		if je.era.Value == era.Value {
			return je, nil
		}
	}
	return japaneseEra{}, unknownEra(c, era.Value)
}

// eraAtEpochDay returns the era in effect on an epoch day.
func eraAtEpochDay(epochDay int64) japaneseEra {
	current := japaneseEras[0]
	for _, je := range japaneseEras[1:] {
		if epochDay < je.startDay {
			break
		}
		current = je
	}
	return current
}

func (c *japaneseChronology) eraYear(year, epochDay int64) (Era, int64) {
	// Eras change mid-year, so the era in effect depends on the day, not
	// just the year: 2019-01-08 through 2019-04-30 is Heisei 31 while
	// 2019-05-01 onward is Reiwa 1.
	je := eraAtEpochDay(epochDay)
	return je.era, year - je.startYear + 1
}

func (c *japaneseChronology) Range(f field.Field) field.ValueRange {
	switch f {
	case field.Year:
		return field.RangeOf(japaneseEras[0].startYear, field.YearMax)
	case field.YearOfEra:
		// The smallest era span is Taisho's 15 years; the largest is the
		// open-ended current era.
		return field.RangeOfVariable(1, 15, field.YearMax-japaneseEras[len(japaneseEras)-1].startYear)
	case field.Era:
		return field.RangeOf(
			int64(japaneseEras[0].era.Value),
			int64(japaneseEras[len(japaneseEras)-1].era.Value),
		)
	case field.EpochDay:
		return field.RangeOf(japaneseEras[0].startDay, field.EpochDay.Range().Max())
	default:
		return f.Range()
	}
}

func (c *japaneseChronology) DateFrom(year, month, day int64) (Date, error) {
	return dateFromParts(c, year, month, day, func(y int64, m, d int) (int64, error) {
		return isoEpochDay(y, m, d), nil
	})
}

func (c *japaneseChronology) DateFromEra(era Era, yearOfEra, month, day int64) (Date, error) {
	year, err := c.ProlepticYear(era, yearOfEra)
	if err != nil {
		return Date{}, err
	}
	date, err := c.DateFrom(year, month, day)
	if err != nil {
		return Date{}, err
	}
	// Eras start and end mid-year: a first-year date may precede the
	// accession day, and a last-year date may follow the next accession.
	if got := eraAtEpochDay(date.epochDay); got.era.Value != era.Value {
		return Date{}, fmt.Errorf(
			"%w: %v is in the %v era, not %v",
			ErrChronology, mustISODate(date.epochDay), got.era.Name, era.Name,
		)
	}
	return date, nil
}

func (c *japaneseChronology) DateFromYearDay(year, dayOfYear int64) (Date, error) {
	return dateFromYearDay(c, year, dayOfYear)
}

func (c *japaneseChronology) DateFromEpochDay(epochDay int64) (Date, error) {
	if _, err := c.Range(field.EpochDay).CheckValid(epochDay, field.EpochDay); err != nil {
		return Date{}, err
	}
	y, m, d := isoFromEpochDay(epochDay)
	return Date{chrono: c, epochDay: epochDay, year: y, month: m, day: d}, nil
}

// mustISODate formats an epoch day as an ISO date for error messages.
func mustISODate(epochDay int64) string {
	y, m, d := isoFromEpochDay(epochDay)
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}
