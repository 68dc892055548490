package format

import (
	"fmt"

	"github.com/theory/datetime/datetime/chrono"
	"github.com/theory/datetime/datetime/field"
	"github.com/theory/datetime/datetime/types"
)

// Parsed is the outcome of resolving an accumulator: whichever of a date,
// time, and offset the input determined. Partial results are normal; the
// extractor methods fail with ErrResolve, naming the first missing field,
// when asked for more than was parsed.
type Parsed struct {
	// Chronology is the calendar system the date was resolved in.
	Chronology chrono.Chronology

	// Date is the resolved calendar date, or nil when the input did not
	// determine one.
	Date *chrono.Date

	// Time is the resolved time of day, or nil.
	Time *types.LocalTime

	// Offset is the resolved UTC offset, or nil.
	Offset *types.ZoneOffset

	// missingDate names the field that blocked date resolution, for
	// extractor errors.
	missingDate field.Field
}

// LocalDate returns the resolved date converted to the ISO calendar.
func (p *Parsed) LocalDate() (types.LocalDate, error) {
	if p.Date == nil {
		return types.LocalDate{}, fmt.Errorf(
			"%w: no date: missing %v", ErrResolve, p.missingDate,
		)
	}
	return types.DateOfEpochDay(p.Date.EpochDay())
}

// LocalTime returns the resolved time of day.
func (p *Parsed) LocalTime() (types.LocalTime, error) {
	if p.Time == nil {
		return types.LocalTime{}, fmt.Errorf(
			"%w: no time: missing %v", ErrResolve, field.HourOfDay,
		)
	}
	return *p.Time, nil
}

// OffsetTime returns the resolved time and offset combined.
func (p *Parsed) OffsetTime() (types.OffsetTime, error) {
	t, err := p.LocalTime()
	if err != nil {
		return types.OffsetTime{}, err
	}
	if p.Offset == nil {
		return types.OffsetTime{}, fmt.Errorf(
			"%w: no offset: missing %v", ErrResolve, field.OffsetSeconds,
		)
	}
	return types.OffsetTimeOf(t, *p.Offset), nil
}

// LocalDateTime returns the resolved date and time combined.
func (p *Parsed) LocalDateTime() (types.LocalDateTime, error) {
	d, err := p.LocalDate()
	if err != nil {
		return types.LocalDateTime{}, err
	}
	t, err := p.LocalTime()
	if err != nil {
		return types.LocalDateTime{}, err
	}
	return types.DateTimeOf(d, t), nil
}

// OffsetDateTime returns the resolved date, time, and offset combined.
func (p *Parsed) OffsetDateTime() (types.OffsetDateTime, error) {
	dt, err := p.LocalDateTime()
	if err != nil {
		return types.OffsetDateTime{}, err
	}
	if p.Offset == nil {
		return types.OffsetDateTime{}, fmt.Errorf(
			"%w: no offset: missing %v", ErrResolve, field.OffsetSeconds,
		)
	}
	return types.OffsetDateTimeOf(dt, *p.Offset), nil
}

// Query applies an arbitrary extraction to the parsed result.
func (p *Parsed) Query(q func(*Parsed) (any, error)) (any, error) { return q(p) }

// dateCombos lists the field combinations that determine a date, in
// priority order. The first fully-present combination wins; fields from
// lower-priority combinations become cross-checks.
var dateCombos = [][]field.Field{
	{field.Era, field.YearOfEra, field.MonthOfYear, field.DayOfMonth},
	{field.Year, field.MonthOfYear, field.DayOfMonth},
	{field.Year, field.DayOfYear},
	{field.EpochDay},
}

// resolve turns an accumulator into a Parsed, consuming it. Every field
// left over after the winning combinations is recomputed from the result
// and compared to its parsed value; a mismatch is an error, never silently
// dropped.
func resolve(fv *FieldValues, fallback chrono.Chronology) (*Parsed, error) {
	c := fv.Chronology()
	if c == nil {
		c = fallback
	}
	p := &Parsed{Chronology: c}

	if err := foldTimeFields(fv); err != nil {
		return nil, err
	}
	if err := resolveDate(fv, c, p); err != nil {
		return nil, err
	}
	if err := resolveTime(fv, p); err != nil {
		return nil, err
	}
	if err := resolveOffset(fv, p); err != nil {
		return nil, err
	}
	return p, crossCheck(fv, p)
}

// foldTimeFields rewrites clock-hour and am/pm fields onto hour-of-day so
// the time combinations below need only one hour representation. Folding
// uses the same conflict rule as parsing: a folded value that disagrees
// with an already-present field is an error.
func foldTimeFields(fv *FieldValues) error {
	if v, ok := fv.Get(field.ClockHourOfDay); ok {
		if _, err := field.ClockHourOfDay.CheckValidValue(v); err != nil {
			return fmt.Errorf("%w: %v", ErrResolve, err)
		}
		if v == 24 {
			v = 0
		}
		fv.remove(field.ClockHourOfDay)
		if err := putResolved(fv, field.HourOfDay, v); err != nil {
			return err
		}
	}
	if v, ok := fv.Get(field.ClockHourOfAmPm); ok {
		if _, err := field.ClockHourOfAmPm.CheckValidValue(v); err != nil {
			return fmt.Errorf("%w: %v", ErrResolve, err)
		}
		if v == 12 {
			v = 0
		}
		fv.remove(field.ClockHourOfAmPm)
		if err := putResolved(fv, field.HourOfAmPm, v); err != nil {
			return err
		}
	}
	ampm, haveAmPm := fv.Get(field.AmPmOfDay)
	hap, haveHour := fv.Get(field.HourOfAmPm)
	if haveAmPm && haveHour {
		if _, err := field.AmPmOfDay.CheckValidValue(ampm); err != nil {
			return fmt.Errorf("%w: %v", ErrResolve, err)
		}
		if _, err := field.HourOfAmPm.CheckValidValue(hap); err != nil {
			return fmt.Errorf("%w: %v", ErrResolve, err)
		}
		fv.remove(field.AmPmOfDay)
		fv.remove(field.HourOfAmPm)
		if err := putResolved(fv, field.HourOfDay, ampm*12+hap); err != nil {
			return err
		}
	}
	return nil
}

// putResolved inserts a derived field value, reporting a disagreement with
// an already-parsed value as a resolution conflict.
func putResolved(fv *FieldValues, f field.Field, v int64) error {
	if prev, ok := fv.Get(f); ok {
		if prev != v {
			return fmt.Errorf(
				"%w: %v parsed as %d conflicts with derived value %d",
				ErrResolve, f, prev, v,
			)
		}
		return nil
	}
	return fv.Put(f, v)
}

// resolveDate finds the highest-priority complete date combination and
// converts it via the chronology. With no complete combination the date
// stays nil and the first missing field of the nearest combination is
// recorded for extractor errors.
func resolveDate(fv *FieldValues, c chrono.Chronology, p *Parsed) error {
	combo := -1
	for i, fields := range dateCombos {
		if fv.Has(fields...) {
			combo = i
			break
		}
	}
	if combo == -1 {
		p.missingDate = firstMissingDate(fv)
		return nil
	}

	var (
		date chrono.Date
		err  error
	)
	switch combo {
	case 0:
		eraVal, _ := fv.Get(field.Era)
		era, eraErr := c.EraOf(int(eraVal))
		if eraErr != nil {
			return fmt.Errorf("%w: %v", ErrResolve, eraErr)
		}
		yoe, _ := fv.Get(field.YearOfEra)
		month, _ := fv.Get(field.MonthOfYear)
		day, _ := fv.Get(field.DayOfMonth)
		date, err = c.DateFromEra(era, yoe, month, day)
	case 1:
		year, _ := fv.Get(field.Year)
		month, _ := fv.Get(field.MonthOfYear)
		day, _ := fv.Get(field.DayOfMonth)
		date, err = c.DateFrom(year, month, day)
	case 2:
		year, _ := fv.Get(field.Year)
		doy, _ := fv.Get(field.DayOfYear)
		date, err = c.DateFromYearDay(year, doy)
	default:
		ed, _ := fv.Get(field.EpochDay)
		date, err = c.DateFromEpochDay(ed)
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResolve, err)
	}
	for _, f := range dateCombos[combo] {
		fv.remove(f)
	}
	p.Date = &date
	return nil
}

// firstMissingDate names the field that blocked date resolution: the first
// absent member of the best-matching combination, Year when no date field
// was parsed at all.
func firstMissingDate(fv *FieldValues) field.Field {
	best, bestPresent := -1, 0
	for i, fields := range dateCombos {
		present := 0
		for _, f := range fields {
			if fv.Has(f) {
				present++
			}
		}
		if present > bestPresent {
			best, bestPresent = i, present
		}
	}
	if best == -1 {
		return field.Year
	}
	for _, f := range dateCombos[best] {
		if !fv.Has(f) {
			return f
		}
	}
	return field.Year
}

// resolveTime builds the time of day from whichever combination is
// complete: nano-of-day, second-of-day plus optional nano, or the
// hour/minute/second/nano hierarchy. Lower members of the hierarchy are
// only consumed when every higher member is present; a stranded second or
// nano becomes a cross-check instead.
func resolveTime(fv *FieldValues, p *Parsed) error {
	set := func(t types.LocalTime) { p.Time = &t }

	if nod, ok := fv.Get(field.NanoOfDay); ok {
		t, err := types.TimeOfNanoOfDay(nod)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrResolve, err)
		}
		fv.remove(field.NanoOfDay)
		set(t)
		return nil
	}

	if sod, ok := fv.Get(field.SecondOfDay); ok {
		t, err := types.TimeOfSecondOfDay(sod)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrResolve, err)
		}
		fv.remove(field.SecondOfDay)
		if nano, ok := fv.Get(field.NanoOfSecond); ok {
			adj, err := t.WithField(field.NanoOfSecond, nano)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrResolve, err)
			}
			fv.remove(field.NanoOfSecond)
			t = adj.(types.LocalTime)
		}
		set(t)
		return nil
	}

	hour, ok := fv.Get(field.HourOfDay)
	if !ok {
		return nil
	}
	fv.remove(field.HourOfDay)
	var minute, second, nano int64
	if m, ok := fv.Get(field.MinuteOfHour); ok {
		minute = m
		fv.remove(field.MinuteOfHour)
		if s, ok := fv.Get(field.SecondOfMinute); ok {
			second = s
			fv.remove(field.SecondOfMinute)
			if n, ok := fv.Get(field.NanoOfSecond); ok {
				nano = n
				fv.remove(field.NanoOfSecond)
			}
		}
	}
	for _, check := range []struct {
		f field.Field
		v int64
	}{
		{field.HourOfDay, hour},
		{field.MinuteOfHour, minute},
		{field.SecondOfMinute, second},
		{field.NanoOfSecond, nano},
	} {
		if _, err := check.f.CheckValidValue(check.v); err != nil {
			return fmt.Errorf("%w: %v", ErrResolve, err)
		}
	}
	t, err := types.TimeOf(int(hour), int(minute), int(second), int(nano))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResolve, err)
	}
	set(t)
	return nil
}

// resolveOffset converts an accumulated offset-seconds value.
func resolveOffset(fv *FieldValues, p *Parsed) error {
	secs, ok := fv.Get(field.OffsetSeconds)
	if !ok {
		return nil
	}
	iv, err := field.OffsetSeconds.CheckValidIntValue(secs)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResolve, err)
	}
	off, err := types.OffsetOfSeconds(iv)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrResolve, err)
	}
	fv.remove(field.OffsetSeconds)
	p.Offset = &off
	return nil
}

// crossCheck recomputes every leftover field from the resolved result and
// compares it to the parsed value. A field the result cannot derive is left
// alone; a derivable field that disagrees is a conflict.
func crossCheck(fv *FieldValues, p *Parsed) error {
	for _, f := range fv.Fields() {
		parsed, ok := fv.Get(f)
		if !ok {
			continue // consumed by resolution
		}
		derived, ok, err := deriveField(f, p)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if derived != parsed {
			return fmt.Errorf(
				"%w: %v parsed as %d conflicts with resolved value %d",
				ErrResolve, f, parsed, derived,
			)
		}
		fv.remove(f)
	}
	return nil
}

// deriveField recomputes f from whichever resolved parts support it.
func deriveField(f field.Field, p *Parsed) (int64, bool, error) {
	if p.Date != nil && p.Date.IsSupported(f) {
		v, err := p.Date.GetLong(f)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %v", ErrResolve, err)
		}
		return v, true, nil
	}
	if p.Time != nil && p.Time.IsSupported(f) {
		v, err := p.Time.GetLong(f)
		if err != nil {
			return 0, false, fmt.Errorf("%w: %v", ErrResolve, err)
		}
		return v, true, nil
	}
	return 0, false, nil
}
