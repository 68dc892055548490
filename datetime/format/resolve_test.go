package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/datetime/datetime/chrono"
	"github.com/theory/datetime/datetime/field"
	"github.com/theory/datetime/datetime/types"
)

// resolveFields runs the resolution engine over a hand-built accumulator.
func resolveFields(t *testing.T, c chrono.Chronology, vals map[field.Field]int64) (*Parsed, error) {
	t.Helper()
	fv := NewFieldValues()
	for _, f := range []field.Field{
		field.Era, field.YearOfEra, field.Year, field.MonthOfYear,
		field.DayOfMonth, field.DayOfYear, field.EpochDay, field.DayOfWeek,
		field.HourOfDay, field.ClockHourOfDay, field.HourOfAmPm,
		field.ClockHourOfAmPm, field.AmPmOfDay, field.MinuteOfHour,
		field.MinuteOfDay, field.SecondOfMinute, field.SecondOfDay,
		field.NanoOfSecond, field.NanoOfDay, field.OffsetSeconds,
	} {
		if v, ok := vals[f]; ok {
			require.NoError(t, fv.Put(f, v))
		}
	}
	return resolve(fv, c)
}

func TestResolveDateCombinations(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		vals map[field.Field]int64
		want types.LocalDate
	}{
		{
			name: "era_year_month_day",
			vals: map[field.Field]int64{
				field.Era: 1, field.YearOfEra: 2008,
				field.MonthOfYear: 6, field.DayOfMonth: 30,
			},
			want: types.MustDateOf(2008, 6, 30),
		},
		{
			name: "year_month_day",
			vals: map[field.Field]int64{
				field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30,
			},
			want: types.MustDateOf(2008, 6, 30),
		},
		{
			name: "year_day_of_year",
			vals: map[field.Field]int64{field.Year: 2008, field.DayOfYear: 182},
			want: types.MustDateOf(2008, 6, 30),
		},
		{
			name: "epoch_day",
			vals: map[field.Field]int64{field.EpochDay: 14_060},
			want: types.MustDateOf(2008, 6, 30),
		},
		{
			// The complete higher-priority combination wins; the epoch day
			// agrees, so it passes as a cross-check.
			name: "priority_with_crosscheck",
			vals: map[field.Field]int64{
				field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30,
				field.EpochDay: 14_060,
			},
			want: types.MustDateOf(2008, 6, 30),
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := resolveFields(t, chrono.ISO, tc.vals)
			require.NoError(t, err)
			got, err := p.LocalDate()
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %v", got)
		})
	}
}

func TestResolveCrossCheckConflicts(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		vals    map[field.Field]int64
		errLike string
	}{
		{
			// 2008-06-30 is a Monday (1), not a Wednesday (3).
			name: "day_of_week",
			vals: map[field.Field]int64{
				field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30,
				field.DayOfWeek: 3,
			},
			errLike: "DayOfWeek",
		},
		{
			name: "epoch_day_disagrees",
			vals: map[field.Field]int64{
				field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30,
				field.EpochDay: 14_061,
			},
			errLike: "EpochDay",
		},
		{
			name: "year_of_era_disagrees",
			vals: map[field.Field]int64{
				field.Year: 2008, field.MonthOfYear: 6, field.DayOfMonth: 30,
				field.YearOfEra: 2009,
			},
			errLike: "YearOfEra",
		},
		{
			// Hour 10 resolves the time; a stranded minute-of-day must
			// still agree with it.
			name: "minute_of_day_disagrees",
			vals: map[field.Field]int64{
				field.HourOfDay: 10, field.MinuteOfDay: 999,
			},
			errLike: "MinuteOfDay",
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := resolveFields(t, chrono.ISO, tc.vals)
			require.ErrorIs(t, err, ErrResolve)
			assert.ErrorContains(t, err, tc.errLike)
		})
	}
}

func TestResolveInvalidFieldValues(t *testing.T) {
	t.Parallel()

	// 2007 is not a leap year; the chronology rejects the combination and
	// the error names the offending field.
	_, err := resolveFields(t, chrono.ISO, map[field.Field]int64{
		field.Year: 2007, field.MonthOfYear: 2, field.DayOfMonth: 29,
	})
	require.ErrorIs(t, err, ErrResolve)
	assert.ErrorContains(t, err, "DayOfMonth")

	// 2008 is.
	p, err := resolveFields(t, chrono.ISO, map[field.Field]int64{
		field.Year: 2008, field.MonthOfYear: 2, field.DayOfMonth: 29,
	})
	require.NoError(t, err)
	got, err := p.LocalDate()
	require.NoError(t, err)
	assert.True(t, types.MustDateOf(2008, 2, 29).Equal(got))

	_, err = resolveFields(t, chrono.ISO, map[field.Field]int64{
		field.HourOfDay: 24,
	})
	require.ErrorIs(t, err, ErrResolve)
}

func TestResolveTimeCombinations(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		vals map[field.Field]int64
		want types.LocalTime
	}{
		{
			name: "nano_of_day",
			vals: map[field.Field]int64{field.NanoOfDay: 37_230_000_000_123},
			want: types.MustTimeOf(10, 20, 30, 123),
		},
		{
			name: "second_of_day",
			vals: map[field.Field]int64{field.SecondOfDay: 37_230},
			want: types.MustTimeOf(10, 20, 30, 0),
		},
		{
			name: "second_of_day_with_nano",
			vals: map[field.Field]int64{
				field.SecondOfDay: 37_230, field.NanoOfSecond: 7,
			},
			want: types.MustTimeOf(10, 20, 30, 7),
		},
		{
			name: "hour_hierarchy",
			vals: map[field.Field]int64{
				field.HourOfDay: 10, field.MinuteOfHour: 20,
				field.SecondOfMinute: 30, field.NanoOfSecond: 7,
			},
			want: types.MustTimeOf(10, 20, 30, 7),
		},
		{
			name: "hour_only",
			vals: map[field.Field]int64{field.HourOfDay: 10},
			want: types.MustTimeOf(10, 0, 0, 0),
		},
		{
			name: "clock_hour_24",
			vals: map[field.Field]int64{field.ClockHourOfDay: 24},
			want: types.Midnight,
		},
		{
			name: "am_pm_fold",
			vals: map[field.Field]int64{
				field.AmPmOfDay: 1, field.HourOfAmPm: 3, field.MinuteOfHour: 20,
			},
			want: types.MustTimeOf(15, 20, 0, 0),
		},
		{
			name: "clock_hour_am_pm_noon",
			vals: map[field.Field]int64{
				field.AmPmOfDay: 1, field.ClockHourOfAmPm: 12,
			},
			want: types.MustTimeOf(12, 0, 0, 0),
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := resolveFields(t, chrono.ISO, tc.vals)
			require.NoError(t, err)
			got, err := p.LocalTime()
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %v", got)
		})
	}
}

func TestResolvePartialResults(t *testing.T) {
	t.Parallel()

	// A time-only accumulator resolves with no date; that is not an error
	// until a date is demanded, and the error names the blocking field.
	p, err := resolveFields(t, chrono.ISO, map[field.Field]int64{
		field.HourOfDay: 10, field.MinuteOfHour: 15,
	})
	require.NoError(t, err)
	assert.Nil(t, p.Date)
	require.NotNil(t, p.Time)

	_, err = p.LocalDate()
	require.ErrorIs(t, err, ErrResolve)
	assert.ErrorContains(t, err, "Year")

	// A partial date names the first missing member of the nearest
	// combination.
	p, err = resolveFields(t, chrono.ISO, map[field.Field]int64{
		field.Year: 2008, field.MonthOfYear: 6,
	})
	require.NoError(t, err)
	_, err = p.LocalDate()
	require.ErrorIs(t, err, ErrResolve)
	assert.ErrorContains(t, err, "DayOfMonth")

	// A date-only result refuses to produce a time or more.
	p, err = resolveFields(t, chrono.ISO, map[field.Field]int64{
		field.EpochDay: 14_060,
	})
	require.NoError(t, err)
	_, err = p.LocalTime()
	require.ErrorIs(t, err, ErrResolve)
	assert.ErrorContains(t, err, "HourOfDay")
	_, err = p.OffsetDateTime()
	require.ErrorIs(t, err, ErrResolve)
}

func TestResolveChronologies(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		c    chrono.Chronology
		vals map[field.Field]int64
		want types.LocalDate
	}{
		{
			name: "minguo_era",
			c:    chrono.Minguo,
			vals: map[field.Field]int64{
				field.Era: 1, field.YearOfEra: 113,
				field.MonthOfYear: 5, field.DayOfMonth: 20,
			},
			want: types.MustDateOf(2024, 5, 20),
		},
		{
			name: "thai_buddhist",
			c:    chrono.ThaiBuddhist,
			vals: map[field.Field]int64{
				field.Year: 2567, field.MonthOfYear: 5, field.DayOfMonth: 20,
			},
			want: types.MustDateOf(2024, 5, 20),
		},
		{
			name: "hijrah",
			c:    chrono.Hijrah,
			vals: map[field.Field]int64{
				field.Year: 1446, field.MonthOfYear: 1, field.DayOfMonth: 1,
			},
			want: types.MustDateOf(2024, 7, 8),
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			p, err := resolveFields(t, tc.c, tc.vals)
			require.NoError(t, err)
			assert.Equal(t, tc.c, p.Chronology)
			got, err := p.LocalDate()
			require.NoError(t, err)
			assert.True(t, tc.want.Equal(got), "got %v", got)
		})
	}
}

func TestResolveOffset(t *testing.T) {
	t.Parallel()

	p, err := resolveFields(t, chrono.ISO, map[field.Field]int64{
		field.EpochDay: 14_060, field.HourOfDay: 10, field.OffsetSeconds: 7_200,
	})
	require.NoError(t, err)
	require.NotNil(t, p.Offset)
	assert.Equal(t, types.MustOffsetOf(2, 0, 0), *p.Offset)

	odt, err := p.OffsetDateTime()
	require.NoError(t, err)
	assert.Equal(t, "2008-06-30T10:00+02:00", odt.String())

	_, err = resolveFields(t, chrono.ISO, map[field.Field]int64{
		field.OffsetSeconds: 999_999,
	})
	require.ErrorIs(t, err, ErrResolve)
}

func TestParsedQuery(t *testing.T) {
	t.Parallel()

	p, err := resolveFields(t, chrono.ISO, map[field.Field]int64{
		field.EpochDay: 14_060,
	})
	require.NoError(t, err)

	got, err := p.Query(func(p *Parsed) (any, error) {
		d, err := p.LocalDate()
		if err != nil {
			return nil, err
		}
		return d.Year(), nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2008), got)
}
