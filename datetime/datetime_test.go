package datetime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/theory/datetime/datetime/chrono"
	"github.com/theory/datetime/datetime/field"
	"github.com/theory/datetime/datetime/format"
	"github.com/theory/datetime/datetime/types"
)

func TestCompile(t *testing.T) {
	t.Parallel()

	f, err := Compile("uuuu-MM-dd")
	require.NoError(t, err)
	require.NotNil(t, f)

	_, err = Compile("uuuu-qq")
	require.Error(t, err)
	assert.ErrorContains(t, err, "unknown pattern letter")

	assert.NotPanics(t, func() { MustCompile("uuuu-MM-dd") })
	assert.Panics(t, func() { MustCompile("uuuu-qq") })
}

func TestCompileOptions(t *testing.T) {
	t.Parallel()

	f, err := Compile(
		"G y-MM-dd",
		WithChronology(chrono.Minguo),
		WithLocale(language.BritishEnglish),
	)
	require.NoError(t, err)

	got, err := ParseDate(f, "ROC 113-05-20")
	require.NoError(t, err)
	assert.True(t, types.MustDateOf(2024, 5, 20).Equal(got))
}

func TestStockFormat(t *testing.T) {
	t.Parallel()

	date := types.MustDateOf(2008, 6, 30)
	tm := types.MustTimeOf(10, 15, 30, 0)
	dt := types.DateTimeOf(date, tm)

	for _, tc := range []struct {
		name  string
		f     *format.Formatter
		value field.Accessor
		want  string
	}{
		{name: "date", f: ISODate, value: date, want: "2008-06-30"},
		{name: "time", f: ISOTime, value: tm, want: "10:15:30"},
		{
			name:  "time_fraction",
			f:     ISOTime,
			value: types.MustTimeOf(10, 15, 30, 123_000_000),
			want:  "10:15:30.123",
		},
		{name: "date_time", f: ISODateTime, value: dt, want: "2008-06-30T10:15:30"},
		{
			name:  "offset_time",
			f:     ISOOffsetTime,
			value: types.OffsetTimeOf(tm, types.MustOffsetOf(1, 0, 0)),
			want:  "10:15:30+01:00",
		},
		{
			name:  "offset",
			f:     ISOOffsetDateTime,
			value: types.OffsetDateTimeOf(dt, types.MustOffsetOf(2, 0, 0)),
			want:  "2008-06-30T10:15:30+02:00",
		},
		{
			name: "offset_zulu",
			f:    ISOOffsetDateTime,
			value: types.OffsetDateTimeOf(
				types.DateTimeOf(date, types.Midnight), types.UTC,
			),
			want: "2008-06-30T00:00:00Z",
		},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Format(tc.f, tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStockParse(t *testing.T) {
	t.Parallel()

	date := types.MustDateOf(2008, 6, 30)

	t.Run("date", func(t *testing.T) {
		t.Parallel()
		got, err := ParseDate(ISODate, "2008-06-30")
		require.NoError(t, err)
		assert.True(t, date.Equal(got))

		_, err = ParseDate(ISODate, "2008-06-31")
		require.ErrorIs(t, err, format.ErrResolve)
	})

	t.Run("time", func(t *testing.T) {
		t.Parallel()
		got, err := ParseTime(ISOTime, "10:15")
		require.NoError(t, err)
		assert.Equal(t, types.MustTimeOf(10, 15, 0, 0), got)

		got, err = ParseTime(ISOTime, "10:15:30.123456789")
		require.NoError(t, err)
		assert.Equal(t, types.MustTimeOf(10, 15, 30, 123_456_789), got)
	})

	t.Run("date_time", func(t *testing.T) {
		t.Parallel()
		got, err := ParseDateTime(ISODateTime, "2008-06-30T10:15:30")
		require.NoError(t, err)
		assert.Equal(t, "2008-06-30T10:15:30", got.String())
	})

	t.Run("offset_time", func(t *testing.T) {
		t.Parallel()
		got, err := ParseOffsetTime(ISOOffsetTime, "10:15:30+01:00")
		require.NoError(t, err)
		assert.Equal(t, "10:15:30+01:00", got.String())

		got, err = ParseOffsetTime(ISOOffsetTime, "10:15Z")
		require.NoError(t, err)
		assert.Equal(t, types.UTC, got.Offset())

		_, err = ParseOffsetTime(ISOTime, "10:15:30")
		require.ErrorIs(t, err, format.ErrResolve)
	})

	t.Run("offset_date_time", func(t *testing.T) {
		t.Parallel()
		got, err := ParseOffsetDateTime(ISOOffsetDateTime, "2008-06-30T10:15:30+02:00")
		require.NoError(t, err)
		assert.Equal(t, "2008-06-30T10:15:30+02:00", got.String())

		got, err = ParseOffsetDateTime(ISOOffsetDateTime, "2008-06-30T10:15:30Z")
		require.NoError(t, err)
		assert.Equal(t, types.UTC, got.Offset())
	})

	t.Run("missing_parts", func(t *testing.T) {
		t.Parallel()
		_, err := ParseDateTime(ISODate, "2008-06-30")
		require.ErrorIs(t, err, format.ErrResolve)
		assert.ErrorContains(t, err, "HourOfDay")

		_, err = ParseOffsetDateTime(ISODateTime, "2008-06-30T10:15:30")
		require.ErrorIs(t, err, format.ErrResolve)
		assert.ErrorContains(t, err, "OffsetSeconds")
	})
}

func TestParse(t *testing.T) {
	t.Parallel()

	p, err := Parse(ISODate, "2008-06-30")
	require.NoError(t, err)
	require.NotNil(t, p.Date)
	assert.Nil(t, p.Time)
	assert.Nil(t, p.Offset)
	assert.Equal(t, chrono.ISO, p.Chronology)

	_, err = Parse(ISODate, "2008/06/30")
	require.ErrorIs(t, err, format.ErrParse)
}
