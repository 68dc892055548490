package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/datetime/datetime/field"
)

func TestMinguoDates(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	// ROC 113 is ISO 2024.
	date, err := Minguo.DateFrom(113, 4, 29)
	r.NoError(err)
	iso, err := ISO.DateFrom(2024, 4, 29)
	r.NoError(err)
	a.Equal(iso.EpochDay(), date.EpochDay())
	a.Equal("Minguo ROC 113-04-29", date.String())
	a.Equal(0, date.Compare(iso))
	a.False(date.Equal(iso))

	// Leap years track the shifted ISO year: ROC 113 = 2024.
	a.True(Minguo.IsLeapYear(113))
	a.False(Minguo.IsLeapYear(112))
	a.Equal(29, Minguo.DaysInMonth(113, 2))

	back, err := Minguo.DateFromEpochDay(date.EpochDay())
	r.NoError(err)
	a.True(date.Equal(back))

	// Year zero is the year before ROC 1.
	era, err := Minguo.EraOf(0)
	r.NoError(err)
	before, err := Minguo.DateFromEra(era, 1, 1, 1)
	r.NoError(err)
	a.Equal(int64(0), before.Year())
	a.Equal(int64(1), before.YearOfEra())

	iso1911, err := ISO.DateFrom(1911, 1, 1)
	r.NoError(err)
	a.Equal(iso1911.EpochDay(), before.EpochDay())
}

func TestThaiBuddhistDates(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	// BE 2567 is ISO 2024.
	date, err := ThaiBuddhist.DateFrom(2567, 2, 29)
	r.NoError(err)
	iso, err := ISO.DateFrom(2024, 2, 29)
	r.NoError(err)
	a.Equal(iso.EpochDay(), date.EpochDay())
	a.Equal("ThaiBuddhist BE 2567-02-29", date.String())

	a.True(ThaiBuddhist.IsLeapYear(2567))
	_, err = ThaiBuddhist.DateFrom(2566, 2, 29)
	r.ErrorIs(err, field.ErrRange)

	back, err := ThaiBuddhist.DateFromEpochDay(iso.EpochDay())
	r.NoError(err)
	a.Equal(int64(2567), back.Year())
	a.Equal(2, back.Month())
	a.Equal(29, back.Day())
}

func TestOffsetChronologyEras(t *testing.T) {
	t.Parallel()

	for _, c := range []Chronology{Minguo, ThaiBuddhist} {
		c := c
		t.Run(c.Name(), func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			current, err := c.EraOf(1)
			r.NoError(err)
			y, err := c.ProlepticYear(current, 10)
			r.NoError(err)
			a.Equal(int64(10), y)

			before, err := c.EraOf(0)
			r.NoError(err)
			y, err = c.ProlepticYear(before, 10)
			r.NoError(err)
			a.Equal(int64(-9), y)

			_, err = c.ProlepticYear(Era{Value: 7, Name: "Bogus"}, 10)
			r.ErrorIs(err, ErrChronology)
		})
	}
}
