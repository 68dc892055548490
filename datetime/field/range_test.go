package field

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValueRange(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	fixed := RangeOf(1, 12)
	a.Equal(int64(1), fixed.Min())
	a.Equal(int64(1), fixed.MinLargest())
	a.Equal(int64(12), fixed.MaxSmallest())
	a.Equal(int64(12), fixed.Max())
	a.True(fixed.IsFixed())
	a.True(fixed.IsIntValue())
	a.True(fixed.Contains(1))
	a.True(fixed.Contains(12))
	a.False(fixed.Contains(0))
	a.False(fixed.Contains(13))
	a.Equal("1 - 12", fixed.String())

	dom := RangeOfVariable(1, 28, 31)
	a.False(dom.IsFixed())
	a.True(dom.Contains(31))
	a.Equal("1 - 28/31", dom.String())

	yoe := RangeFullyVariable(1, 1, 999_999_999, 1_000_000_000)
	a.False(yoe.IsFixed())
	a.Equal("1 - 999999999/1000000000", yoe.String())

	wide := RangeOf(math.MinInt64+1, math.MaxInt64)
	a.False(wide.IsIntValue())
}

func TestValueRangePanics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { RangeOf(2, 1) })
	assert.Panics(t, func() { RangeOfVariable(1, 31, 28) })
	assert.Panics(t, func() { RangeFullyVariable(1, 5, 2, 4) })
}

func TestCheckValid(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	rng := RangeOf(1, 12)
	got, err := rng.CheckValid(6, MonthOfYear)
	r.NoError(err)
	a.Equal(int64(6), got)

	_, err = rng.CheckValid(13, MonthOfYear)
	r.ErrorIs(err, ErrRange)
	r.EqualError(err, "invalid value: 13 for MonthOfYear (valid values 1 - 12)")

	n, err := rng.CheckValidInt(12, MonthOfYear)
	r.NoError(err)
	a.Equal(12, n)

	_, err = RangeOf(0, math.MaxInt64).CheckValidInt(5, NanoOfDay)
	r.ErrorIs(err, ErrIntRange)
}
