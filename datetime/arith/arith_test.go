package arith

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		a, b int64
		exp  int64
		err  bool
	}{
		{name: "zero", a: 0, b: 0, exp: 0},
		{name: "pos_pos", a: 2, b: 3, exp: 5},
		{name: "pos_neg", a: 2, b: -3, exp: -1},
		{name: "max_plus_zero", a: math.MaxInt64, b: 0, exp: math.MaxInt64},
		{name: "max_plus_one", a: math.MaxInt64, b: 1, err: true},
		{name: "min_minus_one", a: math.MinInt64, b: -1, err: true},
		{name: "min_plus_max", a: math.MinInt64, b: math.MaxInt64, exp: -1},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Add(tc.a, tc.b)
			if tc.err {
				require.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestSub(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		a, b int64
		exp  int64
		err  bool
	}{
		{name: "zero", a: 0, b: 0, exp: 0},
		{name: "pos_pos", a: 2, b: 3, exp: -1},
		{name: "min_minus_zero", a: math.MinInt64, b: 0, exp: math.MinInt64},
		{name: "min_minus_one", a: math.MinInt64, b: 1, err: true},
		{name: "max_minus_neg", a: math.MaxInt64, b: -1, err: true},
		{name: "max_minus_max", a: math.MaxInt64, b: math.MaxInt64, exp: 0},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Sub(tc.a, tc.b)
			if tc.err {
				require.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestMul(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name string
		a, b int64
		exp  int64
		err  bool
	}{
		{name: "zero", a: math.MaxInt64, b: 0, exp: 0},
		{name: "identity", a: math.MinInt64, b: 1, exp: math.MinInt64},
		{name: "small", a: -7, b: 6, exp: -42},
		{name: "max_times_two", a: math.MaxInt64, b: 2, err: true},
		{name: "min_times_neg_one", a: math.MinInt64, b: -1, err: true},
		{name: "large_ok", a: math.MaxInt64 / 2, b: 2, exp: math.MaxInt64 - 1},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Mul(tc.a, tc.b)
			if tc.err {
				require.ErrorIs(t, err, ErrOverflow)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.exp, got)
		})
	}
}

func TestNeg(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	got, err := Neg(42)
	r.NoError(err)
	a.Equal(int64(-42), got)

	got, err = Neg(math.MaxInt64)
	r.NoError(err)
	a.Equal(int64(math.MinInt64+1), got)

	_, err = Neg(math.MinInt64)
	r.ErrorIs(err, ErrOverflow)
}

func TestToInt32(t *testing.T) {
	t.Parallel()
	a := assert.New(t)
	r := require.New(t)

	got, err := ToInt32(math.MaxInt32)
	r.NoError(err)
	a.Equal(math.MaxInt32, got)

	got, err = ToInt32(math.MinInt32)
	r.NoError(err)
	a.Equal(math.MinInt32, got)

	_, err = ToInt32(math.MaxInt32 + 1)
	r.ErrorIs(err, ErrOverflow)
	_, err = ToInt32(math.MinInt32 - 1)
	r.ErrorIs(err, ErrOverflow)
}

func TestFloorDivMod(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name     string
		a, b     int64
		div, mod int64
	}{
		{name: "exact", a: 10, b: 5, div: 2, mod: 0},
		{name: "pos", a: 7, b: 4, div: 1, mod: 3},
		{name: "neg_dividend", a: -7, b: 4, div: -2, mod: 1},
		{name: "neg_exact", a: -8, b: 4, div: -2, mod: 0},
		{name: "epoch_style", a: -719468, b: 146097, div: -5, mod: 11017},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.div, FloorDiv(tc.a, tc.b))
			assert.Equal(t, tc.mod, FloorMod(tc.a, tc.b))
		})
	}
}
