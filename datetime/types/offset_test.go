package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/datetime/datetime/field"
)

func TestOffsetOf(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name                    string
		hours, minutes, seconds int
		total                   int
		id                      string
		err                     error
	}{
		{name: "utc", id: "Z"},
		{name: "plus_two", hours: 2, total: 7_200, id: "+02:00"},
		{name: "minus_five", hours: -5, total: -18_000, id: "-05:00"},
		{name: "india", hours: 5, minutes: 30, total: 19_800, id: "+05:30"},
		{name: "newfoundland", hours: -3, minutes: -30, total: -12_600, id: "-03:30"},
		{name: "with_seconds", hours: 1, minutes: 2, seconds: 3, total: 3_723, id: "+01:02:03"},
		{name: "max", hours: 18, total: 64_800, id: "+18:00"},
		{name: "too_big", hours: 19, err: field.ErrRange},
		{name: "mixed_sign", hours: 2, minutes: -30, err: field.ErrRange},
		{name: "bad_minutes", hours: 1, minutes: 60, err: field.ErrRange},
		{name: "bad_seconds", seconds: 60, err: field.ErrRange},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			o, err := OffsetOf(tc.hours, tc.minutes, tc.seconds)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.total, o.TotalSeconds())
			assert.Equal(t, tc.id, o.ID())
			assert.Equal(t, tc.id, o.String())
		})
	}
}

func TestOffsetOfSeconds(t *testing.T) {
	t.Parallel()

	o, err := OffsetOfSeconds(3_600)
	require.NoError(t, err)
	assert.Equal(t, MustOffsetOf(1, 0, 0), o)
	assert.True(t, o.Equal(MustOffsetOf(1, 0, 0)))

	_, err = OffsetOfSeconds(64_801)
	require.ErrorIs(t, err, field.ErrRange)

	assert.Panics(t, func() { MustOffsetOf(20, 0, 0) })
}

func TestZoneOffsetAccessor(t *testing.T) {
	t.Parallel()

	o := MustOffsetOf(2, 0, 0)
	assert.True(t, o.IsSupported(field.OffsetSeconds))
	assert.False(t, o.IsSupported(field.HourOfDay))

	got, err := o.GetLong(field.OffsetSeconds)
	require.NoError(t, err)
	assert.Equal(t, int64(7_200), got)

	_, err = o.GetLong(field.HourOfDay)
	require.ErrorIs(t, err, field.ErrUnsupported)

	rng, err := o.Range(field.OffsetSeconds)
	require.NoError(t, err)
	assert.Equal(t, int64(-64_800), rng.Min())
	assert.Equal(t, int64(64_800), rng.Max())
}

func TestZoneOffsetCompare(t *testing.T) {
	t.Parallel()

	// Offsets ahead of UTC sort first, mirroring the order of the local
	// times they produce at one instant.
	ahead := MustOffsetOf(2, 0, 0)
	behind := MustOffsetOf(-5, 0, 0)
	assert.Equal(t, -1, ahead.Compare(behind))
	assert.Equal(t, 1, behind.Compare(ahead))
	assert.Equal(t, 0, UTC.Compare(UTC))
}
