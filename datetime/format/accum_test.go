package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theory/datetime/datetime/chrono"
	"github.com/theory/datetime/datetime/field"
)

func TestFieldValuesPut(t *testing.T) {
	t.Parallel()

	fv := NewFieldValues()
	require.NoError(t, fv.Put(field.Year, 2008))
	require.NoError(t, fv.Put(field.MonthOfYear, 6))

	// Same value again is a no-op.
	require.NoError(t, fv.Put(field.Year, 2008))
	assert.Equal(t, 2, fv.Len())

	// A different value is a conflict, never an overwrite.
	err := fv.Put(field.Year, 2009)
	require.ErrorIs(t, err, ErrParse)
	assert.ErrorContains(t, err, "Year")
	got, ok := fv.Get(field.Year)
	assert.True(t, ok)
	assert.Equal(t, int64(2008), got)

	assert.True(t, fv.Has(field.Year, field.MonthOfYear))
	assert.False(t, fv.Has(field.Year, field.DayOfMonth))
	assert.Equal(t, []field.Field{field.Year, field.MonthOfYear}, fv.Fields())
}

func TestFieldValuesSnapshot(t *testing.T) {
	t.Parallel()

	fv := NewFieldValues()
	require.NoError(t, fv.Put(field.Year, 2008))

	mark := fv.Snapshot()
	require.NoError(t, fv.Put(field.MonthOfYear, 6))
	require.NoError(t, fv.Put(field.DayOfMonth, 30))
	assert.Equal(t, 3, fv.Len())

	fv.RestoreTo(mark)
	assert.Equal(t, 1, fv.Len())
	assert.True(t, fv.Has(field.Year))
	assert.False(t, fv.Has(field.MonthOfYear))

	// Nested snapshots restore independently.
	outer := fv.Snapshot()
	require.NoError(t, fv.Put(field.MonthOfYear, 6))
	inner := fv.Snapshot()
	require.NoError(t, fv.Put(field.DayOfMonth, 30))
	fv.RestoreTo(inner)
	assert.True(t, fv.Has(field.MonthOfYear))
	assert.False(t, fv.Has(field.DayOfMonth))
	fv.RestoreTo(outer)
	assert.Equal(t, 1, fv.Len())
}

func TestFieldValuesChronology(t *testing.T) {
	t.Parallel()

	fv := NewFieldValues()
	assert.Nil(t, fv.Chronology())
	fv.SetChronology(chrono.Minguo)
	assert.Equal(t, chrono.Minguo, fv.Chronology())
}
