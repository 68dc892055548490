package chrono

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		name    string
		calType string
		chrono  Chronology
	}{
		{"Hijrah", "islamicc", Hijrah},
		{"ISO", "iso8601", ISO},
		{"Japanese", "japanese", Japanese},
		{"Minguo", "roc", Minguo},
		{"ThaiBuddhist", "buddhist", ThaiBuddhist},
	} {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			a.Equal(tc.name, tc.chrono.Name())
			a.Equal(tc.calType, tc.chrono.CalendarType())

			byName, err := Of(tc.name)
			r.NoError(err)
			a.Same(tc.chrono, byName)

			byType, err := OfCalendarType(tc.calType)
			r.NoError(err)
			a.Same(tc.chrono, byType)
		})
	}
}

func TestRegistryUnknown(t *testing.T) {
	t.Parallel()
	r := require.New(t)

	_, err := Of("Pataphysical")
	r.ErrorIs(err, ErrChronology)
	r.EqualError(err, `chronology: unknown calendar "Pataphysical"`)

	_, err = OfCalendarType("pataphysical")
	r.ErrorIs(err, ErrChronology)
}

func TestAll(t *testing.T) {
	t.Parallel()
	a := assert.New(t)

	all := All()
	a.Len(all, 5)
	// Ordered by name.
	names := make([]string, len(all))
	for i, c := range all {
		names[i] = c.Name()
	}
	a.Equal([]string{"Hijrah", "ISO", "Japanese", "Minguo", "ThaiBuddhist"}, names)
}

func TestEras(t *testing.T) {
	t.Parallel()

	for _, tc := range []struct {
		chrono Chronology
		names  []string
	}{
		{ISO, []string{"BCE", "CE"}},
		{Hijrah, []string{"AH"}},
		{Minguo, []string{"BEFORE_ROC", "ROC"}},
		{ThaiBuddhist, []string{"BEFORE_BE", "BE"}},
		{Japanese, []string{"Meiji", "Taisho", "Showa", "Heisei", "Reiwa"}},
	} {
		tc := tc
		t.Run(tc.chrono.Name(), func(t *testing.T) {
			t.Parallel()
			a := assert.New(t)
			r := require.New(t)

			eras := tc.chrono.Eras()
			r.Len(eras, len(tc.names))
			for i, era := range eras {
				a.Equal(tc.names[i], era.Name)
				a.Equal(tc.names[i], era.String())
				got, err := tc.chrono.EraOf(era.Value)
				r.NoError(err)
				a.Equal(era, got)
			}

			_, err := tc.chrono.EraOf(99)
			r.ErrorIs(err, ErrChronology)
		})
	}
}
