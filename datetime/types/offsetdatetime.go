package types

import (
	"fmt"

	"github.com/theory/datetime/datetime/field"
)

// OffsetDateTime is a date-time anchored to an instant by a fixed UTC
// offset, such as 2008-06-30T10:15:30+02:00.
type OffsetDateTime struct {
	dateTime LocalDateTime
	offset   ZoneOffset
}

// OffsetDateTimeOf combines a local date-time with an offset.
func OffsetDateTimeOf(dateTime LocalDateTime, offset ZoneOffset) OffsetDateTime {
	return OffsetDateTime{dateTime: dateTime, offset: offset}
}

// DateTime returns the local date-time portion.
func (odt OffsetDateTime) DateTime() LocalDateTime { return odt.dateTime }

// Offset returns the UTC offset.
func (odt OffsetDateTime) Offset() ZoneOffset { return odt.offset }

// EpochSecond returns the instant as seconds from 1970-01-01T00:00:00Z.
func (odt OffsetDateTime) EpochSecond() int64 {
	return odt.dateTime.Date().EpochDay()*secondsPerDay +
		odt.dateTime.Time().SecondOfDay() -
		int64(odt.offset.TotalSeconds())
}

// IsSupported implements [field.Accessor].
func (odt OffsetDateTime) IsSupported(f field.Field) bool {
	return f == field.OffsetSeconds || odt.dateTime.IsSupported(f)
}

// GetLong implements [field.Accessor].
func (odt OffsetDateTime) GetLong(f field.Field) (int64, error) {
	if f == field.OffsetSeconds {
		return int64(odt.offset.TotalSeconds()), nil
	}
	return odt.dateTime.GetLong(f)
}

// Range implements [field.Accessor].
func (odt OffsetDateTime) Range(f field.Field) (field.ValueRange, error) {
	if f == field.OffsetSeconds {
		return f.Range(), nil
	}
	return odt.dateTime.Range(f)
}

// WithField implements [field.Adjustable]. Setting OffsetSeconds changes the
// offset and keeps the local date-time, so the instant shifts.
func (odt OffsetDateTime) WithField(f field.Field, v int64) (field.Adjustable, error) {
	if f == field.OffsetSeconds {
		iv, err := f.CheckValidIntValue(v)
		if err != nil {
			return nil, err
		}
		off, err := OffsetOfSeconds(iv)
		if err != nil {
			return nil, err
		}
		return OffsetDateTime{dateTime: odt.dateTime, offset: off}, nil
	}
	adj, err := odt.dateTime.WithField(f, v)
	if err != nil {
		return nil, err
	}
	return OffsetDateTime{dateTime: adj.(LocalDateTime), offset: odt.offset}, nil
}

// Plus implements [field.Adjustable]. The offset is unchanged; the local
// date-time advances.
func (odt OffsetDateTime) Plus(amount int64, u field.Unit) (field.Adjustable, error) {
	adj, err := odt.dateTime.Plus(amount, u)
	if err != nil {
		return nil, err
	}
	return OffsetDateTime{dateTime: adj.(LocalDateTime), offset: odt.offset}, nil
}

// Compare orders by instant, breaking ties by local date-time so that equal
// instants with distinct offsets still order deterministically.
func (odt OffsetDateTime) Compare(other OffsetDateTime) int {
	a, b := odt.EpochSecond(), other.EpochSecond()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	if c := odt.dateTime.Time().Nano() - other.dateTime.Time().Nano(); c != 0 {
		if c < 0 {
			return -1
		}
		return 1
	}
	return odt.dateTime.Compare(other.dateTime)
}

// Equal returns true when odt and other have the same local date-time and
// offset. Use Compare to test for the same instant.
func (odt OffsetDateTime) Equal(other OffsetDateTime) bool {
	return odt.dateTime.Equal(other.dateTime) && odt.offset.Equal(other.offset)
}

// String returns the ISO-8601 representation, e.g.
// "2008-06-30T10:15:30+02:00".
func (odt OffsetDateTime) String() string {
	return fmt.Sprintf("%s%s", odt.dateTime, odt.offset)
}
