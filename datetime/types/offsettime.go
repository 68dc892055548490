package types

import (
	"fmt"

	"github.com/theory/datetime/datetime/field"
)

// OffsetTime is a time of day anchored within its day by a fixed UTC
// offset, such as 10:15:30+01:00.
type OffsetTime struct {
	time   LocalTime
	offset ZoneOffset
}

// OffsetTimeOf combines a local time with an offset.
func OffsetTimeOf(t LocalTime, offset ZoneOffset) OffsetTime {
	return OffsetTime{time: t, offset: offset}
}

// Time returns the local time portion.
func (ot OffsetTime) Time() LocalTime { return ot.time }

// Offset returns the UTC offset.
func (ot OffsetTime) Offset() ZoneOffset { return ot.offset }

// instantNano returns the time's nanosecond position relative to midnight
// UTC, the instant ordering key. It spans less than a day plus the offset
// bound in either direction, nowhere near int64.
func (ot OffsetTime) instantNano() int64 {
	return ot.time.NanoOfDay() - int64(ot.offset.TotalSeconds())*nanosPerSecond
}

// IsSupported implements [field.Accessor].
func (ot OffsetTime) IsSupported(f field.Field) bool {
	return f == field.OffsetSeconds || ot.time.IsSupported(f)
}

// GetLong implements [field.Accessor].
func (ot OffsetTime) GetLong(f field.Field) (int64, error) {
	if f == field.OffsetSeconds {
		return int64(ot.offset.TotalSeconds()), nil
	}
	return ot.time.GetLong(f)
}

// Range implements [field.Accessor].
func (ot OffsetTime) Range(f field.Field) (field.ValueRange, error) {
	if f == field.OffsetSeconds {
		return f.Range(), nil
	}
	return ot.time.Range(f)
}

// WithField implements [field.Adjustable]. Setting OffsetSeconds changes
// the offset and keeps the local time, so the instant shifts.
func (ot OffsetTime) WithField(f field.Field, v int64) (field.Adjustable, error) {
	if f == field.OffsetSeconds {
		iv, err := f.CheckValidIntValue(v)
		if err != nil {
			return nil, err
		}
		off, err := OffsetOfSeconds(iv)
		if err != nil {
			return nil, err
		}
		return OffsetTime{time: ot.time, offset: off}, nil
	}
	adj, err := ot.time.WithField(f, v)
	if err != nil {
		return nil, err
	}
	return OffsetTime{time: adj.(LocalTime), offset: ot.offset}, nil
}

// Plus implements [field.Adjustable]. The offset is unchanged; the local
// time wraps around midnight.
func (ot OffsetTime) Plus(amount int64, u field.Unit) (field.Adjustable, error) {
	adj, err := ot.time.Plus(amount, u)
	if err != nil {
		return nil, err
	}
	return OffsetTime{time: adj.(LocalTime), offset: ot.offset}, nil
}

// Compare orders by instant, breaking ties by local time so that equal
// instants with distinct offsets still order deterministically.
func (ot OffsetTime) Compare(other OffsetTime) int {
	a, b := ot.instantNano(), other.instantNano()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return ot.time.Compare(other.time)
}

// Equal returns true when ot and other have the same local time and offset.
// Use Compare to test for the same instant.
func (ot OffsetTime) Equal(other OffsetTime) bool {
	return ot.time.Equal(other.time) && ot.offset.Equal(other.offset)
}

// String returns the ISO-8601 representation, e.g. "10:15:30+01:00".
func (ot OffsetTime) String() string {
	return fmt.Sprintf("%s%s", ot.time, ot.offset)
}
