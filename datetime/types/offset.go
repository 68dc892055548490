package types

import (
	"fmt"

	"github.com/theory/datetime/datetime/field"
)

// UTC is the zero offset, rendered as "Z".
var UTC = ZoneOffset{}

// ZoneOffset is a fixed offset from UTC, such as +02:00, in whole seconds
// within ±18 hours.
type ZoneOffset struct {
	totalSeconds int
}

// OffsetOf returns the ZoneOffset for an hour, minute, and second component.
// Non-zero components must share a sign, minutes and seconds must stay
// within ±59, and the total must stay within ±18 hours.
func OffsetOf(hours, minutes, seconds int) (ZoneOffset, error) {
	if !sameSign(hours, minutes, seconds) {
		return ZoneOffset{}, fmt.Errorf(
			"%w: zone offset components %d:%d:%d differ in sign",
			field.ErrRange, hours, minutes, seconds,
		)
	}
	if minutes < -59 || minutes > 59 {
		return ZoneOffset{}, fmt.Errorf(
			"%w: zone offset minutes %d outside -59 - 59", field.ErrRange, minutes,
		)
	}
	if seconds < -59 || seconds > 59 {
		return ZoneOffset{}, fmt.Errorf(
			"%w: zone offset seconds %d outside -59 - 59", field.ErrRange, seconds,
		)
	}
	return OffsetOfSeconds(hours*3600 + minutes*60 + seconds)
}

// OffsetOfSeconds returns the ZoneOffset for a total second count within
// ±18 hours.
func OffsetOfSeconds(seconds int) (ZoneOffset, error) {
	if _, err := field.OffsetSeconds.CheckValidValue(int64(seconds)); err != nil {
		return ZoneOffset{}, err
	}
	return ZoneOffset{totalSeconds: seconds}, nil
}

// MustOffsetOf is like OffsetOf but panics on invalid input. For tests and
// constants.
func MustOffsetOf(hours, minutes, seconds int) ZoneOffset {
	o, err := OffsetOf(hours, minutes, seconds)
	if err != nil {
		panic(err)
	}
	return o
}

// sameSign returns true when no two non-zero components disagree in sign.
func sameSign(vals ...int) bool {
	sign := 0
	for _, v := range vals {
		switch {
		case v == 0:
		case v < 0:
			if sign > 0 {
				return false
			}
			sign = -1
		default:
			if sign < 0 {
				return false
			}
			sign = 1
		}
	}
	return true
}

// TotalSeconds returns the offset as a signed second count.
func (o ZoneOffset) TotalSeconds() int { return o.totalSeconds }

// IsSupported implements [field.Accessor].
func (ZoneOffset) IsSupported(f field.Field) bool { return f == field.OffsetSeconds }

// GetLong implements [field.Accessor].
func (o ZoneOffset) GetLong(f field.Field) (int64, error) {
	if f != field.OffsetSeconds {
		return 0, fmt.Errorf("%w: %v", field.ErrUnsupported, f)
	}
	return int64(o.totalSeconds), nil
}

// Range implements [field.Accessor].
func (o ZoneOffset) Range(f field.Field) (field.ValueRange, error) {
	if f != field.OffsetSeconds {
		return field.ValueRange{}, fmt.Errorf("%w: %v", field.ErrUnsupported, f)
	}
	return f.Range(), nil
}

// Compare orders offsets from largest (furthest ahead of UTC) to smallest,
// matching the ordering of the local times they produce for one instant.
func (o ZoneOffset) Compare(other ZoneOffset) int {
	switch {
	case o.totalSeconds > other.totalSeconds:
		return -1
	case o.totalSeconds < other.totalSeconds:
		return 1
	default:
		return 0
	}
}

// Equal returns true when o and other denote the same offset.
func (o ZoneOffset) Equal(other ZoneOffset) bool { return o == other }

// ID returns the canonical identifier: "Z" for UTC, otherwise
// ±HH:MM or ±HH:MM:SS.
func (o ZoneOffset) ID() string {
	if o.totalSeconds == 0 {
		return "Z"
	}
	abs := o.totalSeconds
	sign := "+"
	if abs < 0 {
		abs = -abs
		sign = "-"
	}
	if secs := abs % 60; secs != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, abs/3600, abs/60%60, secs)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, abs/3600, abs/60%60)
}

// String returns the same representation as ID.
func (o ZoneOffset) String() string { return o.ID() }
