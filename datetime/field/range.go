package field

import (
	"fmt"
	"math"
)

// ValueRange expresses the span of valid values for a field. Both ends of
// the range may themselves vary: day-of-month, for example, has a smallest
// maximum of 28 and a largest maximum of 31, while a context that knows the
// month and year can narrow the range to a single maximum.
type ValueRange struct {
	minSmallest int64
	minLargest  int64
	maxSmallest int64
	maxLargest  int64
}

// RangeOf returns a fixed ValueRange spanning [min, max]. Panics if min >
// max, since ranges are built from compile-time constants.
func RangeOf(min, max int64) ValueRange {
	return RangeFullyVariable(min, min, max, max)
}

// RangeOfVariable returns a ValueRange with a fixed minimum and a variable
// maximum spanning [maxSmallest, maxLargest].
func RangeOfVariable(min, maxSmallest, maxLargest int64) ValueRange {
	return RangeFullyVariable(min, min, maxSmallest, maxLargest)
}

// RangeFullyVariable returns a ValueRange where both the minimum and maximum
// vary. Panics when the bounds are not ordered.
func RangeFullyVariable(minSmallest, minLargest, maxSmallest, maxLargest int64) ValueRange {
	if minSmallest > minLargest || maxSmallest > maxLargest || minLargest > maxLargest {
		panic(fmt.Sprintf(
			"invalid value range %d/%d - %d/%d",
			minSmallest, minLargest, maxSmallest, maxLargest,
		))
	}
	return ValueRange{
		minSmallest: minSmallest,
		minLargest:  minLargest,
		maxSmallest: maxSmallest,
		maxLargest:  maxLargest,
	}
}

// Min returns the smallest possible minimum value.
func (vr ValueRange) Min() int64 { return vr.minSmallest }

// MinLargest returns the largest possible minimum value.
func (vr ValueRange) MinLargest() int64 { return vr.minLargest }

// MaxSmallest returns the smallest possible maximum value.
func (vr ValueRange) MaxSmallest() int64 { return vr.maxSmallest }

// Max returns the largest possible maximum value.
func (vr ValueRange) Max() int64 { return vr.maxLargest }

// IsFixed returns true when both ends of the range are invariant.
func (vr ValueRange) IsFixed() bool {
	return vr.minSmallest == vr.minLargest && vr.maxSmallest == vr.maxLargest
}

// IsIntValue returns true when every valid value fits in a 32-bit signed
// integer. Callers requiring an int result must check this before narrowing.
func (vr ValueRange) IsIntValue() bool {
	return vr.minSmallest >= math.MinInt32 && vr.maxLargest <= math.MaxInt32
}

// Contains returns true if v lies within the outermost bounds of the range.
func (vr ValueRange) Contains(v int64) bool {
	return v >= vr.minSmallest && v <= vr.maxLargest
}

// CheckValid returns v if the range contains it; otherwise it returns an
// ErrRange error naming f and the rejected value.
func (vr ValueRange) CheckValid(v int64, f Field) (int64, error) {
	if !vr.Contains(v) {
		return 0, fmt.Errorf(
			"%w: %d for %v (valid values %v)", ErrRange, v, f, vr,
		)
	}
	return v, nil
}

// CheckValidInt returns v as an int if the range contains it and the range
// fits in an int32. Returns ErrIntRange when the range itself is too wide,
// ErrRange when v is out of range.
func (vr ValueRange) CheckValidInt(v int64, f Field) (int, error) {
	if !vr.IsIntValue() {
		return 0, fmt.Errorf("%w: %v does not fit in an int", ErrIntRange, f)
	}
	if _, err := vr.CheckValid(v, f); err != nil {
		return 0, err
	}
	return int(v), nil
}

// String returns "min - max", with slash-separated pairs for variable ends,
// e.g. "1 - 28/31" for day-of-month.
func (vr ValueRange) String() string {
	buf := make([]byte, 0, 24)
	buf = appendInt(buf, vr.minSmallest)
	if vr.minSmallest != vr.minLargest {
		buf = append(buf, '/')
		buf = appendInt(buf, vr.minLargest)
	}
	buf = append(buf, " - "...)
	buf = appendInt(buf, vr.maxSmallest)
	if vr.maxSmallest != vr.maxLargest {
		buf = append(buf, '/')
		buf = appendInt(buf, vr.maxLargest)
	}
	return string(buf)
}

func appendInt(buf []byte, v int64) []byte {
	return fmt.Appendf(buf, "%d", v)
}
