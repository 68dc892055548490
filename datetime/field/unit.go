package field

import (
	"math"

	"github.com/theory/datetime/datetime/arith"
)

// Unit represents a named duration granularity used for date and time
// arithmetic and for field base/range declarations.
type Unit int

//revive:disable:exported
const (
	Nanos     Unit = iota // Nanos
	Micros                // Micros
	Millis                // Millis
	Seconds               // Seconds
	Minutes               // Minutes
	Hours                 // Hours
	HalfDays              // HalfDays
	Days                  // Days
	Weeks                 // Weeks
	Months                // Months
	Years                 // Years
	Decades               // Decades
	Centuries             // Centuries
	Millennia             // Millennia
	Eras                  // Eras
	Forever               // Forever
)

// unitNames indexes the name of each unit for String.
var unitNames = [...]string{
	Nanos:     "Nanos",
	Micros:    "Micros",
	Millis:    "Millis",
	Seconds:   "Seconds",
	Minutes:   "Minutes",
	Hours:     "Hours",
	HalfDays:  "HalfDays",
	Days:      "Days",
	Weeks:     "Weeks",
	Months:    "Months",
	Years:     "Years",
	Decades:   "Decades",
	Centuries: "Centuries",
	Millennia: "Millennia",
	Eras:      "Eras",
	Forever:   "Forever",
}

// String returns the name of the unit.
func (u Unit) String() string {
	if u < 0 || int(u) >= len(unitNames) {
		return "Unit(?)"
	}
	return unitNames[u]
}

// Seconds per unit for estimated durations. A year is 365.2425 days per the
// Gregorian mean; an era is estimated at one billion years.
const (
	secondsPerDay  = 86_400
	secondsPerYear = 31_556_952
)

// unitSeconds indexes the estimated duration of each unit in whole seconds.
var unitSeconds = [...]int64{
	Nanos:     0,
	Micros:    0,
	Millis:    0,
	Seconds:   1,
	Minutes:   60,
	Hours:     3_600,
	HalfDays:  43_200,
	Days:      secondsPerDay,
	Weeks:     7 * secondsPerDay,
	Months:    secondsPerYear / 12,
	Years:     secondsPerYear,
	Decades:   10 * secondsPerYear,
	Centuries: 100 * secondsPerYear,
	Millennia: 1_000 * secondsPerYear,
	Eras:      1_000_000_000 * secondsPerYear,
	Forever:   math.MaxInt64,
}

// unitNanos indexes the sub-second nanosecond remainder of each unit.
var unitNanos = [...]int{
	Nanos:   1,
	Micros:  1_000,
	Millis:  1_000_000,
	Forever: 999_999_999,
}

// Estimated returns the estimated duration of one unit as whole seconds plus
// a nanosecond remainder. Durations of date-based units are estimates; see
// IsEstimated.
func (u Unit) Estimated() (secs int64, nanos int) {
	var n int
	if int(u) < len(unitNanos) {
		n = unitNanos[u]
	}
	return unitSeconds[u], n
}

// IsEstimated returns true when the unit's duration varies with the
// calendar: days vary with zone transitions and months and years with the
// chronology, so every date-based unit is estimated.
func (u Unit) IsEstimated() bool { return u >= Days }

// IsDateBased returns true for units measured in whole days, excluding
// Forever.
func (u Unit) IsDateBased() bool { return u >= Days && u != Forever }

// IsTimeBased returns true for units shorter than a day.
func (u Unit) IsTimeBased() bool { return u < Days }

// AddTo adds amount of u to t, delegating to the target's own arithmetic.
// The target reports ErrUnsupported when it cannot carry the unit.
func (u Unit) AddTo(t Adjustable, amount int64) (Adjustable, error) {
	return t.Plus(amount, u)
}

// SubtractFrom subtracts amount of u from t. Fails with
// [arith.ErrOverflow] when amount is the minimum int64.
func (u Unit) SubtractFrom(t Adjustable, amount int64) (Adjustable, error) {
	neg, err := arith.Neg(amount)
	if err != nil {
		return nil, err
	}
	return t.Plus(neg, u)
}
