// Package field provides the field and unit model shared by every calendar
// system in this module.
//
// A [Field] is a single named calendrical quantity (year, hour-of-day, …)
// that knows its base and range units and its span of valid values. Fields
// read from and write to any date-time value through the [Accessor] and
// [Adjustable] capability interfaces, so the same field works across
// unrelated calendar systems. A [Unit] is a named duration granularity used
// for arithmetic and for field declarations.
package field

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported is returned when a field is not applicable to the
	// target type, e.g. asking a time-only value for its day of month. It
	// indicates a usage error, distinct from ErrRange.
	ErrUnsupported = errors.New("unsupported field")

	// ErrRange is returned when a value lies outside a field's valid range
	// for the given context. The message always names the field and the
	// rejected value.
	ErrRange = errors.New("invalid value")

	// ErrIntRange is returned when a field's valid range does not fit in a
	// 32-bit signed integer but an int result was requested.
	ErrIntRange = errors.New("range exceeds int")
)

// The supported span of proleptic years, shared by the ISO chronology and
// the year-bearing field ranges.
const (
	YearMin = -999_999_999
	YearMax = 999_999_999
)

// Nanoseconds and seconds per day, used by field ranges and the time values.
const (
	NanosPerDay   = 86_400_000_000_000
	SecondsPerDay = 86_400
)

// Field identifies a single calendrical quantity.
type Field int

//revive:disable:exported
const (
	NanoOfSecond    Field = iota // NanoOfSecond
	NanoOfDay                    // NanoOfDay
	MicroOfSecond                // MicroOfSecond
	MilliOfSecond                // MilliOfSecond
	SecondOfMinute               // SecondOfMinute
	SecondOfDay                  // SecondOfDay
	MinuteOfHour                 // MinuteOfHour
	MinuteOfDay                  // MinuteOfDay
	HourOfAmPm                   // HourOfAmPm
	ClockHourOfAmPm              // ClockHourOfAmPm
	HourOfDay                    // HourOfDay
	ClockHourOfDay               // ClockHourOfDay
	AmPmOfDay                    // AmPmOfDay
	DayOfWeek                    // DayOfWeek
	DayOfMonth                   // DayOfMonth
	DayOfYear                    // DayOfYear
	EpochDay                     // EpochDay
	MonthOfYear                  // MonthOfYear
	ProlepticMonth               // ProlepticMonth
	YearOfEra                    // YearOfEra
	Year                         // Year
	Era                          // Era
	OffsetSeconds                // OffsetSeconds
)

// fieldDef carries the static declaration of one field.
type fieldDef struct {
	name      string
	baseUnit  Unit
	rangeUnit Unit
	rng       ValueRange
}

// Epoch-day limits corresponding to YearMin-01-01 and YearMax-12-31 in the
// ISO chronology.
const (
	epochDayMin = -365_243_219_162
	epochDayMax = 365_241_780_471
)

// fieldDefs declares every field: its name, base unit, range unit, and
// static value range. Context-dependent ranges (day-of-month and friends)
// declare their outermost bounds here and are refined via RangeRefinedBy.
var fieldDefs = [...]fieldDef{
	NanoOfSecond:    {"NanoOfSecond", Nanos, Seconds, RangeOf(0, 999_999_999)},
	NanoOfDay:       {"NanoOfDay", Nanos, Days, RangeOf(0, NanosPerDay-1)},
	MicroOfSecond:   {"MicroOfSecond", Micros, Seconds, RangeOf(0, 999_999)},
	MilliOfSecond:   {"MilliOfSecond", Millis, Seconds, RangeOf(0, 999)},
	SecondOfMinute:  {"SecondOfMinute", Seconds, Minutes, RangeOf(0, 59)},
	SecondOfDay:     {"SecondOfDay", Seconds, Days, RangeOf(0, SecondsPerDay-1)},
	MinuteOfHour:    {"MinuteOfHour", Minutes, Hours, RangeOf(0, 59)},
	MinuteOfDay:     {"MinuteOfDay", Minutes, Days, RangeOf(0, 24*60-1)},
	HourOfAmPm:      {"HourOfAmPm", Hours, HalfDays, RangeOf(0, 11)},
	ClockHourOfAmPm: {"ClockHourOfAmPm", Hours, HalfDays, RangeOf(1, 12)},
	HourOfDay:       {"HourOfDay", Hours, Days, RangeOf(0, 23)},
	ClockHourOfDay:  {"ClockHourOfDay", Hours, Days, RangeOf(1, 24)},
	AmPmOfDay:       {"AmPmOfDay", HalfDays, Days, RangeOf(0, 1)},
	DayOfWeek:       {"DayOfWeek", Days, Weeks, RangeOf(1, 7)},
	DayOfMonth:      {"DayOfMonth", Days, Months, RangeOfVariable(1, 28, 31)},
	DayOfYear:       {"DayOfYear", Days, Years, RangeOfVariable(1, 365, 366)},
	EpochDay:        {"EpochDay", Days, Forever, RangeOf(epochDayMin, epochDayMax)},
	MonthOfYear:     {"MonthOfYear", Months, Years, RangeOf(1, 12)},
	ProlepticMonth:  {"ProlepticMonth", Months, Forever, RangeOf(YearMin*12, YearMax*12+11)},
	YearOfEra:       {"YearOfEra", Years, Eras, RangeOfVariable(1, YearMax, YearMax+1)},
	Year:            {"Year", Years, Forever, RangeOf(YearMin, YearMax)},
	Era:             {"Era", Eras, Forever, RangeFullyVariable(-1, 0, 1, 3)},
	OffsetSeconds:   {"OffsetSeconds", Seconds, Forever, RangeOf(-18*3_600, 18*3_600)},
}

// String returns the name of the field.
func (f Field) String() string {
	if f < 0 || int(f) >= len(fieldDefs) {
		return "Field(?)"
	}
	return fieldDefs[f].name
}

// BaseUnit returns the unit the field counts in, e.g. Days for DayOfMonth.
func (f Field) BaseUnit() Unit { return fieldDefs[f].baseUnit }

// RangeUnit returns the unit the field's count resets within, e.g. Months
// for DayOfMonth.
func (f Field) RangeUnit() Unit { return fieldDefs[f].rangeUnit }

// Range returns the field's static value range, spanning every context. Use
// RangeRefinedBy to narrow context-dependent ranges; IsRangeFixed reports
// whether refinement could narrow anything.
func (f Field) Range() ValueRange { return fieldDefs[f].rng }

// IsRangeFixed returns true when the field's range never depends on its
// target, letting callers fast-path the static Range.
func (f Field) IsRangeFixed() bool { return fieldDefs[f].rng.IsFixed() }

// IsDateBased returns true for fields that count whole days or larger
// within the date portion of a value.
func (f Field) IsDateBased() bool { return f >= DayOfWeek && f <= Era }

// IsTimeBased returns true for fields confined to the time-of-day portion
// of a value.
func (f Field) IsTimeBased() bool { return f <= AmPmOfDay }

// RangeRefinedBy returns the field's range in the context of acc, narrowing
// context-dependent bounds such as day-of-month's maximum. Fixed ranges are
// returned without consulting acc.
func (f Field) RangeRefinedBy(acc Accessor) (ValueRange, error) {
	if f.IsRangeFixed() {
		return f.Range(), nil
	}
	return acc.Range(f)
}

// GetFrom reads the field from acc, failing with ErrUnsupported when acc
// does not carry the field.
func (f Field) GetFrom(acc Accessor) (int64, error) {
	if !acc.IsSupported(f) {
		return 0, fmt.Errorf("%w: %v on %T", ErrUnsupported, f, acc)
	}
	return acc.GetLong(f)
}

// CheckValidValue returns v when it lies in the field's static range,
// ErrRange otherwise.
func (f Field) CheckValidValue(v int64) (int64, error) {
	return f.Range().CheckValid(v, f)
}

// CheckValidIntValue returns v as an int when it lies in the field's static
// range and the range fits an int32.
func (f Field) CheckValidIntValue(v int64) (int, error) {
	return f.Range().CheckValidInt(v, f)
}

// Accessor is the read side of the capability set every date-time value
// implements so fields can operate on it generically.
type Accessor interface {
	// IsSupported returns true if the value carries f.
	IsSupported(f Field) bool

	// GetLong returns the value of f, or ErrUnsupported.
	GetLong(f Field) (int64, error)

	// Range returns the span of valid values for f in the context of this
	// value, or ErrUnsupported.
	Range(f Field) (ValueRange, error)
}

// Adjustable is the write side: values that can produce adjusted copies of
// themselves field by field and unit by unit. Every method returns a new
// value; implementations are immutable.
type Adjustable interface {
	Accessor

	// WithField returns a copy of the value with f set to v. Fails with
	// ErrUnsupported when the value does not carry f and ErrRange when v is
	// invalid for f in this context.
	WithField(f Field, v int64) (Adjustable, error)

	// Plus returns a copy of the value advanced by amount of u.
	Plus(amount int64, u Unit) (Adjustable, error)
}
