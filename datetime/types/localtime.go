package types

import (
	"fmt"
	"strings"

	"github.com/theory/datetime/datetime/arith"
	"github.com/theory/datetime/datetime/field"
)

// Time unit sizes in nanoseconds.
const (
	nanosPerSecond = int64(1_000_000_000)
	nanosPerMinute = 60 * nanosPerSecond
	nanosPerHour   = 60 * nanosPerMinute
	nanosPerDay    = 24 * nanosPerHour

	microsPerDay  = nanosPerDay / 1_000
	millisPerDay  = nanosPerDay / 1_000_000
	secondsPerDay = int64(24 * 60 * 60)
	minutesPerDay = int64(24 * 60)
)

// Midnight is the start of the day, 00:00.
var Midnight = LocalTime{}

// LocalTime is a time of day without a date or zone, such as 10:15:30, with
// nanosecond precision.
type LocalTime struct {
	hour, minute, second, nano int
}

// TimeOf returns the LocalTime for an hour, minute, second, and nanosecond,
// each validated against its range.
func TimeOf(hour, minute, second, nano int) (LocalTime, error) {
	if _, err := field.HourOfDay.CheckValidValue(int64(hour)); err != nil {
		return LocalTime{}, err
	}
	if _, err := field.MinuteOfHour.CheckValidValue(int64(minute)); err != nil {
		return LocalTime{}, err
	}
	if _, err := field.SecondOfMinute.CheckValidValue(int64(second)); err != nil {
		return LocalTime{}, err
	}
	if _, err := field.NanoOfSecond.CheckValidValue(int64(nano)); err != nil {
		return LocalTime{}, err
	}
	return LocalTime{hour: hour, minute: minute, second: second, nano: nano}, nil
}

// MustTimeOf is like TimeOf but panics on invalid input. For tests and
// constants.
func MustTimeOf(hour, minute, second, nano int) LocalTime {
	t, err := TimeOf(hour, minute, second, nano)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfNanoOfDay returns the LocalTime at a nanosecond offset from
// midnight.
func TimeOfNanoOfDay(nanoOfDay int64) (LocalTime, error) {
	if _, err := field.NanoOfDay.CheckValidValue(nanoOfDay); err != nil {
		return LocalTime{}, err
	}
	return timeFromNanoOfDay(nanoOfDay), nil
}

// TimeOfSecondOfDay returns the LocalTime at a whole-second offset from
// midnight.
func TimeOfSecondOfDay(secondOfDay int64) (LocalTime, error) {
	if _, err := field.SecondOfDay.CheckValidValue(secondOfDay); err != nil {
		return LocalTime{}, err
	}
	return timeFromNanoOfDay(secondOfDay * nanosPerSecond), nil
}

// timeFromNanoOfDay splits a valid nano-of-day into components.
func timeFromNanoOfDay(nod int64) LocalTime {
	hour := nod / nanosPerHour
	nod -= hour * nanosPerHour
	minute := nod / nanosPerMinute
	nod -= minute * nanosPerMinute
	second := nod / nanosPerSecond
	nod -= second * nanosPerSecond
	return LocalTime{hour: int(hour), minute: int(minute), second: int(second), nano: int(nod)}
}

// Hour returns the hour of day, 0-23.
func (t LocalTime) Hour() int { return t.hour }

// Minute returns the minute of hour, 0-59.
func (t LocalTime) Minute() int { return t.minute }

// Second returns the second of minute, 0-59.
func (t LocalTime) Second() int { return t.second }

// Nano returns the nanosecond of second, 0-999,999,999.
func (t LocalTime) Nano() int { return t.nano }

// NanoOfDay returns the nanosecond offset from midnight.
func (t LocalTime) NanoOfDay() int64 {
	return int64(t.hour)*nanosPerHour + int64(t.minute)*nanosPerMinute +
		int64(t.second)*nanosPerSecond + int64(t.nano)
}

// SecondOfDay returns the whole-second offset from midnight.
func (t LocalTime) SecondOfDay() int64 {
	return int64(t.hour)*3600 + int64(t.minute)*60 + int64(t.second)
}

// IsSupported implements [field.Accessor].
func (LocalTime) IsSupported(f field.Field) bool { return f.IsTimeBased() }

// GetLong implements [field.Accessor].
func (t LocalTime) GetLong(f field.Field) (int64, error) {
	switch f {
	case field.NanoOfSecond:
		return int64(t.nano), nil
	case field.NanoOfDay:
		return t.NanoOfDay(), nil
	case field.MicroOfSecond:
		return int64(t.nano) / 1_000, nil
	case field.MilliOfSecond:
		return int64(t.nano) / 1_000_000, nil
	case field.SecondOfMinute:
		return int64(t.second), nil
	case field.SecondOfDay:
		return t.SecondOfDay(), nil
	case field.MinuteOfHour:
		return int64(t.minute), nil
	case field.MinuteOfDay:
		return int64(t.hour)*60 + int64(t.minute), nil
	case field.HourOfAmPm:
		return int64(t.hour % 12), nil
	case field.ClockHourOfAmPm:
		h := t.hour % 12
		if h == 0 {
			h = 12
		}
		return int64(h), nil
	case field.HourOfDay:
		return int64(t.hour), nil
	case field.ClockHourOfDay:
		if t.hour == 0 {
			return 24, nil
		}
		return int64(t.hour), nil
	case field.AmPmOfDay:
		return int64(t.hour / 12), nil
	default:
		return 0, fmt.Errorf("%w: %v", field.ErrUnsupported, f)
	}
}

// Range implements [field.Accessor]. Every time-based range is fixed, so
// this never narrows beyond the static range.
func (t LocalTime) Range(f field.Field) (field.ValueRange, error) {
	if !t.IsSupported(f) {
		return field.ValueRange{}, fmt.Errorf("%w: %v", field.ErrUnsupported, f)
	}
	return f.Range(), nil
}

// WithField implements [field.Adjustable].
func (t LocalTime) WithField(f field.Field, v int64) (field.Adjustable, error) {
	if !t.IsSupported(f) {
		return nil, fmt.Errorf("%w: %v", field.ErrUnsupported, f)
	}
	if _, err := f.CheckValidValue(v); err != nil {
		return nil, err
	}
	switch f {
	case field.NanoOfSecond:
		return LocalTime{hour: t.hour, minute: t.minute, second: t.second, nano: int(v)}, nil
	case field.NanoOfDay:
		return timeFromNanoOfDay(v), nil
	case field.MicroOfSecond:
		return t.WithField(field.NanoOfSecond, v*1_000)
	case field.MilliOfSecond:
		return t.WithField(field.NanoOfSecond, v*1_000_000)
	case field.SecondOfMinute:
		return LocalTime{hour: t.hour, minute: t.minute, second: int(v), nano: t.nano}, nil
	case field.SecondOfDay:
		return t.plusNanos((v - t.SecondOfDay()) * nanosPerSecond), nil
	case field.MinuteOfHour:
		return LocalTime{hour: t.hour, minute: int(v), second: t.second, nano: t.nano}, nil
	case field.MinuteOfDay:
		cur := int64(t.hour)*60 + int64(t.minute)
		return t.plusNanos((v - cur) * nanosPerMinute), nil
	case field.HourOfAmPm:
		return t.plusNanos((v - int64(t.hour%12)) * nanosPerHour), nil
	case field.ClockHourOfAmPm:
		if v == 12 {
			v = 0
		}
		return t.plusNanos((v - int64(t.hour%12)) * nanosPerHour), nil
	case field.HourOfDay:
		return LocalTime{hour: int(v), minute: t.minute, second: t.second, nano: t.nano}, nil
	case field.ClockHourOfDay:
		if v == 24 {
			v = 0
		}
		return LocalTime{hour: int(v), minute: t.minute, second: t.second, nano: t.nano}, nil
	case field.AmPmOfDay:
		return t.plusNanos((v - int64(t.hour/12)) * 12 * nanosPerHour), nil
	default:
		return nil, fmt.Errorf("%w: %v", field.ErrUnsupported, f)
	}
}

// Plus implements [field.Adjustable]. The time wraps around midnight, so
// adding never overflows.
func (t LocalTime) Plus(amount int64, u field.Unit) (field.Adjustable, error) {
	switch u {
	case field.Nanos:
		return t.plusNanos(amount), nil
	case field.Micros:
		return t.plusNanos((amount % microsPerDay) * 1_000), nil
	case field.Millis:
		return t.plusNanos((amount % millisPerDay) * 1_000_000), nil
	case field.Seconds:
		return t.plusNanos((amount % secondsPerDay) * nanosPerSecond), nil
	case field.Minutes:
		return t.plusNanos((amount % minutesPerDay) * nanosPerMinute), nil
	case field.Hours:
		return t.plusNanos((amount % 24) * nanosPerHour), nil
	case field.HalfDays:
		return t.plusNanos((amount % 2) * 12 * nanosPerHour), nil
	default:
		return nil, fmt.Errorf("%w: %v", field.ErrUnsupported, u)
	}
}

// PlusHours returns the time amount hours later, wrapping around midnight.
func (t LocalTime) PlusHours(amount int64) LocalTime {
	return t.plusNanos((amount % 24) * nanosPerHour)
}

// PlusMinutes returns the time amount minutes later, wrapping around
// midnight.
func (t LocalTime) PlusMinutes(amount int64) LocalTime {
	return t.plusNanos((amount % minutesPerDay) * nanosPerMinute)
}

// PlusSeconds returns the time amount seconds later, wrapping around
// midnight.
func (t LocalTime) PlusSeconds(amount int64) LocalTime {
	return t.plusNanos((amount % secondsPerDay) * nanosPerSecond)
}

// PlusNanos returns the time amount nanoseconds later, wrapping around
// midnight.
func (t LocalTime) PlusNanos(amount int64) LocalTime {
	return t.plusNanos(amount)
}

// plusNanos shifts the time by nanos, wrapping around midnight. The caller
// must keep |nanos| < 2*nanosPerDay after reduction so the addition cannot
// overflow.
func (t LocalTime) plusNanos(nanos int64) LocalTime {
	nod := arith.FloorMod(t.NanoOfDay()+arith.FloorMod(nanos, nanosPerDay), nanosPerDay)
	return timeFromNanoOfDay(nod)
}

// Compare orders t and other by position in the day.
func (t LocalTime) Compare(other LocalTime) int {
	a, b := t.NanoOfDay(), other.NanoOfDay()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Equal returns true when t and other denote the same time of day.
func (t LocalTime) Equal(other LocalTime) bool { return t == other }

// String returns the ISO-8601 representation, e.g. "10:15:30". Seconds are
// omitted when zero along with the fraction; the fraction is trimmed to
// three, six, or nine digits.
func (t LocalTime) String() string {
	buf := new(strings.Builder)
	fmt.Fprintf(buf, "%02d:%02d", t.hour, t.minute)
	if t.second > 0 || t.nano > 0 {
		fmt.Fprintf(buf, ":%02d", t.second)
		switch {
		case t.nano == 0:
		case t.nano%1_000_000 == 0:
			fmt.Fprintf(buf, ".%03d", t.nano/1_000_000)
		case t.nano%1_000 == 0:
			fmt.Fprintf(buf, ".%06d", t.nano/1_000)
		default:
			fmt.Fprintf(buf, ".%09d", t.nano)
		}
	}
	return buf.String()
}
