package types

import (
	"fmt"

	"github.com/theory/datetime/datetime/arith"
	"github.com/theory/datetime/datetime/field"
)

// LocalDateTime is a date with a time of day and no zone, such as
// 2008-06-30T10:15:30.
type LocalDateTime struct {
	date LocalDate
	time LocalTime
}

// DateTimeOf combines a date and a time.
func DateTimeOf(date LocalDate, time LocalTime) LocalDateTime {
	return LocalDateTime{date: date, time: time}
}

// Date returns the date portion.
func (dt LocalDateTime) Date() LocalDate { return dt.date }

// Time returns the time portion.
func (dt LocalDateTime) Time() LocalTime { return dt.time }

// IsSupported implements [field.Accessor].
func (dt LocalDateTime) IsSupported(f field.Field) bool {
	return dt.date.IsSupported(f) || dt.time.IsSupported(f)
}

// GetLong implements [field.Accessor].
func (dt LocalDateTime) GetLong(f field.Field) (int64, error) {
	if f.IsTimeBased() {
		return dt.time.GetLong(f)
	}
	return dt.date.GetLong(f)
}

// Range implements [field.Accessor].
func (dt LocalDateTime) Range(f field.Field) (field.ValueRange, error) {
	if f.IsTimeBased() {
		return dt.time.Range(f)
	}
	return dt.date.Range(f)
}

// WithField implements [field.Adjustable].
func (dt LocalDateTime) WithField(f field.Field, v int64) (field.Adjustable, error) {
	if f.IsTimeBased() {
		adj, err := dt.time.WithField(f, v)
		if err != nil {
			return nil, err
		}
		return LocalDateTime{date: dt.date, time: adj.(LocalTime)}, nil
	}
	adj, err := dt.date.WithField(f, v)
	if err != nil {
		return nil, err
	}
	return LocalDateTime{date: adj.(LocalDate), time: dt.time}, nil
}

// Plus implements [field.Adjustable]. Time-based additions carry whole days
// into the date, so adding 25 hours advances the date by one day.
func (dt LocalDateTime) Plus(amount int64, u field.Unit) (field.Adjustable, error) {
	switch u {
	case field.Nanos:
		return dt.plusWithCarry(amount, nanosPerDay, 1)
	case field.Micros:
		return dt.plusWithCarry(amount, microsPerDay, 1_000)
	case field.Millis:
		return dt.plusWithCarry(amount, millisPerDay, 1_000_000)
	case field.Seconds:
		return dt.plusWithCarry(amount, secondsPerDay, nanosPerSecond)
	case field.Minutes:
		return dt.plusWithCarry(amount, minutesPerDay, nanosPerMinute)
	case field.Hours:
		return dt.plusWithCarry(amount, 24, nanosPerHour)
	case field.HalfDays:
		return dt.plusWithCarry(amount, 2, 12*nanosPerHour)
	default:
		adj, err := dt.date.Plus(amount, u)
		if err != nil {
			return nil, err
		}
		return LocalDateTime{date: adj.(LocalDate), time: dt.time}, nil
	}
}

// plusWithCarry adds amount units of perDay-per-day size, each unitNanos
// nanoseconds, splitting the shift into whole days for the date and a
// remainder for the time. The remainder in nanos stays below a day, so the
// nano arithmetic cannot overflow.
func (dt LocalDateTime) plusWithCarry(amount, perDay, unitNanos int64) (LocalDateTime, error) {
	days := arith.FloorDiv(amount, perDay)
	nanos := dt.time.NanoOfDay() + arith.FloorMod(amount, perDay)*unitNanos
	days, err := arith.Add(days, arith.FloorDiv(nanos, nanosPerDay))
	if err != nil {
		return LocalDateTime{}, err
	}
	date, err := dt.date.PlusDays(days)
	if err != nil {
		return LocalDateTime{}, err
	}
	return LocalDateTime{
		date: date,
		time: timeFromNanoOfDay(arith.FloorMod(nanos, nanosPerDay)),
	}, nil
}

// Compare orders date-times chronologically.
func (dt LocalDateTime) Compare(other LocalDateTime) int {
	if c := dt.date.Compare(other.date); c != 0 {
		return c
	}
	return dt.time.Compare(other.time)
}

// Equal returns true when dt and other denote the same date-time.
func (dt LocalDateTime) Equal(other LocalDateTime) bool {
	return dt.date.Equal(other.date) && dt.time.Equal(other.time)
}

// String returns the ISO-8601 representation with a "T" separator, e.g.
// "2008-06-30T10:15:30".
func (dt LocalDateTime) String() string {
	return fmt.Sprintf("%sT%s", dt.date, dt.time)
}
