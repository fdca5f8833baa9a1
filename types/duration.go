package types

import (
	"encoding/json"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
	"time"
)

// TimeUnit is the unit a duration is displayed and entered in.
type TimeUnit string

const (
	UnitSeconds TimeUnit = "seconds"
	UnitMinutes TimeUnit = "minutes"
	UnitHours   TimeUnit = "hours"
	UnitDays    TimeUnit = "days"
)

// MaxDurationSeconds is the largest number of whole seconds a Duration can hold.
const MaxDurationSeconds = uint64(math.MaxInt64 / int64(time.Second))

// TimeUnits lists the supported units from smallest to largest.
var TimeUnits = []TimeUnit{UnitSeconds, UnitMinutes, UnitHours, UnitDays}

// Seconds returns the number of seconds in one unit. Unknown units return 0.
func (u TimeUnit) Seconds() uint64 {
	switch u {
	case UnitSeconds:
		return 1
	case UnitMinutes:
		return 60
	case UnitHours:
		return 60 * 60
	case UnitDays:
		return 24 * 60 * 60
	default:
		return 0
	}
}

// Validate checks the unit is one of TimeUnits.
func (u TimeUnit) Validate() error {
	if u.Seconds() == 0 {
		return fmt.Errorf("invalid time unit: %q", string(u))
	}

	return nil
}

// ToSeconds converts an amount expressed in the unit into seconds.
func (u TimeUnit) ToSeconds(amount uint64) (uint64, error) {
	if err := u.Validate(); err != nil {
		return 0, err
	}

	hi, seconds := bits.Mul64(amount, u.Seconds())
	if hi != 0 {
		return 0, fmt.Errorf("%d %s overflows uint64 seconds", amount, u)
	}

	return seconds, nil
}

// FromSeconds converts seconds into the unit, truncating any remainder.
func (u TimeUnit) FromSeconds(seconds uint64) uint64 {
	if u.Seconds() == 0 {
		return 0
	}

	return seconds / u.Seconds()
}

// Duration wraps time.Duration with support for JSON encoding and day suffixes.
type Duration struct {
	time.Duration
}

// NewDuration wraps a time.Duration with a Duration.
func NewDuration(d time.Duration) Duration {
	return Duration{Duration: d}
}

// NewDurationFromSeconds builds a Duration from a number of seconds. Values above
// MaxDurationSeconds are clamped.
func NewDurationFromSeconds(seconds uint64) Duration {
	if seconds > MaxDurationSeconds {
		seconds = MaxDurationSeconds
	}

	return NewDuration(time.Duration(seconds) * time.Second) //nolint:gosec // bounded above
}

// ParseDuration parses a duration string in the time.Duration format. A trailing "d" is
// accepted as a number of whole days ("7d").
func ParseDuration(s string) (Duration, error) {
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.ParseUint(days, 10, 32)
		if err != nil {
			return Duration{}, fmt.Errorf("invalid day duration %q: %w", s, err)
		}
		seconds, err := UnitDays.ToSeconds(n)
		if err != nil {
			return Duration{}, fmt.Errorf("invalid day duration %q: %w", s, err)
		}
		if seconds > MaxDurationSeconds {
			return Duration{}, fmt.Errorf("invalid day duration %q: exceeds %d seconds", s, MaxDurationSeconds)
		}

		return NewDurationFromSeconds(seconds), nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return Duration{}, err
	}

	return NewDuration(d), nil
}

// MustParseDuration parses a duration string in the time.Duration format.
// Panics if the string is invalid.
//
// Useful for tests, but should be avoided in production code.
func MustParseDuration(s string) Duration {
	d, err := ParseDuration(s)
	if err != nil {
		panic(err)
	}

	return d
}

// Seconds returns the whole number of seconds in the duration. Negative durations return 0.
func (d Duration) Seconds() uint64 {
	if d.Duration < 0 {
		return 0
	}

	return uint64(d.Duration / time.Second)
}

// String returns a string representing the duration in the form "72h3m0.5s".
func (d Duration) String() string {
	return d.Duration.String()
}

// MarshalJSON marshals the duration into JSON bytes and implements the json.Marshaler interface.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON unmarshals the duration from JSON bytes and implements the json.Unmarshaler
// interface.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case string:
		parsed, err := ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed.Duration

		return nil
	default:
		return fmt.Errorf("invalid duration type: %T", v)
	}
}
