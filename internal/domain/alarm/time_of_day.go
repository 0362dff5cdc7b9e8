package alarm

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// TimeOfDay is a wall-clock time with second precision.
// The zero value is midnight.
type TimeOfDay struct {
	hour   int
	minute int
	second int
}

// Layout is the only accepted textual representation of a TimeOfDay.
const Layout = "HH:MM:SS"

var (
	// ErrInvalidTimeFormat is returned when input is not a valid HH:MM:SS string.
	ErrInvalidTimeFormat = errors.New("invalid time format, expected " + Layout)

	//nolint:gochecknoglobals // Compiled once, read-only.
	timeOfDayPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d):([0-5]\d)$`)
)

// NewTimeOfDay validates the components and builds a TimeOfDay.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d:%02d out of range", ErrInvalidTimeFormat, hour, minute, second)
	}

	return TimeOfDay{
		hour:   hour,
		minute: minute,
		second: second,
	}, nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid components.
// Intended for constants and tests.
func MustTimeOfDay(hour, minute, second int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute, second)
	if err != nil {
		panic(err)
	}

	return t
}

// ParseTimeOfDay parses exactly two-digit hour, minute and second separated by colons.
// Surrounding whitespace, signs, single digits and out-of-range values are rejected.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	match := timeOfDayPattern.FindStringSubmatch(s)
	if match == nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
	}

	// The pattern guarantees the groups are two ASCII digits in range.
	hour, _ := strconv.Atoi(match[1])
	minute, _ := strconv.Atoi(match[2])
	second, _ := strconv.Atoi(match[3])

	return TimeOfDay{
		hour:   hour,
		minute: minute,
		second: second,
	}, nil
}

// TimeOfDayFrom drops the date and sub-second part of t.
// The clock reading is taken in t's own location.
func TimeOfDayFrom(t time.Time) TimeOfDay {
	return TimeOfDay{
		hour:   t.Hour(),
		minute: t.Minute(),
		second: t.Second(),
	}
}

// Hour returns the hour component, 0-23.
func (t TimeOfDay) Hour() int { return t.hour }

// Minute returns the minute component, 0-59.
func (t TimeOfDay) Minute() int { return t.minute }

// Second returns the second component, 0-59.
func (t TimeOfDay) Second() int { return t.second }

// Matches reports whether now falls on exactly the same second of the day.
func (t TimeOfDay) Matches(now time.Time) bool {
	return TimeOfDayFrom(now) == t
}

// String renders the time in HH:MM:SS form.
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.hour, t.minute, t.second)
}
