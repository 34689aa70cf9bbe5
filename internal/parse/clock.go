package parse

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidClock is returned when a string is not a recognizable time of day.
var ErrInvalidClock = errors.New("invalid clock time")

var (
	colonRe   = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	compactRe = regexp.MustCompile(`^(\d{2})(\d{2})$`)
	meridRe   = regexp.MustCompile(`(?i)^(\d{1,2})(?::(\d{2}))?\s*([AP])\.?M\.?$`)
)

// Clock is an hour and minute of the day.
type Clock struct {
	Hour   int
	Minute int
}

// String renders the clock as zero-padded HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ParseClock extracts an hour and minute from a raw time-of-day string.
// Accepted forms: "06:32", "6:32", "0632", "6:32 AM", "6pm".
func ParseClock(raw string) (Clock, error) {
	s := strings.TrimSpace(raw)

	if m := meridRe.FindStringSubmatch(s); m != nil {
		hour, _ := strconv.Atoi(m[1])
		minute := 0
		if m[2] != "" {
			minute, _ = strconv.Atoi(m[2])
		}
		if hour < 1 || hour > 12 || minute > 59 {
			return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
		}
		// 12 AM is midnight, 12 PM is noon.
		hour %= 12
		if strings.EqualFold(m[3], "P") {
			hour += 12
		}
		return Clock{Hour: hour, Minute: minute}, nil
	}

	m := colonRe.FindStringSubmatch(s)
	if m == nil {
		m = compactRe.FindStringSubmatch(s)
	}
	if m == nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, raw)
	}
	return Clock{Hour: hour, Minute: minute}, nil
}
