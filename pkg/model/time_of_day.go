package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidTime = errors.New("invalid time of day")

// TimeOfDay is a wall-clock time with minute resolution, stored as minutes since midnight
type TimeOfDay uint16

// NightStart is the instant after which a class counts as a night class
const NightStart TimeOfDay = 18 * 60

func NewTimeOfDay(hours, minutes int) (TimeOfDay, error) {
	if hours < 0 || hours > 23 || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hours, minutes)
	}
	return TimeOfDay(hours*60 + minutes), nil
}

// ParseTimeOfDay parses a 24h "H:MM" or "HH:MM" string
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	hoursStr, minutesStr, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found || len(hoursStr) == 0 || len(hoursStr) > 2 || len(minutesStr) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	hours, err := strconv.Atoi(hoursStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	minutes, err := strconv.Atoi(minutesStr)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}
	return NewTimeOfDay(hours, minutes)
}

func (time TimeOfDay) Hours() int {
	return int(time) / 60
}

func (time TimeOfDay) Minutes() int {
	return int(time) % 60
}

// String renders the time as zero-padded "HH:MM"
func (time TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", time.Hours(), time.Minutes())
}

// Format12h renders the time as "8:30 AM" / "12:05 PM"
func (time TimeOfDay) Format12h() string {
	hours := time.Hours()
	period := "AM"
	if hours >= 12 {
		period = "PM"
	}

	displayHours := hours
	if hours > 12 {
		displayHours = hours - 12
	} else if hours == 0 {
		displayHours = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHours, time.Minutes(), period)
}

// Checks whether the half-open intervals [start1, end1) and [start2, end2) intersect
func intervalsOverlap(start1, end1, start2, end2 TimeOfDay) bool {
	return start1 < end2 && start2 < end1
}
