package model

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

var ErrUnknownWeekday = errors.New("unknown weekday")

type Weekday uint8

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
)

// Weekdays in canonical order (Monday first)
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}

var weekdayNames = map[Weekday]string{
	Monday:    "Mon",
	Tuesday:   "Tue",
	Wednesday: "Wed",
	Thursday:  "Thu",
	Friday:    "Fri",
}

var weekdayAbbreviations = map[Weekday]string{
	Monday:    "M",
	Tuesday:   "T",
	Wednesday: "W",
	Thursday:  "Th",
	Friday:    "F",
}

// Accepted spellings, compared lower-cased
var weekdayAliases = map[string]Weekday{
	"mon": Monday, "monday": Monday, "m": Monday,
	"tue": Tuesday, "tues": Tuesday, "tuesday": Tuesday, "t": Tuesday,
	"wed": Wednesday, "wednesday": Wednesday, "w": Wednesday,
	"thu": Thursday, "thur": Thursday, "thurs": Thursday, "thursday": Thursday, "th": Thursday, "r": Thursday,
	"fri": Friday, "friday": Friday, "f": Friday,
}

func ParseWeekday(value string) (Weekday, error) {
	day, ok := weekdayAliases[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, value)
	}
	return day, nil
}

// String returns the three-letter name used by catalogs and reports (e.g. "Mon")
func (day Weekday) String() string {
	if name, ok := weekdayNames[day]; ok {
		return name
	}
	return fmt.Sprintf("Weekday(%d)", uint8(day))
}

// Abbreviation returns the compact calendar label (M, T, W, Th, F)
func (day Weekday) Abbreviation() string {
	if abbreviation, ok := weekdayAbbreviations[day]; ok {
		return abbreviation
	}
	return day.String()
}

// NormalizeWeekdays returns the days deduplicated and sorted in canonical order
func NormalizeWeekdays(days []Weekday) []Weekday {
	normalized := lo.Uniq(days)
	slices.Sort(normalized)
	return normalized
}

// JoinWeekdays renders days as "Mon, Wed, Fri"
func JoinWeekdays(days []Weekday, separator string) string {
	return strings.Join(lo.Map(days, func(day Weekday, _ int) string { return day.String() }), separator)
}
