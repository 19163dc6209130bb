package model

import (
	"fmt"
	"slices"
	"strings"
)

type Style string

const (
	StyleCompact  Style = "compact"
	StyleBalanced Style = "balanced"
	StyleSpread   Style = "spread"
)

var Styles = []Style{StyleCompact, StyleBalanced, StyleSpread}

// Allowed minimum passing times between consecutive classes, in minutes
var PassingMinutes = []int{0, 10, 15}

const (
	DefaultMaxVariations = 10
	DefaultMinScore      = 50
)

func ParseStyle(value string) (Style, error) {
	style := Style(strings.ToLower(strings.TrimSpace(value)))
	if !slices.Contains(Styles, style) {
		return "", fmt.Errorf("%w: unknown style %q", ErrInvalidInput, value)
	}
	return style, nil
}

type Preferences struct {
	Style       Style
	Earliest    TimeOfDay
	Latest      TimeOfDay
	NoFriday    bool
	AvoidNights bool
	PassingMins int
}

func DefaultPreferences() Preferences {
	return Preferences{
		Style:       StyleBalanced,
		Earliest:    8*60 + 30,
		Latest:      18*60 + 30,
		PassingMins: 15,
	}
}

func (preferences Preferences) validate() error {
	if !slices.Contains(Styles, preferences.Style) {
		return fmt.Errorf("%w: unknown style %q", ErrInvalidInput, preferences.Style)
	}
	if !slices.Contains(PassingMinutes, preferences.PassingMins) {
		return fmt.Errorf("%w: passing minutes must be one of %v: %v", ErrInvalidInput, PassingMinutes, preferences.PassingMins)
	}
	return nil
}

// RawPreferences holds preferences as typed by the user; empty fields fall back to the defaults
type RawPreferences struct {
	Style       string `mapstructure:"style" validate:"omitempty,oneof=compact balanced spread"`
	Earliest    string `mapstructure:"earliest" validate:"omitempty,hhmm"`
	Latest      string `mapstructure:"latest" validate:"omitempty,hhmm"`
	NoFriday    bool   `mapstructure:"no-friday"`
	AvoidNights bool   `mapstructure:"avoid-nights"`
	PassingMins int    `mapstructure:"passing" validate:"oneof=0 10 15"`
}

func (raw RawPreferences) Preferences() (Preferences, error) {
	if err := catalogValidator.Struct(raw); err != nil {
		return Preferences{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	preferences := DefaultPreferences()
	preferences.NoFriday = raw.NoFriday
	preferences.AvoidNights = raw.AvoidNights
	preferences.PassingMins = raw.PassingMins

	if raw.Style != "" {
		preferences.Style = Style(raw.Style)
	}
	if raw.Earliest != "" {
		preferences.Earliest, _ = ParseTimeOfDay(raw.Earliest) // Already validated
	}
	if raw.Latest != "" {
		preferences.Latest, _ = ParseTimeOfDay(raw.Latest)
	}
	return preferences, nil
}

type BreakConstraint struct {
	Day   Weekday
	Start TimeOfDay
	End   TimeOfDay
}

func (breakConstraint BreakConstraint) String() string {
	return fmt.Sprintf("%v %v-%v", breakConstraint.Day, breakConstraint.Start, breakConstraint.End)
}

// ParseBreakConstraint parses "Mon 12:00-13:00" (spaces around the dash are allowed)
func ParseBreakConstraint(value string) (BreakConstraint, error) {
	fields := strings.Fields(value)
	if len(fields) < 2 {
		return BreakConstraint{}, fmt.Errorf("%w: break must look like \"Mon 12:00-13:00\": %q", ErrInvalidInput, value)
	}
	startStr, endStr, found := strings.Cut(strings.Join(fields[1:], ""), "-")
	if !found {
		return BreakConstraint{}, fmt.Errorf("%w: break must look like \"Mon 12:00-13:00\": %q", ErrInvalidInput, value)
	}

	day, err := ParseWeekday(fields[0])
	if err != nil {
		return BreakConstraint{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	start, err := ParseTimeOfDay(startStr)
	if err != nil {
		return BreakConstraint{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	end, err := ParseTimeOfDay(endStr)
	if err != nil {
		return BreakConstraint{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	breakConstraint := BreakConstraint{Day: day, Start: start, End: end}
	return breakConstraint, breakConstraint.validate()
}

func (breakConstraint BreakConstraint) validate() error {
	if breakConstraint.Day > Friday {
		return fmt.Errorf("%w: %w: %v", ErrInvalidInput, ErrUnknownWeekday, breakConstraint.Day)
	}
	if breakConstraint.Start >= breakConstraint.End {
		return fmt.Errorf("%w: break must start before it ends: %v", ErrInvalidInput, breakConstraint)
	}
	return nil
}

type GenerationOptions struct {
	// Maximum number of accepted schedules; enumeration stops once reached. Values <= 0 mean DefaultMaxVariations
	MaxVariations int
	// Schedules scoring below this are discarded
	MinScore int
	// Whether combinations with overlapping sections are scored instead of discarded
	AllowConflicts bool
}

func DefaultGenerationOptions() GenerationOptions {
	return GenerationOptions{
		MaxVariations: DefaultMaxVariations,
		MinScore:      DefaultMinScore,
	}
}
