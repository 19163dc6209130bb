package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

type ConflictFilter string

const (
	AllConflicts  ConflictFilter = "all"
	NoConflicts   ConflictFilter = "no-conflicts"
	WithConflicts ConflictFilter = "with-conflicts"
)

type DayFilter string

const (
	AllDays     DayFilter = "all"
	CompactDays DayFilter = "compact" // At most 3 days
	SpreadDays  DayFilter = "spread"  // At least 4 days
)

type SortKey string

const (
	SortByScore     SortKey = "score"     // Highest first
	SortByDays      SortKey = "days"      // Fewest first
	SortByConflicts SortKey = "conflicts" // Fewest first
)

func ParseConflictFilter(value string) (ConflictFilter, error) {
	filter := ConflictFilter(value)
	if value == "" {
		return AllConflicts, nil
	} else if !slices.Contains([]ConflictFilter{AllConflicts, NoConflicts, WithConflicts}, filter) {
		return "", fmt.Errorf("%w: unknown conflict filter %q", ErrInvalidInput, value)
	}
	return filter, nil
}

func ParseDayFilter(value string) (DayFilter, error) {
	filter := DayFilter(value)
	if value == "" {
		return AllDays, nil
	} else if !slices.Contains([]DayFilter{AllDays, CompactDays, SpreadDays}, filter) {
		return "", fmt.Errorf("%w: unknown day filter %q", ErrInvalidInput, value)
	}
	return filter, nil
}

func ParseSortKey(value string) (SortKey, error) {
	key := SortKey(value)
	if value == "" {
		return SortByScore, nil
	} else if !slices.Contains([]SortKey{SortByScore, SortByDays, SortByConflicts}, key) {
		return "", fmt.Errorf("%w: unknown sort key %q", ErrInvalidInput, value)
	}
	return key, nil
}

// FilterSchedules returns the schedules matching both filters, keeping their order
func FilterSchedules(schedules []Schedule, conflictFilter ConflictFilter, dayFilter DayFilter) []Schedule {
	return lo.Filter(schedules, func(schedule Schedule, _ int) bool {
		switch conflictFilter {
		case NoConflicts:
			if len(schedule.Conflicts) > 0 {
				return false
			}
		case WithConflicts:
			if len(schedule.Conflicts) == 0 {
				return false
			}
		}

		switch dayFilter {
		case CompactDays:
			return schedule.TotalDays <= 3
		case SpreadDays:
			return schedule.TotalDays >= 4
		}
		return true
	})
}

// SortSchedules returns a copy of the schedules ordered by key. Equal elements keep their relative order
func SortSchedules(schedules []Schedule, key SortKey) []Schedule {
	sorted := slices.Clone(schedules)
	slices.SortStableFunc(sorted, func(a, b Schedule) int {
		switch key {
		case SortByDays:
			return cmp.Compare(a.TotalDays, b.TotalDays)
		case SortByConflicts:
			return cmp.Compare(len(a.Conflicts), len(b.Conflicts))
		default:
			return cmp.Compare(b.Score, a.Score)
		}
	})
	return sorted
}
