package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// Score penalties. They accumulate freely and the total is floored at zero only once, at the end
const (
	initialScore = 100

	longGapThreshold     = 60
	longGapPenalty       = 5
	veryLongGapThreshold = 120
	veryLongGapPenalty   = 10 // On top of longGapPenalty

	earlyPenalty         = 15
	latePenalty          = 15
	nightPenalty         = 10
	avoidedDayPenalty    = 20 // Once per avoided day with classes
	breakConflictPenalty = 25
)

// Evaluation is the outcome of scoring one combination of sections
type Evaluation struct {
	Score     int
	TotalDays int
	Gaps      []Gap
}

// One class occurrence on a specific day
type dayEntry struct {
	start TimeOfDay
	end   TimeOfDay
}

// Returns a description of every pair of overlapping meeting times between distinct sections
func detectConflicts(evaluator predicateEvaluator, sections []Section) []string {
	conflicts := make([]string, 0)

	for i := 0; i < len(sections); i++ {
		for j := i + 1; j < len(sections); j++ {
			section1, section2 := sections[i], sections[j]

			for _, time1 := range section1.Times {
				for _, time2 := range section2.Times {
					if evaluator.Overlap(time1, time2) {
						conflicts = append(conflicts, fmt.Sprintf("Time conflict: %v and %v overlap on %v", section1.Id, section2.Id, JoinWeekdays(time1.SharedDays(time2), ", ")))
					}
				}
			}
		}
	}

	return conflicts
}

// Idle minutes between a class ending at end and the next one starting at start, beyond the passing allowance
func passingGap(end, start TimeOfDay, passingMins int) int {
	return max(0, int(start)-int(end)-passingMins)
}

func gapPenalty(duration int) int {
	penalty := 0
	if duration > longGapThreshold {
		penalty += longGapPenalty
	}
	if duration > veryLongGapThreshold {
		penalty += veryLongGapPenalty
	}
	return penalty
}

// Penalty for how many distinct weekdays the schedule spans, according to the preferred style
func stylePenalty(style Style, totalDays int) int {
	penalty := 0
	switch style {
	case StyleCompact: // Prefer fewer days
		if totalDays > 3 {
			penalty += 20
		}
		if totalDays > 4 {
			penalty += 30
		}
	case StyleBalanced: // Prefer a moderate distribution
		if totalDays == 1 {
			penalty += 15
		}
		if totalDays == 5 {
			penalty += 15
		}
	case StyleSpread: // Prefer more days
		if totalDays < 3 {
			penalty += 20
		}
		if totalDays < 4 {
			penalty += 10
		}
	}
	return penalty
}

// Groups the meeting times of the sections into per-day buckets sorted by start time.
// A meeting time spanning several days contributes one entry per day
func bucketByDay(sections []Section) map[Weekday][]dayEntry {
	buckets := make(map[Weekday][]dayEntry)
	for _, section := range sections {
		for _, time := range section.Times {
			for _, day := range time.Days {
				buckets[day] = append(buckets[day], dayEntry{start: time.Start, end: time.End})
			}
		}
	}

	for _, entries := range buckets {
		slices.SortStableFunc(entries, func(a, b dayEntry) int {
			return cmp.Compare(a.start, b.start)
		})
	}
	return buckets
}

func evaluate(evaluator predicateEvaluator, preferences Preferences, sections []Section) Evaluation {
	score := initialScore
	gaps := make([]Gap, 0)
	buckets := bucketByDay(sections)

	// Visit days in canonical order so gaps come out Monday first
	days := lo.Filter(Weekdays, func(day Weekday, _ int) bool { return len(buckets[day]) > 0 })

	for _, day := range days {
		entries := buckets[day]

		//** Gaps between adjacent classes
		for i := 0; i < len(entries)-1; i++ {
			current, next := entries[i], entries[i+1]
			duration := passingGap(current.end, next.start, preferences.PassingMins)
			if duration == 0 {
				continue
			}

			gaps = append(gaps, Gap{Day: day, Start: current.end, End: next.start, Duration: duration})
			score -= gapPenalty(duration)
		}

		//** Time window preferences
		for _, entry := range entries {
			if evaluator.TooEarly(entry.start) {
				score -= earlyPenalty
			}
			if evaluator.TooLate(entry.end) {
				score -= latePenalty
			}
			if evaluator.Night(entry.end) {
				score -= nightPenalty
			}
		}

		//** Avoided days
		if evaluator.DayAvoided(day) {
			score -= avoidedDayPenalty
		}

		//** Breaks
		for _, entry := range entries {
			if evaluator.BreakConflictOn(day, entry.start, entry.end) {
				score -= breakConflictPenalty
			}
		}
	}

	totalDays := len(days)
	score -= stylePenalty(preferences.Style, totalDays)

	return Evaluation{
		Score:     max(0, score),
		TotalDays: totalDays,
		Gaps:      gaps,
	}
}

// Checks the invariants the scorer and detector rely on (start < end, known days and style)
func validateInput(courses []Course, preferences Preferences, breaks []BreakConstraint) error {
	if err := preferences.validate(); err != nil {
		return err
	}

	for _, breakConstraint := range breaks {
		if err := breakConstraint.validate(); err != nil {
			return err
		}
	}

	for _, course := range courses {
		for _, section := range course.Sections {
			for _, time := range section.Times {
				if err := time.validate(); err != nil {
					return fmt.Errorf("section \"%v\" of course \"%v\": %w", section.Id, course.Id, err)
				}
				if lo.SomeBy(time.Days, func(day Weekday) bool { return day > Friday }) {
					return fmt.Errorf("%w: section \"%v\" of course \"%v\": %w", ErrInvalidInput, section.Id, course.Id, ErrUnknownWeekday)
				}
			}
		}
	}

	return nil
}

// DetectConflicts returns the pairwise meeting-time overlaps of a combination of sections
func DetectConflicts(sections []Section) []string {
	return detectConflicts(newPredicateEvaluator(DefaultPreferences(), nil), sections)
}

// Evaluate scores one combination of sections against the preferences and breaks
func Evaluate(sections []Section, preferences Preferences, breaks []BreakConstraint) Evaluation {
	return evaluate(newPredicateEvaluator(preferences, breaks), preferences, sections)
}

// ValidateSchedule rejects a schedule with section conflicts or with any class falling into a break, whatever its score
func ValidateSchedule(schedule Schedule, breaks []BreakConstraint) bool {
	if len(schedule.Conflicts) > 0 {
		return false
	}

	evaluator := newPredicateEvaluator(DefaultPreferences(), breaks)
	return !lo.SomeBy(schedule.Courses, func(scheduled ScheduledCourse) bool {
		return lo.SomeBy(scheduled.Section.Times, evaluator.BreakConflict)
	})
}
