package model

import (
	"github.com/samber/lo"
)

type predicateEvaluatorStandard struct {
	preferences Preferences
	breaks      map[Weekday][]BreakConstraint // Breaks grouped by weekday
}

func newPredicateEvaluator(preferences Preferences, breaks []BreakConstraint) predicateEvaluator {
	return &predicateEvaluatorStandard{
		preferences: preferences,
		breaks: lo.GroupBy(breaks, func(breakConstraint BreakConstraint) Weekday {
			return breakConstraint.Day
		}),
	}
}

func (evaluator *predicateEvaluatorStandard) Overlap(time1, time2 MeetingTime) bool {
	return intervalsOverlap(time1.Start, time1.End, time2.Start, time2.End) &&
		lo.SomeBy(time1.Days, func(day Weekday) bool { return time2.MeetsOn(day) })
}

func (evaluator *predicateEvaluatorStandard) BreakConflictOn(day Weekday, start, end TimeOfDay) bool {
	// Overlapping breaks on the same day still count once
	return lo.SomeBy(evaluator.breaks[day], func(breakConstraint BreakConstraint) bool {
		return intervalsOverlap(start, end, breakConstraint.Start, breakConstraint.End)
	})
}

func (evaluator *predicateEvaluatorStandard) BreakConflict(time MeetingTime) bool {
	return lo.SomeBy(time.Days, func(day Weekday) bool {
		return evaluator.BreakConflictOn(day, time.Start, time.End)
	})
}

func (evaluator *predicateEvaluatorStandard) TooEarly(start TimeOfDay) bool {
	return start < evaluator.preferences.Earliest
}

func (evaluator *predicateEvaluatorStandard) TooLate(end TimeOfDay) bool {
	return end > evaluator.preferences.Latest
}

func (evaluator *predicateEvaluatorStandard) Night(end TimeOfDay) bool {
	return evaluator.preferences.AvoidNights && end > NightStart
}

func (evaluator *predicateEvaluatorStandard) DayAvoided(day Weekday) bool {
	return evaluator.preferences.NoFriday && day == Friday
}
