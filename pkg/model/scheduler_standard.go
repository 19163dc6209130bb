package model

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

type standardScheduler struct {
	generator combinationsGenerator
	logger    *zap.Logger
}

// NewStandardScheduler returns a scheduler that scans section combinations in order. It keeps no state between calls,
// so a single instance may be shared. A nil logger disables logging
func NewStandardScheduler(logger *zap.Logger) Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &standardScheduler{
		generator: newCombinationsGenerator(),
		logger:    logger,
	}
}

func (scheduler *standardScheduler) Generate(
	courses []Course,
	preferences Preferences,
	breaks []BreakConstraint,
	options GenerationOptions,
) ([]Schedule, error) {
	if len(courses) == 0 {
		return []Schedule{}, nil
	}

	//** Validate input
	if err := validateInput(courses, preferences, breaks); err != nil {
		return nil, err
	}
	maxVariations := options.MaxVariations
	if maxVariations <= 0 {
		maxVariations = DefaultMaxVariations
	}

	emptyCourses := lo.Filter(courses, func(course Course, _ int) bool { return len(course.Sections) == 0 })
	if len(emptyCourses) > 0 {
		scheduler.logger.Warn("courses without sections make every combination impossible",
			zap.Strings("courses", lo.Map(emptyCourses, func(course Course, _ int) string { return course.Id })))
	}

	//** Initialize dependencies
	evaluator := newPredicateEvaluator(preferences, breaks)

	//** Scan combinations
	schedules := make([]Schedule, 0, min(maxVariations, maxPreallocatedCombinations))
	examined, conflicting, lowScoring := 0, 0, 0

	completed := scheduler.generator.Visit(courses, func(combination []Section) bool {
		examined++

		conflicts := detectConflicts(evaluator, combination)
		if !options.AllowConflicts && len(conflicts) > 0 {
			conflicting++
			return true
		}

		evaluation := evaluate(evaluator, preferences, combination)
		if evaluation.Score < options.MinScore {
			lowScoring++
			return true
		}

		schedules = append(schedules, Schedule{
			Id: fmt.Sprintf("schedule-%d", len(schedules)+1), // Discovery order, not rank
			Courses: lo.Map(combination, func(section Section, i int) ScheduledCourse {
				return ScheduledCourse{Course: courses[i], Section: section}
			}),
			Score:     evaluation.Score,
			Conflicts: conflicts,
			TotalDays: evaluation.TotalDays,
			Gaps:      evaluation.Gaps,
		})

		// Stop as soon as enough schedules have been accepted
		return len(schedules) < maxVariations
	})

	//** Rank
	slices.SortStableFunc(schedules, func(a, b Schedule) int {
		return cmp.Compare(b.Score, a.Score)
	})

	scheduler.logger.Debug("schedules generated",
		zap.Int("courses", len(courses)),
		zap.Int("examined", examined),
		zap.Int("conflicting", conflicting),
		zap.Int("lowScoring", lowScoring),
		zap.Int("accepted", len(schedules)),
		zap.Bool("stoppedEarly", !completed),
	)

	return schedules, nil
}

func (scheduler *standardScheduler) Validate(schedule Schedule, breaks []BreakConstraint) bool {
	return ValidateSchedule(schedule, breaks)
}
