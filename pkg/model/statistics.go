package model

import (
	"math"

	"github.com/samber/lo"
)

type ScheduleStats struct {
	TotalSchedules int
	AverageScore   int // Rounded half up
	MaxScore       int
	MinScore       int
	AverageDays    int // Rounded half up
	BestSchedule   *Schedule
}

// ScheduleStatistics aggregates a ranked list of schedules. BestSchedule is the first one, so the list
// is expected to be sorted by score already. Returns nil for an empty list
func ScheduleStatistics(schedules []Schedule) *ScheduleStats {
	if len(schedules) == 0 {
		return nil
	}

	scores := lo.Map(schedules, func(schedule Schedule, _ int) int { return schedule.Score })
	days := lo.Map(schedules, func(schedule Schedule, _ int) int { return schedule.TotalDays })

	return &ScheduleStats{
		TotalSchedules: len(schedules),
		AverageScore:   roundedMean(scores),
		MaxScore:       lo.Max(scores),
		MinScore:       lo.Min(scores),
		AverageDays:    roundedMean(days),
		BestSchedule:   &schedules[0],
	}
}

func roundedMean(values []int) int {
	return int(math.Floor(float64(lo.Sum(values))/float64(len(values)) + 0.5))
}
