package model

import "github.com/samber/lo"

type ScheduledCourse struct {
	Course  Course
	Section Section
}

// Gap is idle time between two consecutive classes on the same day, beyond the passing allowance
type Gap struct {
	Day      Weekday
	Start    TimeOfDay // End of the earlier class
	End      TimeOfDay // Start of the later class
	Duration int       // Minutes, after subtracting the passing time
}

type Schedule struct {
	Id        string
	Courses   []ScheduledCourse // One entry per requested course, in request order
	Score     int
	Conflicts []string
	TotalDays int
	Gaps      []Gap
}

// Credits returns the credits summed over the scheduled courses
func (schedule Schedule) Credits() int {
	return lo.SumBy(schedule.Courses, func(scheduled ScheduledCourse) int { return scheduled.Course.Credits })
}

func (schedule Schedule) Sections() []Section {
	return lo.Map(schedule.Courses, func(scheduled ScheduledCourse, _ int) Section { return scheduled.Section })
}
