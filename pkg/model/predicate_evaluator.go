package model

type predicateEvaluator interface {
	// Checks whether time1 and time2 share at least one weekday and their [start, end) intervals intersect
	Overlap(time1, time2 MeetingTime) bool

	// Checks whether the [start, end) interval on the given day intersects any break declared for that day
	BreakConflictOn(day Weekday, start, end TimeOfDay) bool

	// Checks whether the meeting time intersects any break on any of its days
	BreakConflict(time MeetingTime) bool

	// Checks whether a class starting at start begins before the earliest preferred time
	TooEarly(start TimeOfDay) bool

	// Checks whether a class ending at end finishes after the latest preferred time
	TooLate(end TimeOfDay) bool

	// Checks whether a class ending at end counts as a night class the student wants to avoid
	Night(end TimeOfDay) bool

	// Checks whether classes on the given day are penalized by the no-Friday preference
	DayAvoided(day Weekday) bool
}
