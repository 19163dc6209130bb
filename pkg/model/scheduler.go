package model

type Scheduler interface {
	// Returns up to options.MaxVariations schedules ranked by score, highest first. Ties keep discovery order.
	// Enumeration stops as soon as the cap is reached, so the result is the best of the first accepted
	// combinations rather than the global best
	Generate(
		courses []Course,
		preferences Preferences,
		breaks []BreakConstraint,
		options GenerationOptions,
	) ([]Schedule, error)

	// Checks that the schedule has no section conflicts and none of its classes falls into a break
	Validate(
		schedule Schedule,
		breaks []BreakConstraint,
	) bool
}
