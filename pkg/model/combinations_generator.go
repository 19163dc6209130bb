package model

// combinationsGenerator walks the Cartesian product of the courses' sections: one section per course, in course order.
// The last course's sections vary fastest, so for courses A (a1, a2) and B (b1, b2) the order is a1b1, a1b2, a2b1, a2b2.
// A course without sections contributes no combinations, and an empty course list yields none.
//
// Example:
//
//	generator := newCombinationsGenerator()
//
//	// Stop as soon as a combination whose first section is "A-2" shows up
//	generator.Visit(courses, func(combination []Section) bool {
//		return combination[0].Id != "A-2"
//	})
type combinationsGenerator interface {
	// Returns every combination
	Combinations(courses []Course) [][]Section

	// Calls visit for each combination in order until visit returns false. The slice handed to visit is reused between
	// calls, so it must be copied if it is retained. Returns whether the walk ran to completion
	Visit(courses []Course, visit func(combination []Section) bool) bool
}

func newCombinationsGenerator() combinationsGenerator {
	return combinationsGeneratorImplementation{}
}

// SectionCombinations returns every way to pick exactly one section per course
func SectionCombinations(courses []Course) [][]Section {
	return newCombinationsGenerator().Combinations(courses)
}
