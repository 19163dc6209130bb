package model

import (
	"math"

	"github.com/samber/lo"
)

// Upper bound on the capacity reserved up front when materializing combinations
const maxPreallocatedCombinations = 1 << 16

type combinationsGeneratorImplementation struct{}

func (generator combinationsGeneratorImplementation) Combinations(courses []Course) [][]Section {
	combinations := make([][]Section, 0, min(combinationsCount(courses), maxPreallocatedCombinations))
	generator.Visit(courses, func(combination []Section) bool {
		combinationCopy := make([]Section, len(combination))
		copy(combinationCopy, combination)
		combinations = append(combinations, combinationCopy)
		return true
	})
	return combinations
}

func (generator combinationsGeneratorImplementation) Visit(courses []Course, visit func(combination []Section) bool) bool {
	if len(courses) == 0 {
		return true
	}
	return generator.visit(courses, 0, make([]Section, len(courses)), visit)
}

func (generator combinationsGeneratorImplementation) visit(
	courses []Course,
	currentCourse int,
	combination []Section,
	visit func(combination []Section) bool) bool {

	if currentCourse >= len(courses) {
		return visit(combination)
	}

	for _, section := range courses[currentCourse].Sections {
		combination[currentCourse] = section
		if !generator.visit(courses, currentCourse+1, combination, visit) {
			return false
		}
	}

	return true
}

// Number of combinations the courses produce (product of their section counts), saturating at math.MaxInt
func combinationsCount(courses []Course) int {
	if len(courses) == 0 {
		return 0
	}
	return lo.Reduce(courses, func(count int, course Course, _ int) int {
		sections := len(course.Sections)
		if sections != 0 && count > math.MaxInt/sections {
			return math.MaxInt
		}
		return count * sections
	}, 1)
}
