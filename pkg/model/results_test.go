package model

import (
	"testing"

	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
)

func resultFixtures() []Schedule {
	return []Schedule{
		{Id: "schedule-1", Score: 90, TotalDays: 4, Conflicts: []string{}},
		{Id: "schedule-2", Score: 75, TotalDays: 2, Conflicts: []string{"Time conflict: a and b overlap on Mon"}},
		{Id: "schedule-3", Score: 90, TotalDays: 3, Conflicts: []string{}},
		{Id: "schedule-4", Score: 60, TotalDays: 5, Conflicts: []string{"x", "y"}},
	}
}

func TestFilterSchedules(t *testing.T) {
	scenarios := []struct {
		conflicts ConflictFilter
		days      DayFilter
		expected  []string
	}{
		{AllConflicts, AllDays, []string{"schedule-1", "schedule-2", "schedule-3", "schedule-4"}},
		{NoConflicts, AllDays, []string{"schedule-1", "schedule-3"}},
		{WithConflicts, AllDays, []string{"schedule-2", "schedule-4"}},
		{AllConflicts, CompactDays, []string{"schedule-2", "schedule-3"}},
		{AllConflicts, SpreadDays, []string{"schedule-1", "schedule-4"}},
		{NoConflicts, SpreadDays, []string{"schedule-1"}},
		{WithConflicts, CompactDays, []string{"schedule-2"}},
	}

	for _, scenario := range scenarios {
		g := gomega.NewWithT(t)
		filtered := FilterSchedules(resultFixtures(), scenario.conflicts, scenario.days)
		g.Expect(scheduleIds(filtered)).To(gomega.Equal(scenario.expected), "%v/%v", scenario.conflicts, scenario.days)
	}
}

func TestSortSchedules(t *testing.T) {
	schedules := resultFixtures()

	assert.Equal(t, []string{"schedule-1", "schedule-3", "schedule-2", "schedule-4"}, scheduleIds(SortSchedules(schedules, SortByScore)))
	assert.Equal(t, []string{"schedule-2", "schedule-3", "schedule-1", "schedule-4"}, scheduleIds(SortSchedules(schedules, SortByDays)))
	assert.Equal(t, []string{"schedule-1", "schedule-3", "schedule-2", "schedule-4"}, scheduleIds(SortSchedules(schedules, SortByConflicts)))

	// Input is left untouched
	assert.Equal(t, []string{"schedule-1", "schedule-2", "schedule-3", "schedule-4"}, scheduleIds(schedules))
}

func TestParseResultOptions(t *testing.T) {
	g := gomega.NewWithT(t)

	g.Expect(ParseConflictFilter("")).To(gomega.Equal(AllConflicts))
	g.Expect(ParseConflictFilter("no-conflicts")).To(gomega.Equal(NoConflicts))
	_, err := ParseConflictFilter("some")
	g.Expect(err).To(gomega.MatchError(ErrInvalidInput))

	g.Expect(ParseDayFilter("")).To(gomega.Equal(AllDays))
	g.Expect(ParseDayFilter("spread")).To(gomega.Equal(SpreadDays))
	_, err = ParseDayFilter("weekend")
	g.Expect(err).To(gomega.MatchError(ErrInvalidInput))

	g.Expect(ParseSortKey("")).To(gomega.Equal(SortByScore))
	g.Expect(ParseSortKey("conflicts")).To(gomega.Equal(SortByConflicts))
	_, err = ParseSortKey("name")
	g.Expect(err).To(gomega.MatchError(ErrInvalidInput))
}
