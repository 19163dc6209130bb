package model

import (
	"strings"

	"github.com/samber/lo"
)

// meeting builds a meeting time from "Mon Wed", "09:00", "10:15"
func meeting(days, start, end string) MeetingTime {
	return MeetingTime{
		Days: NormalizeWeekdays(lo.Map(strings.Fields(days), func(day string, _ int) Weekday {
			return lo.Must(ParseWeekday(day))
		})),
		Start: lo.Must(ParseTimeOfDay(start)),
		End:   lo.Must(ParseTimeOfDay(end)),
	}
}

func section(id string, times ...MeetingTime) Section {
	return Section{Id: id, Instructor: "Instructor " + id, Room: "Room " + id, Times: times}
}

func course(id string, sections ...Section) Course {
	subject, number, _ := strings.Cut(id, " ")
	return Course{Id: id, Subject: subject, Number: number, Title: "Course " + id, Credits: 3, Sections: sections}
}

func breakAt(day, start, end string) BreakConstraint {
	return BreakConstraint{
		Day:   lo.Must(ParseWeekday(day)),
		Start: lo.Must(ParseTimeOfDay(start)),
		End:   lo.Must(ParseTimeOfDay(end)),
	}
}

func clock(value string) TimeOfDay {
	return lo.Must(ParseTimeOfDay(value))
}

func sectionIds(combination []Section) []string {
	return lo.Map(combination, func(section Section, _ int) string { return section.Id })
}

func scheduleIds(schedules []Schedule) []string {
	return lo.Map(schedules, func(schedule Schedule, _ int) string { return schedule.Id })
}
