package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/limaJavier/planner/pkg/model"
	"github.com/samber/lo"
)

// CompactTimes renders meeting times with calendar abbreviations and a 12h clock ("M, W 9:00 AM-10:15 AM")
func CompactTimes(times []model.MeetingTime) string {
	return strings.Join(lo.Map(times, func(time model.MeetingTime, _ int) string {
		days := lo.Map(time.Days, func(day model.Weekday, _ int) string { return day.Abbreviation() })
		return fmt.Sprintf("%v %v-%v", strings.Join(days, ", "), time.Start.Format12h(), time.End.Format12h())
	}), "; ")
}

// Statistics writes the aggregate figures of a result set
func Statistics(writer io.Writer, stats *model.ScheduleStats) error {
	if stats == nil {
		_, err := fmt.Fprintln(writer, "No schedules found")
		return err
	}

	_, err := fmt.Fprintf(writer,
		"Schedules: %d\nAverage score: %d\nBest score: %d\nWorst score: %d\nAverage days: %d\nBest schedule: %v\n",
		stats.TotalSchedules, stats.AverageScore, stats.MaxScore, stats.MinScore, stats.AverageDays, stats.BestSchedule.Id,
	)
	return err
}

// Overview writes one aligned line per schedule and course
func Overview(writer io.Writer, schedules []model.Schedule) error {
	table := tabwriter.NewWriter(writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(table, "SCHEDULE\tSCORE\tDAYS\tCONFLICTS\tCOURSE\tSECTION\tTIMES")
	for _, schedule := range schedules {
		for i, scheduled := range schedule.Courses {
			if i == 0 {
				fmt.Fprintf(table, "%v\t%d\t%d\t%d\t", schedule.Id, schedule.Score, schedule.TotalDays, len(schedule.Conflicts))
			} else {
				fmt.Fprint(table, "\t\t\t\t")
			}
			fmt.Fprintf(table, "%v\t%v\t%v\n", scheduled.Course.Code(), scheduled.Section.Id, CompactTimes(scheduled.Section.Times))
		}
	}
	return table.Flush()
}
