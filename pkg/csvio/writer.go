package csvio

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/planner/pkg/model"
)

// ScheduleRow is one weekly meeting of one course within a ranked schedule
type ScheduleRow struct {
	ScheduleId string `csv:"ScheduleId"`
	Rank       int    `csv:"Rank"`
	Score      int    `csv:"Score"`
	Subject    string `csv:"Subject"`
	Number     string `csv:"Number"`
	Title      string `csv:"Title"`
	Section    string `csv:"Section"`
	Instructor string `csv:"Instructor"`
	Room       string `csv:"Room"`
	Day        string `csv:"Day"`
	Start      string `csv:"Start"`
	End        string `csv:"End"`
	Credits    int    `csv:"Credits"`
}

// ScheduleRows flattens ranked schedules into one row per schedule, course and meeting day
func ScheduleRows(schedules []model.Schedule) []*ScheduleRow {
	rows := []*ScheduleRow{}
	for rank, schedule := range schedules {
		for _, scheduled := range schedule.Courses {
			for _, time := range scheduled.Section.Times {
				for _, day := range time.Days {
					rows = append(rows, &ScheduleRow{
						ScheduleId: schedule.Id,
						Rank:       rank + 1,
						Score:      schedule.Score,
						Subject:    scheduled.Course.Subject,
						Number:     scheduled.Course.Number,
						Title:      scheduled.Course.Title,
						Section:    scheduled.Section.Id,
						Instructor: scheduled.Section.Instructor,
						Room:       scheduled.Section.Room,
						Day:        day.String(),
						Start:      time.Start.String(),
						End:        time.End.String(),
						Credits:    scheduled.Course.Credits,
					})
				}
			}
		}
	}
	return rows
}

func WriteSchedules(writer io.Writer, schedules []model.Schedule) error {
	rows := ScheduleRows(schedules)
	if err := gocsv.Marshal(&rows, writer); err != nil {
		return fmt.Errorf("cannot write schedules: %w", err)
	}
	return nil
}

// ExportSchedules writes the schedules to path, replacing any existing file
func ExportSchedules(path string, schedules []model.Schedule) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %v: %w", path, err)
	}
	defer out.Close()

	return WriteSchedules(out, schedules)
}
