package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/limaJavier/planner/pkg/model"
	"github.com/samber/lo"
)

// Text renders the plain-text export of a schedule
func Text(schedule model.Schedule) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "Schedule %v\n", schedule.Id)
	fmt.Fprintf(&builder, "Score: %d/100\n", schedule.Score)
	fmt.Fprintf(&builder, "Total Days: %d\n", schedule.TotalDays)
	fmt.Fprintf(&builder, "Conflicts: %d\n\n", len(schedule.Conflicts))

	builder.WriteString("COURSES:\n")
	for _, scheduled := range schedule.Courses {
		fmt.Fprintf(&builder, "%v - %v\n", scheduled.Course.Code(), scheduled.Course.Title)
		fmt.Fprintf(&builder, "Instructor: %v\n", scheduled.Section.Instructor)
		fmt.Fprintf(&builder, "Room: %v\n", scheduled.Section.Room)
		fmt.Fprintf(&builder, "Times: %v\n", strings.Join(lo.Map(scheduled.Section.Times, func(time model.MeetingTime, _ int) string {
			return time.String()
		}), ", "))
		fmt.Fprintf(&builder, "Credits: %d\n\n", scheduled.Course.Credits)
	}

	if len(schedule.Gaps) > 0 {
		builder.WriteString("GAPS BETWEEN CLASSES:\n")
		for _, gap := range schedule.Gaps {
			fmt.Fprintf(&builder, "%v: %v - %v (%d min)\n", gap.Day, gap.Start, gap.End, gap.Duration)
		}
		builder.WriteString("\n")
	}

	if len(schedule.Conflicts) > 0 {
		builder.WriteString("CONFLICTS:\n")
		for _, conflict := range schedule.Conflicts {
			fmt.Fprintf(&builder, "- %v\n", conflict)
		}
	}

	return builder.String()
}

func Write(writer io.Writer, schedule model.Schedule) error {
	_, err := io.WriteString(writer, Text(schedule))
	return err
}

// FileName suggests a file name for the export of the schedule (e.g. "schedule-1.txt")
func FileName(schedule model.Schedule) string {
	if strings.HasPrefix(schedule.Id, "schedule-") {
		return schedule.Id + ".txt"
	}
	return fmt.Sprintf("schedule-%v.txt", schedule.Id)
}

// Save writes the export of the schedule into directory and returns the path of the written file
func Save(directory string, schedule model.Schedule) (string, error) {
	if err := os.MkdirAll(directory, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %v: %w", directory, err)
	}

	path := filepath.Join(directory, FileName(schedule))
	if err := os.WriteFile(path, []byte(Text(schedule)), 0o644); err != nil {
		return "", fmt.Errorf("cannot write %v: %w", path, err)
	}
	return path, nil
}
