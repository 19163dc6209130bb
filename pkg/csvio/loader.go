package csvio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/planner/pkg/model"
)

// CatalogRow is one meeting time of a section. Course and section attributes repeat on every row
type CatalogRow struct {
	CourseId   string `csv:"CourseId"`
	Subject    string `csv:"Subject"`
	Number     string `csv:"Number"`
	Title      string `csv:"Title"`
	Credits    int    `csv:"Credits"`
	SectionId  string `csv:"SectionId"`
	Instructor string `csv:"Instructor"`
	Room       string `csv:"Room"`
	Days       string `csv:"Days"` // "Mon Wed", "Mon,Wed" or "Mon/Wed"
	Start      string `csv:"Start"`
	End        string `csv:"End"`
}

// LoadCatalog reads a CSV catalog from the given path
func LoadCatalog(path string) ([]model.Course, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog %v: %w", path, err)
	}
	defer file.Close()

	return ReadCatalog(file)
}

// ReadCatalog decodes catalog rows and folds them into courses and sections in first-appearance order
func ReadCatalog(reader io.Reader) ([]model.Course, error) {
	rows := []*CatalogRow{}
	if err := gocsv.Unmarshal(reader, &rows); err != nil {
		return nil, fmt.Errorf("%w: cannot parse catalog rows: %v", model.ErrInvalidInput, err)
	}
	return model.ProcessRawCatalog(groupRows(rows))
}

func groupRows(rows []*CatalogRow) []model.RawCourse {
	rawCourses := []model.RawCourse{}
	courseIndex := make(map[string]int)
	sectionIndex := make(map[string]map[string]int)

	for _, row := range rows {
		courseKey := row.CourseId
		if courseKey == "" {
			courseKey = row.Subject + " " + row.Number
		}

		i, ok := courseIndex[courseKey]
		if !ok {
			i = len(rawCourses)
			courseIndex[courseKey] = i
			sectionIndex[courseKey] = make(map[string]int)
			rawCourses = append(rawCourses, model.RawCourse{
				Id:      row.CourseId,
				Subject: row.Subject,
				Number:  row.Number,
				Title:   row.Title,
				Credits: row.Credits,
			})
		}
		rawCourse := &rawCourses[i]

		j, ok := sectionIndex[courseKey][row.SectionId]
		if !ok {
			j = len(rawCourse.Sections)
			sectionIndex[courseKey][row.SectionId] = j
			rawCourse.Sections = append(rawCourse.Sections, model.RawSection{
				Id:         row.SectionId,
				Instructor: row.Instructor,
				Room:       row.Room,
			})
		}
		rawSection := &rawCourse.Sections[j]

		// A row without times describes a section that has no scheduled meetings
		if row.Days == "" && row.Start == "" && row.End == "" {
			continue
		}
		rawSection.Times = append(rawSection.Times, model.RawMeetingTime{
			Days:  splitDays(row.Days),
			Start: row.Start,
			End:   row.End,
		})
	}

	return rawCourses
}

func splitDays(value string) []string {
	return strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == ',' || r == '/'
	})
}
