package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
)

var ErrInvalidInput = errors.New("invalid input")

// Raw shapes as they come out of a catalog file. A meeting time may use either "day" or "days"
type RawMeetingTime struct {
	Day   string   `mapstructure:"day"`
	Days  []string `mapstructure:"days"`
	Start string   `mapstructure:"start" validate:"required,hhmm"`
	End   string   `mapstructure:"end" validate:"required,hhmm"`
}

type RawSection struct {
	Id         string           `mapstructure:"id" validate:"required"`
	Instructor string           `mapstructure:"instructor"`
	Room       string           `mapstructure:"room"`
	Times      []RawMeetingTime `mapstructure:"times" validate:"dive"`
}

type RawCourse struct {
	Id       string       `mapstructure:"id"`
	Subject  string       `mapstructure:"subject" validate:"required"`
	Number   string       `mapstructure:"number" validate:"required"`
	Title    string       `mapstructure:"title" validate:"required"`
	Credits  int          `mapstructure:"credits" validate:"gte=0"`
	Sections []RawSection `mapstructure:"sections" validate:"dive"`
}

type MeetingTime struct {
	Days  []Weekday
	Start TimeOfDay
	End   TimeOfDay
}

type Section struct {
	Id         string
	Instructor string
	Room       string
	Times      []MeetingTime
}

type Course struct {
	Id       string
	Subject  string
	Number   string
	Title    string
	Credits  int
	Sections []Section
}

// Code returns the catalog code of the course (e.g. "CS 101")
func (course Course) Code() string {
	return fmt.Sprintf("%v %v", course.Subject, course.Number)
}

func (time MeetingTime) MeetsOn(day Weekday) bool {
	return slices.Contains(time.Days, day)
}

// SharedDays returns the weekdays both meeting times take place on, in canonical order
func (time MeetingTime) SharedDays(other MeetingTime) []Weekday {
	return NormalizeWeekdays(lo.Intersect(time.Days, other.Days))
}

// String renders the meeting time as "Mon, Wed 09:00-10:15"
func (time MeetingTime) String() string {
	return fmt.Sprintf("%v %v-%v", JoinWeekdays(time.Days, ", "), time.Start, time.End)
}

var hhmmPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// NewValidator returns a validator aware of the "hhmm" tag (24h clock time)
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterValidation("hhmm", func(field validator.FieldLevel) bool {
		return hhmmPattern.MatchString(field.Field().String())
	})
	return validate
}

var catalogValidator = NewValidator()

// CatalogFromJson reads a JSON catalog. The document is either an array of courses or an object with a "courses" array
func CatalogFromJson(file string) ([]Course, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	return CatalogFromJsonBytes(bytes)
}

func CatalogFromJsonBytes(bytes []byte) ([]Course, error) {
	var inputJson any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, err
	}

	if wrapper, ok := inputJson.(map[string]any); ok {
		courses, ok := wrapper["courses"]
		if !ok {
			return nil, fmt.Errorf("%w: catalog object has no \"courses\" field", ErrInvalidInput)
		}
		inputJson = courses
	}

	var rawCourses []RawCourse
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &rawCourses,
		WeaklyTypedInput: true, // Accepts "days": "Mon" as well as numeric course numbers
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(inputJson); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return ProcessRawCatalog(rawCourses)
}

// ProcessRawCatalog validates raw courses and normalizes them into the canonical model
func ProcessRawCatalog(rawCourses []RawCourse) ([]Course, error) {
	courses := make([]Course, 0, len(rawCourses))
	courseIds := make(map[string]bool)

	for _, rawCourse := range rawCourses {
		if err := catalogValidator.Struct(rawCourse); err != nil {
			return nil, fmt.Errorf("%w: course \"%v %v\": %w", ErrInvalidInput, rawCourse.Subject, rawCourse.Number, err)
		}

		course := Course{
			Id:      rawCourse.Id,
			Subject: rawCourse.Subject,
			Number:  rawCourse.Number,
			Title:   rawCourse.Title,
			Credits: rawCourse.Credits,
		}
		if course.Id == "" {
			course.Id = course.Code()
		}
		if courseIds[course.Id] {
			return nil, fmt.Errorf("%w: duplicate course \"%v\"", ErrInvalidInput, course.Id)
		}
		courseIds[course.Id] = true

		sectionIds := make(map[string]bool)
		course.Sections = make([]Section, 0, len(rawCourse.Sections))
		for _, rawSection := range rawCourse.Sections {
			if sectionIds[rawSection.Id] {
				return nil, fmt.Errorf("%w: duplicate section \"%v\" in course \"%v\"", ErrInvalidInput, rawSection.Id, course.Id)
			}
			sectionIds[rawSection.Id] = true

			times := make([]MeetingTime, 0, len(rawSection.Times))
			for _, rawTime := range rawSection.Times {
				time, err := processRawMeetingTime(rawTime)
				if err != nil {
					return nil, fmt.Errorf("section \"%v\" of course \"%v\": %w", rawSection.Id, course.Id, err)
				}
				times = append(times, time)
			}

			course.Sections = append(course.Sections, Section{
				Id:         rawSection.Id,
				Instructor: rawSection.Instructor,
				Room:       rawSection.Room,
				Times:      times,
			})
		}
		courses = append(courses, course)
	}

	return courses, nil
}

// Folds both historical shapes ("day" and "days") into one weekday set
func processRawMeetingTime(rawTime RawMeetingTime) (MeetingTime, error) {
	dayNames := rawTime.Days
	if rawTime.Day != "" {
		dayNames = append(slices.Clone(dayNames), rawTime.Day)
	}
	if len(dayNames) == 0 {
		return MeetingTime{}, fmt.Errorf("%w: meeting time %v-%v has no weekday", ErrInvalidInput, rawTime.Start, rawTime.End)
	}

	days := make([]Weekday, 0, len(dayNames))
	for _, dayName := range dayNames {
		day, err := ParseWeekday(dayName)
		if err != nil {
			return MeetingTime{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
		}
		days = append(days, day)
	}

	start, err := ParseTimeOfDay(rawTime.Start)
	if err != nil {
		return MeetingTime{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	end, err := ParseTimeOfDay(rawTime.End)
	if err != nil {
		return MeetingTime{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	time := MeetingTime{Days: NormalizeWeekdays(days), Start: start, End: end}
	if err := time.validate(); err != nil {
		return MeetingTime{}, err
	}
	return time, nil
}

func (time MeetingTime) validate() error {
	if len(time.Days) == 0 {
		return fmt.Errorf("%w: meeting time %v-%v has no weekday", ErrInvalidInput, time.Start, time.End)
	}
	if time.Start >= time.End {
		return fmt.Errorf("%w: meeting time must start before it ends: %v", ErrInvalidInput, time)
	}
	return nil
}
