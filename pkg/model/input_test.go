package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFromJson(t *testing.T) {
	//** Act
	courses, err := CatalogFromJson("testdata/catalog.json")

	//** Assert
	require.NoError(t, err)
	require.Len(t, courses, 2)

	cs101 := courses[0]
	assert.Equal(t, "cs101", cs101.Id)
	assert.Equal(t, "CS 101", cs101.Code())
	assert.Equal(t, 4, cs101.Credits)
	require.Len(t, cs101.Sections, 2)
	assert.Equal(t, []MeetingTime{
		{Days: []Weekday{Monday, Wednesday}, Start: clock("09:00"), End: clock("10:15")},
		{Days: []Weekday{Friday}, Start: clock("13:00"), End: clock("14:50")},
	}, cs101.Sections[0].Times)
	assert.Equal(t, "Dr. Okafor", cs101.Sections[1].Instructor)

	math221 := courses[1]
	assert.Equal(t, "MATH 221", math221.Id) // Derived from subject and number
	assert.Equal(t, "221", math221.Number)
	assert.Equal(t, []MeetingTime{
		{Days: []Weekday{Monday}, Start: clock("08:00"), End: clock("08:50")},
		{Days: []Weekday{Wednesday, Friday}, Start: clock("08:00"), End: clock("08:50")},
	}, math221.Sections[0].Times)
}

func TestCatalogFromJsonMissingFile(t *testing.T) {
	_, err := CatalogFromJson("testdata/missing.json")
	assert.Error(t, err)
}

func TestCatalogFromJsonBytes(t *testing.T) {
	t.Run("Wrapped in an object", func(t *testing.T) {
		courses, err := CatalogFromJsonBytes([]byte(`{"courses": [{"subject": "BIO", "number": "110", "title": "Biology", "sections": []}]}`))

		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Empty(t, courses[0].Sections)
	})

	t.Run("Both day and days", func(t *testing.T) {
		courses, err := CatalogFromJsonBytes([]byte(`[{"subject": "BIO", "number": "110", "title": "Biology", "sections": [
			{"id": "1", "times": [{"day": "Tue", "days": ["Thu", "Tue"], "start": "10:00", "end": "11:00"}]}
		]}]`))

		require.NoError(t, err)
		assert.Equal(t, []Weekday{Tuesday, Thursday}, courses[0].Sections[0].Times[0].Days)
	})

	invalid := map[string]string{
		"Malformed json":         `[{"subject": `,
		"Object without courses": `{"catalog": []}`,
		"Missing title":          `[{"subject": "BIO", "number": "110", "sections": []}]`,
		"Missing section id":     `[{"subject": "BIO", "number": "110", "title": "Biology", "sections": [{"times": []}]}]`,
		"Bad time format":        `[{"subject": "BIO", "number": "110", "title": "Biology", "sections": [{"id": "1", "times": [{"day": "Mon", "start": "9am", "end": "10:00"}]}]}]`,
		"End before start":       `[{"subject": "BIO", "number": "110", "title": "Biology", "sections": [{"id": "1", "times": [{"day": "Mon", "start": "11:00", "end": "10:00"}]}]}]`,
		"Unknown day":            `[{"subject": "BIO", "number": "110", "title": "Biology", "sections": [{"id": "1", "times": [{"day": "Sat", "start": "09:00", "end": "10:00"}]}]}]`,
		"No day":                 `[{"subject": "BIO", "number": "110", "title": "Biology", "sections": [{"id": "1", "times": [{"start": "09:00", "end": "10:00"}]}]}]`,
		"Duplicate section":      `[{"subject": "BIO", "number": "110", "title": "Biology", "sections": [{"id": "1"}, {"id": "1"}]}]`,
		"Duplicate course":       `[{"subject": "BIO", "number": "110", "title": "Biology"}, {"subject": "BIO", "number": "110", "title": "Biology"}]`,
		"Negative credits":       `[{"subject": "BIO", "number": "110", "title": "Biology", "credits": -1}]`,
	}

	for name, document := range invalid {
		t.Run(name, func(t *testing.T) {
			courses, err := CatalogFromJsonBytes([]byte(document))

			assert.Error(t, err)
			assert.Nil(t, courses)
		})
	}
}

func TestRawPreferences(t *testing.T) {
	t.Run("Defaults for empty fields", func(t *testing.T) {
		preferences, err := RawPreferences{PassingMins: 15}.Preferences()

		require.NoError(t, err)
		assert.Equal(t, DefaultPreferences(), preferences)
	})

	t.Run("Explicit values", func(t *testing.T) {
		preferences, err := RawPreferences{
			Style:       "spread",
			Earliest:    "9:00",
			Latest:      "17:00",
			NoFriday:    true,
			AvoidNights: true,
			PassingMins: 10,
		}.Preferences()

		require.NoError(t, err)
		assert.Equal(t, Preferences{
			Style:       StyleSpread,
			Earliest:    clock("09:00"),
			Latest:      clock("17:00"),
			NoFriday:    true,
			AvoidNights: true,
			PassingMins: 10,
		}, preferences)
	})

	invalid := []RawPreferences{
		{Style: "dense", PassingMins: 15},
		{Earliest: "25:00", PassingMins: 15},
		{Latest: "6pm", PassingMins: 15},
		{PassingMins: 20},
	}
	for _, raw := range invalid {
		_, err := raw.Preferences()
		assert.ErrorIs(t, err, ErrInvalidInput, "%+v", raw)
	}
}

func TestParseBreakConstraint(t *testing.T) {
	breakConstraint, err := ParseBreakConstraint("wed 12:00-13:30")
	require.NoError(t, err)
	assert.Equal(t, BreakConstraint{Day: Wednesday, Start: clock("12:00"), End: clock("13:30")}, breakConstraint)
	assert.Equal(t, "Wed 12:00-13:30", breakConstraint.String())

	breakConstraint, err = ParseBreakConstraint("Fri 8:00 - 9:00")
	require.NoError(t, err)
	assert.Equal(t, BreakConstraint{Day: Friday, Start: clock("08:00"), End: clock("09:00")}, breakConstraint)

	for _, value := range []string{"", "Mon", "Mon 12:00", "Sun 12:00-13:00", "Mon 13:00-12:00", "Mon 12:00-12:00", "Mon noon-13:00"} {
		_, err := ParseBreakConstraint(value)
		assert.ErrorIs(t, err, ErrInvalidInput, value)
	}
}
