package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/onsi/gomega"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCli(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun(t *testing.T) {
	//** Act
	code, stdout, stderr := runCli(t, "--catalog", "testdata/catalog.json", "--min-score", "0")

	//** Assert
	g := gomega.NewWithT(t)
	require.Equal(t, 0, code, stderr)
	g.Expect(stdout).To(gomega.ContainSubstring("Schedules: 2\n"))
	g.Expect(stdout).To(gomega.ContainSubstring("Schedule schedule-1\n"))
	g.Expect(stdout).To(gomega.ContainSubstring("Schedule schedule-2\n"))
	g.Expect(stdout).To(gomega.ContainSubstring("MATH 221 - Calculus II\n"))
}

func TestRunWritesFiles(t *testing.T) {
	//** Arrange
	directory := t.TempDir()
	out := filepath.Join(directory, "reports")
	csv := filepath.Join(directory, "schedules.csv")

	//** Act
	code, stdout, stderr := runCli(t,
		"--catalog", "testdata/catalog.json",
		"--courses", "CS 101,math 221",
		"--min-score", "0",
		"--out", out,
		"--csv", csv,
	)

	//** Assert
	require.Equal(t, 0, code, stderr)
	assert.NotContains(t, stdout, "COURSES:")
	assert.FileExists(t, filepath.Join(out, "schedule-1.txt"))
	assert.FileExists(t, filepath.Join(out, "schedule-2.txt"))

	content, err := os.ReadFile(csv)
	require.NoError(t, err)
	assert.Contains(t, string(content), "ScheduleId,Rank,Score")
}

func TestRunMissingCatalog(t *testing.T) {
	code, stdout, stderr := runCli(t, "--catalog", "testdata/missing.json")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "No schedules found\n", stdout)
}

func TestRunFilters(t *testing.T) {
	code, stdout, stderr := runCli(t, "--catalog", "testdata/catalog.json", "--min-score", "0", "--filter-conflicts", "with-conflicts")

	require.Equal(t, 0, code, stderr)
	assert.Equal(t, "No schedules found\n", stdout)
}

func TestRunFailures(t *testing.T) {
	scenarios := map[string][]string{
		"Unknown flag":     {"--bogus"},
		"Unknown course":   {"--courses", "BIO 100"},
		"Unknown style":    {"--style", "relaxed"},
		"Malformed time":   {"--earliest", "25:00"},
		"Passing minutes":  {"--passing", "5"},
		"Malformed break":  {"--breaks", "Mon noon"},
		"Inverted break":   {"--breaks", "Tue 13:00-12:00"},
		"Unknown sort key": {"--sort", "name"},
	}

	for name, args := range scenarios {
		code, _, stderr := runCli(t, append([]string{"--catalog", "testdata/catalog.json"}, args...)...)

		assert.Equal(t, 1, code, name)
		assert.NotEmpty(t, stderr, name)
	}
}

func TestRunInvalidPreferencesMessage(t *testing.T) {
	code, _, stderr := runCli(t, "--catalog", "testdata/catalog.json", "--style", "relaxed")

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "failed to generate schedules")
}

func TestLoadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		config, err := loadConfig(nil)

		require.NoError(t, err)
		assert.Equal(t, "courses.json", config.Catalog)
		assert.Equal(t, "balanced", config.Style)
		assert.Equal(t, "08:30", config.Earliest)
		assert.Equal(t, "18:30", config.Latest)
		assert.Equal(t, 15, config.PassingMins)
		assert.Equal(t, 10, config.MaxVariations)
		assert.Equal(t, 50, config.MinScore)
	})

	t.Run("Flags", func(t *testing.T) {
		config, err := loadConfig([]string{
			"--courses", "cs101,MATH 221",
			"--breaks", "Mon 12:00-13:00",
			"--breaks", "Wed 12:00 - 13:00",
			"--no-friday",
			"--passing", "10",
		})
		require.NoError(t, err)

		request, err := config.request()
		require.NoError(t, err)
		assert.Equal(t, []string{"cs101", "MATH 221"}, request.Courses)
		assert.Len(t, request.Breaks, 2)
		assert.Equal(t, "Wed 12:00-13:00", request.Breaks[1].String())
		assert.True(t, request.Preferences.NoFriday)
		assert.Equal(t, 10, request.Preferences.PassingMins)
	})

	t.Run("Environment", func(t *testing.T) {
		t.Setenv("PLANNER_STYLE", "compact")
		t.Setenv("PLANNER_MAX_VARIATIONS", "3")

		config, err := loadConfig(nil)
		require.NoError(t, err)

		assert.Equal(t, "compact", config.Style)
		assert.Equal(t, 3, config.MaxVariations)
	})

	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "planner.yaml")
		content := "catalog: catalog.csv\nstyle: spread\navoid-nights: true\nmin-score: 70\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

		config, err := loadConfig([]string{"--config", path, "--min-score", "40"})
		require.NoError(t, err)

		assert.Equal(t, "catalog.csv", config.Catalog)
		assert.Equal(t, "spread", config.Style)
		assert.True(t, config.AvoidNights)
		assert.Equal(t, 40, config.MinScore) // Explicit flags win
	})
}
