package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/limaJavier/planner/pkg/model"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "PLANNER"

type Config struct {
	Catalog              string   `mapstructure:"catalog"`
	Courses              []string `mapstructure:"courses"`
	model.RawPreferences `mapstructure:",squash"`
	Breaks               []string `mapstructure:"breaks"`
	MaxVariations        int      `mapstructure:"max-variations"`
	MinScore             int      `mapstructure:"min-score"`
	AllowConflicts       bool     `mapstructure:"allow-conflicts"`
	FilterConflicts      string   `mapstructure:"filter-conflicts"`
	FilterDays           string   `mapstructure:"filter-days"`
	Sort                 string   `mapstructure:"sort"`
	Out                  string   `mapstructure:"out"`
	Csv                  string   `mapstructure:"csv"`
	Verbose              bool     `mapstructure:"verbose"`
}

// Request is everything a generation run needs, parsed out of the configuration
type Request struct {
	Courses        []string
	Preferences    model.Preferences
	Breaks         []model.BreakConstraint
	Options        model.GenerationOptions
	ConflictFilter model.ConflictFilter
	DayFilter      model.DayFilter
	SortKey        model.SortKey
}

func newFlagSet() *pflag.FlagSet {
	defaults := model.DefaultPreferences()

	flags := pflag.NewFlagSet("planner", pflag.ContinueOnError)
	flags.String("config", "", "Path to a configuration file (json, yaml or toml)")
	flags.String("catalog", "courses.json", "Path to the course catalog (.json or .csv)")
	flags.StringSlice("courses", nil, "Courses to schedule, by id or code (e.g. \"CS 101\"); every catalog course when empty")
	flags.String("style", string(defaults.Style), "Schedule style: compact, balanced or spread")
	flags.String("earliest", defaults.Earliest.String(), "Earliest acceptable class start (HH:MM)")
	flags.String("latest", defaults.Latest.String(), "Latest acceptable class end (HH:MM)")
	flags.Bool("no-friday", false, "Avoid classes on Friday")
	flags.Bool("avoid-nights", false, "Avoid classes ending after 18:00")
	flags.Int("passing", defaults.PassingMins, "Minimum passing time between classes in minutes: 0, 10 or 15")
	flags.StringArray("breaks", nil, "Protected break, e.g. \"Mon 12:00-13:00\" (repeatable)")
	flags.Int("max-variations", model.DefaultMaxVariations, "Maximum number of schedules to generate")
	flags.Int("min-score", model.DefaultMinScore, "Minimum score a schedule needs to be kept")
	flags.Bool("allow-conflicts", false, "Keep schedules whose sections overlap")
	flags.String("filter-conflicts", string(model.AllConflicts), "Result filter: all, no-conflicts or with-conflicts")
	flags.String("filter-days", string(model.AllDays), "Result filter: all, compact (3 days or less) or spread (4 days or more)")
	flags.String("sort", string(model.SortByScore), "Result order: score, days or conflicts")
	flags.String("out", "", "Directory the text export of each schedule is written to; if empty, reports go to the Standard Output")
	flags.String("csv", "", "Path of a CSV export of the schedules")
	flags.Bool("verbose", false, "Development logging")
	return flags
}

// loadConfig merges, from lowest to highest precedence, flag defaults, the configuration file, the environment
// (PLANNER_*, .env included) and explicitly set flags
func loadConfig(args []string) (Config, error) {
	loadEnvFile()

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		return Config{}, fmt.Errorf("cannot bind flags: %w", err)
	}

	if configFile := v.GetString("config"); configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("cannot read configuration file %v: %w", configFile, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("cannot decode configuration: %w", err)
	}
	return config, nil
}

// Loads the first .env found in the working directory or its parents; missing files are ignored
func loadEnvFile() {
	for _, path := range []string{".env", filepath.Join("..", ".env"), filepath.Join("..", "..", ".env")} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			break
		}
	}
}

func (config Config) request() (Request, error) {
	preferences, err := config.RawPreferences.Preferences()
	if err != nil {
		return Request{}, err
	}

	breaks := make([]model.BreakConstraint, 0, len(config.Breaks))
	for _, value := range config.Breaks {
		breakConstraint, err := model.ParseBreakConstraint(value)
		if err != nil {
			return Request{}, err
		}
		breaks = append(breaks, breakConstraint)
	}

	conflictFilter, err := model.ParseConflictFilter(config.FilterConflicts)
	if err != nil {
		return Request{}, err
	}
	dayFilter, err := model.ParseDayFilter(config.FilterDays)
	if err != nil {
		return Request{}, err
	}
	sortKey, err := model.ParseSortKey(config.Sort)
	if err != nil {
		return Request{}, err
	}

	return Request{
		Courses:     config.Courses,
		Preferences: preferences,
		Breaks:      breaks,
		Options: model.GenerationOptions{
			MaxVariations:  config.MaxVariations,
			MinScore:       config.MinScore,
			AllowConflicts: config.AllowConflicts,
		},
		ConflictFilter: conflictFilter,
		DayFilter:      dayFilter,
		SortKey:        sortKey,
	}, nil
}
