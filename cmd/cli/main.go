package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/limaJavier/planner/pkg/catalog"
	"github.com/limaJavier/planner/pkg/csvio"
	"github.com/limaJavier/planner/pkg/model"
	"github.com/limaJavier/planner/pkg/report"
	"go.uber.org/zap"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	//** Configuration
	config, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		return 1
	}

	logger, err := newLogger(config.Verbose)
	if err != nil {
		fmt.Fprintf(stderr, "cannot initialize logger: %v\n", err)
		return 1
	}
	logger = logger.With(zap.String("run", uuid.NewString()))
	defer logger.Sync()

	request, err := config.request()
	if err != nil {
		logger.Error("failed to generate schedules", zap.Error(err))
		fmt.Fprintf(stderr, "failed to generate schedules: %v\n", err)
		return 1
	}

	//** Catalog
	courses := catalog.Load(config.Catalog, logger)
	if len(request.Courses) > 0 {
		courses, err = catalog.Select(courses, request.Courses)
		if err != nil {
			logger.Error("cannot select courses", zap.Error(err))
			fmt.Fprintf(stderr, "cannot select courses: %v\n", err)
			return 1
		}
	}

	//** Generation
	scheduler := model.NewStandardScheduler(logger)
	schedules, err := scheduler.Generate(courses, request.Preferences, request.Breaks, request.Options)
	if err != nil {
		logger.Error("failed to generate schedules", zap.Error(err))
		fmt.Fprintf(stderr, "failed to generate schedules: %v\n", err)
		return 1
	}

	filtered := model.FilterSchedules(schedules, request.ConflictFilter, request.DayFilter)
	results := model.SortSchedules(filtered, request.SortKey)
	logger.Info("schedules ready",
		zap.Int("courses", len(courses)),
		zap.Int("generated", len(schedules)),
		zap.Int("shown", len(results)),
	)

	//** Output
	if err := writeResults(stdout, config, filtered, results, logger); err != nil {
		logger.Error("cannot write results", zap.Error(err))
		fmt.Fprintf(stderr, "cannot write results: %v\n", err)
		return 1
	}
	return 0
}

// Statistics are computed over the score-ranked list so that its best schedule is the highest scoring one
func writeResults(stdout io.Writer, config Config, ranked, results []model.Schedule, logger *zap.Logger) error {
	if err := report.Statistics(stdout, model.ScheduleStatistics(ranked)); err != nil {
		return err
	}
	if len(results) == 0 {
		return nil
	}

	fmt.Fprintln(stdout)
	if err := report.Overview(stdout, results); err != nil {
		return err
	}

	if config.Out == "" {
		for _, schedule := range results {
			fmt.Fprintln(stdout)
			if err := report.Write(stdout, schedule); err != nil {
				return err
			}
		}
	} else {
		for _, schedule := range results {
			path, err := report.Save(config.Out, schedule)
			if err != nil {
				return err
			}
			logger.Debug("schedule exported", zap.String("id", schedule.Id), zap.String("path", path))
		}
	}

	if config.Csv != "" {
		if err := csvio.ExportSchedules(config.Csv, results); err != nil {
			return err
		}
		logger.Debug("csv exported", zap.String("path", config.Csv))
	}
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
