package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"runtime"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/planner/pkg/model"
	"github.com/samber/lo"
)

const MB float32 = 1024 * 1024

type StrategyType int

const (
	capped StrategyType = iota
	exhaustive
)

var strategyTypes = map[StrategyType]string{
	capped:     "capped",
	exhaustive: "exhaustive",
}

type CatalogMetadata struct {
	Name         string
	Courses      int
	Sections     int // Per course
	Combinations int
}

type BenchmarkResult struct {
	Strategy  StrategyType
	Catalog   CatalogMetadata
	Duration  time.Duration
	Memory    float32 // Allocated during generation, in MB
	Accepted  int
	BestScore int
}

// BenchmarkRow is the CSV shape of a BenchmarkResult
type BenchmarkRow struct {
	Strategy     string  `csv:"Strategy"`
	Catalog      string  `csv:"Catalog"`
	Courses      int     `csv:"Courses"`
	Sections     int     `csv:"Sections"`
	Combinations int     `csv:"Combinations"`
	Duration     int64   `csv:"Duration(us)"`
	Memory       float32 `csv:"Memory(MB)"`
	Accepted     int     `csv:"Accepted"`
	BestScore    int     `csv:"BestScore"`
}

var dayPatterns = [][]model.Weekday{
	{model.Monday, model.Wednesday, model.Friday},
	{model.Tuesday, model.Thursday},
	{model.Monday, model.Wednesday},
	{model.Wednesday},
	{model.Friday},
}

func main() {
	seed := flag.Int64("seed", 1, "Seed of the synthetic catalogs")
	outFile := flag.String("out", "benchmark_results.csv", "Path to the CSV file where the results will be written")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	catalogs := getCatalogs()
	results := make([]BenchmarkResult, 0, len(catalogs)*len(strategyTypes))

	for _, metadata := range catalogs {
		courses := generateCatalog(metadata, rng)
		for _, strategy := range []StrategyType{capped, exhaustive} {
			fmt.Printf("Benchmarking catalog \"%v\" (%v combinations) with strategy \"%v\"\n", metadata.Name, metadata.Combinations, strategyTypes[strategy])

			result, err := measure(strategy, metadata, courses)
			if err != nil {
				log.Fatalf("an error occurred while benchmarking catalog \"%v\" with strategy \"%v\": %v", metadata.Name, strategyTypes[strategy], err)
			}
			results = append(results, result)
		}
	}

	if err := toCsv(results, *outFile); err != nil {
		log.Fatalf("cannot write results: %v", err)
	}
}

func getCatalogs() []CatalogMetadata {
	shapes := [][2]int{{2, 3}, {3, 4}, {4, 4}, {5, 5}, {6, 5}, {6, 7}}
	return lo.Map(shapes, func(shape [2]int, _ int) CatalogMetadata {
		courses, sections := shape[0], shape[1]
		return CatalogMetadata{
			Name:         fmt.Sprintf("%dx%d", courses, sections),
			Courses:      courses,
			Sections:     sections,
			Combinations: int(math.Pow(float64(sections), float64(courses))),
		}
	})
}

// generateCatalog builds courses whose sections meet on a common weekday pattern at a random half-hour between 08:00 and 17:00
func generateCatalog(metadata CatalogMetadata, rng *rand.Rand) []model.Course {
	courses := make([]model.Course, 0, metadata.Courses)
	for i := 0; i < metadata.Courses; i++ {
		course := model.Course{
			Id:       fmt.Sprintf("SYN %d", 100+i),
			Subject:  "SYN",
			Number:   fmt.Sprint(100 + i),
			Title:    fmt.Sprintf("Synthetic course %d", i+1),
			Credits:  3,
			Sections: make([]model.Section, 0, metadata.Sections),
		}

		for j := 0; j < metadata.Sections; j++ {
			days := dayPatterns[rng.Intn(len(dayPatterns))]
			start := model.TimeOfDay(8*60 + 30*rng.Intn(19))
			duration := model.TimeOfDay(lo.Ternary(len(days) == 2, 75, 50))

			course.Sections = append(course.Sections, model.Section{
				Id:         fmt.Sprintf("SYN%d-%03d", 100+i, j+1),
				Instructor: fmt.Sprintf("Instructor %d", rng.Intn(10)+1),
				Room:       fmt.Sprintf("R%d", rng.Intn(20)+100),
				Times:      []model.MeetingTime{{Days: days, Start: start, End: start + duration}},
			})
		}
		courses = append(courses, course)
	}
	return courses
}

func measure(strategy StrategyType, metadata CatalogMetadata, courses []model.Course) (BenchmarkResult, error) {
	options := model.DefaultGenerationOptions()
	if strategy == exhaustive {
		options.MaxVariations = math.MaxInt
	}
	scheduler := model.NewStandardScheduler(nil)

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	schedules, err := scheduler.Generate(courses, model.DefaultPreferences(), nil, options)
	duration := time.Since(start)

	runtime.ReadMemStats(&after)
	if err != nil {
		return BenchmarkResult{}, err
	}

	result := BenchmarkResult{
		Strategy: strategy,
		Catalog:  metadata,
		Duration: duration,
		Memory:   float32(after.TotalAlloc-before.TotalAlloc) / MB,
		Accepted: len(schedules),
	}
	if len(schedules) > 0 {
		result.BestScore = schedules[0].Score
	}
	return result, nil
}

func toRows(results []BenchmarkResult) []*BenchmarkRow {
	return lo.Map(results, func(result BenchmarkResult, _ int) *BenchmarkRow {
		return &BenchmarkRow{
			Strategy:     strategyTypes[result.Strategy],
			Catalog:      result.Catalog.Name,
			Courses:      result.Catalog.Courses,
			Sections:     result.Catalog.Sections,
			Combinations: result.Catalog.Combinations,
			Duration:     result.Duration.Microseconds(),
			Memory:       result.Memory,
			Accepted:     result.Accepted,
			BestScore:    result.BestScore,
		}
	})
}

func toCsv(results []BenchmarkResult, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create CSV file: %w", err)
	}
	defer file.Close()

	rows := toRows(results)
	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return fmt.Errorf("cannot write CSV records: %w", err)
	}
	return nil
}
