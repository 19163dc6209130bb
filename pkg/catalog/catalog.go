package catalog

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/limaJavier/planner/pkg/csvio"
	"github.com/limaJavier/planner/pkg/model"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var ErrUnknownCourse = errors.New("unknown course")

// Read picks the loader by file extension (.json or .csv)
func Read(path string) ([]model.Course, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return model.CatalogFromJson(path)
	case ".csv":
		return csvio.LoadCatalog(path)
	default:
		return nil, fmt.Errorf("%w: unsupported catalog format %q", model.ErrInvalidInput, filepath.Ext(path))
	}
}

// Load reads the catalog at path. A catalog that cannot be read is reported as a warning and yields no courses
func Load(path string, logger *zap.Logger) []model.Course {
	if logger == nil {
		logger = zap.NewNop()
	}

	courses, err := Read(path)
	if err != nil {
		logger.Warn("cannot load catalog", zap.String("path", path), zap.Error(err))
		return []model.Course{}
	}

	logger.Debug("catalog loaded",
		zap.String("path", path),
		zap.Int("courses", len(courses)),
		zap.Int("sections", lo.SumBy(courses, func(course model.Course) int { return len(course.Sections) })),
	)
	return courses
}

// Select returns the requested courses in request order. Each id matches either a course id or its code ("CS 101"),
// case-insensitively
func Select(courses []model.Course, ids []string) ([]model.Course, error) {
	selected := make([]model.Course, 0, len(ids))
	for _, id := range ids {
		id = strings.TrimSpace(id)
		course, found := lo.Find(courses, func(course model.Course) bool {
			return strings.EqualFold(course.Id, id) || strings.EqualFold(course.Code(), id)
		})
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCourse, id)
		}
		if lo.ContainsBy(selected, func(other model.Course) bool { return other.Id == course.Id }) {
			continue
		}
		selected = append(selected, course)
	}
	return selected, nil
}
