package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/bytedance/sonic"
	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/GriffinCanCode/CourseCatalog/backend/internal/domain/catalog"
)

// tomlSeed is the TOML layout: an array of [[courses]] tables.
type tomlSeed struct {
	Courses []catalog.Course `toml:"courses"`
}

// LoadSeed reads courses from path. The format follows the extension:
// .yaml/.yml hold a list of courses, .toml holds [[courses]] tables and
// .json holds an array. Every course must pass catalog.Validate.
func LoadSeed(path string) ([]catalog.Course, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var courses []catalog.Course
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &courses)
	case ".toml":
		var seed tomlSeed
		err = toml.Unmarshal(data, &seed)
		courses = seed.Courses
	case ".json":
		err = sonic.Unmarshal(data, &courses)
	default:
		return nil, fmt.Errorf("unsupported seed format %q", ext)
	}
	if err != nil {
		return nil, &ParseError{Source: path, Err: err}
	}

	for i, c := range courses {
		if err := catalog.Validate(c); err != nil {
			return nil, fmt.Errorf("seed course %d (%q): %w", i, c.Code, err)
		}
	}
	return courses, nil
}

// LoadSeeds reads every file matching pattern, which may use ** to
// descend into subdirectories. A plain path matches itself. Files are read
// in lexical order and their courses concatenated.
func LoadSeeds(pattern string) ([]catalog.Course, error) {
	matches, err := doublestar.FilepathGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid seed pattern %q: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no seed files match %q", pattern)
	}
	sort.Strings(matches)

	var all []catalog.Course
	for _, path := range matches {
		courses, err := LoadSeed(path)
		if err != nil {
			return nil, err
		}
		all = append(all, courses...)
	}
	return all, nil
}

// Seed saves courses into store when it holds no courses yet. It returns
// how many were written.
func Seed(ctx context.Context, store Store, courses []catalog.Course) (int, error) {
	existing, err := store.Load(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, c := range courses {
		if err := store.Save(ctx, c); err != nil {
			return i, fmt.Errorf("failed to seed course %q: %w", c.Code, err)
		}
	}
	return len(courses), nil
}
