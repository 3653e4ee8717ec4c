package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"aocgen/internal/registry"
)

// Years returns the years registered in the top-level index, ascending.
// A missing index yields ErrTopIndexMissing, matching Generate's
// precondition.
func (g *Generator) Years() ([]int, error) {
	path := filepath.Join(g.workspace, g.cfg.Layout.SourceDir, g.cfg.Layout.TopIndexFile)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: expected %s", ErrTopIndexMissing, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	keys, _ := registry.ParseDeclarationsUntilBlank(registry.SplitLines(string(data)), g.cfg.Layout.YearPrefix)
	return registry.SortedKeys(keys), nil
}

// Days returns the days registered in the given year's index, ascending.
// A year with no index file simply has no days yet.
func (g *Generator) Days(year int) ([]int, error) {
	yearDir := filepath.Join(g.workspace, g.cfg.Layout.SourceDir,
		fmt.Sprintf("%s%d", g.cfg.Layout.YearPrefix, year))
	existing, err := readIfExists(filepath.Join(yearDir, g.cfg.Layout.DayIndexFile))
	if err != nil {
		return nil, err
	}

	keys := registry.ParseDeclarations(registry.SplitLines(existing), g.cfg.Layout.DayPrefix)
	return registry.SortedKeys(keys), nil
}
