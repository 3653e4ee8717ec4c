// Package scaffold creates new per-day solution entries: it writes the
// templated solution file and registers it in the per-year and top-level
// index files via the registry reconcilers.
//
// Generation is not transactional. If the top-level index is missing, the
// solution file and per-year index may already have been written; a rerun
// after fixing the workspace is safe because each reconciliation step is
// idempotent.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"aocgen/internal/config"
	"aocgen/internal/registry"

	"go.uber.org/zap"
)

// ErrSolutionExists is returned when the target solution file is already
// present.
var ErrSolutionExists = errors.New("solution file already exists")

// ErrTopIndexMissing is returned when a new year needs registering but the
// top-level index file does not exist. aocgen never creates that file, since
// it carries the program entry point in its tail.
var ErrTopIndexMissing = errors.New("top-level index file not found")

// Result reports what a Generate call did to the workspace.
type Result struct {
	SolutionPath string // created solution file
	YearDir      string // per-year directory
	NewYearDir   bool   // year directory was created by this run
	DayIndexPath string // per-year index file
	DayAdded     bool   // false = day was already registered
	TopIndexPath string // top-level index file, empty when not touched
	YearAdded    bool   // false = year was already registered (or index untouched)
}

// Generator scaffolds solution entries inside one workspace.
type Generator struct {
	cfg       *config.Config
	workspace string
	logger    *zap.Logger
}

// New returns a Generator rooted at workspace.
func New(cfg *config.Config, workspace string, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{cfg: cfg, workspace: workspace, logger: logger}
}

// Generate creates the solution file for (year, day) and registers it in the
// indexes. Validation happens before any filesystem mutation. The top-level
// index is only reconciled when the year directory was newly created.
func (g *Generator) Generate(year, day int) (*Result, error) {
	if err := g.cfg.ValidateRequest(year, day); err != nil {
		return nil, err
	}

	layout := g.cfg.Layout
	srcDir := filepath.Join(g.workspace, layout.SourceDir)
	yearDir := filepath.Join(srcDir, fmt.Sprintf("%s%d", layout.YearPrefix, year))
	solutionPath := filepath.Join(yearDir, fmt.Sprintf("%s%d%s", layout.DayPrefix, day, layout.FileExt))

	res := &Result{
		SolutionPath: solutionPath,
		YearDir:      yearDir,
		DayIndexPath: filepath.Join(yearDir, layout.DayIndexFile),
	}

	if _, err := os.Stat(solutionPath); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrSolutionExists, solutionPath)
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to stat %s: %w", solutionPath, err)
	}

	if _, err := os.Stat(yearDir); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat %s: %w", yearDir, err)
		}
		res.NewYearDir = true
	}
	if err := os.MkdirAll(yearDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", yearDir, err)
	}
	if res.NewYearDir {
		g.logger.Info("created year directory", zap.String("dir", yearDir))
	}

	content, err := RenderSolution(day)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(solutionPath, []byte(content), 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", solutionPath, err)
	}
	g.logger.Info("created solution file", zap.String("file", solutionPath))

	if err := g.reconcileDayIndex(res, day); err != nil {
		return nil, err
	}

	if res.NewYearDir {
		res.TopIndexPath = filepath.Join(srcDir, layout.TopIndexFile)
		if err := g.reconcileTopIndex(res, year); err != nil {
			return nil, err
		}
	}

	return res, nil
}

// reconcileDayIndex merges day into the per-year index, creating the file if
// it does not exist yet.
func (g *Generator) reconcileDayIndex(res *Result, day int) error {
	existing, err := readIfExists(res.DayIndexPath)
	if err != nil {
		return err
	}

	content, added := registry.Reconcile(existing, day, g.cfg.Layout.DayPrefix)
	if err := os.WriteFile(res.DayIndexPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", res.DayIndexPath, err)
	}
	res.DayAdded = added

	if added {
		g.logger.Info("registered day in year index",
			zap.Int("day", day), zap.String("file", res.DayIndexPath))
	} else {
		g.logger.Info("day already registered in year index",
			zap.Int("day", day), zap.String("file", res.DayIndexPath))
	}
	return nil
}

// reconcileTopIndex merges year into the top-level index, which must already
// exist. Its tail (everything after the first blank line) is preserved
// verbatim.
func (g *Generator) reconcileTopIndex(res *Result, year int) error {
	data, err := os.ReadFile(res.TopIndexPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: expected %s", ErrTopIndexMissing, res.TopIndexPath)
		}
		return fmt.Errorf("failed to read %s: %w", res.TopIndexPath, err)
	}

	content, added := registry.ReconcileWithTail(string(data), year, g.cfg.Layout.YearPrefix)
	res.YearAdded = added
	if !added {
		g.logger.Info("year already registered in top-level index",
			zap.Int("year", year), zap.String("file", res.TopIndexPath))
		return nil
	}

	if err := os.WriteFile(res.TopIndexPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", res.TopIndexPath, err)
	}
	g.logger.Info("registered year in top-level index",
		zap.Int("year", year), zap.String("file", res.TopIndexPath))
	return nil
}

func readIfExists(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
