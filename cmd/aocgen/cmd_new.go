// Package main implements the "aocgen new" command, the primary scaffolding
// entry point.
package main

import (
	"errors"
	"fmt"
	"strconv"

	"aocgen/internal/scaffold"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	newYearFlag int
	newDayFlag  int
)

// newCmd scaffolds a new solution entry
var newCmd = &cobra.Command{
	Use:   "new [year] [day]",
	Short: "Scaffold a new solution file and register it in the indexes",
	Long: `Creates src/y<year>/day<day>.rs from the solver template and registers it:
the day in src/y<year>/mod.rs (created if absent), and the year in
src/main.rs when the year directory is new. main.rs must already exist.

Year and day are given positionally or with --year/--day; flags win over
positional values, and both must be set one way or the other.

Examples:
  aocgen new 2024 17
  aocgen new --year 2024 --day 17`,
	Args: cobra.MaximumNArgs(2),
	RunE: runNew,
}

// resolveYearDay combines positional args with flag overrides. Flags win;
// both values are required after resolution.
func resolveYearDay(args []string, yearFlag, dayFlag int) (int, int, error) {
	year, day := yearFlag, dayFlag

	if year == 0 && len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid year %q: %w", args[0], err)
		}
		year = n
	}
	if day == 0 && len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil {
			return 0, 0, fmt.Errorf("invalid day %q: %w", args[1], err)
		}
		day = n
	}

	if year == 0 || day == 0 {
		return 0, 0, errors.New("both year and day are required")
	}
	return year, day, nil
}

func runNew(cmd *cobra.Command, args []string) error {
	year, day, err := resolveYearDay(args, newYearFlag, newDayFlag)
	if err != nil {
		return err
	}

	ws := resolveWorkspace()
	cfg, err := loadConfig(ws)
	if err != nil {
		logger.Error("configuration error", zap.Error(err))
		return err
	}

	logger.Info("creating solution",
		zap.Int("year", year), zap.Int("day", day), zap.String("workspace", ws))

	gen := scaffold.New(cfg, ws, logger)
	res, err := gen.Generate(year, day)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return err
	}

	fmt.Printf("✅ Created %s\n", res.SolutionPath)
	if res.DayAdded {
		fmt.Printf("   Registered day %d in %s\n", day, res.DayIndexPath)
	} else {
		fmt.Printf("   Day %d was already registered in %s\n", day, res.DayIndexPath)
	}
	if res.TopIndexPath != "" && res.YearAdded {
		fmt.Printf("   Registered year %d in %s\n", year, res.TopIndexPath)
	}

	return nil
}

func init() {
	newCmd.Flags().IntVar(&newYearFlag, "year", 0, "Year for the solution (overrides positional)")
	newCmd.Flags().IntVar(&newDayFlag, "day", 0, "Day for the solution (overrides positional)")
}
