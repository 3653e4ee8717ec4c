package main

import (
	"fmt"
	"strconv"

	"aocgen/internal/scaffold"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// listCmd shows what is registered in the index files
var listCmd = &cobra.Command{
	Use:   "list [year]",
	Short: "List registered years, or the registered days of one year",
	Long: `Reads the index files without modifying them.

With no argument, lists the years registered in src/main.rs. With a year,
lists the days registered in that year's mod.rs.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	ws := resolveWorkspace()
	cfg, err := loadConfig(ws)
	if err != nil {
		logger.Error("configuration error", zap.Error(err))
		return err
	}

	gen := scaffold.New(cfg, ws, logger)

	if len(args) == 0 {
		years, err := gen.Years()
		if err != nil {
			return err
		}
		if len(years) == 0 {
			fmt.Println("No years registered.")
			return nil
		}
		for _, y := range years {
			fmt.Println(y)
		}
		return nil
	}

	year, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid year %q: %w", args[0], err)
	}
	days, err := gen.Days(year)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		fmt.Printf("No days registered for year %d.\n", year)
		return nil
	}
	for _, d := range days {
		fmt.Println(d)
	}
	return nil
}
