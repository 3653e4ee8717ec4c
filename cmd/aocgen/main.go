// Package main implements the aocgen CLI, a scaffolder for per-day Advent
// of Code solution files in a Rust workspace. It creates the solution file
// from a fixed template and registers it in the per-year mod.rs and, for new
// years, in the top-level main.rs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"aocgen/internal/config"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags
	verbose   bool
	workspace string

	// Logger
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "aocgen",
	Short: "aocgen - Advent of Code solution scaffolder",
	Long: `aocgen scaffolds new Advent of Code solution entries.

For a given year and day it creates src/y<year>/day<day>.rs from the solver
template, registers the day in src/y<year>/mod.rs, and - when the year is
new - registers the year in src/main.rs, leaving everything after the first
blank line of main.rs untouched.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		cfg.Encoding = "console"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// resolveWorkspace returns the --workspace flag or the current directory.
func resolveWorkspace() string {
	if workspace != "" {
		return workspace
	}
	ws, err := os.Getwd()
	if err != nil {
		return "."
	}
	return ws
}

// loadConfig loads the optional aocgen.yaml from the workspace.
func loadConfig(ws string) (*config.Config, error) {
	return config.Load(filepath.Join(ws, config.ConfigFileName))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&workspace, "workspace", "w", "", "Workspace directory (default: current)")

	// Add commands to root
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(listCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
