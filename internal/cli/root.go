// Package cli provides the command-line interface for analyse-excel-sheets.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Olleman82/analyse-excel-sheets/internal/cli/config"
	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse"
	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/report"
	"github.com/spf13/cobra"
)

// Version information (set at build time).
var Version = "0.1.0"

var cfgFile string

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "analyse-excel-sheets",
		Short: "Profile Excel columns and illustrate them with fake data",
		Long: `analyse-excel-sheets scans a directory for .xlsx files, infers the type of
every column from a sample of its values, and writes a Markdown report in
which each column is illustrated with a synthetic example instead of real
data.

A plain invocation scans the current directory and writes
Excel_Analysis_Report.md next to it.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./analyse-excel-sheets.yaml)")
	rootCmd.Flags().StringP("dir", "d", config.DefaultInputDir, "Directory scanned for .xlsx files")
	rootCmd.Flags().StringP("output", "o", config.DefaultOutputFile, "Markdown report path")
	rootCmd.Flags().String("json", "", "Also write a JSON rendition of the report to this path")
	rootCmd.Flags().Int("sample-size", config.DefaultSampleSize, "Non-empty cells sampled per column")
	rootCmd.Flags().Float64("agreement", config.DefaultAgreement, "Fraction of samples a type rule must match, in (0,1]")
	rootCmd.Flags().Uint64("seed", 0, "Fake value generator seed (0 = random)")
	rootCmd.Flags().StringSlice("name-keywords", nil, "Header keywords marking name-like columns")
	rootCmd.Flags().Bool("summary", true, "Print a per-file summary table to stdout")
	rootCmd.Flags().BoolP("verbose", "v", false, "Verbose output")

	return rootCmd
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	if used := config.FileUsed(); used != "" {
		logger.Debug("using config file", "path", used)
	}

	analyzer := analyse.New(analyse.Options{
		SampleSize:   cfg.SampleSize,
		Agreement:    cfg.Agreement,
		NameKeywords: cfg.NameKeywords,
		Seed:         cfg.Seed,
		Logger:       logger,
	})

	rep, err := analyzer.Directory(cfg.InputDir)
	if err != nil {
		return err
	}

	if err := report.WriteFile(cfg.OutputFile, []byte(report.Markdown(rep))); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	logger.Info("report written", "path", cfg.OutputFile, "files", len(rep.Files))

	if cfg.JSONFile != "" {
		data, err := report.ToJSON(rep, true)
		if err != nil {
			return fmt.Errorf("encode json report: %w", err)
		}
		if err := report.WriteFile(cfg.JSONFile, data); err != nil {
			return fmt.Errorf("write json report: %w", err)
		}
		logger.Info("json report written", "path", cfg.JSONFile)
	}

	if cfg.Summary {
		renderSummary(cmd.OutOrStdout(), rep)
	}
	return nil
}

// newLogger builds the run logger writing to w. Info level by default,
// debug when verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
