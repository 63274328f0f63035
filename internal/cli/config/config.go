// Package config loads CLI configuration from defaults, a YAML file,
// environment variables, and flags.
package config

import (
	"errors"
	"fmt"
)

// Default values for a plain run.
const (
	DefaultInputDir   = "."
	DefaultOutputFile = "Excel_Analysis_Report.md"
	DefaultSampleSize = 50
	DefaultAgreement  = 1.0
)

// Config holds the resolved configuration of one run.
type Config struct {
	// InputDir is the directory scanned for workbooks.
	InputDir string `koanf:"input_dir"`
	// OutputFile is the Markdown report path.
	OutputFile string `koanf:"output_file"`
	// JSONFile, when set, receives a JSON rendition of the report.
	JSONFile string `koanf:"json_file"`
	// SampleSize bounds how many non-empty cells are read per column.
	SampleSize int `koanf:"sample_size"`
	// Agreement is the classifier agreement threshold in (0, 1].
	Agreement float64 `koanf:"agreement"`
	// Seed seeds the fake value generator; zero draws a random seed.
	Seed uint64 `koanf:"seed"`
	// NameKeywords override the header keywords marking name-like columns.
	NameKeywords []string `koanf:"name_keywords"`
	// Summary controls the stdout per-file summary table.
	Summary bool `koanf:"summary"`
	// Verbose enables debug logging.
	Verbose bool `koanf:"verbose"`
}

// Validate checks value ranges after loading.
func (c *Config) Validate() error {
	if c.InputDir == "" {
		return errors.New("input_dir must not be empty")
	}
	if c.OutputFile == "" {
		return errors.New("output_file must not be empty")
	}
	if c.SampleSize <= 0 {
		return fmt.Errorf("sample_size must be positive, got %d", c.SampleSize)
	}
	if c.Agreement <= 0 || c.Agreement > 1 {
		return fmt.Errorf("agreement must be in (0, 1], got %g", c.Agreement)
	}
	return nil
}
