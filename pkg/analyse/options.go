// Package analyse scans directories of Excel workbooks and profiles every
// column: inferred type, observed format, and one synthetic example value.
package analyse

import (
	"log/slog"
	"time"

	"github.com/Olleman82/analyse-excel-sheets/pkg/analyse/classify"
)

// Options configures an analysis run.
type Options struct {
	// SampleSize bounds how many non-empty cells are read per column.
	SampleSize int
	// Agreement is the fraction of samples a classification rule needs,
	// in (0, 1]. 1 means every sample must satisfy the rule.
	Agreement float64
	// NameKeywords mark a header as name-like (case-insensitive substring
	// match). Empty means the built-in Swedish and English defaults.
	NameKeywords []string
	// Seed seeds the fake value generator. Zero draws a random seed.
	Seed uint64
	// MaxFakeAttempts bounds the re-draws used to keep a fake value from
	// colliding with sampled data.
	MaxFakeAttempts int
	// Logger receives progress and warnings. Nil discards them.
	Logger *slog.Logger
	// Now supplies the report timestamp. Nil means time.Now.
	Now func() time.Time
}

// DefaultOptions returns the options used by a plain run.
func DefaultOptions() Options {
	return Options{
		SampleSize:      50,
		Agreement:       1,
		MaxFakeAttempts: 16,
	}
}

// normalized fills zero fields with their defaults.
func (o Options) normalized() Options {
	def := DefaultOptions()
	if o.SampleSize <= 0 {
		o.SampleSize = def.SampleSize
	}
	if o.Agreement <= 0 || o.Agreement > 1 {
		o.Agreement = def.Agreement
	}
	if len(o.NameKeywords) == 0 {
		o.NameKeywords = classify.DefaultNameKeywords()
	}
	if o.MaxFakeAttempts <= 0 {
		o.MaxFakeAttempts = def.MaxFakeAttempts
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	if o.Now == nil {
		o.Now = time.Now
	}
	return o
}
