package facts

import (
	"github.com/o0-o/mountfacts/internal/logger"
	"github.com/o0-o/mountfacts/pkg/driver"
	"github.com/o0-o/mountfacts/pkg/mount"
)

// Report summarizes one pipeline run.
type Report struct {
	// Parsed counts successfully parsed records.
	Parsed int `json:"parsed" yaml:"parsed"`

	// Skipped counts malformed lines dropped during parsing.
	Skipped int `json:"skipped" yaml:"skipped"`

	// Warnings describes each skipped line.
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Gather runs the full pipeline: parse the raw input, classify every
// record, and normalize into facts. A nil registry selects the default.
//
// Per-line problems are recovered inline and surfaced in the Report; only
// structural misuse (unknown syntax, unsupported input shape upstream)
// returns an error.
func Gather(in mount.Input, syntax mount.Syntax, reg *driver.Registry) ([]Fact, Report, error) {
	res, err := mount.Parse(in, syntax)
	if err != nil {
		return nil, Report{}, err
	}

	if res.Skipped > 0 {
		logger.Warn("dropped malformed lines",
			logger.KeySyntax, string(syntax),
			logger.KeySkipped, res.Skipped)
	}

	engine := NewEngine(reg)
	out := make([]Fact, 0, len(res.Records))
	for _, rec := range res.Records {
		f := engine.Normalize(engine.Classify(rec))
		logger.Debug("classified entry",
			logger.Source(rec.Source),
			logger.Mount(rec.MountPoint),
			logger.FSType(f.Type),
			logger.KeyCategory, string(f.Category))
		out = append(out, f)
	}

	return out, Report{
		Parsed:   len(res.Records),
		Skipped:  res.Skipped,
		Warnings: res.Warnings,
	}, nil
}
