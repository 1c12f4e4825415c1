// Package orchestrator coordinates the header renaming workflow for fastaheader.
package orchestrator

import (
	"fmt"
	"path/filepath"
	"time"

	"fastaheader/internal/config"
	"fastaheader/internal/normalizer"
	"fastaheader/internal/output"
	"fastaheader/internal/rewriter"
)

// OutputSuffix is appended to the canonical prefix to name the output file.
const OutputSuffix = "assembly.fasta"

// Summary represents the outcome of a run.
type Summary struct {
	InputPath  string
	OutputPath string
	Prefix     string
	Stats      rewriter.Stats
	DryRun     bool          // True if no file was written
	Duration   time.Duration // Wall time of the run
}

// OutputPath returns the path of the renamed file for a canonical prefix.
// The prefix already ends in an underscore, so no separator is inserted
// between it and the suffix.
func OutputPath(outputDir, prefix string) string {
	return filepath.Join(outputDir, prefix+OutputSuffix)
}

// Run validates the options, derives the canonical prefix from the name of
// the directory holding the input file and writes the renamed copy.
// Validation failures return before any file is opened.
func Run(opts config.Options, out *output.Output) (*Summary, error) {
	start := time.Now()

	result := config.ValidateOptions(opts)
	for _, w := range result.Warnings {
		out.Warn(w.Message, "field", w.Field)
	}
	if err := result.Err(); err != nil {
		return nil, err
	}

	resolved, err := opts.Resolve()
	if err != nil {
		return nil, err
	}

	prefix := normalizer.Canonicalize(resolved.DirName)
	out.Verbose("canonical prefix",
		"directory", resolved.DirName,
		"prefix", prefix,
		"isolate", normalizer.Isolate(prefix),
		"method", normalizer.Method(prefix))

	outPath := OutputPath(resolved.OutputDir, prefix)
	out.Verbose("rewriting headers", "input", resolved.InputPath, "output", outPath, "dryRun", opts.DryRun)

	var stats rewriter.Stats
	if opts.DryRun {
		stats, err = rewriter.CountFile(resolved.InputPath, prefix)
	} else {
		stats, err = rewriter.RewriteFile(resolved.InputPath, outPath, prefix)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to rename headers: %w", err)
	}

	summary := &Summary{
		InputPath:  resolved.InputPath,
		OutputPath: outPath,
		Prefix:     prefix,
		Stats:      stats,
		DryRun:     opts.DryRun,
		Duration:   time.Since(start),
	}

	out.Verbose("rewrite finished",
		"lines", stats.Lines,
		"headers", stats.Headers,
		"circular", stats.Circular,
		"linear", stats.Linear,
		"duration", summary.Duration)

	return summary, nil
}

// PrintSummary returns the confirmation line shown after a run.
func (s *Summary) PrintSummary() string {
	if s.DryRun {
		return fmt.Sprintf("Dry run: %d headers would be renamed into %s", s.Stats.Headers, s.OutputPath)
	}
	return "Headers were successfully renamed!"
}
