// File: pkg/structurize/execute.go

// Package structurize reorganizes a flat collection of high-quality media
// files into a directory structure mirrored from a curated preview tree.
//
// The pipeline runs in five stages: mirror the preview directory skeleton,
// list the preview files, optionally filter to selected previews, map every
// preview to its HQ source and its destination, and finally copy the files
// with per-file warning/error accounting.
package structurize

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Execute runs the full pipeline for the given arguments and returns the
// per-file outcome counts. Only setup failures (unreadable preview root,
// pre-existing output directory without Force) abort the run; per-file copy
// failures are aggregated into the returned stats instead.
func Execute(args Arguments, logger *zap.Logger) (RunStats, error) {
	if args.SelName == "" {
		args.SelName = DefaultSelName
	}

	logger.Debug("Starting structurize run",
		zap.String("previewDir", args.PreviewDir),
		zap.String("flatDir", args.FlatDir),
		zap.String("outputDir", args.OutputDir),
		zap.String("selName", args.SelName))

	info, err := os.Stat(args.PreviewDir)
	if err != nil {
		return RunStats{}, fmt.Errorf("cannot read preview directory: %w", err)
	}
	if !info.IsDir() {
		return RunStats{}, fmt.Errorf("preview path %s is not a directory", args.PreviewDir)
	}

	if err := MirrorTree(args.PreviewDir, args.OutputDir, args.Force, args.MoveToTopLevel, logger); err != nil {
		return RunStats{}, fmt.Errorf("failed to mirror directory structure: %w", err)
	}

	previews, err := ListPreviews(args.PreviewDir, logger)
	if err != nil {
		return RunStats{}, fmt.Errorf("failed to list preview files: %w", err)
	}

	if args.SelOnly {
		previews = KeepSelectedOnly(previews, args.SelName, logger)
	}

	targets, err := RebasePaths(previews, args.PreviewDir, args.OutputDir)
	if err != nil {
		return RunStats{}, fmt.Errorf("failed to derive target paths: %w", err)
	}

	sources := CorrelateSources(previews, args.FlatDir, args.StripPrefixLen)

	// Collapsing the selection level only makes sense on a selection-filtered
	// list; the mirrored sel directories are then empty and get removed,
	// except in top-level mode where the whole subtree goes unused anyway.
	if args.SelOnly && args.LevelUpSel {
		leveled := LevelUpSelection(targets, args.SelName)
		if !args.MoveToTopLevel {
			RemoveSelectionDirs(targets, args.SelName, logger)
		}
		targets = leveled
	}

	targets = ApplyNaming(targets, args.OutputDir, args.AddPrefix, args.MoveToTopLevel)

	stats := CopyAll(sources, previews, targets, logger)

	logger.Info("Structurize run finished",
		zap.Int("copied", stats.Copied),
		zap.Int("warnings", stats.Warnings),
		zap.Int("errors", stats.Errors))
	return stats, nil
}
