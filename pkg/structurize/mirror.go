// File: pkg/structurize/mirror.go
package structurize

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// ErrDestinationExists is returned when the output directory already exists
// and force was not requested. Nothing has been written when it is returned.
var ErrDestinationExists = errors.New("output directory already exists")

// MirrorTree creates the output directory skeleton. Without topLevel it
// recreates every subdirectory of previewDir under outputDir, files excluded;
// with topLevel it creates only the bare output root. A pre-existing output
// path is removed first when force is set and aborts the run otherwise.
func MirrorTree(previewDir, outputDir string, force, topLevel bool, logger *zap.Logger) error {
	if _, err := os.Lstat(outputDir); err == nil {
		if !force {
			return fmt.Errorf("%w: %s", ErrDestinationExists, outputDir)
		}
		logger.Warn("Output directory exists, removing since force was used",
			zap.String("outputDir", outputDir))
		if err := os.RemoveAll(outputDir); err != nil {
			return fmt.Errorf("failed to remove existing output directory: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to stat output directory: %w", err)
	}

	if topLevel {
		if err := os.MkdirAll(outputDir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		logger.Debug("Created bare output root", zap.String("outputDir", outputDir))
		return nil
	}

	err := filepath.WalkDir(previewDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		dst, err := RebasePath(path, previewDir, outputDir)
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dst, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dst, err)
		}
		logger.Debug("Created directory", zap.String("path", dst))
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug("Copied directory structure",
		zap.String("from", previewDir),
		zap.String("to", outputDir))
	return nil
}
