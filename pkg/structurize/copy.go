// File: pkg/structurize/copy.go
package structurize

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// CopyAll copies each HQ source to its destination. A missing HQ source
// falls back to copying the preview itself and counts as a warning; when the
// fallback fails too, the file is skipped and counted as an error. One bad
// file never aborts the batch.
func CopyAll(sources, previews, targets []string, logger *zap.Logger) RunStats {
	var stats RunStats

	for i, dst := range targets {
		src := sources[i]
		prev := previews[i]

		if err := copyFile(src, dst); err != nil {
			logger.Warn("HQ source missing, copying preview instead",
				zap.String("source", src),
				zap.String("preview", prev),
				zap.Error(err))
			stats.Warnings++

			if err := copyFile(prev, dst); err != nil {
				logger.Error("Preview fallback failed, skipping file",
					zap.String("preview", prev),
					zap.String("destination", dst),
					zap.Error(err))
				stats.Errors++
			}
			continue
		}

		logger.Debug("Copied HQ file",
			zap.String("source", src),
			zap.String("destination", dst))
		stats.Copied++
	}

	return stats
}

// copyFile copies src to dst through a temporary sibling file renamed into
// place, so a failed copy never leaves a partial destination.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("source %s is a directory", src)
	}

	tmp, err := os.CreateTemp(filepath.Dir(dst), "."+filepath.Base(dst)+".*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, in); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// RemoveSelectionDirs removes the selection directories that the mirrored
// targets point into. They are expected to be empty once the selection level
// has been collapsed; removal is best effort and a directory that is
// unexpectedly non-empty or not removable is logged and left in place.
func RemoveSelectionDirs(targets []string, selName string, logger *zap.Logger) {
	seen := make(map[string]struct{})
	for _, t := range targets {
		dir := filepath.Dir(t)
		if filepath.Base(dir) != selName {
			continue
		}
		seen[dir] = struct{}{}
	}

	for dir := range seen {
		err := os.Remove(dir)
		switch {
		case err == nil:
			logger.Debug("Removed selection directory", zap.String("path", dir))
		case errors.Is(err, fs.ErrNotExist):
			// already gone
		default:
			logger.Warn("Could not remove selection directory",
				zap.String("path", dir),
				zap.Error(err))
		}
	}
}
