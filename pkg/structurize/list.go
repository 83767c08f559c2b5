// File: pkg/structurize/list.go
package structurize

import (
	"io/fs"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// ListPreviews walks root and returns every regular file under it, in
// directory-traversal order. Hidden files (dot-prefixed names) are skipped.
func ListPreviews(root string, logger *zap.Logger) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasPrefix(d.Name(), ".") {
			logger.Debug("Skipping hidden file", zap.String("path", path))
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Debug("Listed preview files", zap.Int("count", len(files)))
	return files, nil
}
