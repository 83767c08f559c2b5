// File: pkg/structurize/filter.go
package structurize

import (
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// KeepSelectedOnly retains only paths that have a directory segment exactly
// equal to selName. Matching whole segments distinguishes selection
// membership from directories that merely contain the marker as a substring
// (a "selfies" folder is not a selection).
func KeepSelectedOnly(paths []string, selName string, logger *zap.Logger) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if hasDirSegment(p, selName) {
			kept = append(kept, p)
		}
	}

	logger.Debug("Filtered to selected previews",
		zap.Int("kept", len(kept)),
		zap.Int("dropped", len(paths)-len(kept)))
	return kept
}

// hasDirSegment reports whether any directory segment of path (the filename
// excluded) equals name.
func hasDirSegment(path, name string) bool {
	segs := strings.Split(path, string(filepath.Separator))
	for _, s := range segs[:len(segs)-1] {
		if s == name {
			return true
		}
	}
	return false
}
