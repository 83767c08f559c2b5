// File: pkg/structurize/transform.go
package structurize

import (
	"fmt"
	"path/filepath"
	"strings"
)

// RebasePath rewrites path from under fromRoot to the same relative location
// under toRoot. It works on path segments rather than substring replacement,
// so a root like "prev" can never match a partial segment like "prev_old".
func RebasePath(path, fromRoot, toRoot string) (string, error) {
	rel, err := filepath.Rel(fromRoot, path)
	if err != nil {
		return "", err
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is not under %s", path, fromRoot)
	}
	return filepath.Join(toRoot, rel), nil
}

// RebasePaths applies RebasePath to every path in the list.
func RebasePaths(paths []string, fromRoot, toRoot string) ([]string, error) {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		rebased, err := RebasePath(p, fromRoot, toRoot)
		if err != nil {
			return nil, err
		}
		out = append(out, rebased)
	}
	return out, nil
}

// CorrelateSources derives the expected HQ source path for every preview:
// the preview filename, with its first stripLen characters removed, joined
// to the flat HQ directory. Names shorter than stripLen are left unchanged
// rather than stripped to nothing.
func CorrelateSources(previews []string, flatDir string, stripLen int) []string {
	sources := make([]string, 0, len(previews))
	for _, p := range previews {
		name := filepath.Base(p)
		if stripLen > 0 && len(name) > stripLen {
			name = name[stripLen:]
		}
		sources = append(sources, filepath.Join(flatDir, name))
	}
	return sources
}

// LevelUpSelection removes every directory segment equal to selName from the
// given paths, collapsing the selection subfolder level. The filename itself
// is never touched, even if it happens to equal the marker.
func LevelUpSelection(paths []string, selName string) []string {
	sep := string(filepath.Separator)
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		segs := strings.Split(p, sep)
		kept := make([]string, 0, len(segs))
		for i, s := range segs {
			if i < len(segs)-1 && s == selName {
				continue
			}
			kept = append(kept, s)
		}
		out = append(out, strings.Join(kept, sep))
	}
	return out
}

// ApplyNaming finishes each destination path. With addPrefix the filename is
// rewritten as "<parent>__<name>". With topLevel the file goes directly
// under outputRoot and the prefix is taken from the event directory, the
// first segment below the root, since the immediate parent may be a
// selection directory.
func ApplyNaming(paths []string, outputRoot string, addPrefix, topLevel bool) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		dir, name := filepath.Split(p)
		dir = filepath.Clean(dir)

		if addPrefix {
			prefix := filepath.Base(dir)
			if topLevel {
				if event := eventSegment(p, outputRoot); event != "" {
					prefix = event
				}
			}
			name = prefix + PrefixSeparator + name
		}

		if topLevel {
			dir = outputRoot
		}
		out = append(out, filepath.Join(dir, name))
	}
	return out
}

// eventSegment returns the first directory segment of path below root, or
// "" when the path sits directly under root.
func eventSegment(path, root string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return ""
	}
	segs := strings.Split(rel, string(filepath.Separator))
	if len(segs) < 2 {
		return ""
	}
	return segs[0]
}
