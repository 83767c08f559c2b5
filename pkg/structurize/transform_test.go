package structurize

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRebasePathRoundTrip(t *testing.T) {
	prev := filepath.Join("base", "prev")
	out := filepath.Join("base", "out")
	orig := filepath.Join(prev, "01_waterfalls", "sel", "a.jpg")

	rebased, err := RebasePath(orig, prev, out)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(out, "01_waterfalls", "sel", "a.jpg"), rebased)

	back, err := RebasePath(rebased, out, prev)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestRebasePathRejectsOutsideRoot(t *testing.T) {
	_, err := RebasePath(filepath.Join("elsewhere", "a.jpg"), filepath.Join("base", "prev"), "out")
	assert.Error(t, err)
}

func TestRebasePathNoPartialSegmentMatch(t *testing.T) {
	// "prev_old" shares a string prefix with the root "prev" but is a
	// different directory and must not be rebased.
	_, err := RebasePath(filepath.Join("prev_old", "a.jpg"), "prev", "out")
	assert.Error(t, err)
}

func TestRebasePathsTrailingSeparatorInsensitive(t *testing.T) {
	sep := string(filepath.Separator)
	paths := []string{filepath.Join("prev", "ev", "a.jpg")}

	got, err := RebasePaths(paths, "prev"+sep, "out"+sep)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("out", "ev", "a.jpg")}, got)
}

func TestCorrelateSources(t *testing.T) {
	previews := []string{
		filepath.Join("prev", "ev", "a.jpg"),
		filepath.Join("prev", "ev", "sel", "b.jpg"),
	}

	got := CorrelateSources(previews, "flat", 0)
	assert.Equal(t, []string{
		filepath.Join("flat", "a.jpg"),
		filepath.Join("flat", "b.jpg"),
	}, got)
}

func TestCorrelateSourcesStripsPrefix(t *testing.T) {
	previews := []string{filepath.Join("prev", "ev", "prev_IMG_1.jpg")}

	got := CorrelateSources(previews, "flat", 5)
	assert.Equal(t, []string{filepath.Join("flat", "IMG_1.jpg")}, got)
}

func TestCorrelateSourcesShortNameLeftAlone(t *testing.T) {
	previews := []string{filepath.Join("prev", "ev", "a.jpg")}

	got := CorrelateSources(previews, "flat", 10)
	assert.Equal(t, []string{filepath.Join("flat", "a.jpg")}, got)
}

func TestLevelUpSelection(t *testing.T) {
	paths := []string{
		filepath.Join("out", "ev", "sel", "a.jpg"),
		filepath.Join("out", "ev", "b.jpg"),
	}

	got := LevelUpSelection(paths, "sel")
	assert.Equal(t, []string{
		filepath.Join("out", "ev", "a.jpg"),
		filepath.Join("out", "ev", "b.jpg"),
	}, got)
}

func TestLevelUpSelectionKeepsMatchingFilename(t *testing.T) {
	// A file that happens to be named like the marker is not a directory
	// segment and stays put.
	paths := []string{filepath.Join("out", "ev", "sel", "sel")}

	got := LevelUpSelection(paths, "sel")
	assert.Equal(t, []string{filepath.Join("out", "ev", "sel")}, got)
}

func TestLevelUpSelectionIgnoresSubstringDirs(t *testing.T) {
	paths := []string{filepath.Join("out", "selfies", "a.jpg")}

	got := LevelUpSelection(paths, "sel")
	assert.Equal(t, paths, got)
}

func TestApplyNamingPrefix(t *testing.T) {
	paths := []string{filepath.Join("out", "01_waterfalls", "a.jpg")}

	got := ApplyNaming(paths, "out", true, false)
	assert.Equal(t, []string{filepath.Join("out", "01_waterfalls", "01_waterfalls__a.jpg")}, got)
}

func TestApplyNamingNoOptions(t *testing.T) {
	paths := []string{filepath.Join("out", "ev", "a.jpg")}

	got := ApplyNaming(paths, "out", false, false)
	assert.Equal(t, paths, got)
}

func TestApplyNamingTopLevel(t *testing.T) {
	paths := []string{filepath.Join("out", "ev", "sel", "a.jpg")}

	got := ApplyNaming(paths, "out", false, true)
	assert.Equal(t, []string{filepath.Join("out", "a.jpg")}, got)
}

func TestApplyNamingTopLevelPrefixUsesEventDir(t *testing.T) {
	// With top-level flattening the immediate parent may be the selection
	// directory; the prefix must come from the event directory instead.
	paths := []string{filepath.Join("out", "01_waterfalls", "sel", "a.jpg")}

	got := ApplyNaming(paths, "out", true, true)
	assert.Equal(t, []string{filepath.Join("out", "01_waterfalls__a.jpg")}, got)
}
