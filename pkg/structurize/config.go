// File: pkg/structurize/config.go
package structurize

// DefaultSelName is the directory name marking previews selected for delivery.
const DefaultSelName = "sel"

// PrefixSeparator joins an event directory name to a filename when the
// add-prefix option is active.
const PrefixSeparator = "__"

// Arguments holds the configuration for one structurize run.
type Arguments struct {
	PreviewDir string // Directory with previews sorted into event subdirectories.
	FlatDir    string // Directory with high-quality files in a flat structure.
	OutputDir  string // Destination directory for the mirrored structure.

	SelOnly        bool   // Keep only files inside selection subdirectories.
	LevelUpSel     bool   // Collapse the selection subfolder level in the output.
	MoveToTopLevel bool   // Place every file directly under the output root.
	AddPrefix      bool   // Prefix each filename with its event directory name.
	Force          bool   // Remove a pre-existing output directory first.
	SelName        string // Selection marker directory name; empty means DefaultSelName.
	StripPrefixLen int    // Leading characters stripped from preview filenames when correlating HQ sources.
}

// RunStats aggregates per-file outcomes across a run.
type RunStats struct {
	Copied   int // Files copied from the flat HQ directory.
	Warnings int // HQ source missing; the preview was copied instead.
	Errors   int // Neither the HQ source nor the preview could be copied.
}
