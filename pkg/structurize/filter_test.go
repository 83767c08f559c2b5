package structurize

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestKeepSelectedOnly(t *testing.T) {
	paths := []string{
		filepath.Join("prev", "ev", "sel", "a.jpg"),
		filepath.Join("prev", "ev", "b.jpg"),
		filepath.Join("prev", "ev2", "sel", "c.jpg"),
	}

	got := KeepSelectedOnly(paths, "sel", zap.NewNop())
	assert.Equal(t, []string{
		filepath.Join("prev", "ev", "sel", "a.jpg"),
		filepath.Join("prev", "ev2", "sel", "c.jpg"),
	}, got)
}

func TestKeepSelectedOnlyRequiresWholeSegment(t *testing.T) {
	paths := []string{
		filepath.Join("prev", "selfies", "a.jpg"),
		filepath.Join("prev", "counsel", "b.jpg"),
		filepath.Join("prev", "ev", "sel"),
	}

	got := KeepSelectedOnly(paths, "sel", zap.NewNop())
	assert.Empty(t, got)
}

func TestKeepSelectedOnlyIdempotent(t *testing.T) {
	paths := []string{
		filepath.Join("prev", "ev", "sel", "a.jpg"),
		filepath.Join("prev", "ev", "b.jpg"),
	}

	once := KeepSelectedOnly(paths, "sel", zap.NewNop())
	twice := KeepSelectedOnly(once, "sel", zap.NewNop())
	assert.Equal(t, once, twice)
}

func TestKeepSelectedOnlyCustomMarker(t *testing.T) {
	paths := []string{
		filepath.Join("prev", "ev", "picks", "a.jpg"),
		filepath.Join("prev", "ev", "sel", "b.jpg"),
	}

	got := KeepSelectedOnly(paths, "picks", zap.NewNop())
	assert.Equal(t, []string{filepath.Join("prev", "ev", "picks", "a.jpg")}, got)
}
