package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLibraryOrder(t *testing.T) {
	require.Len(t, InvaderLibrary, 5)
	want := []InvaderKind{InvaderTop, InvaderLeft, InvaderRight, InvaderBottom, InvaderSpecial}
	for i, def := range InvaderLibrary {
		assert.Equal(t, want[i], def.Kind)
		assert.True(t, def.Edge.Valid())
	}
	assert.Equal(t, 4, InvaderLibrary[4].Points)
}

func TestLoadInvaderDefinitions(t *testing.T) {
	saved := InvaderLibrary
	t.Cleanup(func() { InvaderLibrary = saved })

	write := func(t *testing.T, body string) string {
		path := filepath.Join(t.TempDir(), "invaders.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	t.Run("replaces library", func(t *testing.T) {
		path := write(t, `[
			{"kind": 1, "name": "left", "edge": "LEFT", "points": 2, "speed_min": 100, "speed_max": 200},
			{"kind": 0, "name": "top", "edge": "TOP", "points": 1, "speed_min": 100, "speed_max": 200}
		]`)
		require.NoError(t, LoadInvaderDefinitions(path))
		require.Len(t, InvaderLibrary, 2)
		assert.Equal(t, "left", InvaderLibrary[0].Name)
		assert.Equal(t, EdgeLeft, InvaderLibrary[0].Edge)
	})

	t.Run("rejects unknown edge", func(t *testing.T) {
		InvaderLibrary = saved
		err := LoadInvaderDefinitions(write(t, `[{"kind": 0, "name": "x", "edge": "DIAGONAL"}]`))
		assert.ErrorContains(t, err, "unknown edge")
		assert.Len(t, InvaderLibrary, 5, "library untouched on error")
	})

	t.Run("rejects duplicate kinds", func(t *testing.T) {
		err := LoadInvaderDefinitions(write(t, `[
			{"kind": 0, "name": "a", "edge": "TOP"},
			{"kind": 0, "name": "b", "edge": "LEFT"}
		]`))
		assert.ErrorContains(t, err, "reuses kind")
	})

	t.Run("rejects empty file", func(t *testing.T) {
		assert.Error(t, LoadInvaderDefinitions(write(t, `[]`)))
	})

	t.Run("missing file", func(t *testing.T) {
		err := LoadInvaderDefinitions(filepath.Join(t.TempDir(), "missing.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
