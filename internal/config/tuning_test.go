package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTuning(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultTuningIsValid(t *testing.T) {
	tuning := DefaultTuning()
	assert.NoError(t, tuning.Validate())
	assert.Equal(t, DefaultLifespanSeconds, tuning.LifespanFor("top"))
}

func TestLoadTuning(t *testing.T) {
	t.Run("overlays defaults", func(t *testing.T) {
		path := writeTuning(t, `{"lifespans": {"special": 2.5}, "boom_dust": 20}`)

		tuning, err := LoadTuning(path)
		require.NoError(t, err)
		assert.Equal(t, 2.5, tuning.LifespanFor("special"))
		assert.Equal(t, DefaultLifespanSeconds, tuning.LifespanFor("left"))
		assert.Equal(t, 20, tuning.BoomDust)
		assert.Equal(t, 2000.0, tuning.ShipThrust)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadTuning(filepath.Join(t.TempDir(), "nope.json"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("bad json", func(t *testing.T) {
		_, err := LoadTuning(writeTuning(t, `{"boom_power": `))
		assert.Error(t, err)
	})

	t.Run("out of range values are all reported", func(t *testing.T) {
		_, err := LoadTuning(writeTuning(t, `{"boom_power": 99, "boom_dust": 0, "lifespans": {"top": -1}}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boom_power")
		assert.Contains(t, err.Error(), "boom_dust")
		assert.Contains(t, err.Error(), `lifespan "top"`)
	})
}
