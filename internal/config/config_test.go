package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults apply when the file is missing", func(t *testing.T) {
		// When: loading a path that does not exist
		conf, err := Load(filepath.Join(t.TempDir(), "missing.yml"))

		// Then: the classic 10x10 board is configured and no fleet is named
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 10, conf.BoardSize)
		assert.False(t, conf.NoClearScreen)
		assert.Equal(t, "|", conf.Markers.Vertical)
		assert.Equal(t, "—", conf.Markers.Horizontal)
		assert.Equal(t, "#", conf.Markers.Sunk)
		assert.Nil(t, conf.Fleet)
	})

	t.Run("File values override defaults", func(t *testing.T) {
		// Given: a config with a small board and a single ship
		path := writeConfig(t, `
log-level: debug
board-size: 6
no-clear-screen: true
markers:
  hit: X
fleet:
  - name: Patrol Boat
    size: 2
`)

		// When: loading it
		conf, err := Load(path)

		// Then: the file wins, untouched keys keep their defaults
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 6, conf.BoardSize)
		assert.True(t, conf.NoClearScreen)
		assert.Equal(t, "X", conf.Markers.Hit)
		assert.Equal(t, "O", conf.Markers.Empty)
		assert.Equal(t, []ShipSpec{{Name: "Patrol Boat", Size: 2}}, conf.Fleet)
	})

	t.Run("Explicit empty fleet is kept", func(t *testing.T) {
		path := writeConfig(t, "fleet: []\n")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.NotNil(t, conf.Fleet)
		assert.Empty(t, conf.Fleet)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "board-size: 6\n")
		t.Setenv("BATTLESHIP_BOARD_SIZE", "8")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, 8, conf.BoardSize)
	})

	t.Run("Broken file is an error", func(t *testing.T) {
		path := writeConfig(t, "board-size: [not a number\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Panics(t, func() { MustLoad(path) })
	})
}
