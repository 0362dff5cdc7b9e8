package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clock/internal/config"
)

// TestInitConfig writes defaults once and refuses to overwrite without --force.
func TestInitConfig(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "settings.yaml")

	var out bytes.Buffer

	cmd := newInitConfigCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{path})
	require.NoError(t, cmd.Execute())
	require.Contains(t, out.String(), path)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Default(), loaded)

	require.ErrorIs(t, writeDefaultConfig(path, false), errConfigExists)
	require.NoError(t, writeDefaultConfig(path, true))
}
