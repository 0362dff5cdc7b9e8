package version

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestVersionStrings ensures Short and Full return consistent information.
func TestVersionStrings(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, Short())
	require.Contains(t, Full(), Short())
	require.Contains(t, Full(), Commit)
}

// TestNewCommand checks both output modes of the subcommand.
func TestNewCommand(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	cmd := NewCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--short"})
	require.NoError(t, cmd.Execute())
	require.Equal(t, Short(), strings.TrimSpace(out.String()))

	out.Reset()

	cmd = NewCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
	require.Equal(t, Full(), strings.TrimSpace(out.String()))
}
