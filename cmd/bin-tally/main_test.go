package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsoleCommand(t *testing.T) {
	outDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("BINTALLY_OUTPUT_DIR", outDir)
	t.Setenv("BINTALLY_LOGGING_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetArgs([]string{"console"})
	root.SetIn(strings.NewReader(":bin C27\n295100330\n295100330\n:set 100200300 5\n:save\n:quit\n"))
	root.SetOut(&out)

	require.NoError(t, root.Execute())

	data, err := os.ReadFile(filepath.Join(outDir, "C27.csv"))
	require.NoError(t, err)
	assert.Equal(t, "bin,part,qty\nC27,295100330,2\nC27,100200300,5\n", string(data))
	assert.Contains(t, out.String(), "saved bin C27")
}

func TestConsoleCommandRejectsBadConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())
	t.Setenv("BINTALLY_LOGGING_LEVEL", "loud")

	root := newRootCmd()
	root.SetArgs([]string{"console"})
	root.SetIn(strings.NewReader(""))
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})

	assert.Error(t, root.Execute())
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
