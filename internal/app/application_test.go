package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"bin-tally/internal/config"
	"bin-tally/internal/logger"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunConsoleFlushesOnExit(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Dir = t.TempDir()
	cfg.Session.FlushOnExit = true

	var out bytes.Buffer
	input := strings.NewReader(":bin T1\nX\nX\nY\n")
	require.NoError(t, RunConsole(context.Background(), cfg, logger.NoOpLogger{}, input, &out))

	data, err := os.ReadFile(filepath.Join(cfg.Output.Dir, "T1.csv"))
	require.NoError(t, err)
	assert.Equal(t, "bin,part,qty\nT1,X,2\nT1,Y,1\n", string(data))
}

func TestCoreShutdownRespectsFlushOnExit(t *testing.T) {
	cfg := config.Default()
	cfg.Session.FlushOnExit = false
	fs := afero.NewMemMapFs()

	core := NewCore(cfg, logger.NoOpLogger{}, fs)
	require.NoError(t, core.Controller.NewBin("N1"))
	core.Controller.Scan("X")
	core.Lifecycle.Shutdown()

	exists, err := afero.Exists(fs, "N1.csv")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCoreUsesConfiguredExtension(t *testing.T) {
	cfg := config.Default()
	cfg.Output.Extension = "txt"
	fs := afero.NewMemMapFs()

	core := NewCore(cfg, logger.NoOpLogger{}, fs)
	require.NoError(t, core.Controller.NewBin("E1"))
	require.NoError(t, core.Controller.Save())

	exists, err := afero.Exists(fs, "E1.txt")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestShutdownRequestDuringScanningFlushesOnCollectorGoroutine(t *testing.T) {
	cfg := config.Default()
	cfg.Session.FlushOnExit = true
	fs := afero.NewMemMapFs()
	core := NewCore(cfg, logger.NoOpLogger{}, fs)

	pr, pw := io.Pipe()
	defer pr.Close()

	const scans = 2000
	go func() {
		_, _ = io.WriteString(pw, ":bin S1\n")
		for i := 0; i < scans; i++ {
			if _, err := io.WriteString(pw, "X\n"); err != nil {
				return
			}
			if i == scans/2 {
				core.Lifecycle.RequestShutdown()
			}
		}
	}()

	require.NoError(t, runCollector(context.Background(), core, pr, io.Discard))
	core.Lifecycle.Shutdown()

	entries := core.Session.Entries()
	data, err := afero.ReadFile(fs, "S1.csv")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.LessOrEqual(t, entries[0].Quantity, scans)
	assert.Equal(t, "bin,part,qty\nS1,X,"+strconv.Itoa(entries[0].Quantity)+"\n", string(data))
}

func TestRunCollectorStopsWhenParentCancelled(t *testing.T) {
	core := NewCore(config.Default(), logger.NoOpLogger{}, afero.NewMemMapFs())
	pr, _ := io.Pipe()
	defer pr.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, runCollector(ctx, core, pr, io.Discard))
}
