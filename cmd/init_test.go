package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"runnergen.dev/pkg/runnergen/internal/config"
	m "runnergen.dev/pkg/runnergen/internal/model"
)

func TestInitCmd_WritesConfigFile(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	h := newTestHarness(t)
	require.Equal(t, 0, h.run("init"), h.errOut.String())

	targetPath := filepath.Join(tempDir, configFileName)
	info, err := os.Stat(targetPath)
	require.NoError(t, err)
	require.False(t, info.IsDir())

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "version: 1\n")
	assert.Contains(t, string(contents), "unity:")
	assert.Contains(t, string(contents), "max_backups: 3")

	opts, err := config.NewResolver(nil).Resolve(targetPath)
	require.NoError(t, err)
	assert.Equal(t, m.DefaultOptions(), opts)
}

func TestInitCmd_ErrorsWhenFileExists(t *testing.T) {
	tempDir := t.TempDir()
	chdir(t, tempDir)

	targetPath := filepath.Join(tempDir, configFileName)
	require.NoError(t, os.WriteFile(targetPath, []byte("existing: true\n"), 0o644))

	h := newTestHarness(t)
	assert.Equal(t, 1, h.run("init"))
	assert.Contains(t, h.errOut.String(), "already exists")

	contents, err := os.ReadFile(targetPath)
	require.NoError(t, err)
	assert.Equal(t, "existing: true\n", string(contents))
}
