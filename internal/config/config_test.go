package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsZeroConfig(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, &ProjectConfig{}, cfg)
}

func TestLoad_YML(t *testing.T) {
	dir := t.TempDir()
	content := `logsDir: run-logs
reportsDir: out
languages:
  - go
  - python
excludeDirs:
  - vendor
  - node_modules
currentYear: 2024
mcpAddr: "localhost:9000"
verbose: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mentor.yml"), []byte(content), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "run-logs", cfg.LogsDir)
	assert.Equal(t, "out", cfg.ReportsDir)
	assert.Equal(t, []string{"go", "python"}, cfg.Languages)
	assert.Equal(t, []string{"vendor", "node_modules"}, cfg.ExcludeDirs)
	assert.Equal(t, 2024, cfg.CurrentYear)
	assert.Equal(t, "localhost:9000", cfg.MCPAddr)
	assert.True(t, cfg.Verbose)
}

func TestLoad_YMLTakesPrecedenceOverYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mentor.yml"), []byte("logsDir: from-yml\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mentor.yaml"), []byte("logsDir: from-yaml\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-yml", cfg.LogsDir)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mentor.yaml"), []byte("logsDir: [broken\n"), 0o644))

	_, err := Load(dir)
	require.Error(t, err)
}
