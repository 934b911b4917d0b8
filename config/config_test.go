package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chway/config"
)

func TestLoadDatasetConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chway.yaml")
	yamlBody := `
dataset:
  hsgr: /data/region.hsgr
  nodes: /data/region.nodes
  edges: /data/region.edges
  names: /data/region.names
  ram_index: /data/region.ramIndex
  file_index: /data/region.fileIndex
  timestamp: /data/region.timestamp
logging:
  level: debug
metrics:
  namespace: chway_test
`
	require.NoError(t, os.WriteFile(path, []byte(yamlBody), 0o644))

	cfg, err := config.LoadDatasetConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/region.hsgr", cfg.Dataset.HSGR)
	assert.Equal(t, "/data/region.fileIndex", cfg.Dataset.FileIndex)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format) // from defaults, not overridden
	assert.Equal(t, "chway_test", cfg.Metrics.Namespace)
	assert.True(t, cfg.Metrics.Enabled) // default
}

func TestLoadDatasetConfig_MissingFile(t *testing.T) {
	_, err := config.LoadDatasetConfig("/nonexistent/path/chway.yaml")
	assert.Error(t, err)
}

func TestFromMap(t *testing.T) {
	paths := config.FromMap(map[string]string{
		"hsgr":  "/a.hsgr",
		"nodes": "/a.nodes",
	})
	assert.Equal(t, "/a.hsgr", paths.HSGR)
	assert.Equal(t, "/a.nodes", paths.Nodes)
	assert.Equal(t, "", paths.Edges)
}
