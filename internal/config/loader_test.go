package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadFile(t *testing.T) {
	t.Run("YAML", func(t *testing.T) {
		path := writeTempConfig(t, "defaults.yaml", `
topology.workers: 2
topology.debug: false
storm.zookeeper.servers:
  - zk1.local
  - zk2.local
`)
		c, err := ReadFile(path)
		require.NoError(t, err)

		v, _ := c.Get(TopologyWorkers)
		assert.Equal(t, 2, v)
		v, _ = c.Get(StormZookeeperServers)
		assert.Equal(t, []interface{}{"zk1.local", "zk2.local"}, v)
	})

	t.Run("JSON", func(t *testing.T) {
		path := writeTempConfig(t, "job.json", `{"topology.workers": 8, "topology.debug": true}`)
		c, err := ReadFile(path)
		require.NoError(t, err)

		v, _ := c.Get(TopologyWorkers)
		assert.Equal(t, float64(8), v)
		v, _ = c.Get(TopologyDebug)
		assert.Equal(t, true, v)
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeTempConfig(t, "config.toml", "x = 1")
		_, err := ReadFile(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := ReadFile(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestLoadClusterConfig(t *testing.T) {
	path := writeTempConfig(t, "cluster.yaml", `
topology.workers: 4
storm.cluster.mode: distributed
`)

	t.Run("file values", func(t *testing.T) {
		c, err := LoadClusterConfig(path, zap.NewNop())
		require.NoError(t, err)

		v, _ := c.Get(TopologyWorkers)
		assert.Equal(t, 4, v)
		v, _ = c.Get(StormClusterMode)
		assert.Equal(t, "distributed", v)
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv("STORM_STORM_CLUSTER_MODE", "local")

		c, err := LoadClusterConfig(path, zap.NewNop())
		require.NoError(t, err)

		v, _ := c.Get(StormClusterMode)
		assert.Equal(t, "local", v)
	})
}

func TestLoadLayersSkipsNil(t *testing.T) {
	job := New()
	job.SetNumWorkers(3)

	merged := LoadLayers(nil, nil, job)
	v, _ := merged.Get(TopologyWorkers)
	assert.Equal(t, 3, v)

	assert.Equal(t, 0, LoadLayers(nil, nil, nil).Len())
}
