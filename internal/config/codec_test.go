package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func buildSampleConfig(t *testing.T) *ConfigMap {
	t.Helper()
	c := New()
	c.Set(StormClusterMode, "distributed")
	c.Set(TopologyWorkers, 4)
	c.Set(TopologyDebug, false)
	c.Set(StormZookeeperServers, []interface{}{"zk1.local", "zk2.local"})
	require.NoError(t, c.RegisterSerialization("Foo"))
	require.NoError(t, c.RegisterSerializer("Bar", "BarSerializer"))
	return c
}

func TestYAMLRoundTrip(t *testing.T) {
	c := buildSampleConfig(t)
	require.NoError(t, c.Seal())

	data, err := yaml.Marshal(c)
	require.NoError(t, err)

	decoded := New()
	require.NoError(t, yaml.Unmarshal(data, decoded))

	// same keys in the same order, same values, same list order
	assert.Equal(t, c.Keys(), decoded.Keys())
	for _, k := range c.Keys() {
		want, _ := c.Get(k)
		got, _ := decoded.Get(k)
		assert.Equal(t, want, got, "key %s", k)
	}

	// the decoded copy is open and can be resealed
	assert.False(t, decoded.Sealed())
	assert.NoError(t, decoded.Seal())
}

func TestJSONRoundTrip(t *testing.T) {
	c := buildSampleConfig(t)
	require.NoError(t, c.Seal())

	data, err := json.Marshal(c)
	require.NoError(t, err)

	decoded := New()
	require.NoError(t, json.Unmarshal(data, decoded))

	assert.Equal(t, c.Keys(), decoded.Keys())

	// JSON numbers decode as float64; a second encoding must reproduce the
	// first document exactly
	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))

	// order is preserved byte for byte, not just set-wise
	assert.Equal(t, string(data), string(again))

	assert.NoError(t, decoded.Seal())
}

func TestUnmarshalRejectsNonMapping(t *testing.T) {
	c := New()
	assert.Error(t, yaml.Unmarshal([]byte("- a\n- b\n"), c))
	assert.Error(t, json.Unmarshal([]byte(`["a","b"]`), c))
}

func TestYAMLPreservesDocumentOrder(t *testing.T) {
	doc := "topology.workers: 4\nstorm.cluster.mode: distributed\nnimbus.host: master.local\n"
	c := New()
	require.NoError(t, yaml.Unmarshal([]byte(doc), c))
	assert.Equal(t, []string{TopologyWorkers, StormClusterMode, NimbusHost}, c.Keys())
}
