package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	c := New()
	c.Set(TopologyWorkers, 4)
	c.Set(TopologyDebug, true)

	v, ok := c.Get(TopologyWorkers)
	require.True(t, ok)
	assert.Equal(t, 4, v)

	_, ok = c.Get(TopologyTasks)
	assert.False(t, ok)

	// re-setting an existing key keeps its position
	c.Set(TopologyWorkers, 8)
	assert.Equal(t, []string{TopologyWorkers, TopologyDebug}, c.Keys())
	assert.Equal(t, 2, c.Len())
}

func TestFromMapIsDeterministic(t *testing.T) {
	m := map[string]interface{}{"b": 2, "a": 1, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, FromMap(m).Keys())
}

func TestAccumulators(t *testing.T) {
	t.Run("serializations append in call order", func(t *testing.T) {
		c := New()
		require.NoError(t, c.RegisterSerialization("Foo"))
		require.NoError(t, c.RegisterSerializer("Bar", "BarSerializer"))

		v, ok := c.Get(TopologyKryoRegister)
		require.True(t, ok)
		assert.Equal(t, []interface{}{
			"Foo",
			map[string]interface{}{"Bar": "BarSerializer"},
		}, v)
	})

	t.Run("no deduplication", func(t *testing.T) {
		c := New()
		require.NoError(t, c.RegisterSerialization("A"))
		require.NoError(t, c.RegisterSerialization("A"))

		v, _ := c.Get(TopologyKryoRegister)
		assert.Equal(t, []interface{}{"A", "A"}, v)
	})

	t.Run("key absent until first call", func(t *testing.T) {
		c := New()
		_, ok := c.Get(TopologyKryoRegister)
		assert.False(t, ok)
		_, ok = c.Get(TopologyKryoDecorators)
		assert.False(t, ok)
	})

	t.Run("decorators", func(t *testing.T) {
		c := New()
		require.NoError(t, c.RegisterDecorator("com.example.TupleDecorator"))
		v, _ := c.Get(TopologyKryoDecorators)
		assert.Equal(t, []interface{}{"com.example.TupleDecorator"}, v)
	})

	t.Run("metrics consumer entry shape", func(t *testing.T) {
		c := New()
		require.NoError(t, c.RegisterMetricsConsumer("M", map[string]interface{}{"endpoint": "http://m"}, 2))

		v, _ := c.Get(TopologyMetricsConsumerRegister)
		list := v.([]interface{})
		require.Len(t, list, 1)
		entry := list[0].(map[string]interface{})
		assert.Equal(t, "M", entry["class"])
		assert.Equal(t, 2, entry["parallelism.hint"])
		assert.Equal(t, map[string]interface{}{"endpoint": "http://m"}, entry["argument"])
	})

	t.Run("malformed entries rejected at the call site", func(t *testing.T) {
		c := New()

		err := c.RegisterSerialization("")
		var malformed *MalformedEntry
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "class", malformed.Field)

		err = c.RegisterSerializer("Foo", "")
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "serializer", malformed.Field)

		err = c.RegisterMetricsConsumer("M", nil, 0)
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, "parallelism.hint", malformed.Field)

		// nothing was written
		assert.Equal(t, 0, c.Len())
	})

	t.Run("default metrics consumer", func(t *testing.T) {
		c := New()
		require.NoError(t, c.RegisterDefaultMetricsConsumer("M"))
		v, _ := c.Get(TopologyMetricsConsumerRegister)
		entry := v.([]interface{})[0].(map[string]interface{})
		assert.Equal(t, 1, entry["parallelism.hint"])
		assert.Nil(t, entry["argument"])
	})
}

func TestMerge(t *testing.T) {
	t.Run("overlay replaces scalar keys", func(t *testing.T) {
		base := New()
		base.Set(TopologyWorkers, 2)
		base.Set(StormClusterMode, "local")
		overlay := New()
		overlay.Set(TopologyWorkers, 8)

		merged := Merge(base, overlay)
		v, _ := merged.Get(TopologyWorkers)
		assert.Equal(t, 8, v)

		// keys only in base carry through
		v, _ = merged.Get(StormClusterMode)
		assert.Equal(t, "local", v)
	})

	t.Run("accumulator targets concatenate, base first", func(t *testing.T) {
		base := New()
		base.Set(TopologyKryoDecorators, []interface{}{"D1"})
		overlay := New()
		overlay.Set(TopologyKryoDecorators, []interface{}{"D2"})

		merged := Merge(base, overlay)
		v, _ := merged.Get(TopologyKryoDecorators)
		assert.Equal(t, []interface{}{"D1", "D2"}, v)
	})

	t.Run("bare overlay value coerced to one-element list", func(t *testing.T) {
		base := New()
		base.Set(TopologyKryoRegister, []interface{}{"Foo"})
		overlay := New()
		overlay.Set(TopologyKryoRegister, "Bar")

		merged := Merge(base, overlay)
		v, _ := merged.Get(TopologyKryoRegister)
		assert.Equal(t, []interface{}{"Foo", "Bar"}, v)
	})

	t.Run("accumulator key absent from base", func(t *testing.T) {
		overlay := New()
		overlay.Set(TopologyKryoRegister, []interface{}{"Foo"})

		merged := Merge(New(), overlay)
		v, _ := merged.Get(TopologyKryoRegister)
		assert.Equal(t, []interface{}{"Foo"}, v)
	})

	t.Run("merge does not alias its inputs", func(t *testing.T) {
		base := New()
		base.Set(TopologyKryoDecorators, []interface{}{"D1"})
		merged := Merge(base, New())

		v, _ := merged.Get(TopologyKryoDecorators)
		v.([]interface{})[0] = "mutated"

		orig, _ := base.Get(TopologyKryoDecorators)
		assert.Equal(t, []interface{}{"D1"}, orig)
	})

	t.Run("three-layer precedence", func(t *testing.T) {
		defaults := New()
		defaults.Set(TopologyWorkers, 1)
		defaults.Set(TopologyMessageTimeoutSecs, 30)
		defaults.Set(TopologyKryoDecorators, []interface{}{"base"})

		cluster := New()
		cluster.Set(TopologyWorkers, 4)
		cluster.Set(TopologyKryoDecorators, []interface{}{"cluster"})

		job := New()
		job.Set(TopologyWorkers, 16)
		job.Set(TopologyKryoDecorators, []interface{}{"job"})

		merged := LoadLayers(defaults, cluster, job)

		v, _ := merged.Get(TopologyWorkers)
		assert.Equal(t, 16, v)
		v, _ = merged.Get(TopologyMessageTimeoutSecs)
		assert.Equal(t, 30, v)
		v, _ = merged.Get(TopologyKryoDecorators)
		assert.Equal(t, []interface{}{"base", "cluster", "job"}, v)
	})
}

func TestSeal(t *testing.T) {
	t.Run("valid map seals", func(t *testing.T) {
		c := New()
		c.SetNumWorkers(4)
		c.SetDebug(true)
		c.Set("myapp.private.key", struct{ X int }{1})

		require.NoError(t, c.Seal())
		assert.True(t, c.Sealed())
	})

	t.Run("seal is idempotent", func(t *testing.T) {
		c := New()
		c.SetNumWorkers(4)
		require.NoError(t, c.Seal())
		require.NoError(t, c.Seal())
	})

	t.Run("violations are collected, map stays open", func(t *testing.T) {
		c := New()
		c.Set(TopologyWorkers, "four")
		c.Set(TopologyDebug, "yes")

		err := c.Seal()
		require.Error(t, err)
		assert.False(t, c.Sealed())
		assert.Contains(t, err.Error(), TopologyWorkers)
		assert.Contains(t, err.Error(), TopologyDebug)

		// fix and re-seal
		c.Set(TopologyWorkers, 4)
		c.Set(TopologyDebug, true)
		require.NoError(t, c.Seal())
	})

	t.Run("mutation of a sealed map panics", func(t *testing.T) {
		c := New()
		require.NoError(t, c.Seal())

		assert.Panics(t, func() { c.Set(TopologyWorkers, 4) })
		assert.Panics(t, func() { _ = c.RegisterSerialization("Foo") })
		assert.Panics(t, func() { _ = c.RegisterMetricsConsumer("M", nil, 1) })
	})

	t.Run("clone of a sealed map is open", func(t *testing.T) {
		c := New()
		c.SetNumWorkers(4)
		require.NoError(t, c.Seal())

		clone := c.Clone()
		assert.False(t, clone.Sealed())
		clone.SetNumWorkers(8)

		v, _ := c.Get(TopologyWorkers)
		assert.Equal(t, 4, v)
	})
}

func TestTypedSetters(t *testing.T) {
	c := New()
	c.SetNumAckers(2)
	c.SetMessageTimeoutSecs(60)
	c.SetMaxTaskParallelism(32)
	c.SetMaxSpoutPending(1000)
	c.SetStatsSampleRate(0.05)
	c.SetFallBackOnJavaSerialization(false)
	c.SetSkipMissingKryoRegistrations(true)
	c.SetKryoFactory("com.example.Factory")

	require.NoError(t, c.Seal())

	v, _ := c.Get(TopologyAckerExecutors)
	assert.Equal(t, 2, v)
	v, _ = c.Get(TopologyStatsSampleRate)
	assert.Equal(t, 0.05, v)
	v, _ = c.Get(TopologyKryoFactory)
	assert.Equal(t, "com.example.Factory", v)
}

// Exercises the whole submission path the way a client builds a topology
// config: defaults, accumulators, typed setters, then seal.
func TestSubmissionScenario(t *testing.T) {
	c := New()
	require.NoError(t, c.RegisterSerialization("Foo"))
	require.NoError(t, c.RegisterSerializer("Bar", "BarSerializer"))
	require.NoError(t, c.RegisterMetricsConsumer("M", nil, 2))
	c.SetNumWorkers(4)

	require.NoError(t, c.Seal())

	v, _ := c.Get(TopologyKryoRegister)
	assert.Equal(t, []interface{}{
		"Foo",
		map[string]interface{}{"Bar": "BarSerializer"},
	}, v)

	v, _ = c.Get(TopologyMetricsConsumerRegister)
	list := v.([]interface{})
	require.Len(t, list, 1)
	assert.Equal(t, map[string]interface{}{
		"class":            "M",
		"parallelism.hint": 2,
		"argument":         nil,
	}, list[0])

	// the same topology with a mistyped worker count must be rejected
	bad := New()
	bad.Set(TopologyWorkers, "four")
	err := bad.Seal()
	require.Error(t, err)

	var violation *SchemaViolation
	require.ErrorAs(t, err, &violation)
	assert.Equal(t, TopologyWorkers, violation.Key)
}
