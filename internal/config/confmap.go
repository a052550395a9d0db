package config

import (
	"sort"

	"go.uber.org/multierr"
)

// ConfigMap is the working configuration of a topology or daemon: an
// insertion-ordered heterogeneous map from key to value. A ConfigMap is
// built single-threaded by one submitting client, then sealed; a sealed
// map is validated, immutable and safe to share across any number of
// readers.
//
// A ConfigMap has exactly two states. Open maps accept Set and accumulator
// calls; Seal transitions to Sealed and is one-way. Mutating a sealed map
// is a programming error and panics.
type ConfigMap struct {
	keys   []string
	values map[string]interface{}
	sealed bool
}

// New returns an empty open ConfigMap.
func New() *ConfigMap {
	return &ConfigMap{values: make(map[string]interface{})}
}

// FromMap builds an open ConfigMap from a plain map. Go maps carry no
// order, so keys are inserted sorted for deterministic serialization.
func FromMap(m map[string]interface{}) *ConfigMap {
	c := New()
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		c.Set(k, m[k])
	}
	return c
}

func (c *ConfigMap) init() {
	if c.values == nil {
		c.values = make(map[string]interface{})
	}
}

func (c *ConfigMap) mustOpen() {
	if c.sealed {
		panic("config: mutation of a sealed ConfigMap")
	}
}

// Set stores value under key, keeping first-insertion order. Values are
// not validated here; validation happens at Seal, or at append time for
// accumulator entries.
func (c *ConfigMap) Set(key string, value interface{}) {
	c.mustOpen()
	c.init()
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = value
}

// Get returns the value stored under key.
func (c *ConfigMap) Get(key string) (interface{}, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Keys returns the keys in insertion order.
func (c *ConfigMap) Keys() []string {
	out := make([]string, len(c.keys))
	copy(out, c.keys)
	return out
}

// Len returns the number of entries.
func (c *ConfigMap) Len() int { return len(c.keys) }

// Sealed reports whether the map has been sealed.
func (c *ConfigMap) Sealed() bool { return c.sealed }

// Clone returns an open deep copy. Cloning is how a sealed snapshot is
// turned back into something mutable without touching the original.
func (c *ConfigMap) Clone() *ConfigMap {
	out := New()
	for _, k := range c.keys {
		out.Set(k, copyValue(c.values[k]))
	}
	return out
}

// Seal validates every recognized key and freezes the map. All violations
// are collected and reported together rather than failing on the first
// one. Sealing an already-sealed map is a no-op. On failure the map stays
// open so the caller can fix the offending values and seal again.
func (c *ConfigMap) Seal() error {
	if c.sealed {
		return nil
	}
	var err error
	for _, k := range c.keys {
		err = multierr.Append(err, Validate(k, c.values[k]))
	}
	if err != nil {
		return err
	}
	c.sealed = true
	return nil
}

// Merge combines base and overlay into a new open map. Overlay values
// replace base values key-wise, except accumulator-target keys, whose
// lists concatenate with base entries first. A bare overlay value for an
// accumulator-target key counts as a one-element list. Keys present only
// in base carry through. Merge never fails.
//
// Layering is left-to-right: Merge(Merge(defaults, cluster), job) gives
// the authoritative defaults < cluster < job precedence.
func Merge(base, overlay *ConfigMap) *ConfigMap {
	out := base.Clone()
	for _, k := range overlay.keys {
		ov := copyValue(overlay.values[k])
		if !IsAccumulatorTarget(k) {
			out.Set(k, ov)
			continue
		}
		merged := appendAsList(nil, out.values[k])
		merged = appendAsList(merged, ov)
		out.Set(k, merged)
	}
	return out
}

func appendAsList(dst []interface{}, v interface{}) []interface{} {
	if v == nil {
		return dst
	}
	if seq, ok := v.([]interface{}); ok {
		return append(dst, seq...)
	}
	return append(dst, v)
}

func copyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, e := range t {
			out[i] = copyValue(e)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, e := range t {
			out[k] = copyValue(e)
		}
		return out
	default:
		return v
	}
}

// appendEntry grows the list at an accumulator-target key by one entry,
// creating the list on first use. The entry has already been validated.
func (c *ConfigMap) appendEntry(key string, entry interface{}) {
	c.mustOpen()
	c.init()
	list := appendAsList(nil, c.values[key])
	c.Set(key, append(list, entry))
}

// RegisterSerialization appends a serialization registration for class,
// letting the serialization engine derive a serializer for it. Entries
// accumulate in call order and are never deduplicated.
func (c *ConfigMap) RegisterSerialization(class string) error {
	if class == "" {
		return &MalformedEntry{Key: TopologyKryoRegister, Field: "class", Reason: "must not be empty"}
	}
	c.appendEntry(TopologyKryoRegister, class)
	return nil
}

// RegisterSerializer appends a serialization registration binding class to
// an explicit serializer identifier.
func (c *ConfigMap) RegisterSerializer(class, serializer string) error {
	if class == "" {
		return &MalformedEntry{Key: TopologyKryoRegister, Field: "class", Reason: "must not be empty"}
	}
	if serializer == "" {
		return &MalformedEntry{Key: TopologyKryoRegister, Field: "serializer", Reason: "must not be empty"}
	}
	c.appendEntry(TopologyKryoRegister, map[string]interface{}{class: serializer})
	return nil
}

// RegisterDecorator appends a decorator identifier applied to the
// serialization engine at worker startup.
func (c *ConfigMap) RegisterDecorator(class string) error {
	if class == "" {
		return &MalformedEntry{Key: TopologyKryoDecorators, Field: "class", Reason: "must not be empty"}
	}
	c.appendEntry(TopologyKryoDecorators, class)
	return nil
}

// RegisterMetricsConsumer appends a metrics-consumer registration. The
// consumer identified by class receives all metrics data produced by the
// topology; parallelismHint sizes its executors and argument is handed to
// it opaquely at startup, nil allowed. The record is validated here, at
// the call site, not deferred to Seal.
func (c *ConfigMap) RegisterMetricsConsumer(class string, argument interface{}, parallelismHint int) error {
	if class == "" {
		return &MalformedEntry{Key: TopologyMetricsConsumerRegister, Field: "class", Reason: "must not be empty"}
	}
	if parallelismHint < 1 {
		return &MalformedEntry{Key: TopologyMetricsConsumerRegister, Field: "parallelism.hint", Reason: "must be at least 1"}
	}
	entry := map[string]interface{}{
		"class":            class,
		"parallelism.hint": parallelismHint,
		"argument":         argument,
	}
	if !MetricsConsumerEntry.Accept(entry) {
		return &SchemaViolation{Key: TopologyMetricsConsumerRegister, Expected: MetricsConsumerEntry.Expected, Value: entry}
	}
	c.appendEntry(TopologyMetricsConsumerRegister, entry)
	return nil
}

// RegisterDefaultMetricsConsumer registers class with no argument and a
// parallelism hint of one.
func (c *ConfigMap) RegisterDefaultMetricsConsumer(class string) error {
	return c.RegisterMetricsConsumer(class, nil, 1)
}

// Typed setters for the common topology knobs. Each is a thin wrapper
// over Set with the right key; validation still happens at Seal.

func (c *ConfigMap) SetDebug(on bool) { c.Set(TopologyDebug, on) }

func (c *ConfigMap) SetNumWorkers(workers int) { c.Set(TopologyWorkers, workers) }

func (c *ConfigMap) SetNumAckers(executors int) { c.Set(TopologyAckerExecutors, executors) }

func (c *ConfigMap) SetMessageTimeoutSecs(secs int) { c.Set(TopologyMessageTimeoutSecs, secs) }

func (c *ConfigMap) SetMaxTaskParallelism(max int) { c.Set(TopologyMaxTaskParallelism, max) }

func (c *ConfigMap) SetMaxSpoutPending(max int) { c.Set(TopologyMaxSpoutPending, max) }

func (c *ConfigMap) SetStatsSampleRate(rate float64) { c.Set(TopologyStatsSampleRate, rate) }

func (c *ConfigMap) SetFallBackOnJavaSerialization(fallback bool) {
	c.Set(TopologyFallBackOnJavaSerialization, fallback)
}

func (c *ConfigMap) SetSkipMissingKryoRegistrations(skip bool) {
	c.Set(TopologySkipMissingKryoRegistrations, skip)
}

// SetKryoFactory stores the identifier of the serialization engine
// factory; the identifier is resolved by the serialization engine's own
// registry, never loaded here.
func (c *ConfigMap) SetKryoFactory(class string) { c.Set(TopologyKryoFactory, class) }
