package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Layered configuration: the daemons and the submitting client assemble
// one ConfigMap from three sources, lowest priority first: the shipped
// defaults document, the cluster operator's document, and the per-job
// map built through Set and the accumulators.

// ReadFile loads one source document into an open ConfigMap. The format
// is chosen by extension: .yaml/.yml or .json.
func ReadFile(path string) (*ConfigMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}
	c := New()
	switch ext := filepath.Ext(path); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse YAML config %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("parse JSON config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q for %s", ext, path)
	}
	return c, nil
}

// LoadClusterConfig loads the operator layer with environment overrides:
// a variable STORM_TOPOLOGY_WORKERS overrides the file's
// "topology.workers" entry. Keys in these documents are flat dotted
// identifiers, so the viper instance uses a delimiter that never occurs
// in them; otherwise every dot would open a nesting level.
func LoadClusterConfig(path string, logger *zap.Logger) (*ConfigMap, error) {
	v := viper.NewWithOptions(viper.KeyDelimiter("::"))
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read cluster config %s: %w", path, err)
	}

	v.SetEnvPrefix("STORM")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	settings := make(map[string]interface{})
	for _, key := range v.AllKeys() {
		settings[key] = v.Get(key)
	}
	c := FromMap(settings)

	logger.Info("Cluster configuration loaded",
		zap.String("path", path),
		zap.Int("keys", c.Len()),
	)
	return c, nil
}

// LoadLayers merges the three configuration sources in authoritative
// order: defaults first, then the cluster operator layer, then the
// job-specific map. Nil layers are skipped. The result is open; the
// caller seals it at the submission boundary.
func LoadLayers(defaults, cluster, job *ConfigMap) *ConfigMap {
	out := New()
	for _, layer := range []*ConfigMap{defaults, cluster, job} {
		if layer == nil {
			continue
		}
		out = Merge(out, layer)
	}
	return out
}
