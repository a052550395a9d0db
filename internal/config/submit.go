package config

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/xunyunliu/uniroma2-storm/internal/metrics"
)

// JobID derives the cluster-wide identifier of a submitted topology: the
// topology name with a unique nonce appended.
func JobID(name string) string {
	return fmt.Sprintf("%s-%s", name, uuid.NewString())
}

// PrepareForSubmission stamps the topology name and job id onto a copy of
// conf and seals it. The returned snapshot is what gets handed to the
// cluster master and, unmodified, to every worker. Validation failures
// surface here, at the client, before anything is distributed; a
// partially-applied configuration across a running job is never possible.
func PrepareForSubmission(conf *ConfigMap, name string) (*ConfigMap, error) {
	if name == "" {
		return nil, fmt.Errorf("topology name must not be empty")
	}
	sealed := conf.Clone()
	sealed.Set(TopologyName, name)
	sealed.Set(StormID, JobID(name))
	if err := sealed.Seal(); err != nil {
		return nil, err
	}
	metrics.ConfigsSealed.Inc()
	return sealed, nil
}
