package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Configuration source metrics
	ConfigReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storm_config_reloads_total",
			Help: "Total number of configuration file loads, by file and action",
		},
		[]string{"file", "action"},
	)

	ConfigReloadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storm_config_reload_errors_total",
			Help: "Total number of configuration file loads that failed",
		},
		[]string{"file"},
	)

	// Validation metrics
	ConfigValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storm_config_validation_failures_total",
			Help: "Total number of schema violations detected, by key",
		},
		[]string{"key"},
	)

	// Submission metrics
	ConfigsSealed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "storm_configs_sealed_total",
			Help: "Total number of configuration maps sealed for submission",
		},
	)
)
