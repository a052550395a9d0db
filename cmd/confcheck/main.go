package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/xunyunliu/uniroma2-storm/internal/config"
)

// confcheck merges a defaults document, an optional cluster-operator
// document and any number of job documents, then seals the result.
// It exits non-zero when the merged configuration violates the schema,
// so operators can validate config changes before rolling them out.
func main() {
	defaultsPath := flag.String("defaults", "", "path to the cluster defaults document")
	clusterPath := flag.String("cluster", "", "path to the cluster operator document")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var defaults, cluster *config.ConfigMap
	if *defaultsPath != "" {
		if defaults, err = config.ReadFile(*defaultsPath); err != nil {
			logger.Fatal("Failed to read defaults", zap.Error(err))
		}
	}
	if *clusterPath != "" {
		if cluster, err = config.LoadClusterConfig(*clusterPath, logger); err != nil {
			logger.Fatal("Failed to read cluster config", zap.Error(err))
		}
	}

	job := config.New()
	for _, path := range flag.Args() {
		layer, err := config.ReadFile(path)
		if err != nil {
			logger.Fatal("Failed to read job config", zap.String("path", path), zap.Error(err))
		}
		job = config.Merge(job, layer)
	}

	merged := config.LoadLayers(defaults, cluster, job)
	if err := merged.Seal(); err != nil {
		for _, violation := range multierr.Errors(err) {
			logger.Error("Schema violation", zap.Error(violation))
		}
		logger.Fatal("Configuration is invalid",
			zap.Int("violations", len(multierr.Errors(err))),
		)
	}

	logger.Info("Configuration is valid", zap.Int("keys", merged.Len()))
}
