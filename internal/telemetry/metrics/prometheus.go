package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// NewRegistry builds the registry served on the metrics endpoint: runtime and
// process collectors, a training_backend_info gauge labelled with the deployed
// version, and any extra collectors such as the db pool stats.
func NewRegistry(version string, extra ...prometheus.Collector) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsGC, collectors.MetricsScheduler),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		versionInfo(version),
	)
	reg.MustRegister(extra...)
	return reg
}

func versionInfo(version string) prometheus.Gauge {
	if version == "" {
		version = "unknown"
	}
	info := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "training_backend_info",
		Help:        "Always 1, the version label names the running build",
		ConstLabels: prometheus.Labels{"version": version},
	})
	info.Set(1)
	return info
}
