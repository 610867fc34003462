package healthendpoint

import (
	"os"

	"code.cloudfoundry.org/lager/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// RegisterCollectors registers col, and the process and go runtime collectors when includeDefault is set.
// Registration failures are logged, never fatal.
func RegisterCollectors(registrar prometheus.Registerer, col []prometheus.Collector, includeDefault bool, logger lager.Logger) {
	logger = logger.Session("register-collectors")
	if includeDefault {
		defaults := []prometheus.Collector{
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{
				PidFn: func() (int, error) { return os.Getpid(), nil },
			}),
			collectors.NewGoCollector(),
		}
		for _, c := range defaults {
			if err := registrar.Register(c); err != nil {
				logger.Error("failed-to-register-default-collector", err)
			}
		}
	}

	for _, c := range col {
		if err := registrar.Register(c); err != nil {
			logger.Error("failed-to-register-collector", err, lager.Data{"collector": c})
		}
	}
}

// NewRegistry returns a fresh registry carrying the default collectors and col.
func NewRegistry(logger lager.Logger, col ...prometheus.Collector) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	RegisterCollectors(registry, col, true, logger)
	return registry
}
