package healthendpoint

import (
	"database/sql"

	"github.com/prometheus/client_golang/prometheus"
)

type PoolStatsSource interface {
	Stats() sql.DBStats
}

type poolGauge struct {
	desc  *prometheus.Desc
	value func(sql.DBStats) float64
}

type poolStatsCollector struct {
	gauges []poolGauge
	source PoolStatsSource
}

// NewPoolStatsCollector exposes the connection pool statistics of source as gauges named <pool>_<stat>.
func NewPoolStatsCollector(namespace, subSystem, pool string, source PoolStatsSource) prometheus.Collector {
	gauge := func(name, help string, value func(sql.DBStats) float64) poolGauge {
		return poolGauge{
			desc:  prometheus.NewDesc(prometheus.BuildFQName(namespace, subSystem, pool+"_"+name), help, nil, nil),
			value: value,
		}
	}
	return &poolStatsCollector{
		source: source,
		gauges: []poolGauge{
			gauge("max_open_connections", "Maximum number of open connections to the database",
				func(s sql.DBStats) float64 { return float64(s.MaxOpenConnections) }),
			gauge("open_connections", "The number of established connections both in use and idle",
				func(s sql.DBStats) float64 { return float64(s.OpenConnections) }),
			gauge("in_use", "The number of connections currently in use",
				func(s sql.DBStats) float64 { return float64(s.InUse) }),
			gauge("idle", "The number of idle connections",
				func(s sql.DBStats) float64 { return float64(s.Idle) }),
			gauge("wait_count", "The total number of connections waited for",
				func(s sql.DBStats) float64 { return float64(s.WaitCount) }),
			gauge("wait_duration_seconds", "The total time blocked waiting for a new connection",
				func(s sql.DBStats) float64 { return s.WaitDuration.Seconds() }),
			gauge("max_idle_closed", "The total number of connections closed due to SetMaxIdleConns",
				func(s sql.DBStats) float64 { return float64(s.MaxIdleClosed) }),
			gauge("max_lifetime_closed", "The total number of connections closed due to SetConnMaxLifetime",
				func(s sql.DBStats) float64 { return float64(s.MaxLifetimeClosed) }),
		},
	}
}

func (c *poolStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	for _, g := range c.gauges {
		ch <- g.desc
	}
}

func (c *poolStatsCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.source.Stats()
	for _, g := range c.gauges {
		ch <- prometheus.MustNewConstMetric(g.desc, prometheus.GaugeValue, g.value(stats))
	}
}
