package healthendpoint

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

type HTTPRequestCollector interface {
	prometheus.Collector
	// Middleware tracks in-flight requests and counts finished ones by status code.
	Middleware(next http.Handler) http.Handler
}

type httpRequestCollector struct {
	concurrent prometheus.Gauge
	requests   *prometheus.CounterVec
}

func NewHTTPRequestCollector(namespace, subSystem string) HTTPRequestCollector {
	return &httpRequestCollector{
		concurrent: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "concurrent_http_request",
			Help:      "Number of concurrent http request",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "http_requests_total",
			Help:      "Number of finished http requests by status code",
		}, []string{"code"}),
	}
}

func (c *httpRequestCollector) Describe(ch chan<- *prometheus.Desc) {
	c.concurrent.Describe(ch)
	c.requests.Describe(ch)
}

func (c *httpRequestCollector) Collect(ch chan<- prometheus.Metric) {
	c.concurrent.Collect(ch)
	c.requests.Collect(ch)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (c *httpRequestCollector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.concurrent.Inc()
		defer c.concurrent.Dec()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		c.requests.WithLabelValues(strconv.Itoa(rec.status)).Inc()
	})
}
