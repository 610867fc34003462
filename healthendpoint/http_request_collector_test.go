package healthendpoint_test

import (
	"net/http"
	"net/http/httptest"

	. "github.com/ecs-queue-autoscaler/autoscaler/healthendpoint"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var _ = Describe("HTTPRequestCollector", func() {
	var collector HTTPRequestCollector

	BeforeEach(func() {
		collector = NewHTTPRequestCollector("bpi", "targetsetter")
	})

	It("counts finished requests by status code", func() {
		handler := collector.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/missing" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			_, _ = w.Write([]byte("ok"))
		}))

		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/found", nil))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/found", nil))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/missing", nil))

		Expect(testutil.CollectAndCount(collector, "bpi_targetsetter_http_requests_total")).To(Equal(2))
		Expect(testutil.CollectAndCount(collector, "bpi_targetsetter_concurrent_http_request")).To(Equal(1))
	})

	It("tracks requests in flight before any request finishes", func() {
		var inFlight float64
		handler := collector.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			inFlight = testutil.ToFloat64(collector)
		}))
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
		Expect(inFlight).To(Equal(1.0))
	})
})
