package linkedin

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linkedin_client",
			Name:      "requests_total",
			Help:      "API requests issued, by HTTP method.",
		},
		[]string{"method"},
	)

	requestFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "linkedin_client",
			Name:      "request_failures_total",
			Help:      "API requests that failed at the transport or returned a non-2xx status.",
		},
		[]string{"method", "status"},
	)
)

// metricsTransport counts every request passing through the client.
type metricsTransport struct{ base http.RoundTripper }

func (mt *metricsTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	requestsTotal.WithLabelValues(req.Method).Inc()

	resp, err := mt.base.RoundTrip(req)
	if err != nil {
		requestFailuresTotal.WithLabelValues(req.Method, "network").Inc()
		return nil, err
	}
	if resp.StatusCode >= 400 {
		requestFailuresTotal.WithLabelValues(req.Method, strconv.Itoa(resp.StatusCode)).Inc()
	}
	return resp, nil
}
