package api

import (
	"sort"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricRequests = "yoga_client_requests_total"
	metricDuration = "yoga_client_request_duration_seconds"
)

// Metrics counts API calls per resource, method and status code.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the client collectors on reg. A nil reg yields
// working but unregistered collectors.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: metricRequests,
			Help: "API calls issued by the client.",
		}, []string{"resource", "method", "code"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    metricDuration,
			Help:    "API call latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"resource", "method"}),
	}
}

func (m *Metrics) observe(resource, method string, code int, d time.Duration) {
	label := "error"
	if code > 0 {
		label = strconv.Itoa(code)
	}
	m.requests.WithLabelValues(resource, method, label).Inc()
	m.duration.WithLabelValues(resource, method).Observe(d.Seconds())
}

// RequestCount is one row of the request counter.
type RequestCount struct {
	Resource string
	Method   string
	Code     string
	Count    float64
}

// RequestCounts reads the request counter back from g, sorted by
// resource, method and code.
func RequestCounts(g prometheus.Gatherer) ([]RequestCount, error) {
	families, err := g.Gather()
	if err != nil {
		return nil, err
	}

	var out []RequestCount
	for _, mf := range families {
		if mf.GetName() != metricRequests {
			continue
		}
		for _, m := range mf.GetMetric() {
			rc := RequestCount{Count: m.GetCounter().GetValue()}
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "resource":
					rc.Resource = lp.GetValue()
				case "method":
					rc.Method = lp.GetValue()
				case "code":
					rc.Code = lp.GetValue()
				}
			}
			out = append(out, rc)
		}
	}

	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Resource != b.Resource {
			return a.Resource < b.Resource
		}
		if a.Method != b.Method {
			return a.Method < b.Method
		}
		return a.Code < b.Code
	})
	return out, nil
}
