package mockapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes counters/histograms for backend request handling.
type Metrics struct {
	requestsTotal  *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kuhealthcare",
			Subsystem: "backend",
			Name:      "requests_total",
			Help:      "Total HTTP requests by path and status",
		}, []string{"path", "status"}),
		requestLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "kuhealthcare",
			Subsystem: "backend",
			Name:      "request_latency_seconds",
			Help:      "Latency of request handling",
			Buckets:   prometheus.DefBuckets,
		}, []string{"path"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.requestsTotal, m.requestLatency)
	return m
}

func (m *Metrics) ObserveRequest(path string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(path, strconv.Itoa(status)).Inc()
	m.requestLatency.WithLabelValues(path).Observe(seconds)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Middleware records a counter and latency sample per request.
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		m.ObserveRequest(r.URL.Path, rec.status, time.Since(start).Seconds())
	})
}
