package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus collectors for the service.
type Metrics struct {
	serviceName string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbPoolOpen      *prometheus.GaugeVec
	dbPoolIdle      *prometheus.GaugeVec
	dbPoolInUse     *prometheus.GaugeVec

	upstreamDuration *prometheus.HistogramVec

	bookingOutcomes *prometheus.CounterVec
}

// New registers and returns the collectors for the given service name.
func New(serviceName string) *Metrics {
	return &Metrics{
		serviceName: serviceName,

		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		}, []string{"service", "method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "operation"}),

		dbPoolOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_open_connections",
			Help: "Open connections in the database pool",
		}, []string{"service"}),

		dbPoolIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_idle_connections",
			Help: "Idle connections in the database pool",
		}, []string{"service"}),

		dbPoolInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name: "db_pool_in_use_connections",
			Help: "Connections currently in use in the database pool",
		}, []string{"service"}),

		upstreamDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream HTTP client latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"service", "target", "operation", "outcome"}),

		bookingOutcomes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "booking_submissions_total",
			Help: "Booking submission outcomes",
		}, []string{"service", "outcome"}),
	}
}

// ObserveHTTPRequest records one handled HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(m.serviceName, method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(m.serviceName, method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records the latency of one database operation.
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(m.serviceName, operation).Observe(duration.Seconds())
}

// SetDBPoolStats records the current connection pool state.
func (m *Metrics) SetDBPoolStats(open, idle, inUse int) {
	m.dbPoolOpen.WithLabelValues(m.serviceName).Set(float64(open))
	m.dbPoolIdle.WithLabelValues(m.serviceName).Set(float64(idle))
	m.dbPoolInUse.WithLabelValues(m.serviceName).Set(float64(inUse))
}

// ObserveUpstreamRequest records the latency and outcome of one upstream call.
func (m *Metrics) ObserveUpstreamRequest(target, operation, outcome string, duration time.Duration) {
	m.upstreamDuration.WithLabelValues(m.serviceName, target, operation, outcome).Observe(duration.Seconds())
}

// CountBookingOutcome increments the submission outcome counter.
func (m *Metrics) CountBookingOutcome(outcome string) {
	m.bookingOutcomes.WithLabelValues(m.serviceName, outcome).Inc()
}
