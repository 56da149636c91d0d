package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PipelineMetrics records quote and booking pipeline activity.
type PipelineMetrics struct {
	searchDuration  *prometheus.HistogramVec
	quotesComputed  prometheus.Counter
	bookingsCreated *prometheus.CounterVec
	depositFailures prometheus.Counter
	outboxPublished *prometheus.CounterVec
}

// NewPipelineMetrics registers the pipeline metrics on the provided registerer.
func NewPipelineMetrics(reg prometheus.Registerer) *PipelineMetrics {
	if reg == nil {
		return &PipelineMetrics{}
	}
	searchDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "quote_search_duration_seconds",
		Help:    "Duration of quote searches in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"sort"})
	quotesComputed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "quotes_computed_total",
		Help: "Company quotes computed across all searches.",
	})
	bookingsCreated := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bookings_created_total",
		Help: "Bookings created, labelled by payment status.",
	}, []string{"payment_status"})
	depositFailures := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "deposit_payment_failures_total",
		Help: "Deposit payment attempts that failed after retries.",
	})
	outboxPublished := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "outbox_events_published_total",
		Help: "Outbox events published, labelled by event type.",
	}, []string{"event_type"})
	reg.MustRegister(searchDuration, quotesComputed, bookingsCreated, depositFailures, outboxPublished)
	return &PipelineMetrics{
		searchDuration:  searchDuration,
		quotesComputed:  quotesComputed,
		bookingsCreated: bookingsCreated,
		depositFailures: depositFailures,
		outboxPublished: outboxPublished,
	}
}

// ObserveSearchDuration records how long a quote search took.
func (m *PipelineMetrics) ObserveSearchDuration(sort string, duration time.Duration) {
	if m == nil || m.searchDuration == nil {
		return
	}
	m.searchDuration.WithLabelValues(normalizeLabel(sort)).Observe(duration.Seconds())
}

// AddQuotesComputed counts quotes produced by a search.
func (m *PipelineMetrics) AddQuotesComputed(n int) {
	if m == nil || m.quotesComputed == nil || n <= 0 {
		return
	}
	m.quotesComputed.Add(float64(n))
}

// IncBookingsCreated counts a booking creation by payment status.
func (m *PipelineMetrics) IncBookingsCreated(paymentStatus string) {
	if m == nil || m.bookingsCreated == nil {
		return
	}
	m.bookingsCreated.WithLabelValues(normalizeLabel(paymentStatus)).Inc()
}

// IncDepositFailures counts an exhausted deposit payment attempt.
func (m *PipelineMetrics) IncDepositFailures() {
	if m == nil || m.depositFailures == nil {
		return
	}
	m.depositFailures.Inc()
}

// IncOutboxPublished counts a published outbox event.
func (m *PipelineMetrics) IncOutboxPublished(eventType string) {
	if m == nil || m.outboxPublished == nil {
		return
	}
	m.outboxPublished.WithLabelValues(normalizeLabel(eventType)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
