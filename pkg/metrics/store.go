package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "storefront"

// StoreMetrics records reducer dispatches and persistence outcomes.
type StoreMetrics struct {
	actions         *prometheus.CounterVec
	actionErrors    *prometheus.CounterVec
	persistFailures *prometheus.CounterVec
	persistDuration *prometheus.HistogramVec
}

// NewStoreMetrics registers the store metrics on the provided registerer.
// A nil registerer yields a no-op recorder.
func NewStoreMetrics(reg prometheus.Registerer) *StoreMetrics {
	if reg == nil {
		return &StoreMetrics{}
	}
	actions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "actions_total",
		Help:      "Actions applied to a store.",
	}, []string{"store", "action"})
	actionErrors := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "action_errors_total",
		Help:      "Actions rejected by a store.",
	}, []string{"store", "action"})
	persistFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "persist_failures_total",
		Help:      "Failed loads or saves of a persisted state key.",
	}, []string{"key"})
	persistDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "persist_duration_seconds",
		Help:      "Duration of state saves in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"key"})
	reg.MustRegister(actions, actionErrors, persistFailures, persistDuration)
	return &StoreMetrics{
		actions:         actions,
		actionErrors:    actionErrors,
		persistFailures: persistFailures,
		persistDuration: persistDuration,
	}
}

// IncAction counts an applied action.
func (m *StoreMetrics) IncAction(store, action string) {
	if m == nil || m.actions == nil {
		return
	}
	m.actions.WithLabelValues(normalizeLabel(store), normalizeLabel(action)).Inc()
}

// IncActionError counts a rejected action.
func (m *StoreMetrics) IncActionError(store, action string) {
	if m == nil || m.actionErrors == nil {
		return
	}
	m.actionErrors.WithLabelValues(normalizeLabel(store), normalizeLabel(action)).Inc()
}

// IncPersistFailure counts a failed load or save for key.
func (m *StoreMetrics) IncPersistFailure(key string) {
	if m == nil || m.persistFailures == nil {
		return
	}
	m.persistFailures.WithLabelValues(normalizeLabel(key)).Inc()
}

// ObservePersist records how long saving key took.
func (m *StoreMetrics) ObservePersist(key string, duration time.Duration) {
	if m == nil || m.persistDuration == nil {
		return
	}
	m.persistDuration.WithLabelValues(normalizeLabel(key)).Observe(duration.Seconds())
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
