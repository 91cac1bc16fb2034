package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Store holds the collectors for one document store instance.
type Store struct {
	Saves              *prometheus.CounterVec
	Lookups            *prometheus.CounterVec
	Searches           prometheus.Counter
	SearchResults      prometheus.Histogram
	Documents          prometheus.Gauge
	ValidationFailures prometheus.Counter
}

// NewStore creates unregistered collectors under namespace (defaults to "docstore").
func NewStore(namespace string) *Store {
	if namespace == "" {
		namespace = "docstore"
	}
	return &Store{
		Saves: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "saves_total", Help: "Number of saved documents by operation (insert or update)."},
			[]string{"op"},
		),
		Lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "lookups_total", Help: "Number of lookups by id, by result (hit or miss)."},
			[]string{"result"},
		),
		Searches: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "searches_total", Help: "Number of search requests evaluated."},
		),
		SearchResults: prometheus.NewHistogram(
			prometheus.HistogramOpts{Namespace: namespace, Name: "search_results", Help: "Number of documents returned per search.", Buckets: prometheus.ExponentialBuckets(1, 4, 8)},
		),
		Documents: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "documents", Help: "Number of documents currently stored."},
		),
		ValidationFailures: prometheus.NewCounter(
			prometheus.CounterOpts{Namespace: namespace, Name: "validation_failures_total", Help: "Number of documents rejected by validation."},
		),
	}
}

// RegisterCollectors registers every collector on reg. If any of them fails,
// the ones already registered are removed again and the error is returned,
// so a registry never holds half a store.
func (s *Store) RegisterCollectors(reg prometheus.Registerer) error {
	cs := []prometheus.Collector{s.Saves, s.Lookups, s.Searches, s.SearchResults, s.Documents, s.ValidationFailures}
	for i, c := range cs {
		if err := reg.Register(c); err != nil {
			for _, done := range cs[:i] {
				reg.Unregister(done)
			}
			return fmt.Errorf("register store metrics: %w", err)
		}
	}
	return nil
}
