package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Продьюсер.
var (
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Number of messages accepted by the broker",
		},
		[]string{"topic"},
	)
	EventsPublishFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_publish_failed_total",
			Help: "Number of publish attempts that failed",
		},
		[]string{"topic"},
	)
)

// Консьюмер.
var (
	EventsConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_consumed_total",
			Help: "Number of messages fetched from the broker",
		},
		[]string{"topic"},
	)
	EventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	EventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
	EmptyPolls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "consumer_empty_polls_total",
			Help: "Number of polls that timed out without a message",
		},
		[]string{"group"},
	)
)

// Внешний источник.
var (
	SourceFetches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_fetches_total",
			Help: "External source fetch attempts",
		},
		[]string{"result"}, // ok|error
	)
)

// Кэш ленты.
var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_cache_operations_total",
			Help: "Feed cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "feed_cache_size",
			Help: "Number of user feeds currently cached",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			EventsPublished, EventsPublishFailed,
			EventsConsumed, EventsProcessed, EventsFailed, EmptyPolls,
			SourceFetches,
			CacheOps, CacheSize,
		)
	})
}
