package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_kafka_messages_consumed_total",
			Help: "Number of catalog events fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_kafka_messages_processed_total",
			Help: "Number of catalog events processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_kafka_messages_failed_total",
			Help: "Number of catalog events failed to process",
		},
		[]string{"topic"},
	)
	KafkaMessagesRetried = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_kafka_messages_retried_total",
			Help: "Number of repeated attempts to process a catalog event",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"cache", "op"}, // hit|miss|fetch|fallback|skipped|write|write_failed
	)
	CacheItems = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "storefront_cache_items",
			Help: "Number of items currently mirrored by cache",
		},
		[]string{"cache"},
	)
	FlightShared = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storefront_flight_shared_total",
			Help: "Callers that joined an in-flight fetch instead of starting one",
		},
		[]string{"cache"},
	)
)

var RemoteDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "storefront_remote_duration_seconds",
		Help:    "Latency of remote store calls",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"backend", "op"},
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в default registry; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed, KafkaMessagesRetried,
			CacheOps, CacheItems, FlightShared, RemoteDuration,
		)
	})
}

// ObserveRemote — записать длительность вызова хранилища, начатого в start.
func ObserveRemote(backend, op string, start time.Time) {
	RemoteDuration.WithLabelValues(backend, op).Observe(time.Since(start).Seconds())
}
