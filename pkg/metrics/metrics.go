package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// CacheOps — операции кэша по типам исходов.
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|expired|evicted|degraded|decode_error
	)
	// CacheSize — текущее число записей во встроенном кэше.
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of items currently in the in-memory cache",
		},
	)
)

var (
	// ExternalRequests — запросы во внешний сервис клиентов.
	ExternalRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "external_customer_requests_total",
			Help: "Requests to the external customer service",
		},
		[]string{"endpoint", "outcome"}, // endpoint: customer|risk; outcome: ok|not_found|error
	)
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре.
// Повторный вызов безопасен (важно для тестов).
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			CacheOps, CacheSize,
			ExternalRequests,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		)
	})
}
