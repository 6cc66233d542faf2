package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the application-wide metrics registry exposed on /api/metrics
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

var (
	// Custom histogram buckets optimized for API response times ranging from
	// milliseconds (local store reads) to 30+ seconds (model inference)
	CustomAPIBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 3, 5, 8, 13, 21, 34, 55}

	// HTTP Metrics
	HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_server_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	HTTPRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_server_request_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"http_request_method", "http_route", "http_response_status_code"},
	)

	ActiveRequests = factory.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "http_server_active_requests",
			Help: "Number of active HTTP requests",
		},
		[]string{"http_request_method"},
	)

	// Store Metrics
	StoreOperationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Key-value store operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	StoreOperationTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operation_total",
			Help: "Total number of key-value store operations",
		},
		[]string{"operation", "status"},
	)

	// AI Collaborator Metrics
	AIRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ai_client_operation_duration_seconds",
			Help:    "AI collaborator operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	AIRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_client_operation_total",
			Help: "Total number of AI collaborator operations",
		},
		[]string{"operation", "status"},
	)

	AIFallbackTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ai_client_fallback_total",
			Help: "Total number of AI operations served by the offline fallback",
		},
		[]string{"operation", "reason"}, // reason: no_credential, call_failed, parse_failed, breaker_open
	)

	// Cache Metrics
	CacheHits = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache_name"},
	)

	CacheMisses = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache_name"},
	)

	// Object Storage Metrics
	ObjectStorageRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "storage_client_operation_duration_seconds",
			Help:    "Object storage client operation duration in seconds",
			Buckets: CustomAPIBuckets,
		},
		[]string{"operation", "status"},
	)

	ObjectStorageRequestTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "storage_client_operation_total",
			Help: "Total number of object storage client operations",
		},
		[]string{"operation", "status"},
	)

	// Business Metrics
	ViewTransitions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codementor_view_transitions_total",
			Help: "Total number of navigation state machine transitions",
		},
		[]string{"from_view", "to_view"},
	)

	LoginTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codementor_logins_total",
			Help: "Total number of logins by role",
		},
		[]string{"role"},
	)

	RequestStatusUpdates = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codementor_request_status_updates_total",
			Help: "Total number of session request status transitions",
		},
		[]string{"from_status", "to_status"},
	)

	MentorMatchSearches = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codementor_mentor_match_searches_total",
			Help: "Total number of mentor match searches",
		},
		[]string{"mode"}, // ai or offline
	)

	SolutionSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codementor_solution_submissions_total",
			Help: "Total number of problem solution submissions",
		},
		[]string{"status"},
	)

	FeedbackSubmissions = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codementor_feedback_submissions_total",
			Help: "Total number of session feedback submissions",
		},
		[]string{"rating"},
	)

	ToastsEmitted = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "codementor_toasts_emitted_total",
			Help: "Total number of toast notifications emitted",
		},
		[]string{"severity"},
	)

	ActiveToasts = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "codementor_toasts_active",
			Help: "Number of toasts currently visible",
		},
	)

	ActiveWarRooms = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "codementor_war_rooms_active",
			Help: "Number of live war room sessions",
		},
	)

	// Infrastructure Metrics
	GoRoutines = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_goroutines",
			Help: "Number of goroutines",
		},
	)

	HeapAlloc = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "process_runtime_go_mem_heap_alloc_bytes",
			Help: "Heap allocated bytes",
		},
	)
)

// Init registers the standard process collectors on the custom registry.
func Init(serviceName string) {
	Registry.MustRegister(collectors.NewGoCollector())
	Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	_ = serviceName // reserved for per-service const labels
}

// RecordInfrastructureMetrics collects infrastructure metrics periodically
func RecordInfrastructureMetrics() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		for range ticker.C {
			var m runtime.MemStats
			runtime.ReadMemStats(&m)

			GoRoutines.Set(float64(runtime.NumGoroutine()))
			HeapAlloc.Set(float64(m.HeapAlloc))
		}
	}()
}

// MeasureDuration measures the duration of an operation
func MeasureDuration(start time.Time) float64 {
	return time.Since(start).Seconds()
}
