package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "site_api_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_cache_hits_total",
			Help: "Number of cache hits",
		},
		[]string{"operation"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// CNAESearches tracks catalog searches
	CNAESearches = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_cnae_searches_total",
			Help: "Number of CNAE catalog searches",
		},
		[]string{"status"},
	)

	// ContactSubmissions tracks contact form submissions
	ContactSubmissions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_contact_submissions_total",
			Help: "Number of contact form submissions",
		},
		[]string{"status"},
	)

	// ExternalLookups tracks calls to the IBGE registry
	ExternalLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "site_api_external_lookups_total",
			Help: "Number of lookups against the IBGE registry",
		},
		[]string{"status"},
	)

	// ActiveConnections tracks active connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "site_api_active_connections",
			Help: "Number of active connections",
		},
	)
)
