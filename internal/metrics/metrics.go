package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// PostDBQueries calculates # of statements issued by the post repository, by operation
	PostDBQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "post_repository_db_queries_total",
		Help: "The total number of queries made to the DB from post repository.",
	}, []string{"operation"})

	// PostDBErrors calculates # of failed statements, by operation
	PostDBErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "post_repository_db_errors_total",
		Help: "The total number of failed queries made to the DB from post repository.",
	}, []string{"operation"})

	// PostEventsPublished calculates # of domain events delivered to the broker
	PostEventsPublished = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "post_events_published_total",
		Help: "The total number of post events published, partitioned by subject.",
	}, []string{"subject"})

	// PostEventsFailed calculates # of domain events that could not be published
	PostEventsFailed = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "post_events_failed_total",
		Help: "The total number of post events that failed to publish, partitioned by subject.",
	}, []string{"subject"})

	// HTTPRequests tells # of handled requests
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests, partitioned by method, route and status.",
	}, []string{"method", "route", "status"})

	// HTTPRequestDuration observes request latency
	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds, partitioned by method and route.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})
)
