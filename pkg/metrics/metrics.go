package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTP metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests served",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// Dataset and advisory metrics
var (
	DatasetRecordsLoaded = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_records_loaded",
			Help: "Number of dataset records held in memory",
		},
	)

	DatasetRowsRejected = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_rows_rejected",
			Help: "Number of CSV rows quarantined during the last load",
		},
	)

	SuggestionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisory_suggestions_total",
			Help: "Advisory suggestions produced by the rule engine",
		},
		[]string{"category", "priority"},
	)
)

// Database metrics
var (
	DBQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "db_queries_total",
			Help: "Total number of database queries executed",
		},
		[]string{"query_type", "table", "status"},
	)

	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Duration of database queries in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"query_type", "table"},
	)
)

// RecordDBQuery records a database query execution
func RecordDBQuery(queryType, table string, start time.Time, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	DBQueriesTotal.WithLabelValues(queryType, table, status).Inc()
	DBQueryDuration.WithLabelValues(queryType, table).Observe(time.Since(start).Seconds())
}

// SetDataset publishes the size of the loaded dataset.
func SetDataset(records, rejected int) {
	DatasetRecordsLoaded.Set(float64(records))
	DatasetRowsRejected.Set(float64(rejected))
}

func Handler() http.Handler { return promhttp.Handler() }
