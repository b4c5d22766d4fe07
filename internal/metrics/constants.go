package metrics

import "github.com/prometheus/client_golang/prometheus"

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Engine metric names
const (
	MetricNameDatasetRecords        = "alchemy_dataset_records"
	MetricNameCombinationsEvaluated = "alchemy_combinations_evaluated_total"
	MetricNamePotionsBrewed         = "alchemy_potions_brewed_total"
	MetricNameEnumerationDuration   = "alchemy_enumeration_duration_seconds"
	MetricNameStatsCacheLookups     = "alchemy_stats_cache_lookups_total"
	MetricNameReportFilesWritten    = "alchemy_report_files_written_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Engine metric help text
const (
	HelpTextDatasetRecords        = "Number of records in the loaded dataset by kind"
	HelpTextCombinationsEvaluated = "Total number of ingredient combinations evaluated"
	HelpTextPotionsBrewed         = "Total number of valid potions produced by ingredient count"
	HelpTextEnumerationDuration   = "Time spent enumerating potions in seconds"
	HelpTextStatsCacheLookups     = "Total number of statistics cache lookups by result"
	HelpTextReportFilesWritten    = "Total number of report files written"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelKind   = "kind"
	LabelSize   = "size"
	LabelMode   = "mode"
	LabelResult = "result"
)

// Label values
const (
	KindIngredients = "ingredients"
	KindEffects     = "effects"
	KindTraits      = "traits"

	ModeSequential = "sequential"
	ModeSharded    = "sharded"

	ResultHit  = "hit"
	ResultMiss = "miss"

	// PathUnmatched labels requests that did not match a route
	PathUnmatched = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// EnumerationBuckets range from 1ms to about 30s. A full four-ingredient
// enumeration over the vanilla dataset lands in the upper half.
var EnumerationBuckets = prometheus.ExponentialBuckets(0.001, 2, 16)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsWritten = "Metrics written to textfile"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgWriteTextfileFailed = "failed to write metrics textfile: %w"
)
