package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Engine Metrics
var (
	DatasetRecords = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameDatasetRecords,
			Help: HelpTextDatasetRecords,
		},
		[]string{LabelKind},
	)

	CombinationsEvaluated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCombinationsEvaluated,
			Help: HelpTextCombinationsEvaluated,
		},
	)

	PotionsBrewed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePotionsBrewed,
			Help: HelpTextPotionsBrewed,
		},
		[]string{LabelSize},
	)

	EnumerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameEnumerationDuration,
			Help:    HelpTextEnumerationDuration,
			Buckets: EnumerationBuckets,
		},
		[]string{LabelMode},
	)

	StatsCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameStatsCacheLookups,
			Help: HelpTextStatsCacheLookups,
		},
		[]string{LabelResult},
	)

	ReportFilesWritten = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameReportFilesWritten,
			Help: HelpTextReportFilesWritten,
		},
	)
)

// RecordDataset sets the dataset gauges after a successful build
func RecordDataset(ingredients, effects, traits int) {
	DatasetRecords.WithLabelValues(KindIngredients).Set(float64(ingredients))
	DatasetRecords.WithLabelValues(KindEffects).Set(float64(effects))
	DatasetRecords.WithLabelValues(KindTraits).Set(float64(traits))
}

// RecordPotions counts brewed potions of the given ingredient count
func RecordPotions(size, count int) {
	if count == 0 {
		return
	}
	PotionsBrewed.WithLabelValues(strconv.Itoa(size)).Add(float64(count))
}
