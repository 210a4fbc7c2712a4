package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metric names accepted by PrometheusMetrics
const (
	MetricBudgetOperation        = "budget_operation"
	MetricSpendAccumulated       = "spend_accumulated"
	MetricRolloverRun            = "rollover_run"
	MetricRolloverKeywordDenied  = "rollover_keyword_rejected"
	MetricRolloverDuration       = "rollover_duration"
	MetricRolloverBudgetsCreated = "rollover_budgets_created"
)

type PrometheusMetrics struct {
	budgetOperations       *prometheus.CounterVec
	spendAccumulations     *prometheus.CounterVec
	rolloverRuns           *prometheus.CounterVec
	rolloverKeywordDenied  prometheus.Counter
	rolloverDuration       prometheus.Histogram
	rolloverBudgetsCreated *prometheus.GaugeVec
}

// NewPrometheusMetrics registers the budget metrics on reg.
// Passing a fresh registry keeps tests from colliding on the default one.
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		budgetOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_operations_total",
				Help: "Total number of budget operations by outcome",
			},
			[]string{"operation", "status"},
		),
		spendAccumulations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_spend_accumulations_total",
				Help: "Total number of spend accumulations",
			},
			[]string{"scope"},
		),
		rolloverRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "budget_rollover_runs_total",
				Help: "Total number of month rollover runs",
			},
			[]string{"status"},
		),
		rolloverKeywordDenied: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "budget_rollover_keyword_rejected_total",
				Help: "Rollover requests rejected because of a wrong keyword",
			},
		),
		rolloverDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "budget_rollover_duration_milliseconds",
				Help:    "Month rollover duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 14),
			},
		),
		rolloverBudgetsCreated: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "budget_rollover_created",
				Help: "Records created by the last rollover run",
			},
			[]string{"kind"},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	switch name {
	case MetricBudgetOperation:
		if operation := tags["operation"]; operation != "" {
			m.budgetOperations.WithLabelValues(operation, tags["status"]).Inc()
		}
	case MetricSpendAccumulated:
		scope := tags["scope"]
		if scope == "" {
			scope = "budget"
		}
		m.spendAccumulations.WithLabelValues(scope).Inc()
	case MetricRolloverRun:
		if status := tags["status"]; status != "" {
			m.rolloverRuns.WithLabelValues(status).Inc()
		}
	case MetricRolloverKeywordDenied:
		m.rolloverKeywordDenied.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricRolloverDuration:
		m.rolloverDuration.Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricRolloverBudgetsCreated:
		if kind := tags["kind"]; kind != "" {
			m.rolloverBudgetsCreated.WithLabelValues(kind).Set(value)
		}
	}
}
