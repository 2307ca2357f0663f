// Package telemetry registra as métricas Prometheus do serviço
package telemetry

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/campaign-tracker-api/internal/domain"
)

const namespace = "campaign_tracker"

// Operações observadas
const (
	OperationCampaignMetrics  = "campaign_metrics"
	OperationPortfolioSummary = "portfolio_summary"
	OperationDashboard        = "dashboard"
	OperationKPIReport        = "kpi_report"
)

// Resultados de um cálculo
const (
	OutcomeOK             = "ok"
	OutcomeDivisionByZero = "division_by_zero"
	OutcomeEmptyInput     = "empty_input"
	OutcomeInvalidRecord  = "invalid_record"
	OutcomeError          = "error"
)

var (
	Calculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "calculations_total",
			Help:      "Total number of metric calculations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	SourceErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "source_errors_total",
			Help:      "Total number of failures reading the campaign source",
		},
		[]string{"source"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	KPIReportRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kpi_report_runs_total",
			Help:      "Total number of KPI report executions by trigger and status",
		},
		[]string{"trigger", "status"},
	)
)

// Outcome classifica o erro de um cálculo para o label "outcome"
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, domain.ErrDivisionByZero):
		return OutcomeDivisionByZero
	case errors.Is(err, domain.ErrEmptyInput):
		return OutcomeEmptyInput
	case errors.Is(err, domain.ErrInvalidRecord):
		return OutcomeInvalidRecord
	default:
		return OutcomeError
	}
}

func ObserveCalculation(operation string, err error) {
	Calculations.WithLabelValues(operation, Outcome(err)).Inc()
}

func ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
