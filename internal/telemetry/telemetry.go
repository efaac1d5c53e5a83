// Package telemetry exports Prometheus metrics for analyses, adjudicator calls
// and HTTP requests.
package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "credcheck"

// Adjudication outcomes.
const (
	OutcomeScored      = "scored"
	OutcomeUnavailable = "unavailable"
	OutcomeCached      = "cached"
)

// Metrics holds all credcheck collectors.
type Metrics struct {
	AnalysesTotal *prometheus.CounterVec
	Scores        *prometheus.HistogramVec

	AdjudicationsTotal   *prometheus.CounterVec
	AdjudicationDuration *prometheus.HistogramVec

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec
}

// Provider owns a private registry so several providers can coexist in one
// process (tests, the CLI).
type Provider struct {
	registry *prometheus.Registry
	Metrics  *Metrics
}

// NewProvider registers every collector on a fresh registry, together with the
// Go runtime and process collectors.
func NewProvider() *Provider {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return &Provider{registry: reg, Metrics: initMetrics(promauto.With(reg))}
}

// Handler serves the registry for /metrics.
func (p *Provider) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{Registry: p.registry})
}

// Registry exposes the underlying registry.
func (p *Provider) Registry() *prometheus.Registry {
	return p.registry
}

func initMetrics(f promauto.Factory) *Metrics {
	return &Metrics{
		AnalysesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total heuristic analyses by kind (text, url, profile, complete, classify_all)",
		}, []string{"kind"}),
		Scores: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "score",
			Help:      "Distribution of heuristic scores by kind",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}, []string{"kind"}),
		AdjudicationsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "adjudications_total",
			Help:      "Adjudicator calls by kind and outcome",
		}, []string{"kind", "outcome"}),
		AdjudicationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "adjudication_duration_seconds",
			Help:      "Wall time of adjudicator calls that reached the provider",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 15},
		}, []string{"provider"}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status",
		}, []string{"route", "method", "status"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// A nil *Provider is valid and records nothing.

// RecordAnalysis counts one heuristic analysis and observes its score.
func (p *Provider) RecordAnalysis(kind string, score float64) {
	if p == nil {
		return
	}
	p.Metrics.AnalysesTotal.WithLabelValues(kind).Inc()
	p.Metrics.Scores.WithLabelValues(kind).Observe(score)
}

// RecordAdjudication counts an adjudicator outcome.
func (p *Provider) RecordAdjudication(kind, outcome string) {
	if p == nil {
		return
	}
	p.Metrics.AdjudicationsTotal.WithLabelValues(kind, outcome).Inc()
}

// ObserveAdjudicationDuration records provider latency.
func (p *Provider) ObserveAdjudicationDuration(provider string, d time.Duration) {
	if p == nil {
		return
	}
	p.Metrics.AdjudicationDuration.WithLabelValues(provider).Observe(d.Seconds())
}

// RecordHTTPRequest records one served request.
func (p *Provider) RecordHTTPRequest(route, method, status string, d time.Duration) {
	if p == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	p.Metrics.HTTPRequests.WithLabelValues(route, method, status).Inc()
	p.Metrics.HTTPDuration.WithLabelValues(route).Observe(d.Seconds())
}
