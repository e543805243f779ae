package simulator

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type metricsProvider struct {
	requests  *prometheus.CounterVec
	durations *prometheus.HistogramVec
	toolCalls *prometheus.CounterVec
}

func newMetricsProvider(registry *prometheus.Registry) *metricsProvider {
	if registry == nil {
		return nil
	}

	provider := &metricsProvider{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_sim_requests_total",
				Help: "Total number of HTTP requests by route and status code",
			},
			[]string{"route", "status"},
		),
		durations: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gateway_sim_request_duration_seconds",
				Help:    "HTTP request latency by route",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"route"},
		),
		toolCalls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gateway_sim_tool_calls_total",
				Help: "Total number of tool invocations by tool and outcome",
			},
			[]string{"tool", "outcome"},
		),
	}

	registry.MustRegister(
		provider.requests,
		provider.durations,
		provider.toolCalls,
	)

	return provider
}

func (p *metricsProvider) ObserveRequest(route string, status int, elapsed time.Duration) {
	if p == nil {
		return
	}
	p.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
	p.durations.WithLabelValues(route).Observe(elapsed.Seconds())
}

func (p *metricsProvider) IncrementToolCall(tool, outcome string) {
	if p != nil && p.toolCalls != nil {
		p.toolCalls.WithLabelValues(tool, outcome).Inc()
	}
}
