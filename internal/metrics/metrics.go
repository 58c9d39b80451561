package metrics

import (
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

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	ItemsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsApplied,
			Help: HelpTextItemsApplied,
		},
		[]string{LabelItem},
	)

	ItemsConsumed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsConsumed,
			Help: HelpTextItemsConsumed,
		},
		[]string{LabelItem},
	)

	ItemsPlaced = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsPlaced,
			Help: HelpTextItemsPlaced,
		},
		[]string{LabelItem},
	)

	TradesAccepted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesAccepted,
			Help: HelpTextTradesAccepted,
		},
	)

	TradesDeclined = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTradesDeclined,
			Help: HelpTextTradesDeclined,
		},
	)
)
