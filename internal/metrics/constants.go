package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameItemsApplied   = "items_applied_total"
	MetricNameItemsConsumed  = "items_consumed_total"
	MetricNameItemsPlaced    = "items_placed_total"
	MetricNameTradesAccepted = "trades_accepted_total"
	MetricNameTradesDeclined = "trades_declined_total"
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

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextItemsApplied   = "Total number of item effects applied to players"
	HelpTextItemsConsumed  = "Total number of placements removed after a non-repeatable application"
	HelpTextItemsPlaced    = "Total number of items placed in the world"
	HelpTextTradesAccepted = "Total number of trader offers accepted"
	HelpTextTradesDeclined = "Total number of trader offers declined"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
)

// HTTPLatencyBuckets are the histogram buckets for request latency in seconds
var HTTPLatencyBuckets = []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5}
