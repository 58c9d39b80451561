package server

import "time"

// Header names the middleware inspects or redacts.
const (
	headerAPIKey        = "X-API-Key"
	headerAuthorization = "Authorization"
	headerForwardedFor  = "X-Forwarded-For"
)

// redactedValue replaces sensitive header values in debug logs.
const redactedValue = "[REDACTED]"

// publicPathPrefixes bypass API-key authentication. These are the
// operational endpoints that load balancers and Prometheus reach
// without credentials.
var publicPathPrefixes = []string{
	"/healthz",
	"/readyz",
	"/metrics",
	"/version",
}

// Abuse limits enforced by the activity monitor.
const (
	maxRequestBody           = 1 << 20 // 1 MiB
	rateLimitWindow          = 5 * time.Minute
	rateLimitMaxRequests     = 1000
	failedAuthAlertThreshold = 5
)
