package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Telemetry wraps an http.Handler with OpenTelemetry instrumentation:
// request duration, active requests, sizes, and a trace span per request.
// Health probes are filtered out so uptime checks do not drown the
// finance endpoints in the trace view.
func Telemetry(next http.Handler) http.Handler {
	return otelhttp.NewMiddleware("finwise-api",
		otelhttp.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != "/health"
		}),
	)(next)
}
