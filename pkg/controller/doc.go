// Package controller contains HTTP middlewares used by the API server.
//
// Provided middlewares:
//   - WithCORS: Allows read-only cross-origin access and answers OPTIONS preflight.
//   - WithLogger: Attaches a request-scoped logger and request ID to the context and logs access info.
//   - RequestMetrics.WithMetrics: Records request latency per route and status in a Prometheus histogram.
package controller
