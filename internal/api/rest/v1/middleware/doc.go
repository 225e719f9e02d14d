// Package middleware holds the gin middleware of the REST API: bearer token
// authentication, role checks, per-client rate limiting, Prometheus request
// metrics, panic recovery and request logging.
package middleware
