// Package service serves a published address tree over HTTP.
//
// The server owns the transport side of OSCQuery: it accepts GET
// requests, hands the request path and raw query string to the
// resolver, and maps the result onto HTTP status codes (200 for
// resolved queries, 404 for unknown paths, 405 for non-GET methods).
// Publishing a tree freezes it; every request is then an independent
// read-only traversal, so requests are served concurrently without
// locking.
//
// Operational logging goes through log/slog. Each resolved request is
// additionally emitted as a structured query event (see pkg/log) for
// machine-readable capture.
package service
