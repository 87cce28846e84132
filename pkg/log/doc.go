// Package log provides structured query logging for OSCQuery servers.
//
// This package defines the Logger interface and the Event type for
// capturing every resolved OSCQuery request. It is separate from
// operational logging (slog) - query capture provides a complete
// machine-readable trace for debugging client interoperability.
//
// # Basic Usage
//
// Applications configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	cfg.QueryLogger = log.NewSlogAdapter(slog.Default())
//
//	// For production: write to binary file
//	cfg.QueryLogger, _ = log.NewFileLogger("/var/log/oscquery/server.qlog")
//
//	// Both: tee to several sinks
//	cfg.QueryLogger = log.Tee(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # File Format
//
// Log files use CBOR encoding with .qlog extension. The oscquery-log
// CLI tool provides viewing and statistics.
package log
