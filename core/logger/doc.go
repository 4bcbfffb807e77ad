// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with both the CLI commands and
// the report server.
//
// # Correlation
//
// Two helpers attach correlation fields to log entries: WithRunID tags every
// line of one comparison run with its run id, and WithRayID extracts the
// request id from a Fiber context so logs of one HTTP request can be grouped.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Comparison started")
//
//	l := logger.WithRunID(log, runID)
//	l.Error("Parse failed", zap.Error(err))
package logger
