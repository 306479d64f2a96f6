// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance supporting console output for
// interactive CLI use and JSON output for log collection.
//
// # Run Correlation
//
// The logger is designed to be run-aware. The WithRunID helper generates a
// unique identifier for a reconciliation run and attaches it to the log
// entry, ensuring that all logs belonging to a single run can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (machine-readable) or console (interactive)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Info("Starting sync")
//
//	// At the start of a run:
//	l, runID := logger.WithRunID(log)
//	l.Info("Run started")
package logger
