// Package logging provides structured logging utilities for whenami.
//
// This package centralizes logging patterns to ensure consistent, structured
// logging throughout the codebase using the standard library's slog package.
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "calendar.freebusy")
//	logger.Warn("source fetch failed",
//	    logging.Calendar(id),
//	    logging.Err(err))
package logging
