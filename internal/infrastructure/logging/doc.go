// Package logging provides structured logging using uber/zap.
//
// Two modes are available:
//   - Production: JSON output for machine parsing
//   - Development: colored console output
//
// Relay code logs stream lifecycle at debug, completed operations at info,
// and stop signals or dropped UI events at warn.
//
// Example Usage:
//
//	logger := logging.NewDefault()
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.WithTrace(ctx).Warn("Stop signal failed", zap.Error(err))
package logging
