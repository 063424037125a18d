// Package logging provides structured logging using uber/zap.
//
// Production mode writes JSON records carrying timestamp, level, message,
// logger name, and the call site as filename and line. Every record is
// written to each of the configured output paths, normally stdout and a log
// file.
//
// Development mode switches to colored console output.
//
// Example Usage:
//
//	logger, err := logging.New(logging.Config{
//		Level:       "info",
//		OutputPaths: []string{"stdout", "app.log"},
//	})
//	logger.Info("Server starting", zap.String("port", "8000"))
//	logger.Error("Failed to load catalog", zap.Error(err))
package logging
