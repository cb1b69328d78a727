// Package logutil provides logging configuration for outputfile and the
// tools built on it, based on log/slog.
//
// The library logs state transitions and commits at debug level only, so it
// stays silent in normal operation. Debug logging is enabled either
// programmatically via SetupLogger or by setting OUTPUTFILE_DEBUG=true.
//
//	logutil.SetupLogger(true, false) // debug, text format
//	logutil.Debug("output file closed", "path", path, "state", state)
//
// Logs go to stderr by default; SetOutput redirects them, which is mainly
// useful in tests.
package logutil
