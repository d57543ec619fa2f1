// Package logging assembles the structured slog loggers used across the
// subrip command and library.
//
// It centralizes level and format plumbing, keeps diagnostics on stderr so
// stdout stays clean for subtitle data, and provides a no-op logger for
// tests and wiring code that cannot fail.
package logging
