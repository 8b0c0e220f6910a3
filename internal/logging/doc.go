// Package logging builds the slog logger used across mpvnotes.
//
// Two output formats are supported: a compact console handler for
// interactive use and standard JSON for log files. Level and format come
// from config; commands get a ready logger from NewFromConfig.
package logging
