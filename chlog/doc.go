// Package chlog is the structured-logging facade used throughout this
// module: a package-level *slog.Logger with level/format/output knobs and
// an optional lumberjack-backed rotating file writer.
package chlog
