package chlog

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config configures the package-level logger.
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, stderr, file
	FilePath   string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

var (
	mu      sync.Mutex
	current atomic.Pointer[slog.Logger]
)

func init() {
	current.Store(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
}

// Init sets up the package-level logger at the given level, writing JSON to
// stdout. Equivalent to InitWithConfig(Config{Level: level, Format: "json",
// Output: "stdout"}).
func Init(level string) {
	InitWithConfig(Config{Level: level, Format: "json", Output: "stdout"})
}

// InitWithConfig replaces the package-level logger per cfg. Safe to call
// concurrently with Default(); readers always observe either the old or the
// new logger, never a partially constructed one.
func InitWithConfig(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	var w io.Writer
	switch cfg.Output {
	case "stderr":
		w = os.Stderr
	case "file":
		path := cfg.FilePath
		if path == "" {
			path = "logs/chway.log"
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			w = os.Stdout
		} else {
			w = &lumberjack.Logger{
				Filename:   path,
				MaxSize:    cfg.MaxSizeMB,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAgeDays,
				Compress:   cfg.Compress,
			}
		}
	default:
		w = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: level, AddSource: level == slog.LevelDebug}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	current.Store(slog.New(handler))
}

// Default returns the current package-level logger.
func Default() *slog.Logger { return current.Load() }

// With returns a child logger carrying the given attributes, e.g. for
// per-request or per-dataset-generation context.
func With(args ...any) *slog.Logger { return Default().With(args...) }
