package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DatasetPaths is the map of key -> filesystem path a caller hands the
// facade layer: the seven persisted artifacts of one dataset generation.
type DatasetPaths struct {
	HSGR      string `koanf:"hsgr"`
	Nodes     string `koanf:"nodes"`
	Edges     string `koanf:"edges"`
	Names     string `koanf:"names"`
	RAMIndex  string `koanf:"ram_index"`
	FileIndex string `koanf:"file_index"`
	Timestamp string `koanf:"timestamp"`
}

// Logging and Metrics mirror chlog.Config / chmetrics.Init's parameters, so
// one config file can drive both the dataset paths and the ambient stack.
type Logging struct {
	Level      string `koanf:"level"`
	Format     string `koanf:"format"`
	Output     string `koanf:"output"`
	FilePath   string `koanf:"file_path"`
	MaxSizeMB  int    `koanf:"max_size_mb"`
	MaxBackups int    `koanf:"max_backups"`
	MaxAgeDays int    `koanf:"max_age_days"`
	Compress   bool   `koanf:"compress"`
}

type Metrics struct {
	Enabled   bool   `koanf:"enabled"`
	Namespace string `koanf:"namespace"`
	Subsystem string `koanf:"subsystem"`
}

// Config is the full file-backed configuration surface: dataset paths plus
// the ambient logging/metrics knobs. No field here is ever populated from
// an environment variable.
type Config struct {
	Dataset DatasetPaths `koanf:"dataset"`
	Logging Logging      `koanf:"logging"`
	Metrics Metrics      `koanf:"metrics"`
}

func defaults() map[string]any {
	return map[string]any{
		"logging.level":  "info",
		"logging.format": "json",
		"logging.output": "stdout",

		"metrics.enabled":   true,
		"metrics.namespace": "chway",
		"metrics.subsystem": "",
	}
}

// LoadDatasetConfig resolves a Config from a YAML file at path, layering
// the file over this package's defaults via koanf's confmap + file
// providers. It never consults an environment variable: the one
// caller-facing entry point is this function, not an env var lookup.
func LoadDatasetConfig(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("config: load defaults: %w", err)
	}

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("config: load file %q: %w", path, err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	return cfg, nil
}

// FromMap builds a DatasetPaths directly from an in-memory key -> path map,
// bypassing the file/YAML layer entirely for a caller that already has the
// seven paths. Keys absent from m leave the corresponding path empty.
func FromMap(m map[string]string) DatasetPaths {
	return DatasetPaths{
		HSGR:      m["hsgr"],
		Nodes:     m["nodes"],
		Edges:     m["edges"],
		Names:     m["names"],
		RAMIndex:  m["ram_index"],
		FileIndex: m["file_index"],
		Timestamp: m["timestamp"],
	}
}
