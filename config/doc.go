// Package config resolves the "map of key -> filesystem path" surface the
// rest of the module consumes: the seven dataset artifact paths (.hsgr,
// .nodes, .edges, .names, .ramIndex, .fileIndex, .timestamp) plus ambient
// knobs (logging, metrics), loaded through koanf. The `env` provider is
// deliberately never wired: no environment variables are consulted.
package config
