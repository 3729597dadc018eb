package main

import (
	"strconv"

	"github.com/coregx/simdutf8/basic"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

// Config controls how inputs are read and how results are reported.
type Config struct {
	// Exact reads each input whole and reports the position of the first
	// error. Otherwise inputs are streamed and only validity is reported.
	Exact bool

	// Format is one of FormatText, FormatJSON or FormatCBOR.
	Format string

	// BufferSize is the streaming read size. It must be a positive multiple
	// of basic.ChunkSize so every full read can skip re-buffering.
	BufferSize int

	// Backend is "auto" or a backend name.
	Backend string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Format:     FormatText,
		BufferSize: 64 << 10,
		Backend:    "auto",
	}
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	switch c.Format {
	case FormatText, FormatJSON, FormatCBOR:
	default:
		return &ConfigError{Field: "Format", Message: "must be text, json or cbor, got " + strconv.Quote(c.Format)}
	}

	if c.BufferSize < basic.ChunkSize || c.BufferSize%basic.ChunkSize != 0 {
		return &ConfigError{
			Field:   "BufferSize",
			Message: "must be a positive multiple of " + strconv.Itoa(basic.ChunkSize),
		}
	}
	if c.BufferSize > 1<<30 {
		return &ConfigError{Field: "BufferSize", Message: "must not exceed 1 GiB"}
	}

	if c.Backend == "" {
		return &ConfigError{Field: "Backend", Message: "must not be empty"}
	}
	return nil
}

// ConfigError reports an invalid configuration field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "utf8check: invalid config: " + e.Field + ": " + e.Message
}
