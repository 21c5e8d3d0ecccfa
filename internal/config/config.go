// Package config provides configuration loading for the OpenAPI explorer.
package config

import (
	"errors"
	"io/fs"
	"os"

	configloader "github.com/GabrielNunesIT/go-libs/config-loader"
)

// DefaultFile is read when present and no other file is given.
const DefaultFile = ".openapi-explorer.yaml"

// EnvPrefix prefixes environment variable overrides.
const EnvPrefix = "OPENAPI_EXPLORER_"

// Config holds the application configuration. Nested sections keep every
// key a single word so OPENAPI_EXPLORER_PROMPT_HEIGHT maps to prompt.height.
type Config struct {
	Verbose  bool           `koanf:"verbose"`
	External ExternalConfig `koanf:"external"`
	Prompt   PromptConfig   `koanf:"prompt"`
	Export   ExportConfig   `koanf:"export"`
}

// ExternalConfig controls external $ref resolution.
type ExternalConfig struct {
	Refs bool `koanf:"refs"`
}

// PromptConfig configures the endpoint selection prompt.
type PromptConfig struct {
	Height    int  `koanf:"height"`
	Filtering bool `koanf:"filtering"`
}

// ExportConfig configures the export command.
type ExportConfig struct {
	Format string `koanf:"format"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		External: ExternalConfig{Refs: true},
		Prompt:   PromptConfig{Height: 15, Filtering: true},
		Export:   ExportConfig{Format: "text"},
	}
}

// Load returns the application configuration using go-libs config-loader.
// An empty path falls back to DefaultFile; a missing file is not an error
// unless it was asked for explicitly.
func Load(path string) (*Config, error) {
	file, err := configFile(path)
	if err != nil {
		return nil, err
	}

	opts := []configloader.Option[Config]{
		configloader.WithDefaults(Defaults()),
	}
	if file != "" {
		opts = append(opts, configloader.WithFile[Config](file))
	}
	opts = append(opts, configloader.WithEnv[Config](EnvPrefix))

	loader := configloader.NewConfigLoader(opts...)

	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

func configFile(path string) (string, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return "", nil
		}
		return "", err
	}

	return path, nil
}
