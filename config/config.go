// Package config holds the CLI-side settings. Nothing here reaches into the
// inference engine itself; the engine's behavior is fixed apart from its
// trim flag.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Output picks the schema rendering, "table" or "json".
	Output string `yaml:"output"`
	// Separator is the CSV field delimiter, a single character.
	Separator string `yaml:"separator"`
	// RowLimit bounds how many rows or lines of a file are profiled.
	// Zero profiles everything.
	RowLimit int `yaml:"rowLimit"`
}

func Default() *Config {
	return &Config{
		Output:    "table",
		Separator: ",",
	}
}

// Read loads the config file at the given path, falling back to defaults
// when the file doesn't exist.
func Read(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return Default(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open file")
	}
	defer f.Close()

	config := Default()
	if err := yaml.NewDecoder(f).Decode(config); err != nil {
		return nil, errors.Wrap(err, "couldn't decode yaml configuration")
	}
	if len([]rune(config.Separator)) != 1 {
		return nil, errors.Errorf("separator must be a single character, got %q", config.Separator)
	}
	return config, nil
}
