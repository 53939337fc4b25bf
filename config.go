package chore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional project configuration file, looked up in the
// directory chore is invoked from.
const ConfigFile = ".chore.yml"

// Config defines the project configuration for chore.
type Config struct {
	// Sources lists the paths handed to formatters, linters and the type
	// checker.
	Sources []string `yaml:"sources"`

	// Python configures the interpreter version matrix.
	Python PythonConfig `yaml:"python"`

	// Docs configures the local documentation server.
	Docs DocsConfig `yaml:"docs"`
}

// PythonConfig configures the interpreter versions used by chore.
type PythonConfig struct {
	// Main is the version used for full development installs.
	Main string `yaml:"main"`

	// Versions is the matrix that version-scoped tasks run across.
	Versions []string `yaml:"versions"`
}

// DocsConfig holds the docs-serve defaults.
type DocsConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// WithDefaults returns a copy of the config with default values applied.
func (c Config) WithDefaults() Config {
	if len(c.Sources) == 0 {
		c.Sources = []string{"src", "tests"}
	}
	if c.Python.Main == "" {
		c.Python.Main = "3.6"
	}
	if len(c.Python.Versions) == 0 {
		c.Python.Versions = []string{"3.6", "3.7", "3.8", "3.10"}
	}
	if c.Docs.Host == "" {
		c.Docs.Host = "127.0.0.1"
	}
	if c.Docs.Port == 0 {
		c.Docs.Port = 8000
	}
	return c
}

// LoadConfig reads the config file at path and applies defaults. A missing
// file is not an error: the defaults describe a conventional project.
func LoadConfig(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}.WithDefaults(), nil
		}
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg.WithDefaults(), nil
}
