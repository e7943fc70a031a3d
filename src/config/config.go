// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/H0llyW00dzZ/exec-wrapper/src/wrapper"
	"gopkg.in/yaml.v3"
)

// EnvConfigFile names the environment variable holding the config file path.
const EnvConfigFile = "EXECWRAP_CONFIG_FILE"

// format represents supported configuration file formats.
type format int

const (
	// formatJSON represents JSON configuration format (.json)
	formatJSON format = iota
	// formatYAML represents YAML configuration format (.yaml, .yml)
	formatYAML
)

// Config represents the execwrap configuration structure.
type Config struct {
	// Defaults: settings applied to every wrapper unless overridden
	Defaults struct {
		// Interpreter: interpreter path written into Windows launchers.
		// Empty means look up python3 or python on PATH.
		Interpreter string `json:"interpreter,omitempty" yaml:"interpreter,omitempty"`
		// Platform: target platform family (posix, windows, or a GOOS name).
		// Empty means the host platform.
		Platform string `json:"platform,omitempty" yaml:"platform,omitempty"`
		// Executable: add the executable bits after writing on POSIX hosts
		Executable bool `json:"executable" yaml:"executable"`
	} `json:"defaults" yaml:"defaults"`

	// Launcher: native launcher stub used for Windows wrappers
	Launcher struct {
		// Path: file to read instead of the embedded launcher
		Path string `json:"path,omitempty" yaml:"path,omitempty"`
	} `json:"launcher" yaml:"launcher"`
}

// Default returns a Config holding the built-in defaults.
func Default() *Config {
	cfg := &Config{}
	cfg.Defaults.Executable = true
	return cfg
}

// detectFormat determines the configuration file format based on file extension.
// Matching is case-insensitive; unknown extensions are read as JSON.
func detectFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// unmarshal decodes data into cfg using the given format.
func unmarshal(data []byte, cfg *Config, f format) error {
	switch f {
	case formatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse YAML config file: %w", err)
		}
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse JSON config file: %w", err)
		}
	}
	return nil
}

// Load loads configuration from a JSON or YAML file or applies defaults.
//
// Configuration Priority:
//  1. Default values are set
//  2. EXECWRAP_CONFIG_FILE is checked if path is empty
//  3. Config file values override defaults (if a path is known)
//
// The platform value is validated so a typo fails at load time instead of
// on the first build.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv(EnvConfigFile)
	}
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := unmarshal(data, cfg, detectFormat(path)); err != nil {
		return nil, err
	}

	cfg.Defaults.Interpreter = strings.TrimSpace(cfg.Defaults.Interpreter)
	cfg.Defaults.Platform = strings.TrimSpace(cfg.Defaults.Platform)
	if _, err := cfg.Platform(); err != nil {
		return nil, err
	}

	// Relative launcher paths are taken from the config file's directory.
	if p := cfg.Launcher.Path; p != "" && !filepath.IsAbs(p) {
		cfg.Launcher.Path = filepath.Join(filepath.Dir(path), p)
	}

	return cfg, nil
}

// Platform returns the configured target platform, or the host platform
// when none is set.
func (c *Config) Platform() (wrapper.Platform, error) {
	if c.Defaults.Platform == "" {
		return wrapper.HostPlatform(), nil
	}
	p := wrapper.ParsePlatform(c.Defaults.Platform)
	if p == wrapper.Unsupported {
		return p, fmt.Errorf("%w: %q", wrapper.ErrUnsupportedPlatform, c.Defaults.Platform)
	}
	return p, nil
}

// Options converts the configuration into wrapper options. Callers append
// their own options afterwards so explicit choices win.
func (c *Config) Options() []wrapper.Option {
	var opts []wrapper.Option

	if p, err := c.Platform(); err == nil {
		opts = append(opts, wrapper.WithPlatform(p))
	}
	if c.Defaults.Interpreter != "" {
		opts = append(opts, wrapper.WithInterpreter(c.Defaults.Interpreter))
	}
	if c.Launcher.Path != "" {
		opts = append(opts, wrapper.WithLauncherFile(c.Launcher.Path))
	}
	opts = append(opts, wrapper.WithExecBit(c.Defaults.Executable))

	return opts
}

// Template returns an example configuration with every key present,
// encoded as indented JSON.
func Template() ([]byte, error) {
	cfg := Default()
	cfg.Defaults.Interpreter = wrapper.FallbackInterpreter
	cfg.Defaults.Platform = wrapper.HostPlatform().String()

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config template: %w", err)
	}
	return data, nil
}
