// Package config handles the global docfield configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/docfield/config.yml.
// Flags override environment variables, which override this file.
type Config struct {
	Mailto    string `yaml:"mailto,omitempty"`     // CrossRef polite-pool contact
	Style     string `yaml:"style,omitempty"`      // Default citation style
	CachePath string `yaml:"cache_path,omitempty"` // CrossRef response cache location
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "docfield"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// CacheFile is the default cache database name, stored next to the config.
	CacheFile = "crossref.db"
)

// Path returns the path to the global config file. Respects
// XDG_CONFIG_HOME, defaults to ~/.config/docfield/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// Load reads the global configuration and overlays environment variables
// on top of it. A missing file yields an empty config, not an error.
// Precedence is flags > environment > file; the env overlay here covers
// the middle layer, flag handling stays with the commands.
func Load() (*Config, error) {
	var cfg Config
	if path := Path(); path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parsing config: %w", err)
			}
		}
	}
	cfg.loadEnv()
	return &cfg, nil
}

// loadEnv overlays environment variables onto the config. DOCFIELD_MAILTO
// wins over the conventional CROSSREF_MAILTO name when both are set.
func (c *Config) loadEnv() {
	if v := os.Getenv("CROSSREF_MAILTO"); v != "" {
		c.Mailto = v
	}
	if v := os.Getenv("DOCFIELD_MAILTO"); v != "" {
		c.Mailto = v
	}
	if v := os.Getenv("DOCFIELD_STYLE"); v != "" {
		c.Style = v
	}
	if v := os.Getenv("DOCFIELD_CACHE_PATH"); v != "" {
		c.CachePath = v
	}
}

// DefaultCachePath returns the cache location: the configured path when
// set, otherwise a database next to the config file.
func (c *Config) DefaultCachePath() string {
	if c.CachePath != "" {
		return c.CachePath
	}
	path := Path()
	if path == "" {
		return CacheFile
	}
	return filepath.Join(filepath.Dir(path), CacheFile)
}
