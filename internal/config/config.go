// Package config loads server configuration. Precedence: command-line flags
// (applied by the caller) over environment variables over the YAML file over
// defaults. A .env file in the working directory is folded into the
// environment first, the way local Solid Edge connection settings are
// usually kept.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the server settings.
type Config struct {
	Transport   string `yaml:"transport"`    // stdio or sse
	Port        int    `yaml:"port"`         // sse only
	Kernel      string `yaml:"kernel"`       // kernel backend, "memory" is the in-tree one
	JournalPath string `yaml:"journal_path"` // empty disables the call journal
	LogLevel    string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Transport: "stdio",
		Port:      8080,
		Kernel:    "memory",
		LogLevel:  "info",
	}
}

// Load reads path (when it exists) over the defaults, then applies
// environment overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	// Best-effort: absence of .env is the common case.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// fall through to env overrides
		case err != nil:
			return cfg, fmt.Errorf("read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("SOLIDEDGE_MCP_TRANSPORT"); v != "" {
		c.Transport = v
	}
	if v := os.Getenv("SOLIDEDGE_MCP_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("SOLIDEDGE_MCP_KERNEL"); v != "" {
		c.Kernel = v
	}
	if v := os.Getenv("SOLIDEDGE_MCP_JOURNAL"); v != "" {
		c.JournalPath = v
	}
	if v := os.Getenv("SOLIDEDGE_MCP_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
}

// Validate rejects settings the server cannot start with.
func (c Config) Validate() error {
	switch c.Transport {
	case "stdio", "sse":
	default:
		return fmt.Errorf("unknown transport %q: supported are stdio, sse", c.Transport)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	return nil
}
