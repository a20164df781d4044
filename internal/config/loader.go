package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ConfigPath returns the default configuration file path: ~/.domainmcp/config.json.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".domainmcp/config.json"
	}
	return filepath.Join(home, ".domainmcp", "config.json")
}

// Load reads and parses the config file at path.
// If path is empty, ConfigPath() is used.
// A missing file yields the defaults; a malformed file prints a warning to
// stderr and yields the defaults. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	if path == "" {
		path = ConfigPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to parse config %s: %v\n", path, err)
		fmt.Fprintln(os.Stderr, "Using default configuration.")
		cfg = DefaultConfig()
	}

	applyEnv(&cfg)
	return &cfg, nil
}

// applyEnv overlays environment variables onto cfg. Env wins over file values
// so deployments can point the server at a different registrar without
// touching the config file.
func applyEnv(cfg *Config) {
	if v := os.Getenv("DOMAINMCP_API_URL"); v != "" {
		cfg.Registrar.BaseURL = v
	}
	if v := os.Getenv("DOMAINMCP_API_KEY"); v != "" {
		cfg.Registrar.APIKey = v
	}
}
