// Package config defines the domainmcp configuration and its JSON loader.
package config

import "time"

const defaultTimeoutSeconds = 30

// Config is the top-level domainmcp configuration.
type Config struct {
	Registrar RegistrarConfig `json:"registrar"`
	Server    ServerConfig    `json:"server"`
}

// RegistrarConfig holds connection settings for the remote registrar API.
type RegistrarConfig struct {
	BaseURL string `json:"baseUrl"`
	// APIKey, when set, is sent as a bearer token on every outbound request.
	APIKey         string `json:"apiKey,omitempty"`
	TimeoutSeconds int    `json:"timeoutSeconds,omitempty"`
}

// ServerConfig holds the MCP-facing server settings.
type ServerConfig struct {
	Name string `json:"name"`
	// HTTPAddr enables the HTTP JSON-RPC transport when non-empty.
	// Stdio is always served.
	HTTPAddr string `json:"httpAddr,omitempty"`
}

// Timeout returns the outbound HTTP timeout, applying the default when unset.
func (c RegistrarConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultTimeoutSeconds * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// DefaultConfig returns the built-in defaults used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Registrar: RegistrarConfig{
			BaseURL:        "https://api.domainregistry.dev",
			TimeoutSeconds: defaultTimeoutSeconds,
		},
		Server: ServerConfig{
			Name: "domainmcp",
		},
	}
}
