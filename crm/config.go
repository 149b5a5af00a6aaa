// ABOUTME: CRM API credential and configuration loading
// ABOUTME: XDG config file with environment variable overrides
package crm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const defaultBaseURL = "https://api.attio.com/v2"

// Config stores CRM API credentials and connection settings. The API
// key is opaque and externally supplied.
type Config struct {
	APIKey    string `json:"api_key"`
	BaseURL   string `json:"base_url,omitempty"`
	Workspace string `json:"workspace,omitempty"`
}

// ConfigDir returns the XDG-compliant directory for CRM configuration.
func ConfigDir() string {
	return filepath.Join(xdg.ConfigHome, "crm-mcp")
}

// ConfigPath returns the XDG-compliant path of the CRM config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.json")
}

// LoadConfig loads CRM configuration from the XDG config file if it
// exists, then applies environment variable overrides:
// - CRM_API_KEY
// - CRM_BASE_URL
// - CRM_WORKSPACE
// An API key is required; everything else has defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{BaseURL: defaultBaseURL}

	f, err := os.Open(ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to open config file: %w", err)
		}
	} else {
		defer func() { _ = f.Close() }()
		if err := json.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file: %w", err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("CRM API key is required (set CRM_API_KEY or add api_key to %s)", ConfigPath())
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("CRM_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if base := os.Getenv("CRM_BASE_URL"); base != "" {
		cfg.BaseURL = base
	}
	if workspace := os.Getenv("CRM_WORKSPACE"); workspace != "" {
		cfg.Workspace = workspace
	}
}
