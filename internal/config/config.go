// Package config loads the daemon configuration. Missing files fall back to
// defaults so a bare binary still starts.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/emberkeep/zoneforge/internal/logger"
	"github.com/emberkeep/zoneforge/internal/store"
)

// ServerConfig holds the zoned daemon settings.
type ServerConfig struct {
	Listen    ListenConfig  `yaml:"listen"`
	Generate  GenLimits     `yaml:"generate"`
	ThemesDir string        `yaml:"themes_dir"`
	Logging   logger.Config `yaml:"logging"`
	Store     store.Config  `yaml:"store"`
}

// ListenConfig holds network settings for the WebSocket endpoint.
type ListenConfig struct {
	// Addr is the host:port the daemon binds to.
	Addr string `yaml:"addr"`

	// AllowedOrigins lists origins allowed to connect. Empty enforces
	// same-origin; "*" allows everything.
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize caps inbound WebSocket messages in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`
}

// GenLimits caps what a single request may ask for.
type GenLimits struct {
	// MaxSide is the largest width or height a request may name.
	MaxSide int `yaml:"max_side"`
}

// DefaultConfig returns a ServerConfig with working defaults.
func DefaultConfig() *ServerConfig {
	return &ServerConfig{
		Listen: ListenConfig{
			Addr:           "localhost:4040",
			AllowedOrigins: []string{},
			MaxMessageSize: 4096,
		},
		Generate: GenLimits{
			MaxSide: 512,
		},
		ThemesDir: "themes",
		Logging:   logger.DefaultConfig(),
		Store:     store.DefaultConfig("data/zones.db"),
	}
}

// LoadConfig loads configuration from a YAML file. A missing file returns
// defaults; a malformed file returns defaults plus the parse error.
func LoadConfig(path string) (*ServerConfig, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}
	return config, nil
}

// IsOriginAllowed reports whether the given origin may connect.
func (c *ListenConfig) IsOriginAllowed(origin string) bool {
	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" || allowed == origin {
			return true
		}
	}
	return false
}
