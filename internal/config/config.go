// Package config loads the root configuration shared by the
// dungeonplan binaries.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the full configuration for generation, storage, and the
// viewer service.
type Config struct {
	Layout LayoutConfig `yaml:"layout"`
	Seed   SeedConfig   `yaml:"seed"`
	Store  StoreConfig  `yaml:"store"`
	Server ServerConfig `yaml:"server"`
}

// LayoutConfig holds floor generation parameters. Out-of-range values
// are clamped by the generation engine, not here.
type LayoutConfig struct {
	// GridSize is the side length of the square floor grid.
	GridSize int `yaml:"grid_size"`

	// MinRoomSize is the smallest room extent on either axis.
	MinRoomSize int `yaml:"min_room_size"`

	// MaxRoomSize is the largest room extent on either axis.
	MaxRoomSize int `yaml:"max_room_size"`

	// MaxRooms is the target room count per floor.
	MaxRooms int `yaml:"max_rooms"`

	// RetryLimit is how many consecutive rejected candidates end a
	// placement run.
	RetryLimit int `yaml:"retry_limit"`
}

// SeedConfig controls how the generation seed is chosen. An explicit
// value wins over a phrase; with neither set the seed comes from the
// clock.
type SeedConfig struct {
	// Value is an explicit seed. 0 means unset.
	Value int64 `yaml:"value"`

	// Phrase is a human-readable seed phrase hashed into a seed.
	Phrase string `yaml:"phrase"`
}

// StoreConfig holds layout archive settings.
type StoreConfig struct {
	// Driver selects the database backend: "sqlite" or "postgres".
	Driver string `yaml:"driver"`

	// Path is the SQLite database file location.
	Path string `yaml:"path"`

	// Host, Port, Name, User, Password, and SSLMode configure the
	// PostgreSQL connection when Driver is "postgres".
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
}

// ServerConfig holds viewer service settings.
type ServerConfig struct {
	// ListenAddr is the HTTP listen address.
	ListenAddr string `yaml:"listen_addr"`

	// Name labels layouts generated through the service.
	Name string `yaml:"name"`

	WebSocket   WebSocketConfig   `yaml:"websocket"`
	Connections ConnectionsConfig `yaml:"connections"`
}

// WebSocketConfig holds WebSocket-specific settings.
type WebSocketConfig struct {
	// AllowedOrigins is a list of origins allowed to connect via WebSocket.
	// Empty list enforces same-origin policy.
	// Use "*" to allow all origins (not recommended for production).
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum WebSocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`
}

// ConnectionsConfig holds connection limit settings.
type ConnectionsConfig struct {
	// MaxPerIP is the maximum concurrent connections allowed from a
	// single IP address. 0 means unlimited.
	MaxPerIP int `yaml:"max_per_ip"`

	// MaxTotal is the maximum total concurrent connections. 0 means
	// unlimited.
	MaxTotal int `yaml:"max_total"`
}

// DefaultConfig returns a Config with working defaults: a mid-size
// floor, a SQLite archive, and a local viewer.
func DefaultConfig() *Config {
	return &Config{
		Layout: LayoutConfig{
			GridSize:    50,
			MinRoomSize: 4,
			MaxRoomSize: 10,
			MaxRooms:    15,
			RetryLimit:  200,
		},
		Seed: SeedConfig{},
		Store: StoreConfig{
			Driver:  "sqlite",
			Path:    "data/layouts.db",
			Host:    "localhost",
			Port:    5432,
			Name:    "dungeonplan",
			User:    "dungeonplan",
			SSLMode: "disable",
		},
		Server: ServerConfig{
			ListenAddr: ":8080",
			Name:       "floor",
			WebSocket: WebSocketConfig{
				AllowedOrigins: []string{}, // Same-origin only by default
				MaxMessageSize: 65536,
			},
			Connections: ConnectionsConfig{
				MaxPerIP: 3,
				MaxTotal: 100,
			},
		},
	}
}

// LoadConfig loads configuration from a YAML file.
// If the file doesn't exist or can't be parsed, returns default config.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil // Use defaults if file doesn't exist
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	return config, nil
}

// IsOriginAllowed checks if the given origin is allowed based on the config.
// Returns true if:
// - AllowedOrigins contains "*" (allow all)
// - AllowedOrigins contains the exact origin
// - AllowedOrigins is empty and origin matches the request host (same-origin)
func (c *WebSocketConfig) IsOriginAllowed(origin, requestHost string) bool {
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}

	for _, allowed := range c.AllowedOrigins {
		if allowed == "*" {
			return true
		}
		if allowed == origin {
			return true
		}
	}

	return false
}

// isSameOrigin checks if the origin matches the request host (same-origin policy).
func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true // No origin header means same-origin (e.g., non-browser client)
	}

	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	originHost = strings.TrimSuffix(originHost, "/")

	return originHost == requestHost
}
