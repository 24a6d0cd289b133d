package config

import "time"

// Config represents the application configuration
type Config struct {
	API     APIConfig     `toml:"api"`
	Matcher MatcherConfig `toml:"matcher"`
	Cache   CacheConfig   `toml:"cache"`
	MCP     MCPConfig     `toml:"mcp"`
}

// APIConfig contains settings for the local Beeper Desktop API
type APIConfig struct {
	BaseURL        string `toml:"base_url"`
	TokenPath      string `toml:"token_path"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
	SearchLimit    int    `toml:"search_limit"`
}

// Timeout returns the request timeout as a duration
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// MatcherConfig tunes chat name matching
type MatcherConfig struct {
	MinScore       float64 `toml:"min_score"`
	MaxResults     int     `toml:"max_results"`
	ConfidentScore float64 `toml:"confident_score"`
}

// CacheConfig contains local cache settings
type CacheConfig struct {
	Path string `toml:"path"`
}

// MCPConfig contains MCP server settings
type MCPConfig struct {
	Enabled   bool   `toml:"enabled"`
	Transport string `toml:"transport"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:        "http://localhost:23373",
			TokenPath:      "~/.config/beeper-cli/token.json",
			TimeoutSeconds: 15,
			SearchLimit:    20,
		},
		Matcher: MatcherConfig{
			MinScore:       0.4,
			MaxResults:     5,
			ConfidentScore: 0.8,
		},
		Cache: CacheConfig{
			Path: "~/.local/share/beeper-cli/beeper.db",
		},
		MCP: MCPConfig{
			Enabled:   true,
			Transport: "stdio",
		},
	}
}
