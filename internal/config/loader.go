package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file. A missing file is not an
// error; defaults apply.
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.API.TokenPath, err = expandPath(c.API.TokenPath)
	if err != nil {
		return err
	}

	c.Cache.Path, err = expandPath(c.Cache.Path)
	if err != nil {
		return err
	}

	return nil
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.API.BaseURL == "" {
		errs = append(errs, errors.New("api.base_url is required"))
	}
	if c.API.TokenPath == "" {
		errs = append(errs, errors.New("api.token_path is required"))
	}
	if c.API.TimeoutSeconds < 1 {
		errs = append(errs, errors.New("api.timeout_seconds must be at least 1"))
	}
	if c.API.SearchLimit < 1 || c.API.SearchLimit > 100 {
		errs = append(errs, errors.New("api.search_limit must be between 1 and 100"))
	}

	if c.Matcher.MinScore < 0 || c.Matcher.MinScore > 1 {
		errs = append(errs, errors.New("matcher.min_score must be between 0 and 1"))
	}
	if c.Matcher.ConfidentScore < 0 || c.Matcher.ConfidentScore > 1 {
		errs = append(errs, errors.New("matcher.confident_score must be between 0 and 1"))
	}
	if c.Matcher.MaxResults < 1 {
		errs = append(errs, errors.New("matcher.max_results must be at least 1"))
	}

	if c.Cache.Path == "" {
		errs = append(errs, errors.New("cache.path is required"))
	}

	if c.MCP.Transport != "stdio" {
		errs = append(errs, fmt.Errorf("mcp.transport must be 'stdio', got '%s'", c.MCP.Transport))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates necessary directories for the cache and token
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		filepath.Dir(c.Cache.Path),
		filepath.Dir(c.API.TokenPath),
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}
