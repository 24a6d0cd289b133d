package cli

import (
	"context"
	"fmt"

	"github.com/MrGHPrice/raycast-extensions/internal/beeper"
	"github.com/MrGHPrice/raycast-extensions/internal/cache"
	"github.com/MrGHPrice/raycast-extensions/internal/config"
	"github.com/MrGHPrice/raycast-extensions/internal/resolver"
)

// newClient builds an authenticated API client from config.
func newClient(ctx context.Context, cfg *config.Config) (*beeper.Client, error) {
	token, err := beeper.AccessToken(ctx, cfg.API.BaseURL, cfg.API.TokenPath)
	if err != nil {
		return nil, err
	}
	return beeper.New(cfg.API.BaseURL, token, cfg.API.Timeout()), nil
}

// openCache opens the local cache, degrading to nil when it fails. The cache
// only powers recency features; commands must work without it.
func openCache(cfg *config.Config) *cache.Store {
	store, err := cache.Open(cfg.Cache.Path)
	if err != nil {
		return nil
	}
	return store
}

// newResolver wires a resolver with the config's matcher settings.
func newResolver(client *beeper.Client, store *cache.Store, cfg *config.Config) *resolver.Resolver {
	return resolver.New(client, store, resolver.Options{
		SearchLimit:    cfg.API.SearchLimit,
		MinScore:       cfg.Matcher.MinScore,
		MaxResults:     cfg.Matcher.MaxResults,
		ConfidentScore: cfg.Matcher.ConfidentScore,
	})
}

// loadConfig loads config and creates any missing directories.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("failed to prepare directories: %w", err)
	}
	return cfg, nil
}
