// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

The character API base URL and the fetch budget are read exactly once, here.
Nothing else in the module reads the environment.
*/
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the explorer server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Character API
	APIBaseURL string `env:"API_BASE_URL,required"`

	// FetchPageSize is the pageSize query value sent on every page request.
	FetchPageSize int `env:"FETCH_PAGE_SIZE" envDefault:"50"`

	// FetchMaxPages caps how many pages a full-collection fetch may consume.
	FetchMaxPages int `env:"FETCH_MAX_PAGES" envDefault:"10"`

	// FetchOnStart triggers a full-collection fetch once the server is up.
	FetchOnStart bool `env:"FETCH_ON_START" envDefault:"true"`

	// ItemsPerPage is the initial page size of the explorer view.
	ItemsPerPage int `env:"ITEMS_PER_PAGE" envDefault:"50"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects values that would make the fetch loop or pagination meaningless.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.APIBaseURL) == "" {
		return fmt.Errorf("config: API_BASE_URL must not be blank")
	}
	if c.FetchPageSize < 1 {
		return fmt.Errorf("config: FETCH_PAGE_SIZE must be positive, got %d", c.FetchPageSize)
	}
	if c.FetchMaxPages < 1 {
		return fmt.Errorf("config: FETCH_MAX_PAGES must be positive, got %d", c.FetchMaxPages)
	}
	if c.ItemsPerPage < 1 {
		return fmt.Errorf("config: ITEMS_PER_PAGE must be positive, got %d", c.ItemsPerPage)
	}
	return nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// AllowedOrigins returns the trimmed, comma-separated EXTRA_ORIGINS entries.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if clean := strings.TrimSpace(origin); clean != "" {
			origins = append(origins, clean)
		}
	}
	return origins
}
