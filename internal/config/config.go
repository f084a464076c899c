package config

import (
	"fmt"
	"os"
	"time"
)

// Config holds everything the bot needs to talk to Reddit and GitHub.
// Loaded once from environment variables at startup, immutable afterwards.
type Config struct {
	// Reddit credentials (script-type app)
	Username     string
	Password     string
	ClientID     string
	ClientSecret string
	UserAgent    string

	// Watch target
	Subreddit string

	// CollectorMode selects the listing client: "script", "api", or "mock"
	CollectorMode string

	// Optional token for api.github.com (raises the rate limit)
	GitHubToken string

	// DataDir holds the processed-set file and the reply log
	DataDir string

	// Port for the dashboard / metrics server
	Port string

	// EmptyPageDelay is the fixed wait when a listing page comes back empty
	EmptyPageDelay time.Duration
}

// Load reads the configuration from environment variables.
// Credentials are only required for modes that authenticate.
func Load() (*Config, error) {
	cfg := &Config{
		Username:       os.Getenv("REDDIT_USERNAME"),
		Password:       os.Getenv("REDDIT_PASSWORD"),
		ClientID:       os.Getenv("REDDIT_CLIENT_ID"),
		ClientSecret:   os.Getenv("REDDIT_CLIENT_SECRET"),
		UserAgent:      os.Getenv("REDDIT_USER_AGENT"),
		Subreddit:      os.Getenv("SUBREDDIT"),
		CollectorMode:  os.Getenv("COLLECTOR_MODE"),
		GitHubToken:    os.Getenv("GITHUB_TOKEN"),
		DataDir:        os.Getenv("DATA_DIR"),
		Port:           os.Getenv("PORT"),
		EmptyPageDelay: 15 * time.Second,
	}

	if cfg.CollectorMode == "" {
		cfg.CollectorMode = "script"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if v := os.Getenv("EMPTY_PAGE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid EMPTY_PAGE_DELAY %q: %w", v, err)
		}
		cfg.EmptyPageDelay = d
	}

	if cfg.Subreddit == "" {
		return nil, fmt.Errorf("SUBREDDIT is required")
	}
	if cfg.CollectorMode != "mock" {
		if cfg.UserAgent == "" {
			return nil, fmt.Errorf("REDDIT_USER_AGENT is required for mode %q", cfg.CollectorMode)
		}
		for name, v := range map[string]string{
			"REDDIT_USERNAME":      cfg.Username,
			"REDDIT_PASSWORD":      cfg.Password,
			"REDDIT_CLIENT_ID":     cfg.ClientID,
			"REDDIT_CLIENT_SECRET": cfg.ClientSecret,
		} {
			if v == "" {
				return nil, fmt.Errorf("%s is required for mode %q", name, cfg.CollectorMode)
			}
		}
	}
	return cfg, nil
}
