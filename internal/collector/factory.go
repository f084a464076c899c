package collector

import (
	"context"
	"fmt"

	"github.com/qepting91/license-bot/internal/config"
	"github.com/qepting91/license-bot/internal/domain"
)

// New selects the collector implementation based on the configured mode.
// Every mode's client doubles as the reply publisher.
func New(ctx context.Context, cfg *config.Config) (domain.Collector, domain.Replier, error) {
	switch cfg.CollectorMode {
	case "api":
		c, err := NewAPIClient(cfg.ClientID, cfg.ClientSecret, cfg.Username, cfg.Password, cfg.UserAgent)
		if err != nil {
			return nil, nil, err
		}
		return c, c, nil
	case "script":
		c := NewScriptClient(cfg.Username, cfg.Password, cfg.ClientID, cfg.ClientSecret, cfg.UserAgent)
		if err := c.Login(ctx); err != nil {
			return nil, nil, fmt.Errorf("reddit login: %w", err)
		}
		return c, c, nil
	case "mock":
		c := NewMockClient()
		return c, c, nil
	default:
		return nil, nil, fmt.Errorf("unknown COLLECTOR_MODE: %s (use 'script', 'api', or 'mock')", cfg.CollectorMode)
	}
}
