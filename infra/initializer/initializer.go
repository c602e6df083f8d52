// Package initializer builds the application dependencies from config.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	infradocstore "github.com/orioninvest/brokerage/infra/docstore"
	infraidentity "github.com/orioninvest/brokerage/infra/identity"
	infrasession "github.com/orioninvest/brokerage/infra/session"

	"github.com/orioninvest/brokerage/infra/database"
	"github.com/orioninvest/brokerage/pkg/app"
	"github.com/orioninvest/brokerage/pkg/config"
	"github.com/orioninvest/brokerage/pkg/notification"
	"github.com/orioninvest/brokerage/pkg/session"
)

// InitializeDependencies wires storage, identity, session and
// notification infrastructure from config.
func InitializeDependencies(cfg *config.App) (*app.Deps, error) {
	logger := slog.Default()

	db, err := database.Connect(cfg.DB.Url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infradocstore.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate documents table: %w", err)
	}
	if err := infraidentity.MigrateCredentials(db); err != nil {
		return nil, fmt.Errorf("failed to migrate credentials table: %w", err)
	}

	sessions, err := newSessionStore(cfg, logger)
	if err != nil {
		return nil, err
	}

	bus := notification.NewBus(cfg.Notification.DismissAfter)
	bus.Subscribe(func(n notification.Notification) {
		logger.Info("notification raised",
			"kind", n.Kind,
			"message", n.Message,
			"dismiss_after", n.DismissAfter,
		)
	})

	provider := infraidentity.NewLocalProvider(
		infraidentity.NewGormCredentials(db),
		logger,
		infraidentity.WithThrottle(cfg.Auth.MaxAttempts, cfg.Auth.Window),
	)

	return &app.Deps{
		Docs:     infradocstore.New(db),
		Sessions: sessions,
		Provider: provider,
		Notifier: bus,
		Logger:   logger,
	}, nil
}

func newSessionStore(cfg *config.App, logger *slog.Logger) (session.Store, error) {
	switch cfg.Session.Backend {
	case "redis":
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url: %w", err)
		}
		opt.DialTimeout = cfg.Redis.DialTimeout
		opt.ReadTimeout = cfg.Redis.ReadTimeout
		opt.WriteTimeout = cfg.Redis.WriteTimeout
		prefix := cfg.Redis.KeyPrefix + cfg.Session.KeyPrefix
		return infrasession.NewRedisStore(opt, prefix, logger), nil
	case "memory":
		return infrasession.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.Session.Backend)
	}
}
