// Package app wires the platform services from their dependencies.
package app

import (
	"log/slog"

	"github.com/orioninvest/brokerage/pkg/config"
	"github.com/orioninvest/brokerage/pkg/docstore"
	"github.com/orioninvest/brokerage/pkg/identity"
	"github.com/orioninvest/brokerage/pkg/notification"
	"github.com/orioninvest/brokerage/pkg/service/auth"
	"github.com/orioninvest/brokerage/pkg/service/dashboard"
	"github.com/orioninvest/brokerage/pkg/service/onboarding"
	"github.com/orioninvest/brokerage/pkg/session"
)

// Deps contains the infrastructure the services are built over.
type Deps struct {
	Docs     docstore.Store
	Sessions session.Store
	Provider identity.Provider
	Notifier notification.Notifier
	Logger   *slog.Logger
}

// App is the composed application.
type App struct {
	Deps      *Deps
	Config    *config.App
	Auth      *auth.Service
	Dashboard *dashboard.ViewModel

	// NewOnboarding builds a fresh workflow per client; the form state
	// machine is per session, not shared.
	NewOnboarding func(nav onboarding.Navigator) *onboarding.Workflow
}

// New composes the application.
func New(deps *Deps, cfg *config.App) *App {
	app := &App{Deps: deps, Config: cfg}

	tokenMap := map[string]func() auth.TokenStrategy{
		"jwt": func() auth.TokenStrategy {
			return auth.NewJWTStrategy(cfg.Auth.Jwt)
		},
	}
	var tokens auth.TokenStrategy = auth.NoTokenStrategy{}
	if factory, ok := tokenMap[cfg.Auth.Strategy]; ok {
		tokens = factory()
	}

	app.Auth = auth.New(
		deps.Provider,
		deps.Docs,
		deps.Sessions,
		deps.Notifier,
		tokens,
		deps.Logger,
	)
	app.Dashboard = dashboard.New(deps.Docs, deps.Sessions, deps.Logger)
	app.NewOnboarding = func(nav onboarding.Navigator) *onboarding.Workflow {
		return onboarding.New(
			deps.Docs,
			deps.Sessions,
			deps.Notifier,
			nav,
			deps.Logger,
			onboarding.WithSuccessDelay(cfg.Onboarding.SuccessDelay),
		)
	}
	return app
}
