// Package webapi assembles the Fiber application.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/orioninvest/brokerage/pkg/app"
	authapi "github.com/orioninvest/brokerage/webapi/auth"
	"github.com/orioninvest/brokerage/webapi/common"
	dashboardapi "github.com/orioninvest/brokerage/webapi/dashboard"
	onboardingapi "github.com/orioninvest/brokerage/webapi/onboarding"
)

// SetupApp builds the Fiber app with middleware and all routes.
func SetupApp(a *app.App) *fiber.App {
	fa := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", nil, err.Error(), status)
		},
	})

	fa.Use(limiter.New(limiter.Config{
		Max:        a.Config.RateLimit.MaxRequests,
		Expiration: a.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(c, "Too Many Requests", nil,
				"Rate limit exceeded", fiber.StatusTooManyRequests)
		},
	}))
	fa.Use(recover.New())

	fa.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Orion API is working! 🚀")
	})

	authapi.Routes(fa, a.Auth)
	onboardingapi.Routes(fa, a.NewOnboarding, a.Config.Auth.Jwt)
	dashboardapi.Routes(fa, a)

	return fa
}
