// Package dashboard exposes the read-only accounts panel endpoints.
package dashboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/orioninvest/brokerage/pkg/app"
	dashsvc "github.com/orioninvest/brokerage/pkg/service/dashboard"
	"github.com/orioninvest/brokerage/webapi/common"
	"github.com/orioninvest/brokerage/webapi/middleware"
)

// Routes registers the dashboard endpoints.
func Routes(fa *fiber.App, a *app.App) {
	fa.Get("/dashboard/accounts", middleware.JwtProtected(a.Config.Auth.Jwt), Accounts(a))
	fa.Get("/dashboard/header", middleware.JwtProtected(a.Config.Auth.Jwt), HeaderData(a))
}

// Accounts loads the panel. `?masked=true` renders the balances hidden;
// the account number is always shown. Re-requesting is the retry path.
func Accounts(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vm := dashsvc.New(a.Deps.Docs, a.Deps.Sessions, a.Deps.Logger)
		if err := vm.Load(c.Context()); err != nil {
			view := vm.Snapshot()
			return common.ProblemDetailsJSON(c, view.Message, err)
		}
		if c.QueryBool("masked") {
			vm.ToggleVisibility()
		}
		view := vm.Snapshot()
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Accounts loaded", fiber.Map{
			"accountNumber": view.AccountNumber,
			"balance":       view.Balance,
			"investments":   view.Investments,
			"earnings":      view.Earnings,
		})
	}
}

// HeaderData returns the greeting name and profile image, both optional.
func HeaderData(a *app.App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		vm := dashsvc.New(a.Deps.Docs, a.Deps.Sessions, a.Deps.Logger)
		h, err := vm.LoadHeader(c.Context())
		if err != nil {
			return common.ProblemDetailsJSON(c, dashsvc.MsgNoSession, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Header loaded", fiber.Map{
			"first_name":    h.FirstName,
			"last_name":     h.LastName,
			"profile_image": h.ProfileImage,
		})
	}
}
