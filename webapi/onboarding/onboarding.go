// Package onboarding exposes the personal-information submission endpoint.
package onboarding

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/orioninvest/brokerage/pkg/config"
	onbsvc "github.com/orioninvest/brokerage/pkg/service/onboarding"
	"github.com/orioninvest/brokerage/webapi/common"
	"github.com/orioninvest/brokerage/webapi/middleware"
)

// WorkflowFactory builds a fresh workflow per request.
type WorkflowFactory func(nav onbsvc.Navigator) *onbsvc.Workflow

// Routes registers the onboarding endpoint.
func Routes(app *fiber.App, newWorkflow WorkflowFactory, cfg *config.Jwt) {
	app.Post("/onboarding", middleware.JwtProtected(cfg), Submit(newWorkflow))
}

// redirectRecorder captures the workflow's navigation intent so the
// response can carry it to the client.
type redirectRecorder struct {
	route onbsvc.Route
}

func (r *redirectRecorder) Navigate(route onbsvc.Route) {
	r.route = route
}

// Submit runs one onboarding submission through the workflow.
func Submit(newWorkflow WorkflowFactory) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SubmitRequest](c)
		if err != nil {
			return nil // Error already written by helper
		}

		rec := &redirectRecorder{}
		w := newWorkflow(rec)
		w.Edit(func(f *onbsvc.Form) {
			f.FirstName = input.FirstName
			f.LastName = input.LastName
			f.AddressLine1 = input.AddressLine1
			f.AddressLine2 = input.AddressLine2
			f.City = input.City
			f.State = input.State
			f.Zip = input.Zip
			if input.PhoneType != "" {
				f.PhoneType = input.PhoneType
			}
			if input.Location != "" {
				f.Location = input.Location
			}
			f.PhoneNumber = input.PhoneNumber
			f.MailingAddress = input.MailingAddress
			f.BirthOutsideUS = input.BirthOutsideUS
		})

		if err := w.Submit(c.Context()); err != nil {
			// A session-gated failure carries the sign-up redirect.
			if rec.route != "" {
				c.Set(fiber.HeaderLocation, string(rec.route))
			}
			var oerr *onbsvc.Error
			if errors.As(err, &oerr) {
				return common.ProblemDetailsJSON(c, oerr.Message, oerr.Err)
			}
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}

		return common.SuccessResponseJSON(c, fiber.StatusOK, onbsvc.MsgSubmitSuccess, fiber.Map{
			"redirect": string(rec.route),
		})
	}
}
