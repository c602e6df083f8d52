// Package auth exposes the sign-up, sign-in and sign-out endpoints.
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	authsvc "github.com/orioninvest/brokerage/pkg/service/auth"
	"github.com/orioninvest/brokerage/webapi/common"
)

// Routes registers the auth endpoints.
func Routes(app *fiber.App, svc *authsvc.Service) {
	app.Post("/auth/signup", SignUp(svc))
	app.Post("/auth/signin", SignIn(svc))
	app.Post("/auth/signout", SignOut(svc))
}

// SignUp registers a new identity and seeds its user document.
// On success the response carries the identity id and API token.
func SignUp(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignUpRequest](c)
		if err != nil {
			return nil // Error already written by helper
		}
		id, err := svc.SignUp(c.Context(), authsvc.SignUpInput{
			Email:           input.Email,
			Username:        input.Username,
			Password:        input.Password,
			ConfirmPassword: input.ConfirmPassword,
			Country:         input.Country,
		})
		if err != nil {
			return problem(c, err)
		}
		token, err := svc.GenerateToken(id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, authsvc.MsgAccountCreated, fiber.Map{
			"user_id":  id.ID,
			"token":    token,
			"redirect": "/applicationprocess",
		})
	}
}

// SignIn authenticates an identity and persists the session pointer.
func SignIn(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SignInRequest](c)
		if err != nil {
			return nil // Error already written by helper
		}
		id, err := svc.SignIn(c.Context(), input.Email, input.Password)
		if err != nil {
			return problem(c, err)
		}
		token, err := svc.GenerateToken(id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, authsvc.MsgSignInSuccess, fiber.Map{
			"user_id":  id.ID,
			"token":    token,
			"redirect": "/dashboard",
		})
	}
}

// SignOut signs the identity out and clears the session pointer.
func SignOut(svc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.SignOut(c.Context()); err != nil {
			return problem(c, err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, authsvc.MsgSignedOut, fiber.Map{
			"redirect": "/signin",
		})
	}
}

// problem renders a gateway error with its user-facing message as the
// title and the cause driving the status code.
func problem(c *fiber.Ctx, err error) error {
	var aerr *authsvc.Error
	if errors.As(err, &aerr) {
		return common.ProblemDetailsJSON(c, aerr.Message, aerr.Err)
	}
	return common.ProblemDetailsJSON(c, "Internal Server Error", err)
}
