// Package middleware provides the JWT guard for protected routes.
package middleware

import (
	jwtware "github.com/gofiber/contrib/jwt"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/orioninvest/brokerage/pkg/config"
	"github.com/orioninvest/brokerage/webapi/common"
)

// JwtProtected guards a route with bearer-token authentication.
func JwtProtected(cfg *config.Jwt) fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   jwtware.SigningKey{Key: []byte(cfg.Secret)},
		ErrorHandler: jwtError,
	})
}

// UserID extracts the identity id from the validated token.
func UserID(c *fiber.Ctx) (string, bool) {
	token, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return "", false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", false
	}
	id, ok := claims["user_id"].(string)
	return id, ok && id != ""
}

func jwtError(c *fiber.Ctx, err error) error {
	if err.Error() == "missing or malformed JWT" {
		return common.ProblemDetailsJSON(c, "Missing or malformed JWT", nil,
			"Authorization header is required", fiber.StatusBadRequest)
	}
	return common.ProblemDetailsJSON(c, "Invalid or expired JWT", nil,
		"Token is invalid or expired", fiber.StatusUnauthorized)
}
