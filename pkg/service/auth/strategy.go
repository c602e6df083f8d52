package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orioninvest/brokerage/pkg/config"
	"github.com/orioninvest/brokerage/pkg/identity"
)

// TokenStrategy issues API tokens for authenticated identities.
type TokenStrategy interface {
	Issue(id *identity.Identity) (string, error)
}

// JWTStrategy signs HS256 tokens carrying the identity id and email.
type JWTStrategy struct {
	cfg *config.Jwt
}

// NewJWTStrategy creates a JWTStrategy.
func NewJWTStrategy(cfg *config.Jwt) *JWTStrategy {
	return &JWTStrategy{cfg: cfg}
}

// Issue signs a token for the identity.
func (s *JWTStrategy) Issue(id *identity.Identity) (string, error) {
	token := jwt.New(jwt.SigningMethodHS256)
	claims := token.Claims.(jwt.MapClaims)
	claims["user_id"] = id.ID
	claims["email"] = id.Email
	claims["exp"] = time.Now().Add(s.cfg.Expiry).Unix()
	return token.SignedString([]byte(s.cfg.Secret))
}

// NoTokenStrategy issues no token; callers fall back to basic flows.
type NoTokenStrategy struct{}

// Issue returns an empty token.
func (NoTokenStrategy) Issue(*identity.Identity) (string, error) {
	return "", nil
}
