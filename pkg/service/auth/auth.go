// Package auth orchestrates sign-up, sign-in and sign-out against the
// identity provider, seeds the backing user document, and owns the session
// pointer lifecycle.
package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/orioninvest/brokerage/pkg/docstore"
	"github.com/orioninvest/brokerage/pkg/identity"
	"github.com/orioninvest/brokerage/pkg/notification"
	"github.com/orioninvest/brokerage/pkg/session"
)

var (
	// ErrProfileMissing is returned when sign-in succeeds at the provider
	// but no user document exists for the identity. The session pointer is
	// not set in that case.
	ErrProfileMissing = errors.New("no user record for identity")

	// ErrValidation marks failures caught before any network call.
	ErrValidation = errors.New("validation failed")
)

// Balances seeded on every new user document.
const (
	SeedCurrentBalance = 905000.0
	SeedBrokerage      = -48000.5
	SeedDividend       = 21720.0
	SeedTransactionPin = "0000"
)

// Error pairs the user-facing message with the underlying cause.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// SignUpInput carries the registration form fields.
type SignUpInput struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	Country         string
}

// Service is the auth gateway.
type Service struct {
	provider identity.Provider
	docs     docstore.Store
	sessions session.Store
	notifier notification.Notifier
	tokens   TokenStrategy
	logger   *slog.Logger
}

// New creates a Service.
func New(
	provider identity.Provider,
	docs docstore.Store,
	sessions session.Store,
	notifier notification.Notifier,
	tokens TokenStrategy,
	logger *slog.Logger,
) *Service {
	return &Service{
		provider: provider,
		docs:     docs,
		sessions: sessions,
		notifier: notifier,
		tokens:   tokens,
		logger:   logger,
	}
}

// SignUp registers the identity, seeds users/{id}, and persists the
// session pointer. Local validation never reaches the provider.
func (s *Service) SignUp(ctx context.Context, in SignUpInput) (*identity.Identity, error) {
	log := s.logger.With("context", "SignUp", "email", in.Email)

	if len(in.Password) < 6 {
		return nil, s.fail(log, MsgPasswordTooShort, ErrValidation)
	}
	if in.Password != in.ConfirmPassword {
		return nil, s.fail(log, MsgPasswordMismatch, ErrValidation)
	}

	id, err := s.provider.SignUp(ctx, in.Email, in.Password)
	if err != nil {
		return nil, s.fail(log, classifySignUp(err), err)
	}

	seed := docstore.Document{
		"email":          in.Email,
		"username":       in.Username,
		"country":        in.Country,
		"currentBalance": SeedCurrentBalance,
		"brokerage":      SeedBrokerage,
		"dividend":       SeedDividend,
		"transactionPin": SeedTransactionPin,
	}
	if err := s.docs.Set(ctx, docstore.Users, id.ID, seed); err != nil {
		return nil, s.fail(log, MsgGeneric, err)
	}
	if err := s.sessions.Set(ctx, id.ID); err != nil {
		return nil, s.fail(log, MsgGeneric, err)
	}

	s.notifier.Success(MsgAccountCreated)
	log.Info("SignUp successful", "id", id.ID)
	return id, nil
}

// SignIn authenticates the identity, requires its user document to exist,
// and persists the session pointer.
func (s *Service) SignIn(ctx context.Context, email, password string) (*identity.Identity, error) {
	log := s.logger.With("context", "SignIn", "email", email)

	id, err := s.provider.SignIn(ctx, email, password)
	if err != nil {
		return nil, s.fail(log, classifySignIn(err), err)
	}

	doc, err := s.docs.Get(ctx, docstore.Users, id.ID)
	if err != nil {
		return nil, s.fail(log, MsgBadCredentials, err)
	}
	if doc == nil {
		// Every authenticated identity must map to exactly one user
		// document; a missing one is a hard failure, not a silent
		// partial success.
		return nil, s.fail(log, MsgUserNotFound, ErrProfileMissing)
	}

	if err := s.sessions.Set(ctx, id.ID); err != nil {
		return nil, s.fail(log, MsgGeneric, err)
	}

	s.notifier.Success(MsgSignInSuccess)
	log.Info("SignIn successful", "id", id.ID)
	return id, nil
}

// SignOut signs the identity out and clears the session pointer
// synchronously.
func (s *Service) SignOut(ctx context.Context) error {
	log := s.logger.With("context", "SignOut")

	if err := s.provider.SignOut(ctx); err != nil {
		return s.fail(log, "Error signing out: "+err.Error(), err)
	}
	if err := s.sessions.Clear(ctx); err != nil {
		return s.fail(log, "Error signing out: "+err.Error(), err)
	}
	s.notifier.Success(MsgSignedOut)
	log.Info("SignOut successful")
	return nil
}

// GenerateToken issues the API token for the identity.
func (s *Service) GenerateToken(id *identity.Identity) (string, error) {
	token, err := s.tokens.Issue(id)
	if err != nil {
		s.logger.Error("GenerateToken failed", "id", id.ID, "error", err)
		return "", err
	}
	return token, nil
}

// fail raises the error banner, logs the technical cause, and returns the
// paired error.
func (s *Service) fail(log *slog.Logger, message string, cause error) error {
	log.Error("auth flow failed", "message", message, "error", cause)
	s.notifier.Error(message)
	return &Error{Message: message, Err: cause}
}
