// Package identity implements the identity provider boundary against a
// local credential table.
package identity

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/orioninvest/brokerage/pkg/identity"
	"github.com/orioninvest/brokerage/pkg/utils"
)

const minPasswordLen = 6

// LocalProvider answers the provider boundary with the same error codes
// the hosted service emits, so the gateway's classification is identical
// either way.
type LocalProvider struct {
	creds    CredentialStore
	logger   *slog.Logger
	attempts *attemptWindow
}

// Option configures a LocalProvider.
type Option func(*LocalProvider)

// WithThrottle bounds failed sign-ins per email to maxAttempts inside
// window before the provider answers too-many-requests.
func WithThrottle(maxAttempts int, window time.Duration) Option {
	return func(p *LocalProvider) {
		p.attempts = newAttemptWindow(maxAttempts, window)
	}
}

// NewLocalProvider creates a LocalProvider over the credential store.
func NewLocalProvider(creds CredentialStore, logger *slog.Logger, opts ...Option) *LocalProvider {
	p := &LocalProvider{
		creds:    creds,
		logger:   logger,
		attempts: newAttemptWindow(5, time.Minute),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SignUp registers a credential and returns the new identity.
func (p *LocalProvider) SignUp(ctx context.Context, email, password string) (*identity.Identity, error) {
	log := p.logger.With("context", "SignUp", "email", email)
	if !utils.IsEmail(email) {
		return nil, identity.NewError(identity.CodeInvalidEmail, "malformed email address")
	}
	if len(password) < minPasswordLen {
		return nil, identity.NewError(identity.CodeWeakPassword, "password shorter than 6 characters")
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, identity.NewError(identity.CodeUnknown, err.Error())
	}
	cred := &Credential{ID: uuid.New().String(), Email: email, PasswordHash: hash}
	if err := p.creds.Create(ctx, cred); err != nil {
		if err == ErrDuplicateEmail {
			return nil, identity.NewError(identity.CodeEmailInUse, "email already registered")
		}
		log.Error("SignUp failed", "error", err)
		return nil, identity.NewError(identity.CodeUnknown, err.Error())
	}
	log.Info("SignUp successful", "id", cred.ID)
	return &identity.Identity{ID: cred.ID, Email: email}, nil
}

// SignIn verifies a credential and returns its identity.
func (p *LocalProvider) SignIn(ctx context.Context, email, password string) (*identity.Identity, error) {
	log := p.logger.With("context", "SignIn", "email", email)
	if !utils.IsEmail(email) {
		return nil, identity.NewError(identity.CodeInvalidEmail, "malformed email address")
	}
	if p.attempts.exceeded(email) {
		return nil, identity.NewError(identity.CodeTooManyRequests, "too many failed attempts")
	}
	cred, err := p.creds.GetByEmail(ctx, email)
	if err != nil {
		log.Error("SignIn failed", "error", err)
		return nil, identity.NewError(identity.CodeUnknown, err.Error())
	}
	if cred == nil {
		p.attempts.record(email)
		return nil, identity.NewError(identity.CodeUserNotFound, "no credential for email")
	}
	if !utils.CheckPasswordHash(password, cred.PasswordHash) {
		p.attempts.record(email)
		return nil, identity.NewError(identity.CodeWrongPassword, "password mismatch")
	}
	p.attempts.reset(email)
	log.Info("SignIn successful", "id", cred.ID)
	return &identity.Identity{ID: cred.ID, Email: email}, nil
}

// SignOut is stateless here; the gateway owns session clearing.
func (p *LocalProvider) SignOut(context.Context) error {
	return nil
}

// attemptWindow counts recent failures per email.
type attemptWindow struct {
	mu     sync.Mutex
	max    int
	window time.Duration
	failed map[string][]time.Time
}

func newAttemptWindow(max int, window time.Duration) *attemptWindow {
	return &attemptWindow{max: max, window: window, failed: make(map[string][]time.Time)}
}

func (w *attemptWindow) record(email string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.failed[email] = append(w.prune(email), time.Now())
}

func (w *attemptWindow) exceeded(email string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	recent := w.prune(email)
	w.failed[email] = recent
	return len(recent) >= w.max
}

func (w *attemptWindow) reset(email string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.failed, email)
}

// prune drops entries older than the window. Caller holds the lock.
func (w *attemptWindow) prune(email string) []time.Time {
	cutoff := time.Now().Add(-w.window)
	var recent []time.Time
	for _, t := range w.failed[email] {
		if t.After(cutoff) {
			recent = append(recent, t)
		}
	}
	return recent
}
