// Package onboarding runs the post-sign-up personal-information workflow:
// local validation, session gating, and a single merge against the user
// document.
package onboarding

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/orioninvest/brokerage/pkg/docstore"
	"github.com/orioninvest/brokerage/pkg/notification"
	"github.com/orioninvest/brokerage/pkg/session"
)

// State of the workflow.
type State string

const (
	StateEditing    State = "editing"
	StateValidating State = "validating"
	StateSubmitting State = "submitting"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// Route is a navigation intent target.
type Route string

const (
	RouteSignUp    Route = "/signup"
	RouteDashboard Route = "/dashboard"
)

// Navigator receives navigation intents. Implementations decide what a
// "redirect" means for their surface.
type Navigator interface {
	Navigate(route Route)
}

var (
	// ErrMissingFields is returned when any required field is empty. No
	// network call is made in that case.
	ErrMissingFields = errors.New("required fields missing")

	// ErrNoSession is returned when no session pointer exists; the
	// workflow signals the sign-up navigation intent instead of
	// submitting.
	ErrNoSession = errors.New("no session pointer")
)

// User-facing copy.
const (
	MsgMissingFields = "Please fill out all required fields."
	MsgNoSession     = "User not found. Please sign up again."
	MsgSubmitSuccess = "Form Submission Successful!"
	MsgSubmitFailed  = "An error occurred. Please try again."
)

// DefaultSuccessDelay is the pause between the success banner and the
// dashboard navigation intent. A UX pause, not a retry.
const DefaultSuccessDelay = 2 * time.Second

// Error pairs the user-facing message with the underlying cause.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }
func (e *Error) Unwrap() error { return e.Err }

// Workflow is the onboarding state machine. One instance serves one
// client; field edits and submission interleave on one logical thread.
type Workflow struct {
	docs         docstore.Store
	sessions     session.Store
	notifier     notification.Notifier
	nav          Navigator
	validate     *validator.Validate
	successDelay time.Duration
	logger       *slog.Logger

	mu    sync.Mutex
	state State
	form  Form
}

// Option configures a Workflow.
type Option func(*Workflow)

// WithSuccessDelay overrides the post-success pause.
func WithSuccessDelay(d time.Duration) Option {
	return func(w *Workflow) { w.successDelay = d }
}

// New creates a Workflow in the editing state with an empty form.
func New(
	docs docstore.Store,
	sessions session.Store,
	notifier notification.Notifier,
	nav Navigator,
	logger *slog.Logger,
	opts ...Option,
) *Workflow {
	w := &Workflow{
		docs:         docs,
		sessions:     sessions,
		notifier:     notifier,
		nav:          nav,
		validate:     validator.New(),
		successDelay: DefaultSuccessDelay,
		logger:       logger,
		state:        StateEditing,
		form:         NewForm(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// State returns the current workflow state.
func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Form returns a copy of the current field values.
func (w *Workflow) Form() Form {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.form
}

// Edit mutates field values. Only legal while editing; edits are local and
// never persisted until Submit.
func (w *Workflow) Edit(mutate func(*Form)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	mutate(&w.form)
}

// Submit validates the form, requires a session pointer, and merges the
// fields into the user document. On success the form resets and, after the
// success delay, the workflow signals the dashboard navigation intent. On
// failure the prior field values stay intact and the workflow returns to
// editing.
func (w *Workflow) Submit(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	log := w.logger.With("context", "Submit")

	w.state = StateValidating
	if err := w.validate.Struct(w.form); err != nil {
		return w.fail(log, MsgMissingFields, ErrMissingFields)
	}

	w.state = StateSubmitting
	pointer, ok, err := w.sessions.Get(ctx)
	if err != nil {
		return w.fail(log, MsgSubmitFailed, err)
	}
	if !ok {
		ferr := w.fail(log, MsgNoSession, ErrNoSession)
		if w.nav != nil {
			w.nav.Navigate(RouteSignUp)
		}
		return ferr
	}

	if err := w.docs.Update(ctx, docstore.Users, pointer, w.form.fields()); err != nil {
		return w.fail(log, MsgSubmitFailed, err)
	}

	w.state = StateSucceeded
	w.form = NewForm()
	w.notifier.Success(MsgSubmitSuccess)
	log.Info("onboarding submitted", "pointer", pointer)

	if w.successDelay > 0 {
		time.Sleep(w.successDelay)
	}
	if w.nav != nil {
		w.nav.Navigate(RouteDashboard)
	}
	return nil
}

// fail raises the error banner and returns to editing with fields intact.
func (w *Workflow) fail(log *slog.Logger, message string, cause error) error {
	log.Error("onboarding failed", "message", message, "error", cause)
	w.state = StateFailed
	w.notifier.Error(message)
	w.state = StateEditing
	return &Error{Message: message, Err: cause}
}
