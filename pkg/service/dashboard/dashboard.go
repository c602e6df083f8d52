// Package dashboard exposes the read-only accounts panel: one fetch per
// load, hard-coded fallbacks when no account document exists, and a local
// visibility toggle over the displayed balances.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"sync"

	"github.com/orioninvest/brokerage/pkg/docstore"
	"github.com/orioninvest/brokerage/pkg/session"
)

// State of the view model.
type State string

const (
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateErrored State = "errored"
)

// Fallback display values used when no account document exists. Absence is
// a valid state, not an error.
const (
	FallbackAccountNumber = "*86233"
	FallbackBalance       = "$12,345.67"
	FallbackInvestments   = "$5,678.90"
	FallbackEarnings      = "$1,234.56"
)

// Masked is the placeholder rendered while balances are hidden.
const Masked = "••••••"

// MsgNoSession is shown inline when no session pointer exists. No
// redirect.
const MsgNoSession = "Please sign in to view your accounts"

// ErrNoSession marks a load attempted without a session pointer.
var ErrNoSession = errors.New("no session pointer")

// Account holds the displayed values. The store keeps them preformatted;
// the panel never does arithmetic on them.
type Account struct {
	AccountNumber string
	Balance       string
	Investments   string
	Earnings      string
}

// Header holds the optional greeting data shown above the panel.
type Header struct {
	FirstName    string
	LastName     string
	ProfileImage string
}

// View is a render snapshot.
type View struct {
	State         State
	Message       string
	AccountNumber string
	Balance       string
	Investments   string
	Earnings      string
}

// ViewModel drives the accounts panel. Load is re-invokable: retry re-runs
// the whole fetch rather than reloading the surface.
type ViewModel struct {
	docs     docstore.Store
	sessions session.Store
	logger   *slog.Logger

	mu      sync.Mutex
	state   State
	message string
	account Account
	visible bool
}

// New creates a ViewModel in the loading state with balances visible.
func New(docs docstore.Store, sessions session.Store, logger *slog.Logger) *ViewModel {
	return &ViewModel{
		docs:     docs,
		sessions: sessions,
		logger:   logger,
		state:    StateLoading,
		visible:  true,
	}
}

// Load fetches accounts/{pointer}. Absent pointer errors inline; absent
// document loads the fallbacks; transport failure carries the message and
// leaves retry to the caller.
func (vm *ViewModel) Load(ctx context.Context) error {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	log := vm.logger.With("context", "Load")
	vm.state = StateLoading

	pointer, ok, err := vm.sessions.Get(ctx)
	if err != nil {
		return vm.errored(log, err.Error(), err)
	}
	if !ok {
		return vm.errored(log, MsgNoSession, ErrNoSession)
	}

	doc, err := vm.docs.Get(ctx, docstore.Accounts, pointer)
	if err != nil {
		return vm.errored(log, err.Error(), err)
	}
	if doc == nil {
		log.Info("no account document, using fallback values", "pointer", pointer)
		doc = docstore.Document{}
	}

	vm.account = Account{
		AccountNumber: display(doc, "accountNumber", FallbackAccountNumber),
		Balance:       display(doc, "currentBalance", FallbackBalance),
		Investments:   display(doc, "brokerage", FallbackInvestments),
		Earnings:      display(doc, "dividend", FallbackEarnings),
	}
	vm.state = StateLoaded
	vm.message = ""
	return nil
}

// LoadHeader fetches the greeting data: name from the user document,
// image from the Profile document. Both are optional.
func (vm *ViewModel) LoadHeader(ctx context.Context) (Header, error) {
	pointer, ok, err := vm.sessions.Get(ctx)
	if err != nil {
		return Header{}, err
	}
	if !ok {
		return Header{}, ErrNoSession
	}

	var h Header
	if user, err := vm.docs.Get(ctx, docstore.Users, pointer); err != nil {
		vm.logger.Error("header user fetch failed", "error", err)
	} else if user != nil {
		h.FirstName = user.String("first_name", "")
		h.LastName = user.String("last_name", "")
	}
	if profile, err := vm.docs.Get(ctx, docstore.Profiles, pointer); err != nil {
		vm.logger.Error("header profile fetch failed", "error", err)
	} else if profile != nil {
		h.ProfileImage = profile.String("profileimage", "")
	}
	return h, nil
}

// ToggleVisibility flips the masking toggle and reports whether balances
// are now visible. Purely local.
func (vm *ViewModel) ToggleVisibility() bool {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.visible = !vm.visible
	return vm.visible
}

// Snapshot returns the current render state, masking balances while
// hidden. The account number is always shown.
func (vm *ViewModel) Snapshot() View {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	v := View{
		State:         vm.state,
		Message:       vm.message,
		AccountNumber: vm.account.AccountNumber,
		Balance:       vm.account.Balance,
		Investments:   vm.account.Investments,
		Earnings:      vm.account.Earnings,
	}
	if vm.state == StateLoaded && !vm.visible {
		v.Balance = Masked
		v.Investments = Masked
		v.Earnings = Masked
	}
	return v
}

// display renders a stored field: strings as-is, numeric values the way
// the store holds them, fallback when the field is absent.
func display(doc docstore.Document, field, fallback string) string {
	if s := doc.String(field, ""); s != "" {
		return s
	}
	if f, ok := doc.Float(field); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fallback
}

func (vm *ViewModel) errored(log *slog.Logger, message string, cause error) error {
	log.Error("accounts load failed", "message", message, "error", cause)
	vm.state = StateErrored
	vm.message = message
	return cause
}
