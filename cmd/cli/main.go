package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"golang.org/x/term"

	infradocstore "github.com/orioninvest/brokerage/infra/docstore"
	infraidentity "github.com/orioninvest/brokerage/infra/identity"
	"github.com/orioninvest/brokerage/infra/initializer"
	infrasession "github.com/orioninvest/brokerage/infra/session"
	"github.com/orioninvest/brokerage/pkg/app"
	"github.com/orioninvest/brokerage/pkg/config"
	"github.com/orioninvest/brokerage/pkg/notification"
	"github.com/orioninvest/brokerage/pkg/service/auth"
	"github.com/orioninvest/brokerage/pkg/service/onboarding"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands: signup <email> <username> [country], signin <email>, signout, onboard, accounts [masked]")
		return
	}

	a, err := buildApp()
	if err != nil {
		color.Red("Failed to initialize: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	switch os.Args[1] {
	case "signup":
		runSignUp(ctx, a)
	case "signin":
		runSignIn(ctx, a)
	case "signout":
		if err := a.Auth.SignOut(ctx); err != nil {
			os.Exit(1)
		}
	case "onboard":
		runOnboard(ctx, a)
	case "accounts":
		runAccounts(ctx, a)
	default:
		fmt.Println("Unknown command:", os.Args[1])
	}
}

// buildApp wires the services. With a configured database the CLI talks
// to the real backends; without one it runs fully in memory for demos.
func buildApp() (*app.App, error) {
	cfg, err := config.Load(".env")
	if err != nil {
		return nil, err
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)

	var deps *app.Deps
	if cfg.DB.Url != "" {
		deps, err = initializer.InitializeDependencies(cfg)
		if err != nil {
			return nil, err
		}
	} else {
		deps = &app.Deps{
			Docs:     infradocstore.NewMemoryStore(),
			Sessions: infrasession.NewMemoryStore(),
			Provider: infraidentity.NewLocalProvider(infraidentity.NewMemoryCredentials(), logger),
			Notifier: notification.NewBus(cfg.Notification.DismissAfter),
			Logger:   logger,
		}
	}

	// Banner kinds render as colored terminal lines.
	if bus, ok := deps.Notifier.(*notification.Bus); ok {
		bus.Subscribe(func(n notification.Notification) {
			if n.Kind == notification.KindSuccess {
				color.Green("✔ %s", n.Message)
			} else {
				color.Red("✘ %s", n.Message)
			}
		})
	}
	return app.New(deps, cfg), nil
}

func runSignUp(ctx context.Context, a *app.App) {
	if len(os.Args) < 4 {
		fmt.Println("Usage: cli signup <email> <username> [country]")
		return
	}
	country := "United States"
	if len(os.Args) > 4 {
		country = os.Args[4]
	}
	password := promptPassword("Password: ")
	confirm := promptPassword("Confirm password: ")

	id, err := a.Auth.SignUp(ctx, auth.SignUpInput{
		Email:           os.Args[2],
		Username:        os.Args[3],
		Password:        password,
		ConfirmPassword: confirm,
		Country:         country,
	})
	if err != nil {
		os.Exit(1)
	}
	fmt.Printf("Signed up as %s (%s)\n", id.Email, id.ID)
}

func runSignIn(ctx context.Context, a *app.App) {
	if len(os.Args) < 3 {
		fmt.Println("Usage: cli signin <email>")
		return
	}
	password := promptPassword("Password: ")
	id, err := a.Auth.SignIn(ctx, os.Args[2], password)
	if err != nil {
		os.Exit(1)
	}
	fmt.Printf("Signed in as %s (%s)\n", id.Email, id.ID)
}

type printNavigator struct{}

func (printNavigator) Navigate(route onboarding.Route) {
	fmt.Printf("→ %s\n", route)
}

func runOnboard(ctx context.Context, a *app.App) {
	w := a.NewOnboarding(printNavigator{})
	reader := bufio.NewReader(os.Stdin)
	prompt := func(label string) string {
		fmt.Print(label + ": ")
		line, _ := reader.ReadString('\n')
		return strings.TrimSpace(line)
	}
	w.Edit(func(f *onboarding.Form) {
		f.FirstName = prompt("First name")
		f.LastName = prompt("Last name")
		f.AddressLine1 = prompt("Address line 1")
		f.AddressLine2 = prompt("Address line 2 (optional)")
		f.City = prompt("City")
		f.State = prompt("State")
		f.Zip = prompt("Zip")
		f.PhoneNumber = prompt("Phone number")
	})
	if err := w.Submit(ctx); err != nil {
		os.Exit(1)
	}
}

func runAccounts(ctx context.Context, a *app.App) {
	vm := a.Dashboard
	if err := vm.Load(ctx); err != nil {
		view := vm.Snapshot()
		color.Red("%s", view.Message)
		os.Exit(1)
	}
	if len(os.Args) > 2 && os.Args[2] == "masked" {
		vm.ToggleVisibility()
	}
	view := vm.Snapshot()
	bold := color.New(color.Bold)
	bold.Printf("Account %s\n", view.AccountNumber)
	fmt.Printf("  Balance:     %s\n", view.Balance)
	fmt.Printf("  Investments: %s\n", view.Investments)
	fmt.Printf("  Earnings:    %s\n", view.Earnings)
}

func promptPassword(label string) string {
	fmt.Print(label)
	pw, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		return ""
	}
	return string(pw)
}
