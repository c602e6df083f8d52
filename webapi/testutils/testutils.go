// Package testutils provides the shared harness for web API tests: an app
// wired over in-memory infrastructure plus request helpers.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	infradocstore "github.com/orioninvest/brokerage/infra/docstore"
	infraidentity "github.com/orioninvest/brokerage/infra/identity"
	infrasession "github.com/orioninvest/brokerage/infra/session"
	"github.com/orioninvest/brokerage/pkg/app"
	"github.com/orioninvest/brokerage/pkg/config"
	"github.com/orioninvest/brokerage/pkg/notification"
	"github.com/orioninvest/brokerage/webapi"
	"github.com/orioninvest/brokerage/webapi/common"
)

// TestConfig returns a config suitable for in-process tests: no success
// delay, generous rate limit, a fixed JWT secret.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:    &config.Log{},
		DB:     &config.DB{},
		Auth: &config.Auth{
			Strategy:    "jwt",
			Jwt:         &config.Jwt{Secret: "test-secret", Expiry: time.Hour},
			MaxAttempts: 5,
			Window:      time.Minute,
		},
		Redis:        &config.Redis{},
		Session:      &config.Session{Backend: "memory"},
		RateLimit:    &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Onboarding:   &config.Onboarding{SuccessDelay: 0},
		Notification: &config.Notification{DismissAfter: 0},
	}
}

// APITestSuite runs the Fiber app over in-memory infrastructure.
type APITestSuite struct {
	suite.Suite

	App      *fiber.App
	Docs     *infradocstore.MemoryStore
	Sessions *infrasession.MemoryStore
	Banners  *notification.Recorder
	Cfg      *config.App
}

// SetupTest builds a fresh app; no state leaks between tests.
func (s *APITestSuite) SetupTest() {
	s.Cfg = TestConfig()
	s.Docs = infradocstore.NewMemoryStore()
	s.Sessions = infrasession.NewMemoryStore()
	s.Banners = notification.NewRecorder()

	deps := &app.Deps{
		Docs:     s.Docs,
		Sessions: s.Sessions,
		Provider: infraidentity.NewLocalProvider(infraidentity.NewMemoryCredentials(), slog.Default()),
		Notifier: s.Banners,
		Logger:   slog.Default(),
	}
	s.App = webapi.SetupApp(app.New(deps, s.Cfg))
}

// MakeRequest sends a request through the Fiber app.
func (s *APITestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.App.Test(req, 1000000)
	s.Require().NoError(err)
	return resp
}

// DecodeResponse parses a success envelope.
func (s *APITestSuite) DecodeResponse(resp *http.Response) common.Response {
	var out common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// DecodeProblem parses a problem response.
func (s *APITestSuite) DecodeProblem(resp *http.Response) common.ProblemDetails {
	var out common.ProblemDetails
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// SignUpUser registers a user over HTTP and returns its id and API token.
func (s *APITestSuite) SignUpUser(email string) (userID, token string) {
	body := fmt.Sprintf(
		`{"email":%q,"username":"amira","password":"password123","confirm_password":"password123","country":"Egypt"}`,
		email)
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signup", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusCreated, resp.StatusCode)

	data := s.DecodeResponse(resp).Data.(map[string]any)
	return data["user_id"].(string), data["token"].(string)
}
