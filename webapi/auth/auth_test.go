package auth_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	authsvc "github.com/orioninvest/brokerage/pkg/service/auth"
	"github.com/orioninvest/brokerage/webapi/testutils"
)

type AuthRoutesTestSuite struct {
	testutils.APITestSuite
}

func (s *AuthRoutesTestSuite) TestSignUp_Success() {
	userID, token := s.SignUpUser("amira@example.com")
	s.NotEmpty(userID)
	s.NotEmpty(token)

	pointer, ok, _ := s.Sessions.Get(context.Background())
	s.True(ok)
	s.Equal(userID, pointer)
}

func (s *AuthRoutesTestSuite) TestSignUp_BadBody() {
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signup", `{"email":123}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthRoutesTestSuite) TestSignUp_PasswordMismatch() {
	body := `{"email":"amira@example.com","password":"password123","confirm_password":"password456"}`
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signup", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	pd := s.DecodeProblem(resp)
	s.Equal(authsvc.MsgPasswordMismatch, pd.Title)
}

func (s *AuthRoutesTestSuite) TestSignUp_DuplicateEmail() {
	s.SignUpUser("amira@example.com")

	body := `{"email":"amira@example.com","password":"password123","confirm_password":"password123"}`
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signup", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusConflict, resp.StatusCode)

	pd := s.DecodeProblem(resp)
	s.Equal(authsvc.MsgEmailInUse, pd.Title)
}

func (s *AuthRoutesTestSuite) TestSignIn_Success() {
	userID, _ := s.SignUpUser("amira@example.com")

	body := `{"email":"amira@example.com","password":"password123"}`
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signin", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	data := s.DecodeResponse(resp).Data.(map[string]any)
	s.Equal(userID, data["user_id"])
	s.NotEmpty(data["token"])
	s.Equal("/dashboard", data["redirect"])
}

func (s *AuthRoutesTestSuite) TestSignIn_WrongPassword() {
	s.SignUpUser("amira@example.com")

	body := `{"email":"amira@example.com","password":"wrongpassword"}`
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signin", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	pd := s.DecodeProblem(resp)
	s.Equal(authsvc.MsgWrongPassword, pd.Title)
}

func (s *AuthRoutesTestSuite) TestSignIn_UnknownEmail() {
	body := `{"email":"nobody@example.com","password":"password123"}`
	resp := s.MakeRequest(fiber.MethodPost, "/auth/signin", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	pd := s.DecodeProblem(resp)
	s.Equal(authsvc.MsgUserNotFound, pd.Title)
}

func (s *AuthRoutesTestSuite) TestSignOut_ClearsSession() {
	s.SignUpUser("amira@example.com")

	resp := s.MakeRequest(fiber.MethodPost, "/auth/signout", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	data := s.DecodeResponse(resp).Data.(map[string]any)
	s.Equal("/signin", data["redirect"])

	_, ok, _ := s.Sessions.Get(context.Background())
	s.False(ok)
}

func TestAuthRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(AuthRoutesTestSuite))
}
