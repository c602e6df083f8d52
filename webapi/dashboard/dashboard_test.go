package dashboard_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/orioninvest/brokerage/pkg/docstore"
	dashsvc "github.com/orioninvest/brokerage/pkg/service/dashboard"
	"github.com/orioninvest/brokerage/webapi/testutils"
)

type DashboardRoutesTestSuite struct {
	testutils.APITestSuite
}

func (s *DashboardRoutesTestSuite) TestAccounts_RequiresToken() {
	resp := s.MakeRequest(fiber.MethodGet, "/dashboard/accounts", "", "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *DashboardRoutesTestSuite) TestAccounts_FallbacksWithoutDocument() {
	_, token := s.SignUpUser("amira@example.com")

	resp := s.MakeRequest(fiber.MethodGet, "/dashboard/accounts", "", token)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	data := s.DecodeResponse(resp).Data.(map[string]any)
	s.Equal(dashsvc.FallbackAccountNumber, data["accountNumber"])
	s.Equal(dashsvc.FallbackBalance, data["balance"])
	s.Equal(dashsvc.FallbackInvestments, data["investments"])
	s.Equal(dashsvc.FallbackEarnings, data["earnings"])
}

func (s *DashboardRoutesTestSuite) TestAccounts_ReadsDocument() {
	userID, token := s.SignUpUser("amira@example.com")
	_ = s.Docs.Set(context.Background(), docstore.Accounts, userID, docstore.Document{
		"accountNumber":  "*90210",
		"currentBalance": "$905,000.00",
	})

	resp := s.MakeRequest(fiber.MethodGet, "/dashboard/accounts", "", token)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	data := s.DecodeResponse(resp).Data.(map[string]any)
	s.Equal("*90210", data["accountNumber"])
	s.Equal("$905,000.00", data["balance"])
	s.Equal(dashsvc.FallbackInvestments, data["investments"])
}

func (s *DashboardRoutesTestSuite) TestAccounts_Masked() {
	_, token := s.SignUpUser("amira@example.com")

	resp := s.MakeRequest(fiber.MethodGet, "/dashboard/accounts?masked=true", "", token)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	data := s.DecodeResponse(resp).Data.(map[string]any)
	s.Equal(dashsvc.FallbackAccountNumber, data["accountNumber"], "the account number is always shown")
	s.Equal(dashsvc.Masked, data["balance"])
	s.Equal(dashsvc.Masked, data["investments"])
	s.Equal(dashsvc.Masked, data["earnings"])
}

func (s *DashboardRoutesTestSuite) TestAccounts_LostSession() {
	_, token := s.SignUpUser("amira@example.com")
	s.Require().NoError(s.Sessions.Clear(context.Background()))

	resp := s.MakeRequest(fiber.MethodGet, "/dashboard/accounts", "", token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)

	pd := s.DecodeProblem(resp)
	s.Equal(dashsvc.MsgNoSession, pd.Title)
}

func (s *DashboardRoutesTestSuite) TestHeader() {
	userID, token := s.SignUpUser("amira@example.com")
	_ = s.Docs.Update(context.Background(), docstore.Users, userID, docstore.Document{
		"first_name": "Amira",
		"last_name":  "Asaad",
	})
	_ = s.Docs.Set(context.Background(), docstore.Profiles, userID, docstore.Document{
		"profileimage": "https://cdn.example.com/amira.png",
	})

	resp := s.MakeRequest(fiber.MethodGet, "/dashboard/header", "", token)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	data := s.DecodeResponse(resp).Data.(map[string]any)
	s.Equal("Amira", data["first_name"])
	s.Equal("Asaad", data["last_name"])
	s.Equal("https://cdn.example.com/amira.png", data["profile_image"])
}

func (s *DashboardRoutesTestSuite) TestHeader_OptionalData() {
	_, token := s.SignUpUser("amira@example.com")

	resp := s.MakeRequest(fiber.MethodGet, "/dashboard/header", "", token)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	data := s.DecodeResponse(resp).Data.(map[string]any)
	s.Equal("", data["first_name"])
	s.Equal("", data["profile_image"])
}

func TestDashboardRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardRoutesTestSuite))
}
