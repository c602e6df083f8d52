package onboarding_test

import (
	"context"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"

	"github.com/orioninvest/brokerage/pkg/docstore"
	onbsvc "github.com/orioninvest/brokerage/pkg/service/onboarding"
	"github.com/orioninvest/brokerage/webapi/testutils"
)

type OnboardingRoutesTestSuite struct {
	testutils.APITestSuite
}

const fullForm = `{
	"first_name": "Amira",
	"last_name": "Asaad",
	"address_line1": "1 Main St",
	"city": "Cairo",
	"state": "CA",
	"zip": "90210",
	"phone_number": "5551234567"
}`

func (s *OnboardingRoutesTestSuite) TestSubmit_RequiresToken() {
	resp := s.MakeRequest(fiber.MethodPost, "/onboarding", fullForm, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *OnboardingRoutesTestSuite) TestSubmit_RejectsBadToken() {
	resp := s.MakeRequest(fiber.MethodPost, "/onboarding", fullForm, "not-a-token")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *OnboardingRoutesTestSuite) TestSubmit_Success() {
	userID, token := s.SignUpUser("amira@example.com")

	resp := s.MakeRequest(fiber.MethodPost, "/onboarding", fullForm, token)
	defer resp.Body.Close() //nolint: errcheck
	s.Require().Equal(fiber.StatusOK, resp.StatusCode)

	data := s.DecodeResponse(resp).Data.(map[string]any)
	s.Equal(string(onbsvc.RouteDashboard), data["redirect"])

	doc, err := s.Docs.Get(context.Background(), docstore.Users, userID)
	s.Require().NoError(err)
	s.Equal("Amira", doc["first_name"])
	s.Equal("Mobile", doc["phone_type"], "defaults apply when the payload omits them")
	s.Equal("United States", doc["location"])
	s.Nil(doc["address_line2"])
}

func (s *OnboardingRoutesTestSuite) TestSubmit_MissingFields() {
	_, token := s.SignUpUser("amira@example.com")

	resp := s.MakeRequest(fiber.MethodPost, "/onboarding", `{"first_name":"Amira"}`, token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)

	pd := s.DecodeProblem(resp)
	s.Equal(onbsvc.MsgMissingFields, pd.Title)
}

func (s *OnboardingRoutesTestSuite) TestSubmit_LostSessionRedirectsToSignUp() {
	_, token := s.SignUpUser("amira@example.com")
	s.Require().NoError(s.Sessions.Clear(context.Background()))

	resp := s.MakeRequest(fiber.MethodPost, "/onboarding", fullForm, token)
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
	s.Equal(string(onbsvc.RouteSignUp), resp.Header.Get(fiber.HeaderLocation))

	pd := s.DecodeProblem(resp)
	s.Equal(onbsvc.MsgNoSession, pd.Title)
}

func TestOnboardingRoutesTestSuite(t *testing.T) {
	suite.Run(t, new(OnboardingRoutesTestSuite))
}
