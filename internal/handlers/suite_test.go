package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/handlers"
	"github.com/SscSPs/ledgerflow/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

const testIssuer = "ledgerflow-test"

// apiSuite wires the real router, auth middleware and validators to mocked services.
type apiSuite struct {
	suite.Suite
	router    *gin.Engine
	jwtSecret string

	accounts      *MockAccountService
	transactions  *MockTransactionService
	currencies    *MockCurrencyService
	rates         *MockExchangeRateService
	organizations *MockOrganizationService
	periods       *MockFiscalPeriodService
	rules         *MockApprovalRuleService
}

func (s *apiSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.jwtSecret = "test-secret-key-that-is-long-enough"

	s.accounts = new(MockAccountService)
	s.transactions = new(MockTransactionService)
	s.currencies = new(MockCurrencyService)
	s.rates = new(MockExchangeRateService)
	s.organizations = new(MockOrganizationService)
	s.periods = new(MockFiscalPeriodService)
	s.rules = new(MockApprovalRuleService)

	cfg := &config.Config{
		JWTSecret:    s.jwtSecret,
		JWTIssuer:    testIssuer,
		IsProduction: true,
	}
	container := &portssvc.ServiceContainer{
		Transaction:  s.transactions,
		Account:      s.accounts,
		Currency:     s.currencies,
		ExchangeRate: s.rates,
		Organization: s.organizations,
		FiscalPeriod: s.periods,
		ApprovalRule: s.rules,
	}
	s.Require().NoError(handlers.RegisterRoutes(s.router, cfg, container))
}

func (s *apiSuite) TearDownTest() {
	s.accounts.AssertExpectations(s.T())
	s.transactions.AssertExpectations(s.T())
	s.currencies.AssertExpectations(s.T())
	s.rates.AssertExpectations(s.T())
	s.organizations.AssertExpectations(s.T())
	s.periods.AssertExpectations(s.T())
	s.rules.AssertExpectations(s.T())
}

// generateTestToken creates a signed JWT for userID.
func (s *apiSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    testIssuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		s.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

// do serves a request as userID; an empty userID sends no token. body may be
// nil, a string, or any value to be JSON encoded.
func (s *apiSuite) do(method, url, userID string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		s.Require().NoError(err)
		reader = bytes.NewBuffer(raw)
	}

	req, err := http.NewRequest(method, url, reader)
	s.Require().NoError(err)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("Authorization", "Bearer "+s.generateTestToken(userID))
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *apiSuite) decode(w *httptest.ResponseRecorder, into any) {
	s.Require().NoError(json.Unmarshal(w.Body.Bytes(), into), w.Body.String())
}

type errorBody struct {
	Error     string `json:"error"`
	Retryable bool   `json:"retryable"`
}
