package handlers_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type AccountHandlerTestSuite struct {
	apiSuite
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_Success() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: "ASSET", CurrencyCode: "USD"}

	created := &domain.Account{
		AccountID:      uuid.NewString(),
		OrganizationID: orgID,
		Code:           req.Code,
		Name:           req.Name,
		AccountType:    domain.Asset,
		CurrencyCode:   "USD",
		IsActive:       true,
		Balance:        decimal.Zero,
		AuditFields:    domain.AuditFields{CreatedAt: time.Now(), CreatedBy: userID},
	}
	suite.accounts.On("CreateAccount", mock.Anything, orgID, req, userID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/accounts", orgID), userID, req)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.Equal(created.AccountID, resp.AccountID)
	suite.Equal("ASSET", resp.AccountType)
	suite.True(resp.Balance.IsZero())
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_InvalidBody() {
	orgID := uuid.NewString()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/accounts", orgID), uuid.NewString(),
		`{"name":"Cash","accountType":"ASSET","currencyCode":"USD"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
	var body errorBody
	suite.decode(w, &body)
	suite.Contains(body.Error, "Invalid request format")
}

func (suite *AccountHandlerTestSuite) TestCreateAccount_DuplicateCode() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	req := dto.CreateAccountRequest{Code: "1000", Name: "Cash", AccountType: "ASSET", CurrencyCode: "USD"}
	suite.accounts.On("CreateAccount", mock.Anything, orgID, req, userID).
		Return(nil, fmt.Errorf("%w: account code 1000", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, fmt.Sprintf("/api/v1/organizations/%s/accounts", orgID), userID, req)

	suite.Equal(http.StatusConflict, w.Code)
	var body errorBody
	suite.decode(w, &body)
	suite.False(body.Retryable)
}

func (suite *AccountHandlerTestSuite) TestGetAccount_NotFound() {
	orgID := uuid.NewString()
	accountID := uuid.NewString()
	userID := uuid.NewString()
	suite.accounts.On("GetAccountByID", mock.Anything, orgID, accountID, userID).
		Return(nil, apperrors.ErrAccountNotFound).Once()

	w := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/accounts/%s", orgID, accountID), userID, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_NotMember() {
	orgID := uuid.NewString()
	userID := uuid.NewString()
	suite.accounts.On("ListAccounts", mock.Anything, orgID, userID).Return(nil, apperrors.ErrNotMember).Once()

	w := suite.do(http.MethodGet, fmt.Sprintf("/api/v1/organizations/%s/accounts", orgID), userID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *AccountHandlerTestSuite) TestUpdateAccount_Deactivate() {
	orgID := uuid.NewString()
	accountID := uuid.NewString()
	userID := uuid.NewString()
	updated := &domain.Account{AccountID: accountID, OrganizationID: orgID, Code: "1000", Name: "Cash", IsActive: false}

	suite.accounts.On("UpdateAccount", mock.Anything, orgID, accountID,
		mock.MatchedBy(func(r dto.UpdateAccountRequest) bool {
			return r.Name == nil && r.IsActive != nil && !*r.IsActive
		}), userID).Return(updated, nil).Once()

	w := suite.do(http.MethodPatch, fmt.Sprintf("/api/v1/organizations/%s/accounts/%s", orgID, accountID), userID,
		`{"isActive":false}`)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.AccountResponse
	suite.decode(w, &resp)
	suite.False(resp.IsActive)
}

func (suite *AccountHandlerTestSuite) TestListAccounts_NoToken() {
	w := suite.do(http.MethodGet, "/api/v1/organizations/org-1/accounts", "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestAccountHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AccountHandlerTestSuite))
}
