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

type TransactionHandlerTestSuite struct {
	apiSuite
	orgID  string
	userID string
}

func (suite *TransactionHandlerTestSuite) SetupTest() {
	suite.apiSuite.SetupTest()
	suite.orgID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *TransactionHandlerTestSuite) url(format string, args ...any) string {
	return fmt.Sprintf("/api/v1/organizations/%s/transactions", suite.orgID) + fmt.Sprintf(format, args...)
}

func balancedTransaction(orgID string, status domain.TransactionStatus) *domain.Transaction {
	txID := uuid.NewString()
	amount := decimal.NewFromInt(110)
	return &domain.Transaction{
		TransactionID:  txID,
		OrganizationID: orgID,
		FiscalPeriodID: "fp-2024-03",
		Type:           domain.TypeJournal,
		Date:           time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Currency:       "USD",
		Description:    "deposit",
		TotalAmount:    amount,
		Status:         status,
		Entries: []domain.LedgerEntry{
			{EntryID: "e1", TransactionID: txID, LineNumber: 1, AccountID: "cash", EntryType: domain.Debit,
				Amount: decimal.NewFromInt(100), Currency: "EUR", ExchangeRate: decimal.RequireFromString("1.1"), FunctionalAmount: amount},
			{EntryID: "e2", TransactionID: txID, LineNumber: 2, AccountID: "revenue", EntryType: domain.Credit,
				Amount: amount, Currency: "USD", ExchangeRate: decimal.NewFromInt(1), FunctionalAmount: amount},
		},
	}
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Success() {
	created := balancedTransaction(suite.orgID, domain.StatusDraft)
	body := `{
		"type": "JOURNAL",
		"date": "2024-03-15T00:00:00Z",
		"description": "deposit",
		"entries": [
			{"accountID": "cash", "entryType": "DEBIT", "amount": "100", "currency": "EUR"},
			{"accountID": "revenue", "entryType": "CREDIT", "amount": "110.00"}
		]
	}`

	suite.transactions.On("CreateTransaction", mock.Anything, suite.orgID,
		mock.MatchedBy(func(r dto.CreateTransactionRequest) bool {
			return len(r.Entries) == 2 &&
				r.Entries[0].Amount.Equal(decimal.NewFromInt(100)) &&
				r.Entries[1].Currency == ""
		}), suite.userID).Return(created, nil).Once()

	w := suite.do(http.MethodPost, suite.url(""), suite.userID, body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.TransactionResponse
	suite.decode(w, &resp)
	suite.Equal("DRAFT", resp.Status)
	suite.Equal([]string{"SUBMIT"}, resp.AvailableActions)
	suite.Len(resp.Entries, 2)
	suite.True(resp.FunctionalDebit.Equal(resp.FunctionalCredit))
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_Unbalanced() {
	suite.transactions.On("CreateTransaction", mock.Anything, suite.orgID, mock.Anything, suite.userID).
		Return(nil, apperrors.ErrUnbalanced).Once()

	w := suite.do(http.MethodPost, suite.url(""), suite.userID, dto.CreateTransactionRequest{
		Type:        "JOURNAL",
		Date:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "lopsided",
		Entries: []dto.EntryRequest{
			{AccountID: "cash", EntryType: "DEBIT", Amount: decimal.NewFromInt(10)},
			{AccountID: "revenue", EntryType: "CREDIT", Amount: decimal.NewFromInt(9)},
		},
	})

	suite.Equal(http.StatusBadRequest, w.Code)
	var body errorBody
	suite.decode(w, &body)
	suite.Contains(body.Error, "debits do not equal credits")
}

func (suite *TransactionHandlerTestSuite) TestCreateTransaction_UnknownType() {
	w := suite.do(http.MethodPost, suite.url(""), suite.userID,
		`{"type":"BARTER","date":"2024-03-15T00:00:00Z","description":"x"}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_DefaultLimit() {
	resp := &dto.ListTransactionsResponse{Transactions: []dto.TransactionResponse{}}
	suite.transactions.On("ListTransactions", mock.Anything, suite.orgID, suite.userID,
		dto.ListTransactionsParams{Status: "POSTED", Limit: 20}).Return(resp, nil).Once()

	w := suite.do(http.MethodGet, suite.url("?status=POSTED"), suite.userID, nil)

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestListTransactions_LimitTooLarge() {
	w := suite.do(http.MethodGet, suite.url("?limit=500"), suite.userID, nil)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestSubmit_InvalidTransition() {
	txID := uuid.NewString()
	suite.transactions.On("Submit", mock.Anything, suite.orgID, txID, suite.userID).
		Return(nil, fmt.Errorf("%w: POSTED to PENDING", apperrors.ErrInvalidTransition)).Once()

	w := suite.do(http.MethodPost, suite.url("/%s/submit", txID), suite.userID, nil)

	suite.Equal(http.StatusConflict, w.Code)
	var body errorBody
	suite.decode(w, &body)
	suite.False(body.Retryable)
}

func (suite *TransactionHandlerTestSuite) TestApprove_WithoutBody() {
	tx := balancedTransaction(suite.orgID, domain.StatusApproved)
	suite.transactions.On("Approve", mock.Anything, suite.orgID, tx.TransactionID,
		dto.ApproveTransactionRequest{}, suite.userID).Return(tx, nil).Once()

	w := suite.do(http.MethodPost, suite.url("/%s/approve", tx.TransactionID), suite.userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TransactionResponse
	suite.decode(w, &resp)
	suite.Equal("APPROVED", resp.Status)
	suite.Equal([]string{"POST"}, resp.AvailableActions)
}

func (suite *TransactionHandlerTestSuite) TestApprove_ExceedsLimit() {
	txID := uuid.NewString()
	req := dto.ApproveTransactionRequest{Notes: "ok"}
	suite.transactions.On("Approve", mock.Anything, suite.orgID, txID, req, suite.userID).
		Return(nil, apperrors.ErrExceedsApprovalLimit).Once()

	w := suite.do(http.MethodPost, suite.url("/%s/approve", txID), suite.userID, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestReject_MissingReason() {
	txID := uuid.NewString()
	suite.transactions.On("Reject", mock.Anything, suite.orgID, txID, dto.RejectTransactionRequest{}, suite.userID).
		Return(nil, apperrors.ErrRejectionReasonRequired).Once()

	w := suite.do(http.MethodPost, suite.url("/%s/reject", txID), suite.userID, `{}`)

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestPost_ConcurrentModificationIsRetryable() {
	txID := uuid.NewString()
	conflict := &apperrors.VersionConflictError{AccountID: "cash", ExpectedVersion: 7}
	suite.transactions.On("Post", mock.Anything, suite.orgID, txID, suite.userID).
		Return(nil, fmt.Errorf("post transaction %s: %w", txID, conflict)).Once()

	w := suite.do(http.MethodPost, suite.url("/%s/post", txID), suite.userID, nil)

	suite.Equal(http.StatusConflict, w.Code)
	var body errorBody
	suite.decode(w, &body)
	suite.True(body.Retryable)
	suite.Contains(body.Error, "expected version 7")
}

func (suite *TransactionHandlerTestSuite) TestPost_ClosedPeriod() {
	txID := uuid.NewString()
	suite.transactions.On("Post", mock.Anything, suite.orgID, txID, suite.userID).
		Return(nil, apperrors.ErrPeriodClosed).Once()

	w := suite.do(http.MethodPost, suite.url("/%s/post", txID), suite.userID, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestPost_InternalErrorIsMasked() {
	txID := uuid.NewString()
	suite.transactions.On("Post", mock.Anything, suite.orgID, txID, suite.userID).
		Return(nil, fmt.Errorf("failed to begin transaction: connection refused")).Once()

	w := suite.do(http.MethodPost, suite.url("/%s/post", txID), suite.userID, nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
	var body errorBody
	suite.decode(w, &body)
	suite.Equal("Failed to post transaction", body.Error)
}

func (suite *TransactionHandlerTestSuite) TestVoid_ReturnsBothSides() {
	original := balancedTransaction(suite.orgID, domain.StatusVoided)
	reversing := balancedTransaction(suite.orgID, domain.StatusPosted)
	original.ReversedByID = &reversing.TransactionID
	reversing.ReversalOfID = &original.TransactionID
	req := dto.VoidTransactionRequest{Reason: "duplicate entry"}

	suite.transactions.On("Void", mock.Anything, suite.orgID, original.TransactionID, req, suite.userID).
		Return(original, reversing, nil).Once()

	w := suite.do(http.MethodPost, suite.url("/%s/void", original.TransactionID), suite.userID, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.VoidTransactionResponse
	suite.decode(w, &resp)
	suite.Equal("VOIDED", resp.Original.Status)
	suite.Equal("POSTED", resp.Reversing.Status)
	suite.Empty(resp.Original.AvailableActions)
	suite.Equal([]string{"VOID"}, resp.Reversing.AvailableActions)
	suite.Require().NotNil(resp.Reversing.ReversalOfID)
	suite.Equal(original.TransactionID, *resp.Reversing.ReversalOfID)
	suite.Require().NotNil(resp.Original.ReversedByID)
	suite.Equal(reversing.TransactionID, *resp.Original.ReversedByID)
}

func (suite *TransactionHandlerTestSuite) TestReplaceEntries_NotEditable() {
	txID := uuid.NewString()
	suite.transactions.On("ReplaceEntries", mock.Anything, suite.orgID, txID, mock.Anything, suite.userID).
		Return(nil, apperrors.ErrNotEditable).Once()

	w := suite.do(http.MethodPut, suite.url("/%s/entries", txID), suite.userID,
		`{"entries":[{"accountID":"cash","entryType":"DEBIT","amount":"5"},{"accountID":"rev","entryType":"CREDIT","amount":"5"}]}`)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *TransactionHandlerTestSuite) TestGetAuditTrail() {
	txID := uuid.NewString()
	at := time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC)
	records := []domain.AuditRecord{
		{AuditID: "a1", TransactionID: txID, Action: domain.ActionSubmit, FromStatus: domain.StatusDraft, ToStatus: domain.StatusPending, Actor: suite.userID, At: at},
		{AuditID: "a2", TransactionID: txID, Action: domain.ActionApprove, FromStatus: domain.StatusPending, ToStatus: domain.StatusApproved, Actor: "boss", At: at.Add(time.Hour)},
	}
	suite.transactions.On("GetAuditTrail", mock.Anything, suite.orgID, txID, suite.userID).Return(records, nil).Once()

	w := suite.do(http.MethodGet, suite.url("/%s/audit", txID), suite.userID, nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.AuditRecordResponse
	suite.decode(w, &resp)
	suite.Require().Len(resp, 2)
	suite.Equal("SUBMIT", resp[0].Action)
	suite.Equal("APPROVED", resp[1].ToStatus)
}

func (suite *TransactionHandlerTestSuite) TestPost_NoToken() {
	w := suite.do(http.MethodPost, suite.url("/%s/post", uuid.NewString()), "", nil)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func TestTransactionHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionHandlerTestSuite))
}
