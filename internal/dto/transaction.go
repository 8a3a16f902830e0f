package dto

import (
	"time"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/core/workflow"
	"github.com/shopspring/decimal"
)

// SplitTargetRequest is one destination of a split entry. When every target
// omits Percentage the amount is divided equally.
type SplitTargetRequest struct {
	AccountID  string           `json:"accountID" binding:"required"`
	Percentage *decimal.Decimal `json:"percentage,omitempty" binding:"omitempty,dgte0"`
	Memo       string           `json:"memo"`
}

// EntryRequest is one proposed posting line.
type EntryRequest struct {
	AccountID  string               `json:"accountID" binding:"required_without=Split"`
	EntryType  string               `json:"entryType" binding:"required,oneof=DEBIT CREDIT"`
	Amount     decimal.Decimal      `json:"amount"`
	Currency   string               `json:"currency" binding:"omitempty,len=3"`
	Memo       string               `json:"memo" binding:"max=500"`
	Dimensions map[string]string    `json:"dimensions,omitempty"`
	Split      []SplitTargetRequest `json:"split,omitempty" binding:"omitempty,dive"`
}

// CreateTransactionRequest defines the data needed to record a new draft transaction.
type CreateTransactionRequest struct {
	FiscalPeriodID string         `json:"fiscalPeriodID"` // resolved from Date when empty
	Type           string         `json:"type" binding:"required,oneof=JOURNAL INVOICE BILL PAYMENT EXPENSE TRANSFER ADJUSTMENT"`
	Date           time.Time      `json:"date" binding:"required"`
	Description    string         `json:"description" binding:"required,max=500"`
	Reference      string         `json:"reference" binding:"max=100"`
	Entries        []EntryRequest `json:"entries" binding:"dive"`
}

// ReplaceEntriesRequest swaps the entries of an editable transaction.
type ReplaceEntriesRequest struct {
	Description *string        `json:"description,omitempty" binding:"omitempty,max=500"`
	Entries     []EntryRequest `json:"entries" binding:"dive"`
}

// ApproveTransactionRequest carries optional approval notes.
type ApproveTransactionRequest struct {
	Notes string `json:"notes" binding:"max=1000"`
}

// RejectTransactionRequest carries the mandatory rejection reason.
type RejectTransactionRequest struct {
	Reason string `json:"reason" binding:"max=1000"`
}

// VoidTransactionRequest carries the mandatory void reason and, optionally,
// where the reversing transaction is recorded. Both default to the original's.
type VoidTransactionRequest struct {
	Reason         string     `json:"reason" binding:"max=1000"`
	FiscalPeriodID *string    `json:"fiscalPeriodID,omitempty"`
	Date           *time.Time `json:"date,omitempty"`
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	Status    string `form:"status" binding:"omitempty,oneof=DRAFT PENDING APPROVED POSTED VOIDED"`
	Limit     int    `form:"limit,default=20" binding:"min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// EntryResponse defines the data returned for a ledger entry.
type EntryResponse struct {
	EntryID          string            `json:"entryID"`
	LineNumber       int               `json:"lineNumber"`
	AccountID        string            `json:"accountID"`
	EntryType        string            `json:"entryType"`
	Amount           decimal.Decimal   `json:"amount"`
	Currency         string            `json:"currency"`
	ExchangeRate     decimal.Decimal   `json:"exchangeRate"`
	FunctionalAmount decimal.Decimal   `json:"functionalAmount"`
	Memo             string            `json:"memo,omitempty"`
	Dimensions       map[string]string `json:"dimensions,omitempty"`
}

// TransactionResponse defines the data returned for a transaction.
type TransactionResponse struct {
	TransactionID    string          `json:"transactionID"`
	OrganizationID   string          `json:"organizationID"`
	FiscalPeriodID   string          `json:"fiscalPeriodID"`
	Type             string          `json:"type"`
	Status           string          `json:"status"`
	Date             time.Time       `json:"date"`
	Currency         string          `json:"currency"`
	Description      string          `json:"description"`
	Reference        string          `json:"reference,omitempty"`
	TotalAmount      decimal.Decimal `json:"totalAmount"`
	FunctionalDebit  decimal.Decimal `json:"functionalDebit"`
	FunctionalCredit decimal.Decimal `json:"functionalCredit"`
	Entries          []EntryResponse `json:"entries"`
	AvailableActions []string        `json:"availableActions"` // workflow actions legal from Status

	SubmittedBy     *string    `json:"submittedBy,omitempty"`
	SubmittedAt     *time.Time `json:"submittedAt,omitempty"`
	ApprovedBy      *string    `json:"approvedBy,omitempty"`
	ApprovedAt      *time.Time `json:"approvedAt,omitempty"`
	ApprovalNotes   *string    `json:"approvalNotes,omitempty"`
	RejectedBy      *string    `json:"rejectedBy,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	PostedBy        *string    `json:"postedBy,omitempty"`
	PostedAt        *time.Time `json:"postedAt,omitempty"`
	VoidedBy        *string    `json:"voidedBy,omitempty"`
	VoidedAt        *time.Time `json:"voidedAt,omitempty"`
	VoidReason      *string    `json:"voidReason,omitempty"`
	ReversalOfID    *string    `json:"reversalOfID,omitempty"`
	ReversedByID    *string    `json:"reversedByID,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ListTransactionsResponse wraps a page of transactions.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// VoidTransactionResponse returns both sides of a void.
type VoidTransactionResponse struct {
	Original  TransactionResponse `json:"original"`
	Reversing TransactionResponse `json:"reversing"`
}

// AuditRecordResponse defines one workflow history row.
type AuditRecordResponse struct {
	AuditID    string    `json:"auditID"`
	Action     string    `json:"action"`
	FromStatus string    `json:"fromStatus"`
	ToStatus   string    `json:"toStatus"`
	Actor      string    `json:"actor"`
	At         time.Time `json:"at"`
	Notes      string    `json:"notes,omitempty"`
}

// ToCreateTransactionInput converts a CreateTransactionRequest to the domain
// input. entries are the request lines after splits were expanded.
func ToCreateTransactionInput(organizationID string, req CreateTransactionRequest, entries []domain.LedgerEntryInput, userID string) domain.CreateTransactionInput {
	return domain.CreateTransactionInput{
		OrganizationID: organizationID,
		FiscalPeriodID: req.FiscalPeriodID,
		Type:           domain.TransactionType(req.Type),
		Date:           req.Date,
		Description:    req.Description,
		Reference:      req.Reference,
		Entries:        entries,
		CreatedBy:      userID,
	}
}

// ToEntryResponse converts a domain.LedgerEntry to EntryResponse DTO.
func ToEntryResponse(e domain.LedgerEntry) EntryResponse {
	return EntryResponse{
		EntryID:          e.EntryID,
		LineNumber:       e.LineNumber,
		AccountID:        e.AccountID,
		EntryType:        string(e.EntryType),
		Amount:           e.Amount,
		Currency:         e.Currency,
		ExchangeRate:     e.ExchangeRate,
		FunctionalAmount: e.FunctionalAmount,
		Memo:             e.Memo,
		Dimensions:       e.Dimensions,
	}
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(tx *domain.Transaction) TransactionResponse {
	entries := make([]EntryResponse, len(tx.Entries))
	for i, e := range tx.Entries {
		entries[i] = ToEntryResponse(e)
	}
	actions := workflow.AvailableActions(tx.Status)
	available := make([]string, len(actions))
	for i, a := range actions {
		available[i] = string(a)
	}
	totals := tx.Totals()
	return TransactionResponse{
		TransactionID:    tx.TransactionID,
		OrganizationID:   tx.OrganizationID,
		FiscalPeriodID:   tx.FiscalPeriodID,
		Type:             string(tx.Type),
		Status:           string(tx.Status),
		Date:             tx.Date,
		Currency:         tx.Currency,
		Description:      tx.Description,
		Reference:        tx.Reference,
		TotalAmount:      tx.TotalAmount,
		FunctionalDebit:  totals.FunctionalDebit,
		FunctionalCredit: totals.FunctionalCredit,
		Entries:          entries,
		AvailableActions: available,
		SubmittedBy:      tx.SubmittedBy,
		SubmittedAt:      tx.SubmittedAt,
		ApprovedBy:       tx.ApprovedBy,
		ApprovedAt:       tx.ApprovedAt,
		ApprovalNotes:    tx.ApprovalNotes,
		RejectedBy:       tx.RejectedBy,
		RejectedAt:       tx.RejectedAt,
		RejectionReason:  tx.RejectionReason,
		PostedBy:         tx.PostedBy,
		PostedAt:         tx.PostedAt,
		VoidedBy:         tx.VoidedBy,
		VoidedAt:         tx.VoidedAt,
		VoidReason:       tx.VoidReason,
		ReversalOfID:     tx.ReversalOfID,
		ReversedByID:     tx.ReversedByID,
		CreatedAt:        tx.CreatedAt,
		CreatedBy:        tx.CreatedBy,
		LastUpdatedAt:    tx.LastUpdatedAt,
		LastUpdatedBy:    tx.LastUpdatedBy,
	}
}

// ToListTransactionsResponse converts a page of domain.Transaction to DTO.
func ToListTransactionsResponse(txs []domain.Transaction, nextToken *string) ListTransactionsResponse {
	list := make([]TransactionResponse, len(txs))
	for i := range txs {
		list[i] = ToTransactionResponse(&txs[i])
	}
	return ListTransactionsResponse{Transactions: list, NextToken: nextToken}
}

// ToAuditRecordResponses converts workflow history to DTOs.
func ToAuditRecordResponses(records []domain.AuditRecord) []AuditRecordResponse {
	out := make([]AuditRecordResponse, len(records))
	for i, r := range records {
		out[i] = AuditRecordResponse{
			AuditID:    r.AuditID,
			Action:     string(r.Action),
			FromStatus: string(r.FromStatus),
			ToStatus:   string(r.ToStatus),
			Actor:      r.Actor,
			At:         r.At,
			Notes:      r.Notes,
		}
	}
	return out
}
