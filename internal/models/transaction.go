package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a row of the transactions table. Workflow actor columns are
// nullable until the matching action happens.
type Transaction struct {
	TransactionID  string          `db:"transaction_id"`
	OrganizationID string          `db:"organization_id"`
	FiscalPeriodID string          `db:"fiscal_period_id"`
	Type           string          `db:"transaction_type"`
	Date           time.Time       `db:"transaction_date"`
	CurrencyCode   string          `db:"currency_code"`
	Description    string          `db:"description"`
	Reference      string          `db:"reference"`
	TotalAmount    decimal.Decimal `db:"total_amount"`
	Status         string          `db:"status"`

	SubmittedBy     *string    `db:"submitted_by"`
	SubmittedAt     *time.Time `db:"submitted_at"`
	ApprovedBy      *string    `db:"approved_by"`
	ApprovedAt      *time.Time `db:"approved_at"`
	ApprovalNotes   *string    `db:"approval_notes"`
	RejectedBy      *string    `db:"rejected_by"`
	RejectedAt      *time.Time `db:"rejected_at"`
	RejectionReason *string    `db:"rejection_reason"`
	PostedBy        *string    `db:"posted_by"`
	PostedAt        *time.Time `db:"posted_at"`
	VoidedBy        *string    `db:"voided_by"`
	VoidedAt        *time.Time `db:"voided_at"`
	VoidReason      *string    `db:"void_reason"`
	ReversalOfID    *string    `db:"reversal_of_id"`
	ReversedByID    *string    `db:"reversed_by_id"`
	AuditFields
}

// TransactionType indicates whether a ledger line is a Debit or a Credit.
type TransactionType string

const (
	Debit  TransactionType = "DEBIT"
	Credit TransactionType = "CREDIT"
)

// LedgerEntry is a row of the ledger_entries table.
type LedgerEntry struct {
	EntryID          string            `db:"entry_id"`
	TransactionID    string            `db:"transaction_id"`
	LineNumber       int               `db:"line_number"`
	AccountID        string            `db:"account_id"`
	EntryType        TransactionType   `db:"entry_type"`
	Amount           decimal.Decimal   `db:"amount"`
	CurrencyCode     string            `db:"currency_code"`
	ExchangeRate     decimal.Decimal   `db:"exchange_rate"`
	FunctionalAmount decimal.Decimal   `db:"functional_amount"`
	Memo             string            `db:"memo"`
	Dimensions       map[string]string `db:"dimensions"` // jsonb, never NULL
}

// AuditRecord is a row of the transaction_audit_log table.
type AuditRecord struct {
	AuditID       string    `db:"audit_id"`
	TransactionID string    `db:"transaction_id"`
	Action        string    `db:"action"`
	FromStatus    string    `db:"from_status"`
	ToStatus      string    `db:"to_status"`
	Actor         string    `db:"actor"`
	At            time.Time `db:"at"`
	Notes         string    `db:"notes"`
}
