package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionStatus is the lifecycle state of a transaction.
type TransactionStatus string

const (
	StatusDraft    TransactionStatus = "DRAFT"
	StatusPending  TransactionStatus = "PENDING"
	StatusApproved TransactionStatus = "APPROVED"
	StatusPosted   TransactionStatus = "POSTED"
	StatusVoided   TransactionStatus = "VOIDED"
)

// AllStatuses lists every status in lifecycle order.
func AllStatuses() []TransactionStatus {
	return []TransactionStatus{StatusDraft, StatusPending, StatusApproved, StatusPosted, StatusVoided}
}

// IsValid reports whether s is one of the declared statuses.
func (s TransactionStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusPosted, StatusVoided:
		return true
	default:
		return false
	}
}

// IsEditable reports whether entries may still change in this status.
func (s TransactionStatus) IsEditable() bool {
	switch s {
	case StatusDraft, StatusPending:
		return true
	default:
		return false
	}
}

// ParseTransactionStatus converts untrusted text into a TransactionStatus.
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	st := TransactionStatus(s)
	if !st.IsValid() {
		return "", fmt.Errorf("unknown transaction status %q", s)
	}
	return st, nil
}

// TransactionType classifies a transaction for approval routing.
type TransactionType string

const (
	TypeJournal    TransactionType = "JOURNAL"
	TypeInvoice    TransactionType = "INVOICE"
	TypeBill       TransactionType = "BILL"
	TypePayment    TransactionType = "PAYMENT"
	TypeExpense    TransactionType = "EXPENSE"
	TypeTransfer   TransactionType = "TRANSFER"
	TypeAdjustment TransactionType = "ADJUSTMENT"
)

// IsValid reports whether t is one of the declared transaction types.
func (t TransactionType) IsValid() bool {
	switch t {
	case TypeJournal, TypeInvoice, TypeBill, TypePayment, TypeExpense, TypeTransfer, TypeAdjustment:
		return true
	default:
		return false
	}
}

// TransactionTotals are the functional-currency sums of a set of entries.
type TransactionTotals struct {
	FunctionalDebit  decimal.Decimal
	FunctionalCredit decimal.Decimal
}

// IsBalanced compares the two sides exactly.
func (t TransactionTotals) IsBalanced() bool {
	return t.FunctionalDebit.Equal(t.FunctionalCredit)
}

// CreateTransactionInput is a validated request to record a new transaction.
type CreateTransactionInput struct {
	OrganizationID string
	FiscalPeriodID string
	Type           TransactionType
	Date           time.Time
	Description    string
	Reference      string
	Entries        []LedgerEntryInput
	CreatedBy      string
}

// Transaction is the aggregate root: a balanced financial event and its entries.
// Entries are created together with the transaction or not at all.
type Transaction struct {
	TransactionID  string            `json:"transactionID"`
	OrganizationID string            `json:"organizationID"`
	FiscalPeriodID string            `json:"fiscalPeriodID"`
	Type           TransactionType   `json:"type"`
	Date           time.Time         `json:"date"`
	Currency       string            `json:"currency"` // functional currency
	Description    string            `json:"description"`
	Reference      string            `json:"reference"`
	TotalAmount    decimal.Decimal   `json:"totalAmount"`
	Status         TransactionStatus `json:"status"`
	Entries        []LedgerEntry     `json:"entries,omitempty"`

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

	ReversalOfID *string `json:"reversalOfID,omitempty"` // set on the reversing transaction
	ReversedByID *string `json:"reversedByID,omitempty"` // set on the voided original
	AuditFields
}

// IsEditable reports whether the transaction's entries may still change.
func (t *Transaction) IsEditable() bool {
	return t.Status.IsEditable()
}

// Totals sums the stored functional amounts of the entries.
func (t *Transaction) Totals() TransactionTotals {
	totals := TransactionTotals{FunctionalDebit: decimal.Zero, FunctionalCredit: decimal.Zero}
	for _, e := range t.Entries {
		switch e.EntryType {
		case Debit:
			totals.FunctionalDebit = totals.FunctionalDebit.Add(e.FunctionalAmount)
		case Credit:
			totals.FunctionalCredit = totals.FunctionalCredit.Add(e.FunctionalAmount)
		}
	}
	return totals
}

// Snapshot freezes the entries for reversal.
func (t *Transaction) Snapshot() []OriginalEntry {
	out := make([]OriginalEntry, len(t.Entries))
	for i, e := range t.Entries {
		out[i] = e.Snapshot()
	}
	return out
}
