package repositories

import (
	"context"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/core/ledger"
)

// ListTransactionsFilter narrows and pages a transaction listing.
type ListTransactionsFilter struct {
	Status    *domain.TransactionStatus
	Limit     int
	NextToken *string
}

// TransactionReader defines read operations for transaction data.
type TransactionReader interface {
	// FindTransactionByID retrieves a transaction and its ordered entries.
	FindTransactionByID(ctx context.Context, organizationID, transactionID string) (*domain.Transaction, error)

	// ListTransactions returns a page of transactions, newest first, without entries,
	// and a token for the next page.
	ListTransactions(ctx context.Context, organizationID string, filter ListTransactionsFilter) ([]domain.Transaction, *string, error)

	// ListAuditRecords returns a transaction's workflow history in order.
	ListAuditRecords(ctx context.Context, transactionID string) ([]domain.AuditRecord, error)
}

// TransactionWriter defines write operations for transaction data.
// Every write is atomic: the transaction row, its entries, audit rows and
// balance changes are stored together or not at all.
type TransactionWriter interface {
	// CreateTransaction stores a new transaction together with its entries.
	CreateTransaction(ctx context.Context, tx domain.Transaction) error

	// ReplaceEntries swaps the entries and totals of a transaction that is
	// still editable. Returns ErrNotEditable if it no longer is.
	ReplaceEntries(ctx context.Context, tx domain.Transaction) error

	// SaveTransition persists a status change that does not touch balances.
	// The row must still be in status from, otherwise ErrInvalidTransition.
	SaveTransition(ctx context.Context, tx domain.Transaction, from domain.TransactionStatus, record domain.AuditRecord) error

	// PostTransaction moves an approved transaction to posted and applies
	// effects. A stale account version yields *apperrors.VersionConflictError.
	PostTransaction(ctx context.Context, tx domain.Transaction, record domain.AuditRecord, effects []ledger.BalanceEffect) error

	// VoidTransaction marks original voided, stores the posted reversing
	// transaction and applies effects, all at once.
	VoidTransaction(ctx context.Context, original domain.Transaction, record domain.AuditRecord, reversing domain.Transaction, effects []ledger.BalanceEffect) error
}

// TransactionRepositoryFacade combines all transaction-related repository interfaces.
type TransactionRepositoryFacade interface {
	TransactionReader
	TransactionWriter
}
