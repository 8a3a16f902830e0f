package services

import (
	"context"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/dto"
)

// TransactionReaderSvc defines read operations for transactions.
type TransactionReaderSvc interface {
	// GetTransaction retrieves a transaction with its entries.
	GetTransaction(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error)

	// ListTransactions retrieves a page of transactions in an organization.
	ListTransactions(ctx context.Context, organizationID, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error)

	// GetAuditTrail returns the workflow history of a transaction.
	GetAuditTrail(ctx context.Context, organizationID, transactionID, userID string) ([]domain.AuditRecord, error)
}

// TransactionWriterSvc defines operations that record or change entries.
type TransactionWriterSvc interface {
	// CreateTransaction resolves, validates and stores a new draft transaction.
	CreateTransaction(ctx context.Context, organizationID string, req dto.CreateTransactionRequest, userID string) (*domain.Transaction, error)

	// ReplaceEntries swaps the entries of a draft or pending transaction.
	ReplaceEntries(ctx context.Context, organizationID, transactionID string, req dto.ReplaceEntriesRequest, userID string) (*domain.Transaction, error)
}

// TransactionWorkflowSvc drives a transaction through its lifecycle.
type TransactionWorkflowSvc interface {
	Submit(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error)
	Approve(ctx context.Context, organizationID, transactionID string, req dto.ApproveTransactionRequest, userID string) (*domain.Transaction, error)
	Reject(ctx context.Context, organizationID, transactionID string, req dto.RejectTransactionRequest, userID string) (*domain.Transaction, error)
	Post(ctx context.Context, organizationID, transactionID, userID string) (*domain.Transaction, error)

	// Void reverses a posted transaction, returning the voided original and
	// the posted reversing transaction.
	Void(ctx context.Context, organizationID, transactionID string, req dto.VoidTransactionRequest, userID string) (original, reversing *domain.Transaction, err error)
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
	TransactionWorkflowSvc
}
