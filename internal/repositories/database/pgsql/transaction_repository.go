package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/core/ledger"
	portsrepo "github.com/SscSPs/ledgerflow/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerflow/internal/models"
	"github.com/SscSPs/ledgerflow/internal/utils/mapping"
	"github.com/SscSPs/ledgerflow/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultListLimit = 20

const transactionColumns = `transaction_id, organization_id, fiscal_period_id, transaction_type, transaction_date, currency_code,
		description, reference, total_amount, status,
		submitted_by, submitted_at, approved_by, approved_at, approval_notes,
		rejected_by, rejected_at, rejection_reason, posted_by, posted_at,
		voided_by, voided_at, void_reason, reversal_of_id, reversed_by_id,
		created_at, created_by, last_updated_at, last_updated_by`

const entryColumns = `entry_id, transaction_id, line_number, account_id, entry_type, amount, currency_code,
		exchange_rate, functional_amount, memo, dimensions`

type PgxTransactionRepository struct {
	BaseRepository
	accountRepo *PgxAccountRepository
}

// newPgxTransactionRepository creates a new repository for transactions. Balance
// changes are written through accountRepo inside the same database transaction.
func newPgxTransactionRepository(pool *pgxpool.Pool, accountRepo *PgxAccountRepository) *PgxTransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
		accountRepo:    accountRepo,
	}
}

var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

func scanTransaction(row pgx.Row) (models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.OrganizationID,
		&m.FiscalPeriodID,
		&m.Type,
		&m.Date,
		&m.CurrencyCode,
		&m.Description,
		&m.Reference,
		&m.TotalAmount,
		&m.Status,
		&m.SubmittedBy,
		&m.SubmittedAt,
		&m.ApprovedBy,
		&m.ApprovedAt,
		&m.ApprovalNotes,
		&m.RejectedBy,
		&m.RejectedAt,
		&m.RejectionReason,
		&m.PostedBy,
		&m.PostedAt,
		&m.VoidedBy,
		&m.VoidedAt,
		&m.VoidReason,
		&m.ReversalOfID,
		&m.ReversedByID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// CreateTransaction inserts a transaction and all of its entries atomically.
func (r *PgxTransactionRepository) CreateTransaction(ctx context.Context, txn domain.Transaction) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		return r.insertTransactionInTx(ctx, tx, txn)
	})
}

func (r *PgxTransactionRepository) insertTransactionInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		INSERT INTO transactions (` + transactionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24, $25, $26, $27, $28, $29);
	`
	_, err := tx.Exec(ctx, query,
		m.TransactionID,
		m.OrganizationID,
		m.FiscalPeriodID,
		m.Type,
		m.Date,
		m.CurrencyCode,
		m.Description,
		m.Reference,
		m.TotalAmount,
		m.Status,
		m.SubmittedBy,
		m.SubmittedAt,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.RejectedBy,
		m.RejectedAt,
		m.RejectionReason,
		m.PostedBy,
		m.PostedAt,
		m.VoidedBy,
		m.VoidedAt,
		m.VoidReason,
		m.ReversalOfID,
		m.ReversedByID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: transaction %s already exists", apperrors.ErrDuplicate, m.TransactionID)
		}
		return fmt.Errorf("failed to insert transaction %s: %w", m.TransactionID, err)
	}
	return insertEntriesInTx(ctx, tx, txn.Entries)
}

func insertEntriesInTx(ctx context.Context, tx pgx.Tx, entries []domain.LedgerEntry) error {
	if len(entries) == 0 {
		return nil
	}

	query := `INSERT INTO ledger_entries (` + entryColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);`

	batch := &pgx.Batch{}
	for _, e := range entries {
		m := mapping.ToModelLedgerEntry(e)
		batch.Queue(query,
			m.EntryID,
			m.TransactionID,
			m.LineNumber,
			m.AccountID,
			m.EntryType,
			m.Amount,
			m.CurrencyCode,
			m.ExchangeRate,
			m.FunctionalAmount,
			m.Memo,
			m.Dimensions,
		)
	}

	br := tx.SendBatch(ctx, batch)
	for _, e := range entries {
		if _, err := br.Exec(); err != nil {
			br.Close()
			return fmt.Errorf("failed to insert ledger entry %s: %w", e.EntryID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close ledger entry batch: %w", err)
	}
	return nil
}

// ReplaceEntries swaps the header fields and entries of an editable transaction.
func (r *PgxTransactionRepository) ReplaceEntries(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	return r.inTx(ctx, func(tx pgx.Tx) error {
		var status string
		err := tx.QueryRow(ctx,
			`SELECT status FROM transactions WHERE organization_id = $1 AND transaction_id = $2 FOR UPDATE;`,
			m.OrganizationID, m.TransactionID,
		).Scan(&status)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to lock transaction %s: %w", m.TransactionID, err)
		}
		if !domain.TransactionStatus(status).IsEditable() {
			return fmt.Errorf("%w: status is %s", apperrors.ErrNotEditable, status)
		}

		_, err = tx.Exec(ctx, `
			UPDATE transactions
			SET fiscal_period_id = $2, transaction_date = $3, description = $4, reference = $5, total_amount = $6,
				last_updated_at = $7, last_updated_by = $8
			WHERE transaction_id = $1;`,
			m.TransactionID,
			m.FiscalPeriodID,
			m.Date,
			m.Description,
			m.Reference,
			m.TotalAmount,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to update transaction %s: %w", m.TransactionID, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM ledger_entries WHERE transaction_id = $1;`, m.TransactionID); err != nil {
			return fmt.Errorf("failed to delete entries of transaction %s: %w", m.TransactionID, err)
		}
		return insertEntriesInTx(ctx, tx, txn.Entries)
	})
}

// SaveTransition persists a status change and its audit record.
func (r *PgxTransactionRepository) SaveTransition(ctx context.Context, txn domain.Transaction, from domain.TransactionStatus, record domain.AuditRecord) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := updateWorkflowInTx(ctx, tx, txn, from); err != nil {
			return err
		}
		return insertAuditInTx(ctx, tx, record)
	})
}

// PostTransaction marks an approved transaction posted and applies its balance effects.
func (r *PgxTransactionRepository) PostTransaction(ctx context.Context, txn domain.Transaction, record domain.AuditRecord, effects []ledger.BalanceEffect) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := updateWorkflowInTx(ctx, tx, txn, domain.StatusApproved); err != nil {
			return err
		}
		if err := insertAuditInTx(ctx, tx, record); err != nil {
			return err
		}
		return r.accountRepo.applyBalanceEffectsInTx(ctx, tx, effects, record.Actor, record.At)
	})
}

// VoidTransaction stores the reversing transaction, marks the original voided
// and applies the reversal's balance effects.
func (r *PgxTransactionRepository) VoidTransaction(ctx context.Context, original domain.Transaction, record domain.AuditRecord, reversing domain.Transaction, effects []ledger.BalanceEffect) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		// the reversing row goes first so original.reversed_by_id can reference it
		if err := r.insertTransactionInTx(ctx, tx, reversing); err != nil {
			return err
		}
		if err := updateWorkflowInTx(ctx, tx, original, domain.StatusPosted); err != nil {
			return err
		}
		if err := insertAuditInTx(ctx, tx, record); err != nil {
			return err
		}
		return r.accountRepo.applyBalanceEffectsInTx(ctx, tx, effects, record.Actor, record.At)
	})
}

// updateWorkflowInTx writes status and workflow actor columns, guarded by the
// status the caller read. A guard miss means a concurrent transition won.
func updateWorkflowInTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction, from domain.TransactionStatus) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET status = $4,
			submitted_by = $5, submitted_at = $6,
			approved_by = $7, approved_at = $8, approval_notes = $9,
			rejected_by = $10, rejected_at = $11, rejection_reason = $12,
			posted_by = $13, posted_at = $14,
			voided_by = $15, voided_at = $16, void_reason = $17,
			reversed_by_id = $18,
			last_updated_at = $19, last_updated_by = $20
		WHERE organization_id = $1 AND transaction_id = $2 AND status = $3;
	`
	cmdTag, err := tx.Exec(ctx, query,
		m.OrganizationID,
		m.TransactionID,
		string(from),
		m.Status,
		m.SubmittedBy,
		m.SubmittedAt,
		m.ApprovedBy,
		m.ApprovedAt,
		m.ApprovalNotes,
		m.RejectedBy,
		m.RejectedAt,
		m.RejectionReason,
		m.PostedBy,
		m.PostedAt,
		m.VoidedBy,
		m.VoidedAt,
		m.VoidReason,
		m.ReversedByID,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update status of transaction %s: %w", m.TransactionID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s is no longer %s", apperrors.ErrInvalidTransition, m.TransactionID, from)
	}
	return nil
}

func insertAuditInTx(ctx context.Context, db execer, record domain.AuditRecord) error {
	m := mapping.ToModelAuditRecord(record)
	query := `
		INSERT INTO transaction_audit_log (audit_id, transaction_id, action, from_status, to_status, actor, at, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	if _, err := db.Exec(ctx, query, m.AuditID, m.TransactionID, m.Action, m.FromStatus, m.ToStatus, m.Actor, m.At, m.Notes); err != nil {
		return fmt.Errorf("failed to insert audit record for transaction %s: %w", m.TransactionID, err)
	}
	return nil
}

// FindTransactionByID retrieves a transaction and its entries in line order.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, organizationID, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE organization_id = $1 AND transaction_id = $2;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, organizationID, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find transaction %s: %w", transactionID, err)
	}

	entries, err := r.findEntries(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	txn := mapping.ToDomainTransaction(m)
	txn.Entries = entries
	return &txn, nil
}

func (r *PgxTransactionRepository) findEntries(ctx context.Context, transactionID string) ([]domain.LedgerEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM ledger_entries WHERE transaction_id = $1 ORDER BY line_number;`

	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries of transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	entries := []models.LedgerEntry{}
	for rows.Next() {
		var m models.LedgerEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.TransactionID,
			&m.LineNumber,
			&m.AccountID,
			&m.EntryType,
			&m.Amount,
			&m.CurrencyCode,
			&m.ExchangeRate,
			&m.FunctionalAmount,
			&m.Memo,
			&m.Dimensions,
		); err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(entries), nil
}

// ListTransactions retrieves a page of transactions, newest first, using token-based pagination.
// Entries are not loaded.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, organizationID string, filter portsrepo.ListTransactionsFilter) ([]domain.Transaction, *string, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	// one extra row tells us whether another page exists
	fetchLimit := limit + 1

	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE organization_id = $1`
	args := []any{organizationID}

	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}

	if filter.NextToken != nil && *filter.NextToken != "" {
		cursor, err := pagination.DecodeToken(*filter.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: invalid nextToken: %v", apperrors.ErrValidation, err)
		}
		args = append(args, cursor.Date, cursor.CreatedAt, cursor.ID)
		n := len(args)
		query += ` AND (transaction_date, created_at, transaction_id) < ($` + strconv.Itoa(n-2) +
			`, $` + strconv.Itoa(n-1) + `, $` + strconv.Itoa(n) + `)`
	}

	args = append(args, fetchLimit)
	query += ` ORDER BY transaction_date DESC, created_at DESC, transaction_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query transactions for organization %s: %w", organizationID, err)
	}
	defer rows.Close()

	page := make([]models.Transaction, 0, fetchLimit)
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		page = append(page, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	var nextToken *string
	if len(page) > limit {
		last := page[limit-1]
		token := pagination.EncodeToken(pagination.Cursor{Date: last.Date, CreatedAt: last.CreatedAt, ID: last.TransactionID})
		nextToken = &token
		page = page[:limit]
	}

	txns := make([]domain.Transaction, len(page))
	for i, m := range page {
		txns[i] = mapping.ToDomainTransaction(m)
	}
	return txns, nextToken, nil
}

// ListAuditRecords retrieves a transaction's workflow history in the order it was written.
func (r *PgxTransactionRepository) ListAuditRecords(ctx context.Context, transactionID string) ([]domain.AuditRecord, error) {
	query := `
		SELECT audit_id, transaction_id, action, from_status, to_status, actor, at, notes
		FROM transaction_audit_log
		WHERE transaction_id = $1
		ORDER BY seq;
	`
	rows, err := r.Pool.Query(ctx, query, transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit log of transaction %s: %w", transactionID, err)
	}
	defer rows.Close()

	records := []domain.AuditRecord{}
	for rows.Next() {
		var m models.AuditRecord
		if err := rows.Scan(&m.AuditID, &m.TransactionID, &m.Action, &m.FromStatus, &m.ToStatus, &m.Actor, &m.At, &m.Notes); err != nil {
			return nil, fmt.Errorf("failed to scan audit row: %w", err)
		}
		records = append(records, mapping.ToDomainAuditRecord(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit rows: %w", err)
	}
	return records, nil
}
