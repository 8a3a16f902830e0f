package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerflow/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerflow/internal/models"
	"github.com/SscSPs/ledgerflow/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const approvalRuleColumns = `rule_id, organization_id, name, min_amount, max_amount, transaction_types, required_role,
		priority, is_active, created_at, created_by, last_updated_at, last_updated_by`

type PgxApprovalRuleRepository struct {
	BaseRepository
}

// newPgxApprovalRuleRepository creates a new repository for approval rules.
func newPgxApprovalRuleRepository(pool *pgxpool.Pool) *PgxApprovalRuleRepository {
	return &PgxApprovalRuleRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ApprovalRuleRepositoryFacade = (*PgxApprovalRuleRepository)(nil)

func scanApprovalRule(row pgx.Row) (models.ApprovalRule, error) {
	var m models.ApprovalRule
	err := row.Scan(
		&m.RuleID,
		&m.OrganizationID,
		&m.Name,
		&m.MinAmount,
		&m.MaxAmount,
		&m.TransactionTypes,
		&m.RequiredRole,
		&m.Priority,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveApprovalRule inserts a new approval rule.
func (r *PgxApprovalRuleRepository) SaveApprovalRule(ctx context.Context, rule domain.ApprovalRule) error {
	m := mapping.ToModelApprovalRule(rule)
	query := `INSERT INTO approval_rules (` + approvalRuleColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);`

	_, err := r.Pool.Exec(ctx, query,
		m.RuleID,
		m.OrganizationID,
		m.Name,
		m.MinAmount,
		m.MaxAmount,
		m.TransactionTypes,
		m.RequiredRole,
		m.Priority,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: approval rule %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save approval rule %s: %w", m.RuleID, err)
	}
	return nil
}

// UpdateApprovalRule persists the mutable fields of an approval rule.
func (r *PgxApprovalRuleRepository) UpdateApprovalRule(ctx context.Context, rule domain.ApprovalRule) error {
	m := mapping.ToModelApprovalRule(rule)
	query := `
		UPDATE approval_rules
		SET name = $3, min_amount = $4, max_amount = $5, transaction_types = $6, required_role = $7,
			priority = $8, is_active = $9, last_updated_at = $10, last_updated_by = $11
		WHERE organization_id = $1 AND rule_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		m.OrganizationID,
		m.RuleID,
		m.Name,
		m.MinAmount,
		m.MaxAmount,
		m.TransactionTypes,
		m.RequiredRole,
		m.Priority,
		m.IsActive,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update approval rule %s: %w", m.RuleID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindApprovalRuleByID retrieves an approval rule by its ID.
func (r *PgxApprovalRuleRepository) FindApprovalRuleByID(ctx context.Context, organizationID, ruleID string) (*domain.ApprovalRule, error) {
	query := `SELECT ` + approvalRuleColumns + ` FROM approval_rules WHERE organization_id = $1 AND rule_id = $2;`

	m, err := scanApprovalRule(r.Pool.QueryRow(ctx, query, organizationID, ruleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find approval rule %s: %w", ruleID, err)
	}
	rule := mapping.ToDomainApprovalRule(m)
	return &rule, nil
}

// ListApprovalRules retrieves the rules of an organization in definition order.
func (r *PgxApprovalRuleRepository) ListApprovalRules(ctx context.Context, organizationID string) ([]domain.ApprovalRule, error) {
	query := `SELECT ` + approvalRuleColumns + ` FROM approval_rules WHERE organization_id = $1 ORDER BY created_at, rule_id;`

	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query approval rules for %s: %w", organizationID, err)
	}
	defer rows.Close()

	rules := []domain.ApprovalRule{}
	for rows.Next() {
		m, err := scanApprovalRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan approval rule row: %w", err)
		}
		rules = append(rules, mapping.ToDomainApprovalRule(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating approval rule rows: %w", err)
	}
	return rules, nil
}
