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

const organizationColumns = `o.organization_id, o.name, o.functional_currency, o.decimal_places, o.is_active,
		o.created_at, o.created_by, o.last_updated_at, o.last_updated_by`

type PgxOrganizationRepository struct {
	BaseRepository
}

// newPgxOrganizationRepository creates a new repository for organizations and their members.
func newPgxOrganizationRepository(pool *pgxpool.Pool) *PgxOrganizationRepository {
	return &PgxOrganizationRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OrganizationRepositoryFacade = (*PgxOrganizationRepository)(nil)

func scanOrganization(row pgx.Row) (models.Organization, error) {
	var m models.Organization
	err := row.Scan(
		&m.OrganizationID,
		&m.Name,
		&m.FunctionalCurrency,
		&m.DecimalPlaces,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveOrganization inserts the organization and its owner in one transaction.
func (r *PgxOrganizationRepository) SaveOrganization(ctx context.Context, org domain.Organization, owner domain.Membership) error {
	m := mapping.ToModelOrganization(org)
	member := mapping.ToModelMembership(owner)

	return r.inTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO organizations (organization_id, name, functional_currency, decimal_places, is_active,
				created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
			m.OrganizationID,
			m.Name,
			m.FunctionalCurrency,
			m.DecimalPlaces,
			m.IsActive,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: organization %s already exists", apperrors.ErrDuplicate, m.OrganizationID)
			}
			return fmt.Errorf("failed to save organization %s: %w", m.OrganizationID, err)
		}

		if err := insertMembership(ctx, tx, member); err != nil {
			return err
		}
		return nil
	})
}

// SaveMembership inserts a membership or replaces the role and limit of an existing one.
func (r *PgxOrganizationRepository) SaveMembership(ctx context.Context, membership domain.Membership) error {
	return insertMembership(ctx, r.Pool, mapping.ToModelMembership(membership))
}

func insertMembership(ctx context.Context, db execer, m models.Membership) error {
	query := `
		INSERT INTO organization_members (organization_id, user_id, role, approval_limit)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (organization_id, user_id)
		DO UPDATE SET role = EXCLUDED.role, approval_limit = EXCLUDED.approval_limit;
	`
	if _, err := db.Exec(ctx, query, m.OrganizationID, m.UserID, m.Role, m.ApprovalLimit); err != nil {
		return fmt.Errorf("failed to save membership of %s in %s: %w", m.UserID, m.OrganizationID, err)
	}
	return nil
}

// FindOrganizationByID retrieves an organization by its ID.
func (r *PgxOrganizationRepository) FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error) {
	query := `SELECT ` + organizationColumns + ` FROM organizations o WHERE o.organization_id = $1;`

	m, err := scanOrganization(r.Pool.QueryRow(ctx, query, organizationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find organization %s: %w", organizationID, err)
	}
	org := mapping.ToDomainOrganization(m)
	return &org, nil
}

// ListOrganizationsByUser retrieves the organizations a user is a member of, ordered by name.
func (r *PgxOrganizationRepository) ListOrganizationsByUser(ctx context.Context, userID string) ([]domain.Organization, error) {
	query := `
		SELECT ` + organizationColumns + `
		FROM organizations o
		JOIN organization_members om ON om.organization_id = o.organization_id
		WHERE om.user_id = $1
		ORDER BY o.name, o.organization_id;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query organizations for user %s: %w", userID, err)
	}
	defer rows.Close()

	orgs := []models.Organization{}
	for rows.Next() {
		m, err := scanOrganization(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan organization row: %w", err)
		}
		orgs = append(orgs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating organization rows: %w", err)
	}
	return mapping.ToDomainOrganizationSlice(orgs), nil
}

// FindMembership retrieves a user's membership in an organization.
func (r *PgxOrganizationRepository) FindMembership(ctx context.Context, organizationID, userID string) (*domain.Membership, error) {
	query := `
		SELECT organization_id, user_id, role, approval_limit
		FROM organization_members
		WHERE organization_id = $1 AND user_id = $2;
	`
	var m models.Membership
	err := r.Pool.QueryRow(ctx, query, organizationID, userID).Scan(&m.OrganizationID, &m.UserID, &m.Role, &m.ApprovalLimit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotMember
		}
		return nil, fmt.Errorf("failed to find membership of %s in %s: %w", userID, organizationID, err)
	}
	membership := mapping.ToDomainMembership(m)
	return &membership, nil
}

// ListMemberships retrieves every member of an organization ordered by user ID.
func (r *PgxOrganizationRepository) ListMemberships(ctx context.Context, organizationID string) ([]domain.Membership, error) {
	query := `
		SELECT organization_id, user_id, role, approval_limit
		FROM organization_members
		WHERE organization_id = $1
		ORDER BY user_id;
	`
	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query members of %s: %w", organizationID, err)
	}
	defer rows.Close()

	members := []domain.Membership{}
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.OrganizationID, &m.UserID, &m.Role, &m.ApprovalLimit); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		members = append(members, mapping.ToDomainMembership(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating membership rows: %w", err)
	}
	return members, nil
}
