package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerflow/internal/core/ports/repositories"
	"github.com/SscSPs/ledgerflow/internal/models"
	"github.com/SscSPs/ledgerflow/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// exclusionViolation is raised by the no-overlap constraint on fiscal_periods.
const exclusionViolation = "23P01"

const fiscalPeriodColumns = `fiscal_period_id, organization_id, name, start_date, end_date, status,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxFiscalPeriodRepository struct {
	BaseRepository
}

// newPgxFiscalPeriodRepository creates a new repository for fiscal periods.
func newPgxFiscalPeriodRepository(pool *pgxpool.Pool) *PgxFiscalPeriodRepository {
	return &PgxFiscalPeriodRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FiscalPeriodRepositoryFacade = (*PgxFiscalPeriodRepository)(nil)

func scanFiscalPeriod(row pgx.Row) (models.FiscalPeriod, error) {
	var m models.FiscalPeriod
	err := row.Scan(
		&m.FiscalPeriodID,
		&m.OrganizationID,
		&m.Name,
		&m.StartDate,
		&m.EndDate,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// SaveFiscalPeriod inserts a new fiscal period.
func (r *PgxFiscalPeriodRepository) SaveFiscalPeriod(ctx context.Context, period domain.FiscalPeriod) error {
	m := mapping.ToModelFiscalPeriod(period)
	query := `INSERT INTO fiscal_periods (` + fiscalPeriodColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`

	_, err := r.Pool.Exec(ctx, query,
		m.FiscalPeriodID,
		m.OrganizationID,
		m.Name,
		m.StartDate,
		m.EndDate,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && (pgErr.Code == uniqueViolation || pgErr.Code == exclusionViolation) {
			return fmt.Errorf("%w: fiscal period %s overlaps an existing period", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save fiscal period %s: %w", m.FiscalPeriodID, err)
	}
	return nil
}

// UpdateFiscalPeriodStatus changes the status of a fiscal period.
func (r *PgxFiscalPeriodRepository) UpdateFiscalPeriodStatus(ctx context.Context, period domain.FiscalPeriod) error {
	m := mapping.ToModelFiscalPeriod(period)
	query := `
		UPDATE fiscal_periods
		SET status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE organization_id = $1 AND fiscal_period_id = $2;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.OrganizationID, m.FiscalPeriodID, m.Status, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to update fiscal period %s: %w", m.FiscalPeriodID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindFiscalPeriodByID retrieves a fiscal period by its ID.
func (r *PgxFiscalPeriodRepository) FindFiscalPeriodByID(ctx context.Context, organizationID, fiscalPeriodID string) (*domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + ` FROM fiscal_periods WHERE organization_id = $1 AND fiscal_period_id = $2;`
	return r.findOne(ctx, query, organizationID, fiscalPeriodID)
}

// FindFiscalPeriodForDate retrieves the fiscal period whose inclusive range contains date.
func (r *PgxFiscalPeriodRepository) FindFiscalPeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error) {
	query := `
		SELECT ` + fiscalPeriodColumns + `
		FROM fiscal_periods
		WHERE organization_id = $1 AND start_date <= $2 AND end_date >= $2
		ORDER BY start_date
		LIMIT 1;
	`
	return r.findOne(ctx, query, organizationID, date)
}

func (r *PgxFiscalPeriodRepository) findOne(ctx context.Context, query string, args ...any) (*domain.FiscalPeriod, error) {
	m, err := scanFiscalPeriod(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find fiscal period: %w", err)
	}
	period := mapping.ToDomainFiscalPeriod(m)
	return &period, nil
}

// ListFiscalPeriods retrieves every fiscal period of an organization ordered by start date.
func (r *PgxFiscalPeriodRepository) ListFiscalPeriods(ctx context.Context, organizationID string) ([]domain.FiscalPeriod, error) {
	query := `SELECT ` + fiscalPeriodColumns + ` FROM fiscal_periods WHERE organization_id = $1 ORDER BY start_date;`

	rows, err := r.Pool.Query(ctx, query, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to query fiscal periods for %s: %w", organizationID, err)
	}
	defer rows.Close()

	periods := []domain.FiscalPeriod{}
	for rows.Next() {
		m, err := scanFiscalPeriod(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fiscal period row: %w", err)
		}
		periods = append(periods, mapping.ToDomainFiscalPeriod(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating fiscal period rows: %w", err)
	}
	return periods, nil
}
