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
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a new exchange rate. One rate per pair and day.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)
	query := `
		INSERT INTO exchange_rates (exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective, method,
			created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ExchangeRateID,
		m.FromCurrencyCode,
		m.ToCurrencyCode,
		m.Rate,
		m.DateEffective,
		m.Method,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: rate %s to %s on %s already exists", apperrors.ErrDuplicate,
				m.FromCurrencyCode, m.ToCurrencyCode, m.DateEffective.Format(time.DateOnly))
		}
		return fmt.Errorf("failed to save exchange rate %s: %w", m.ExchangeRateID, err)
	}
	return nil
}

// FindExchangeRate returns the latest rate from -> to effective on or before
// asOf. When only the reverse pair is stored, its inverse is returned.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyCode, toCurrencyCode string, asOf time.Time) (*domain.ExchangeRate, error) {
	m, err := r.findLatest(ctx, fromCurrencyCode, toCurrencyCode, asOf)
	if err == nil {
		rate := mapping.ToDomainExchangeRate(m)
		return &rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	m, err = r.findLatest(ctx, toCurrencyCode, fromCurrencyCode, asOf)
	if err != nil {
		return nil, err
	}
	inverse, err := invertRate(m.Rate)
	if err != nil {
		return nil, fmt.Errorf("stored %s to %s: %w", m.FromCurrencyCode, m.ToCurrencyCode, err)
	}
	rate := mapping.ToDomainExchangeRate(m)
	rate.FromCurrencyCode = fromCurrencyCode
	rate.ToCurrencyCode = toCurrencyCode
	rate.Rate = inverse
	return &rate, nil
}

const rateScale = domain.MaxRateScale

// invertRate returns 1/rate rounded half-to-even at rateScale, so the rate an
// entry stores is exactly the rate its functional amount was computed with.
func invertRate(rate decimal.Decimal) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: rate is %s", apperrors.ErrInvalidExchangeRate, rate.String())
	}
	inverse := decimal.NewFromInt(1).DivRound(rate, rateScale)
	if !inverse.IsPositive() {
		return decimal.Zero, fmt.Errorf("%w: inverse of %s is below %d decimal places",
			apperrors.ErrInvalidExchangeRate, rate.String(), rateScale)
	}
	return inverse, nil
}

func (r *PgxExchangeRateRepository) findLatest(ctx context.Context, from, to string, asOf time.Time) (models.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective, method,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2 AND date_effective <= $3
		ORDER BY date_effective DESC, created_at DESC
		LIMIT 1;
	`
	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, from, to, asOf).Scan(
		&m.ExchangeRateID,
		&m.FromCurrencyCode,
		&m.ToCurrencyCode,
		&m.Rate,
		&m.DateEffective,
		&m.Method,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return models.ExchangeRate{}, apperrors.ErrNotFound
		}
		return models.ExchangeRate{}, fmt.Errorf("failed to find exchange rate %s to %s: %w", from, to, err)
	}
	return m, nil
}
