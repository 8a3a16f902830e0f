package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
)

// FiscalPeriodReader defines read operations for fiscal periods.
type FiscalPeriodReader interface {
	FindFiscalPeriodByID(ctx context.Context, organizationID, fiscalPeriodID string) (*domain.FiscalPeriod, error)

	// FindFiscalPeriodForDate returns the period containing date.
	FindFiscalPeriodForDate(ctx context.Context, organizationID string, date time.Time) (*domain.FiscalPeriod, error)

	ListFiscalPeriods(ctx context.Context, organizationID string) ([]domain.FiscalPeriod, error)
}

// FiscalPeriodWriter defines write operations for fiscal periods.
type FiscalPeriodWriter interface {
	// SaveFiscalPeriod stores a new period. Overlapping an existing period is ErrDuplicate.
	SaveFiscalPeriod(ctx context.Context, period domain.FiscalPeriod) error

	UpdateFiscalPeriodStatus(ctx context.Context, period domain.FiscalPeriod) error
}

// FiscalPeriodRepositoryFacade combines all fiscal-period-related repository interfaces.
type FiscalPeriodRepositoryFacade interface {
	FiscalPeriodReader
	FiscalPeriodWriter
}
