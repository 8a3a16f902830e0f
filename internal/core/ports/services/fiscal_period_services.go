package services

import (
	"context"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/dto"
)

// FiscalPeriodSvcFacade defines operations on fiscal periods.
type FiscalPeriodSvcFacade interface {
	CreateFiscalPeriod(ctx context.Context, organizationID string, req dto.CreateFiscalPeriodRequest, userID string) (*domain.FiscalPeriod, error)
	ListFiscalPeriods(ctx context.Context, organizationID, userID string) ([]domain.FiscalPeriod, error)

	// UpdateFiscalPeriodStatus opens, soft-closes or closes a period. Requires Admin or higher.
	UpdateFiscalPeriodStatus(ctx context.Context, organizationID, fiscalPeriodID string, req dto.UpdateFiscalPeriodStatusRequest, userID string) (*domain.FiscalPeriod, error)
}
