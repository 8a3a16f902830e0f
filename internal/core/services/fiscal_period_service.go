package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/google/uuid"
)

// fiscalPeriodService implements the FiscalPeriodSvcFacade interface
type fiscalPeriodService struct {
	BaseService
	periodRepo portsrepo.FiscalPeriodRepositoryFacade
}

// NewFiscalPeriodService creates a new fiscal period service.
func NewFiscalPeriodService(periodRepo portsrepo.FiscalPeriodRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.FiscalPeriodSvcFacade {
	return &fiscalPeriodService{
		BaseService: BaseService{OrganizationAuthorizer: authorizer},
		periodRepo:  periodRepo,
	}
}

var _ portssvc.FiscalPeriodSvcFacade = (*fiscalPeriodService)(nil)

// CreateFiscalPeriod opens a new period. Periods of one organization never overlap.
func (s *fiscalPeriodService) CreateFiscalPeriod(ctx context.Context, organizationID string, req dto.CreateFiscalPeriodRequest, userID string) (*domain.FiscalPeriod, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	start, end := truncateToDate(req.StartDate), truncateToDate(req.EndDate)
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end date precedes start date", apperrors.ErrValidation)
	}

	existing, err := s.periodRepo.ListFiscalPeriods(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list fiscal periods",
			slog.String("organization_id", organizationID))
		return nil, fmt.Errorf("failed to list fiscal periods: %w", err)
	}
	for _, p := range existing {
		if !start.After(p.EndDate) && !end.Before(p.StartDate) {
			return nil, fmt.Errorf("%w: overlaps fiscal period %s", apperrors.ErrDuplicate, p.Name)
		}
	}

	period := domain.FiscalPeriod{
		FiscalPeriodID: uuid.NewString(),
		OrganizationID: organizationID,
		Name:           strings.TrimSpace(req.Name),
		StartDate:      start,
		EndDate:        end,
		Status:         domain.PeriodOpen,
		AuditFields:    domain.NewAuditFields(userID, time.Now()),
	}
	if err := s.periodRepo.SaveFiscalPeriod(ctx, period); err != nil {
		s.LogError(ctx, err, "Failed to save fiscal period",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal period created",
		slog.String("fiscal_period_id", period.FiscalPeriodID),
		slog.String("organization_id", organizationID))
	return &period, nil
}

// ListFiscalPeriods lists an organization's periods.
func (s *fiscalPeriodService) ListFiscalPeriods(ctx context.Context, organizationID, userID string) ([]domain.FiscalPeriod, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.periodRepo.ListFiscalPeriods(ctx, organizationID)
}

// UpdateFiscalPeriodStatus moves a period between open, soft-close and closed.
func (s *fiscalPeriodService) UpdateFiscalPeriodStatus(ctx context.Context, organizationID, fiscalPeriodID string, req dto.UpdateFiscalPeriodStatusRequest, userID string) (*domain.FiscalPeriod, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	status := domain.PeriodStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: unknown period status %q", apperrors.ErrValidation, req.Status)
	}

	period, err := s.periodRepo.FindFiscalPeriodByID(ctx, organizationID, fiscalPeriodID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrFiscalPeriodNotFound, fiscalPeriodID)
		}
		return nil, err
	}

	previous := period.Status
	period.Status = status
	period.Touch(userID, time.Now())
	if err := s.periodRepo.UpdateFiscalPeriodStatus(ctx, *period); err != nil {
		s.LogError(ctx, err, "Failed to update fiscal period status",
			slog.String("fiscal_period_id", fiscalPeriodID))
		return nil, err
	}

	s.LogInfo(ctx, "Fiscal period status changed",
		slog.String("fiscal_period_id", fiscalPeriodID),
		slog.String("from", string(previous)),
		slog.String("to", string(status)))
	return period, nil
}
