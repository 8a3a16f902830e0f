package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/approval"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/google/uuid"
)

// organizationService implements the OrganizationSvcFacade interface
type organizationService struct {
	BaseService
	orgRepo      portsrepo.OrganizationRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewOrganizationService creates a new organization service with the provided dependencies
func NewOrganizationService(
	orgRepo portsrepo.OrganizationRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
) portssvc.OrganizationSvcFacade {
	svc := &organizationService{
		orgRepo:      orgRepo,
		currencyRepo: currencyRepo,
	}
	// the organization service authorizes its own member management
	svc.OrganizationAuthorizer = svc
	return svc
}

// Ensure organizationService implements the OrganizationSvcFacade interface
var _ portssvc.OrganizationSvcFacade = (*organizationService)(nil)

// GetOrganization retrieves an organization the user belongs to
func (s *organizationService) GetOrganization(ctx context.Context, organizationID, userID string) (*domain.Organization, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	org, err := s.orgRepo.FindOrganizationByID(ctx, organizationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrOrganizationNotFound, organizationID)
		}
		s.LogError(ctx, err, "Failed to find organization by ID",
			slog.String("organization_id", organizationID))
		return nil, err
	}
	return org, nil
}

// ListUserOrganizations retrieves all organizations a user belongs to
func (s *organizationService) ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error) {
	orgs, err := s.orgRepo.ListOrganizationsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list organizations for user",
			slog.String("user_id", userID))
		return nil, err
	}
	if orgs == nil {
		return []domain.Organization{}, nil
	}
	return orgs, nil
}

// ListMembers retrieves an organization's memberships
func (s *organizationService) ListMembers(ctx context.Context, organizationID, userID string) ([]domain.Membership, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	members, err := s.orgRepo.ListMemberships(ctx, organizationID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list members",
			slog.String("organization_id", organizationID))
		return nil, err
	}
	return members, nil
}

// CreateOrganization creates an organization and makes its creator the owner
func (s *organizationService) CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error) {
	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.FunctionalCurrency); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: functional currency %s is not registered", apperrors.ErrValidation, req.FunctionalCurrency)
		}
		s.LogError(ctx, err, "Failed to validate functional currency",
			slog.String("currency_code", req.FunctionalCurrency))
		return nil, fmt.Errorf("failed to validate functional currency: %w", err)
	}
	if req.DecimalPlaces != nil && (*req.DecimalPlaces < 0 || *req.DecimalPlaces > 18) {
		return nil, fmt.Errorf("%w: got %d", apperrors.ErrInvalidPrecision, *req.DecimalPlaces)
	}

	now := time.Now()
	org := domain.Organization{
		OrganizationID:     uuid.NewString(),
		Name:               req.Name,
		FunctionalCurrency: req.FunctionalCurrency,
		DecimalPlaces:      req.DecimalPlaces,
		IsActive:           true,
		AuditFields:        domain.NewAuditFields(userID, now),
	}
	owner := domain.Membership{
		UserID:         userID,
		OrganizationID: org.OrganizationID,
		Role:           domain.RoleOwner,
	}

	if err := s.orgRepo.SaveOrganization(ctx, org, owner); err != nil {
		s.LogError(ctx, err, "Failed to save organization",
			slog.String("organization_id", org.OrganizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Organization created successfully",
		slog.String("organization_id", org.OrganizationID),
		slog.String("creator_id", userID))
	return &org, nil
}

// AddMember grants a user a role. Nobody may grant a role above their own.
func (s *organizationService) AddMember(ctx context.Context, organizationID string, req dto.AddMemberRequest, userID string) (*domain.Membership, error) {
	granter, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin)
	if err != nil {
		s.LogDebug(ctx, "User not authorized to add members",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	role, err := domain.ParseUserRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if !granter.Role.AtLeast(role) {
		return nil, &approval.InsufficientRoleError{Role: granter.Role, Required: role}
	}
	if req.ApprovalLimit != nil && req.ApprovalLimit.IsNegative() {
		return nil, fmt.Errorf("%w: approval limit must not be negative", apperrors.ErrValidation)
	}

	membership := domain.Membership{
		UserID:         req.UserID,
		OrganizationID: organizationID,
		Role:           role,
		ApprovalLimit:  req.ApprovalLimit,
	}
	if err := s.orgRepo.SaveMembership(ctx, membership); err != nil {
		s.LogError(ctx, err, "Failed to save membership",
			slog.String("target_user_id", req.UserID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Member added to organization",
		slog.String("target_user_id", req.UserID),
		slog.String("organization_id", organizationID),
		slog.String("role", string(role)))
	return &membership, nil
}

// AuthorizeUserAction checks if a user holds at least requiredRole in an organization
func (s *organizationService) AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.UserRole) (*domain.Membership, error) {
	membership, err := s.orgRepo.FindMembership(ctx, organizationID, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) || errors.Is(err, apperrors.ErrNotMember) {
			s.LogDebug(ctx, "User not a member of organization",
				slog.String("user_id", userID),
				slog.String("organization_id", organizationID))
			return nil, apperrors.ErrNotMember
		}
		s.LogError(ctx, err, "Failed to find membership",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID))
		return nil, err
	}

	if !membership.Role.AtLeast(requiredRole) {
		s.LogDebug(ctx, "User does not have required role",
			slog.String("user_id", userID),
			slog.String("organization_id", organizationID),
			slog.String("user_role", string(membership.Role)),
			slog.String("required_role", string(requiredRole)))
		return nil, &approval.InsufficientRoleError{Role: membership.Role, Required: requiredRole}
	}
	return membership, nil
}
