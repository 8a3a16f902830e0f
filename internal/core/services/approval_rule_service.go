package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	portsrepo "github.com/SscSPs/ledgerflow/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledgerflow/internal/core/ports/services"
	"github.com/SscSPs/ledgerflow/internal/dto"
	"github.com/google/uuid"
)

// approvalRuleService implements the ApprovalRuleSvcFacade interface
type approvalRuleService struct {
	BaseService
	ruleRepo portsrepo.ApprovalRuleRepositoryFacade
}

// NewApprovalRuleService creates a new approval rule service.
func NewApprovalRuleService(ruleRepo portsrepo.ApprovalRuleRepositoryFacade, authorizer portssvc.OrganizationAuthorizerSvc) portssvc.ApprovalRuleSvcFacade {
	return &approvalRuleService{
		BaseService: BaseService{OrganizationAuthorizer: authorizer},
		ruleRepo:    ruleRepo,
	}
}

var _ portssvc.ApprovalRuleSvcFacade = (*approvalRuleService)(nil)

func (s *approvalRuleService) CreateApprovalRule(ctx context.Context, organizationID string, req dto.CreateApprovalRuleRequest, userID string) (*domain.ApprovalRule, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}

	role, err := domain.ParseUserRole(req.RequiredRole)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if len(req.TransactionTypes) == 0 {
		return nil, fmt.Errorf("%w: at least one transaction type is required", apperrors.ErrValidation)
	}
	types := make([]domain.TransactionType, len(req.TransactionTypes))
	for i, t := range req.TransactionTypes {
		types[i] = domain.TransactionType(t)
		if !types[i].IsValid() {
			return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, t)
		}
	}
	if req.MinAmount != nil && req.MaxAmount != nil && req.MinAmount.GreaterThan(*req.MaxAmount) {
		return nil, fmt.Errorf("%w: minimum amount exceeds maximum amount", apperrors.ErrValidation)
	}
	if req.Priority < 0 {
		return nil, fmt.Errorf("%w: priority must not be negative", apperrors.ErrValidation)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	rule := domain.ApprovalRule{
		RuleID:           uuid.NewString(),
		OrganizationID:   organizationID,
		Name:             req.Name,
		MinAmount:        req.MinAmount,
		MaxAmount:        req.MaxAmount,
		TransactionTypes: types,
		RequiredRole:     role,
		Priority:         req.Priority,
		IsActive:         active,
		AuditFields:      domain.NewAuditFields(userID, time.Now()),
	}
	if err := s.ruleRepo.SaveApprovalRule(ctx, rule); err != nil {
		s.LogError(ctx, err, "Failed to save approval rule",
			slog.String("organization_id", organizationID))
		return nil, err
	}

	s.LogInfo(ctx, "Approval rule created",
		slog.String("rule_id", rule.RuleID),
		slog.String("required_role", string(role)),
		slog.Int("priority", rule.Priority))
	return &rule, nil
}

func (s *approvalRuleService) ListApprovalRules(ctx context.Context, organizationID, userID string) ([]domain.ApprovalRule, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleViewer); err != nil {
		return nil, err
	}
	return s.ruleRepo.ListApprovalRules(ctx, organizationID)
}

func (s *approvalRuleService) SetApprovalRuleActive(ctx context.Context, organizationID, ruleID string, req dto.SetApprovalRuleActiveRequest, userID string) (*domain.ApprovalRule, error) {
	if _, err := s.AuthorizeUser(ctx, userID, organizationID, domain.RoleAdmin); err != nil {
		return nil, err
	}
	if req.IsActive == nil {
		return nil, fmt.Errorf("%w: isActive is required", apperrors.ErrValidation)
	}

	rule, err := s.ruleRepo.FindApprovalRuleByID(ctx, organizationID, ruleID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: approval rule %s", apperrors.ErrNotFound, ruleID)
		}
		return nil, err
	}

	rule.IsActive = *req.IsActive
	rule.Touch(userID, time.Now())
	if err := s.ruleRepo.UpdateApprovalRule(ctx, *rule); err != nil {
		s.LogError(ctx, err, "Failed to update approval rule",
			slog.String("rule_id", ruleID))
		return nil, err
	}
	return rule, nil
}
