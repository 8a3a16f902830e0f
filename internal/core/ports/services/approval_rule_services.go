package services

import (
	"context"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/dto"
)

// ApprovalRuleSvcFacade defines operations on approval routing rules.
type ApprovalRuleSvcFacade interface {
	CreateApprovalRule(ctx context.Context, organizationID string, req dto.CreateApprovalRuleRequest, userID string) (*domain.ApprovalRule, error)
	ListApprovalRules(ctx context.Context, organizationID, userID string) ([]domain.ApprovalRule, error)
	SetApprovalRuleActive(ctx context.Context, organizationID, ruleID string, req dto.SetApprovalRuleActiveRequest, userID string) (*domain.ApprovalRule, error)
}
