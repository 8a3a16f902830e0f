package repositories

import (
	"context"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
)

// ApprovalRuleReader defines read operations for approval rules.
type ApprovalRuleReader interface {
	// ListApprovalRules returns the organization's rules in definition order
	// (created_at, then rule id).
	ListApprovalRules(ctx context.Context, organizationID string) ([]domain.ApprovalRule, error)

	FindApprovalRuleByID(ctx context.Context, organizationID, ruleID string) (*domain.ApprovalRule, error)
}

// ApprovalRuleWriter defines write operations for approval rules.
type ApprovalRuleWriter interface {
	SaveApprovalRule(ctx context.Context, rule domain.ApprovalRule) error
	UpdateApprovalRule(ctx context.Context, rule domain.ApprovalRule) error
}

// ApprovalRuleRepositoryFacade combines all approval-rule-related repository interfaces.
type ApprovalRuleRepositoryFacade interface {
	ApprovalRuleReader
	ApprovalRuleWriter
}
