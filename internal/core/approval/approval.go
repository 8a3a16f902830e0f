// Package approval selects the approval rule that governs a transaction and
// decides whether a user may approve it.
package approval

import (
	"fmt"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MatchRule returns the active rule with the lowest Priority among those whose
// type set contains txType and whose inclusive bounds contain amount.
// Rules sharing the lowest priority resolve to the one that appears first in rules.
func MatchRule(rules []domain.ApprovalRule, txType domain.TransactionType, amount decimal.Decimal) (domain.ApprovalRule, bool) {
	best := -1
	for i, r := range rules {
		if !r.IsActive || !r.AppliesTo(txType) || !r.InRange(amount) {
			continue
		}
		if best == -1 || r.Priority < rules[best].Priority {
			best = i
		}
	}
	if best == -1 {
		return domain.ApprovalRule{}, false
	}
	return rules[best], true
}

// RequiredRole is MatchRule reduced to the rule's role. ok is false when no
// rule matched, which is not the same as approval being granted.
func RequiredRole(rules []domain.ApprovalRule, txType domain.TransactionType, amount decimal.Decimal) (role domain.UserRole, ok bool) {
	rule, ok := MatchRule(rules, txType, amount)
	if !ok {
		return "", false
	}
	return rule.RequiredRole, true
}

// InsufficientRoleError reports a role below the rule's required role.
type InsufficientRoleError struct {
	Role     domain.UserRole
	Required domain.UserRole
}

func (e *InsufficientRoleError) Error() string {
	return fmt.Sprintf("%s: %s is below %s", apperrors.ErrInsufficientRole.Error(), e.Role, e.Required)
}

func (e *InsufficientRoleError) Unwrap() error { return apperrors.ErrInsufficientRole }

// ExceedsApprovalLimitError reports an Approver acting above their limit.
type ExceedsApprovalLimitError struct {
	Amount decimal.Decimal
	Limit  decimal.Decimal
}

func (e *ExceedsApprovalLimitError) Error() string {
	return fmt.Sprintf("%s: %s exceeds limit %s", apperrors.ErrExceedsApprovalLimit.Error(), e.Amount.String(), e.Limit.String())
}

func (e *ExceedsApprovalLimitError) Unwrap() error { return apperrors.ErrExceedsApprovalLimit }

// LimitApplies reports whether approval limits are enforced for role.
// Only the Approver role is limited; Accountant, Admin and Owner are not,
// even though Accountant ranks below Approver.
func LimitApplies(role domain.UserRole) bool {
	return role == domain.RoleApprover
}

// CanApprove checks the hierarchy first, then the Approver-only amount limit.
// A nil limit means none is configured.
func CanApprove(role domain.UserRole, limit *decimal.Decimal, required domain.UserRole, amount decimal.Decimal) error {
	if !role.AtLeast(required) {
		return &InsufficientRoleError{Role: role, Required: required}
	}
	if LimitApplies(role) && limit != nil && amount.GreaterThan(*limit) {
		return &ExceedsApprovalLimitError{Amount: amount, Limit: *limit}
	}
	return nil
}

// DefaultRuleName names the rule synthesized from a fallback role.
const DefaultRuleName = "default"

// Authorize combines rule matching and CanApprove for one approval attempt.
// When no rule matches, fallback is used as the required role; an empty
// fallback turns the miss into ErrNoApprovalRule.
func Authorize(rules []domain.ApprovalRule, txType domain.TransactionType, amount decimal.Decimal, member domain.Membership, fallback domain.UserRole) (domain.ApprovalRule, error) {
	rule, ok := MatchRule(rules, txType, amount)
	if !ok {
		if !fallback.IsValid() {
			return domain.ApprovalRule{}, fmt.Errorf("%w: type %s amount %s", apperrors.ErrNoApprovalRule, txType, amount.String())
		}
		rule = domain.ApprovalRule{
			Name:             DefaultRuleName,
			TransactionTypes: []domain.TransactionType{txType},
			RequiredRole:     fallback,
			IsActive:         true,
		}
	}
	if err := CanApprove(member.Role, member.ApprovalLimit, rule.RequiredRole, amount); err != nil {
		return rule, err
	}
	return rule, nil
}
