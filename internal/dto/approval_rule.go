package dto

import (
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateApprovalRuleRequest defines a routing rule for approvals.
type CreateApprovalRuleRequest struct {
	Name             string           `json:"name" binding:"required,max=100"`
	MinAmount        *decimal.Decimal `json:"minAmount,omitempty" binding:"omitempty,dgte0"`
	MaxAmount        *decimal.Decimal `json:"maxAmount,omitempty" binding:"omitempty,dgte0"`
	TransactionTypes []string         `json:"transactionTypes" binding:"required,min=1,dive,oneof=JOURNAL INVOICE BILL PAYMENT EXPENSE TRANSFER ADJUSTMENT"`
	RequiredRole     string           `json:"requiredRole" binding:"required,oneof=VIEWER SUBMITTER ACCOUNTANT APPROVER ADMIN OWNER"`
	Priority         int              `json:"priority" binding:"min=0"`
	IsActive         *bool            `json:"isActive,omitempty"` // defaults to true
}

// SetApprovalRuleActiveRequest toggles a rule.
type SetApprovalRuleActiveRequest struct {
	IsActive *bool `json:"isActive" binding:"required"`
}

// ApprovalRuleResponse defines the data returned for an approval rule.
type ApprovalRuleResponse struct {
	RuleID           string           `json:"ruleID"`
	Name             string           `json:"name"`
	MinAmount        *decimal.Decimal `json:"minAmount,omitempty"`
	MaxAmount        *decimal.Decimal `json:"maxAmount,omitempty"`
	TransactionTypes []string         `json:"transactionTypes"`
	RequiredRole     string           `json:"requiredRole"`
	Priority         int              `json:"priority"`
	IsActive         bool             `json:"isActive"`
}

// ToApprovalRuleResponse converts domain.ApprovalRule to DTO.
func ToApprovalRuleResponse(r *domain.ApprovalRule) ApprovalRuleResponse {
	types := make([]string, len(r.TransactionTypes))
	for i, t := range r.TransactionTypes {
		types[i] = string(t)
	}
	return ApprovalRuleResponse{
		RuleID:           r.RuleID,
		Name:             r.Name,
		MinAmount:        r.MinAmount,
		MaxAmount:        r.MaxAmount,
		TransactionTypes: types,
		RequiredRole:     string(r.RequiredRole),
		Priority:         r.Priority,
		IsActive:         r.IsActive,
	}
}

// ToListApprovalRuleResponse converts rules to DTOs.
func ToListApprovalRuleResponse(rules []domain.ApprovalRule) []ApprovalRuleResponse {
	out := make([]ApprovalRuleResponse, len(rules))
	for i := range rules {
		out[i] = ToApprovalRuleResponse(&rules[i])
	}
	return out
}
