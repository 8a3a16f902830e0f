package domain

import "github.com/shopspring/decimal"

// ApprovalRule routes transactions of some types and amount range to a required role.
type ApprovalRule struct {
	RuleID           string            `json:"ruleID"`
	OrganizationID   string            `json:"organizationID"`
	Name             string            `json:"name"`
	MinAmount        *decimal.Decimal  `json:"minAmount,omitempty"` // inclusive; nil = unbounded
	MaxAmount        *decimal.Decimal  `json:"maxAmount,omitempty"` // inclusive; nil = unbounded
	TransactionTypes []TransactionType `json:"transactionTypes"`
	RequiredRole     UserRole          `json:"requiredRole"`
	Priority         int               `json:"priority"` // lower value wins
	IsActive         bool              `json:"isActive"`
	AuditFields
}

// AppliesTo reports whether txType is in the rule's type set.
func (r ApprovalRule) AppliesTo(txType TransactionType) bool {
	for _, t := range r.TransactionTypes {
		if t == txType {
			return true
		}
	}
	return false
}

// InRange reports whether amount lies within the rule's inclusive bounds.
func (r ApprovalRule) InRange(amount decimal.Decimal) bool {
	if r.MinAmount != nil && amount.LessThan(*r.MinAmount) {
		return false
	}
	if r.MaxAmount != nil && amount.GreaterThan(*r.MaxAmount) {
		return false
	}
	return true
}
