package models

import "github.com/shopspring/decimal"

// ApprovalRule is a row of the approval_rules table.
type ApprovalRule struct {
	RuleID           string           `db:"rule_id"`
	OrganizationID   string           `db:"organization_id"`
	Name             string           `db:"name"`
	MinAmount        *decimal.Decimal `db:"min_amount"` // Nullable
	MaxAmount        *decimal.Decimal `db:"max_amount"` // Nullable
	TransactionTypes []string         `db:"transaction_types"`
	RequiredRole     string           `db:"required_role"`
	Priority         int              `db:"priority"`
	IsActive         bool             `db:"is_active"`
	AuditFields
}
