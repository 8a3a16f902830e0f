package models

import "github.com/shopspring/decimal"

// Organization is a row of the organizations table.
type Organization struct {
	OrganizationID     string `db:"organization_id"`
	Name               string `db:"name"`
	FunctionalCurrency string `db:"functional_currency"`
	DecimalPlaces      *int32 `db:"decimal_places"` // Nullable
	IsActive           bool   `db:"is_active"`
	AuditFields
}

// Membership is a row of the organization_members table.
type Membership struct {
	OrganizationID string           `db:"organization_id"`
	UserID         string           `db:"user_id"`
	Role           string           `db:"role"`
	ApprovalLimit  *decimal.Decimal `db:"approval_limit"` // Nullable
}
