package domain

// DefaultDecimalPlaces is the functional-amount precision when an organization sets none.
const DefaultDecimalPlaces int32 = 4

// MaxAmountScale is the number of decimal places money columns store.
// Amounts and precisions beyond it would be rounded on insert.
const MaxAmountScale int32 = 8

// MaxRateScale is the number of decimal places exchange rate columns store.
const MaxRateScale int32 = 12

// Organization is an isolated book of accounts with a single functional currency.
type Organization struct {
	OrganizationID     string `json:"organizationID"`
	Name               string `json:"name"`
	FunctionalCurrency string `json:"functionalCurrency"` // e.g. "USD"
	DecimalPlaces      *int32 `json:"decimalPlaces,omitempty"`
	IsActive           bool   `json:"isActive"`
	AuditFields
}

// Places returns the precision functional amounts are rounded to.
func (o Organization) Places() int32 {
	if o.DecimalPlaces != nil {
		return *o.DecimalPlaces
	}
	return DefaultDecimalPlaces
}
