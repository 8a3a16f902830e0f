package models

import (
	"github.com/shopspring/decimal"
)

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Revenue   AccountType = "REVENUE"
	Expense   AccountType = "EXPENSE"
)

// Account is a row of the accounts table.
type Account struct {
	AccountID      string          `db:"account_id"`
	OrganizationID string          `db:"organization_id"`
	Code           string          `db:"code"`
	Name           string          `db:"name"`
	AccountType    AccountType     `db:"account_type"`
	CurrencyCode   string          `db:"currency_code"`
	IsActive       bool            `db:"is_active"`
	Balance        decimal.Decimal `db:"balance"` // functional currency
	Version        int64           `db:"version"` // optimistic lock, bumped by every balance change
	AuditFields
}
