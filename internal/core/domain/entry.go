package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryType indicates whether a ledger line is a Debit or a Credit.
type EntryType string

const (
	Debit  EntryType = "DEBIT"
	Credit EntryType = "CREDIT"
)

// IsValid reports whether t is one of the declared entry types.
func (t EntryType) IsValid() bool {
	switch t {
	case Debit, Credit:
		return true
	default:
		return false
	}
}

// Opposite returns the other side of the ledger.
func (t EntryType) Opposite() EntryType {
	switch t {
	case Debit:
		return Credit
	case Credit:
		return Debit
	default:
		panic(fmt.Sprintf("domain: invalid entry type %q", string(t)))
	}
}

// ParseEntryType converts untrusted text into an EntryType.
func ParseEntryType(s string) (EntryType, error) {
	t := EntryType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown entry type %q", s)
	}
	return t, nil
}

// MustEntryType is ParseEntryType for values the program itself produced.
// It panics on an unknown discriminant.
func MustEntryType(s string) EntryType {
	t, err := ParseEntryType(s)
	if err != nil {
		panic("domain: " + err.Error())
	}
	return t
}

// Dimensions are free-form analytic tags attached to a line (department, project, ...).
type Dimensions map[string]string

// LedgerEntryInput is one proposed posting line before currency resolution.
type LedgerEntryInput struct {
	AccountID  string
	EntryType  EntryType
	Amount     decimal.Decimal // source-currency amount
	Currency   string          // source currency code
	Memo       string
	Dimensions Dimensions
}

// ResolvedEntry is a LedgerEntryInput after the exchange rate has been applied.
// Exactly one of Debit and Credit is non-zero.
type ResolvedEntry struct {
	AccountID         string
	EntryType         EntryType
	SourceAmount      decimal.Decimal
	SourceCurrency    string
	ExchangeRate      decimal.Decimal
	RateEffectiveDate time.Time
	RateMethod        RateMethod
	FunctionalAmount  decimal.Decimal
	Debit             decimal.Decimal
	Credit            decimal.Decimal
	Memo              string
	Dimensions        Dimensions
}

// LedgerEntry represents a single posting line within a Transaction, affecting one account.
type LedgerEntry struct {
	EntryID          string          `json:"entryID"`
	TransactionID    string          `json:"transactionID"`
	LineNumber       int             `json:"lineNumber"`
	AccountID        string          `json:"accountID"`
	EntryType        EntryType       `json:"entryType"`
	Amount           decimal.Decimal `json:"amount"` // Positive, source currency
	Currency         string          `json:"currency"`
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	FunctionalAmount decimal.Decimal `json:"functionalAmount"`
	Memo             string          `json:"memo"`
	Dimensions       Dimensions      `json:"dimensions,omitempty"`
}

// OriginalEntry is an immutable snapshot of a posted entry that is about to be reversed.
type OriginalEntry struct {
	EntryID          string
	AccountID        string
	EntryType        EntryType
	Amount           decimal.Decimal
	Currency         string
	ExchangeRate     decimal.Decimal
	FunctionalAmount decimal.Decimal
	Memo             string
	Dimensions       Dimensions
}

// ReversingEntry is the generated inverse of an OriginalEntry.
type ReversingEntry struct {
	ReversesEntryID  string
	AccountID        string
	EntryType        EntryType
	Amount           decimal.Decimal
	Currency         string
	ExchangeRate     decimal.Decimal
	FunctionalAmount decimal.Decimal
	Memo             string
	Dimensions       Dimensions
}

// Snapshot freezes a posted entry for the reversal engine.
func (e LedgerEntry) Snapshot() OriginalEntry {
	return OriginalEntry{
		EntryID:          e.EntryID,
		AccountID:        e.AccountID,
		EntryType:        e.EntryType,
		Amount:           e.Amount,
		Currency:         e.Currency,
		ExchangeRate:     e.ExchangeRate,
		FunctionalAmount: e.FunctionalAmount,
		Memo:             e.Memo,
		Dimensions:       e.Dimensions.Clone(),
	}
}

// Clone returns an independent copy of the tags.
func (d Dimensions) Clone() Dimensions {
	if d == nil {
		return nil
	}
	out := make(Dimensions, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}
