package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RateMethod records how an exchange rate was sourced.
type RateMethod string

const (
	RateSpot       RateMethod = "SPOT"
	RateAverage    RateMethod = "AVERAGE"
	RateHistorical RateMethod = "HISTORICAL"
	RateManual     RateMethod = "MANUAL"
	RateIdentity   RateMethod = "IDENTITY" // same-currency conversion
)

// IsValid reports whether m is one of the declared methods.
func (m RateMethod) IsValid() bool {
	switch m {
	case RateSpot, RateAverage, RateHistorical, RateManual, RateIdentity:
		return true
	default:
		return false
	}
}

// ExchangeRate is the result of a rate lookup for a currency pair.
type ExchangeRate struct {
	ExchangeRateID   string          `json:"exchangeRateID"`
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
	DateEffective    time.Time       `json:"dateEffective"`
	Method           RateMethod      `json:"method"`
	AuditFields
}

// IdentityRate is the 1:1 rate used when source and functional currency match.
func IdentityRate(currency string, date time.Time) ExchangeRate {
	return ExchangeRate{
		FromCurrencyCode: currency,
		ToCurrencyCode:   currency,
		Rate:             decimal.NewFromInt(1),
		DateEffective:    date,
		Method:           RateIdentity,
	}
}
