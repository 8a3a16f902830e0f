package currency

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultDecimalPlaces is used when the caller supplies no currency-specific precision.
const DefaultDecimalPlaces = domain.DefaultDecimalPlaces

// MaxDecimalPlaces bounds the precision accepted by ResolveEntries.
const MaxDecimalPlaces = domain.MaxAmountScale

// Rates maps a source currency code to its rate into the functional currency.
type Rates map[string]domain.ExchangeRate

// Convert returns amount * rate rounded half-to-even at places.
// A rate of 1 still rounds to the target precision.
func Convert(amount, rate decimal.Decimal, places int32) decimal.Decimal {
	return amount.Mul(rate).RoundBank(places)
}

// ValidatePlaces rejects precisions outside [0, MaxDecimalPlaces].
func ValidatePlaces(places int32) error {
	if places < 0 || places > MaxDecimalPlaces {
		return fmt.Errorf("%w: got %d", apperrors.ErrInvalidPrecision, places)
	}
	return nil
}

// ResolveEntry applies rate to a single input line.
func ResolveEntry(input domain.LedgerEntryInput, rate domain.ExchangeRate, places int32) (domain.ResolvedEntry, error) {
	if !input.EntryType.IsValid() {
		return domain.ResolvedEntry{}, fmt.Errorf("%w: unknown entry type %q", apperrors.ErrValidation, string(input.EntryType))
	}
	if !rate.Rate.IsPositive() {
		return domain.ResolvedEntry{}, fmt.Errorf("%w: %s to %s is %s",
			apperrors.ErrInvalidExchangeRate, rate.FromCurrencyCode, rate.ToCurrencyCode, rate.Rate.String())
	}

	functional := Convert(input.Amount, rate.Rate, places)
	resolved := domain.ResolvedEntry{
		AccountID:         input.AccountID,
		EntryType:         input.EntryType,
		SourceAmount:      input.Amount,
		SourceCurrency:    rate.FromCurrencyCode,
		ExchangeRate:      rate.Rate,
		RateEffectiveDate: rate.DateEffective,
		RateMethod:        rate.Method,
		FunctionalAmount:  functional,
		Debit:             decimal.Zero,
		Credit:            decimal.Zero,
		Memo:              input.Memo,
		Dimensions:        input.Dimensions.Clone(),
	}
	if input.EntryType == domain.Debit {
		resolved.Debit = functional
	} else {
		resolved.Credit = functional
	}
	return resolved, nil
}

// ResolveEntries converts every input into functionalCurrency. Inputs with no
// currency, or already in the functional currency, use the identity rate.
// Any other currency must be present in rates.
func ResolveEntries(inputs []domain.LedgerEntryInput, functionalCurrency string, date time.Time, rates Rates, places int32) ([]domain.ResolvedEntry, error) {
	if err := ValidatePlaces(places); err != nil {
		return nil, err
	}
	functional := normalizeCode(functionalCurrency)

	resolved := make([]domain.ResolvedEntry, 0, len(inputs))
	for i, input := range inputs {
		code := normalizeCode(input.Currency)
		if code == "" {
			code = functional
		}

		var rate domain.ExchangeRate
		if code == functional {
			rate = domain.IdentityRate(functional, date)
		} else {
			found, ok := rates[code]
			if !ok {
				return nil, fmt.Errorf("entry %d: %w: %s to %s", i, apperrors.ErrRateNotFound, code, functional)
			}
			rate = found
			rate.FromCurrencyCode = code
		}

		entry, err := ResolveEntry(input, rate, places)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		resolved = append(resolved, entry)
	}
	return resolved, nil
}

// ForeignCurrencies lists, in first-seen order, the currencies among inputs
// that need a rate lookup into functionalCurrency.
func ForeignCurrencies(inputs []domain.LedgerEntryInput, functionalCurrency string) []string {
	functional := normalizeCode(functionalCurrency)
	seen := make(map[string]struct{}, len(inputs))
	out := make([]string, 0)
	for _, input := range inputs {
		code := normalizeCode(input.Currency)
		if code == "" || code == functional {
			continue
		}
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}
	return out
}

// Totals sums the split debit and credit functional values.
func Totals(resolved []domain.ResolvedEntry) domain.TransactionTotals {
	totals := domain.TransactionTotals{FunctionalDebit: decimal.Zero, FunctionalCredit: decimal.Zero}
	for _, e := range resolved {
		totals.FunctionalDebit = totals.FunctionalDebit.Add(e.Debit)
		totals.FunctionalCredit = totals.FunctionalCredit.Add(e.Credit)
	}
	return totals
}

func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
