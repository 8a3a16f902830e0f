// Package reversal builds the offsetting entries that void a posted transaction.
package reversal

import (
	"fmt"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MemoPrefix starts every reversing entry's memo.
const MemoPrefix = "Reversal: "

// Input describes one void request against a posted transaction.
type Input struct {
	OriginalTransactionID string
	OriginalEntries       []domain.OriginalEntry
	FiscalPeriodID        string
	VoidedBy              string
	VoidReason            string
}

// Result is the content of the reversing transaction.
type Result struct {
	ReversingEntries []domain.ReversingEntry
	Description      string
	FiscalPeriodID   string
	CreatedBy        string
}

// Description is the text given to a reversing transaction.
func Description(originalTransactionID, voidReason string) string {
	return fmt.Sprintf("Reversal of transaction %s: %s", originalTransactionID, voidReason)
}

// CreateReversingEntries emits one entry per original with the same account,
// amounts, currency and rate, the opposite entry type and a prefixed memo.
// The originals are not modified.
func CreateReversingEntries(in Input) Result {
	entries := make([]domain.ReversingEntry, len(in.OriginalEntries))
	for i, orig := range in.OriginalEntries {
		entries[i] = domain.ReversingEntry{
			ReversesEntryID:  orig.EntryID,
			AccountID:        orig.AccountID,
			EntryType:        orig.EntryType.Opposite(),
			Amount:           orig.Amount,
			Currency:         orig.Currency,
			ExchangeRate:     orig.ExchangeRate,
			FunctionalAmount: orig.FunctionalAmount,
			Memo:             MemoPrefix + orig.Memo,
			Dimensions:       orig.Dimensions.Clone(),
		}
	}
	return Result{
		ReversingEntries: entries,
		Description:      Description(in.OriginalTransactionID, in.VoidReason),
		FiscalPeriodID:   in.FiscalPeriodID,
		CreatedBy:        in.VoidedBy,
	}
}

// ValidateReversal reports whether the originals balance in functional
// currency. Swapping sides of a balanced set keeps it balanced.
func ValidateReversal(originals []domain.OriginalEntry) bool {
	debit, credit := decimal.Zero, decimal.Zero
	for _, e := range originals {
		switch e.EntryType {
		case domain.Debit:
			debit = debit.Add(e.FunctionalAmount)
		case domain.Credit:
			credit = credit.Add(e.FunctionalAmount)
		default:
			return false
		}
	}
	return debit.Equal(credit)
}

// ToLedgerEntries numbers reversing entries as lines of transactionID.
// newID supplies entry identifiers.
func ToLedgerEntries(transactionID string, entries []domain.ReversingEntry, newID func() string) []domain.LedgerEntry {
	out := make([]domain.LedgerEntry, len(entries))
	for i, e := range entries {
		out[i] = domain.LedgerEntry{
			EntryID:          newID(),
			TransactionID:    transactionID,
			LineNumber:       i + 1,
			AccountID:        e.AccountID,
			EntryType:        e.EntryType,
			Amount:           e.Amount,
			Currency:         e.Currency,
			ExchangeRate:     e.ExchangeRate,
			FunctionalAmount: e.FunctionalAmount,
			Memo:             e.Memo,
			Dimensions:       e.Dimensions,
		}
	}
	return out
}
