// Package ledger enforces the double-entry invariants over a set of lines and
// derives the balance changes a posted transaction makes to its accounts.
package ledger

import (
	"fmt"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Line is the minimal view of an entry that validation needs.
type Line struct {
	EntryType domain.EntryType
	Amount    decimal.Decimal
}

// UnbalancedError reports both sides of an unbalanced entry set.
type UnbalancedError struct {
	Debits  decimal.Decimal
	Credits decimal.Decimal
}

func (e *UnbalancedError) Error() string {
	return fmt.Sprintf("%s: debits sum is %s and credits sum is %s",
		apperrors.ErrUnbalanced.Error(), e.Debits.String(), e.Credits.String())
}

func (e *UnbalancedError) Unwrap() error { return apperrors.ErrUnbalanced }

// Validate checks lines in this order: empty input, non-positive amounts,
// all lines on one side, debits not equal to credits.
func Validate(lines []Line) error {
	if len(lines) == 0 {
		return apperrors.ErrNoEntries
	}

	for i, l := range lines {
		if !l.Amount.IsPositive() {
			return fmt.Errorf("%w: line %d has amount %s", apperrors.ErrInvalidAmount, i, l.Amount.String())
		}
		if !l.EntryType.IsValid() {
			return fmt.Errorf("%w: line %d has unknown entry type %q", apperrors.ErrValidation, i, string(l.EntryType))
		}
	}

	totals := ComputeTotals(lines)
	if totals.FunctionalDebit.IsZero() || totals.FunctionalCredit.IsZero() {
		return apperrors.ErrSingleSided
	}
	if !totals.IsBalanced() {
		return &UnbalancedError{Debits: totals.FunctionalDebit, Credits: totals.FunctionalCredit}
	}
	return nil
}

// ComputeTotals sums debit and credit lines separately.
func ComputeTotals(lines []Line) domain.TransactionTotals {
	totals := domain.TransactionTotals{FunctionalDebit: decimal.Zero, FunctionalCredit: decimal.Zero}
	for _, l := range lines {
		switch l.EntryType {
		case domain.Debit:
			totals.FunctionalDebit = totals.FunctionalDebit.Add(l.Amount)
		case domain.Credit:
			totals.FunctionalCredit = totals.FunctionalCredit.Add(l.Amount)
		}
	}
	return totals
}

// ValidateInputs applies the same rules to source amounts before any rate is
// applied. Balance is not checked here since amounts may be in different
// currencies.
func ValidateInputs(inputs []domain.LedgerEntryInput) error {
	if len(inputs) == 0 {
		return apperrors.ErrNoEntries
	}
	var debits, credits int
	for i, in := range inputs {
		if !in.Amount.IsPositive() {
			return fmt.Errorf("%w: entry %d has amount %s", apperrors.ErrInvalidAmount, i, in.Amount.String())
		}
		if !in.Amount.Equal(in.Amount.Truncate(domain.MaxAmountScale)) {
			return fmt.Errorf("%w: entry %d has amount %s with more than %d decimal places",
				apperrors.ErrInvalidAmount, i, in.Amount.String(), domain.MaxAmountScale)
		}
		switch in.EntryType {
		case domain.Debit:
			debits++
		case domain.Credit:
			credits++
		default:
			return fmt.Errorf("%w: entry %d has unknown entry type %q", apperrors.ErrValidation, i, string(in.EntryType))
		}
	}
	if debits == 0 || credits == 0 {
		return apperrors.ErrSingleSided
	}
	return nil
}

// LinesFromResolved uses each entry's functional amount.
func LinesFromResolved(entries []domain.ResolvedEntry) []Line {
	lines := make([]Line, len(entries))
	for i, e := range entries {
		lines[i] = Line{EntryType: e.EntryType, Amount: e.FunctionalAmount}
	}
	return lines
}

// LinesFromEntries uses each persisted entry's functional amount.
func LinesFromEntries(entries []domain.LedgerEntry) []Line {
	lines := make([]Line, len(entries))
	for i, e := range entries {
		lines[i] = Line{EntryType: e.EntryType, Amount: e.FunctionalAmount}
	}
	return lines
}
