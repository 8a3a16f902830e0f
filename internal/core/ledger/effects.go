package ledger

import (
	"fmt"
	"sort"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// BalanceEffect is the net change one transaction makes to one account, and
// the account version the change was computed against.
type BalanceEffect struct {
	AccountID       string
	Delta           decimal.Decimal
	ExpectedVersion int64
}

// SignedAmount applies the normal-balance convention of accountType:
// debits increase Asset/Expense, credits increase Liability/Equity/Revenue.
func SignedAmount(entryType domain.EntryType, amount decimal.Decimal, accountType domain.AccountType) (decimal.Decimal, error) {
	isDebit := entryType == domain.Debit
	switch accountType {
	case domain.Asset, domain.Expense:
		if !isDebit {
			return amount.Neg(), nil
		}
		return amount, nil
	case domain.Liability, domain.Equity, domain.Revenue:
		if isDebit {
			return amount.Neg(), nil
		}
		return amount, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown account type %q", apperrors.ErrValidation, string(accountType))
	}
}

// BalanceEffects folds entries into one effect per account, ordered by
// account ID so writers always touch accounts in the same order.
// Every referenced account must be present in accounts.
func BalanceEffects(entries []domain.LedgerEntry, accounts map[string]domain.Account) ([]BalanceEffect, error) {
	byAccount := make(map[string]*BalanceEffect)
	for _, e := range entries {
		acc, ok := accounts[e.AccountID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, e.AccountID)
		}
		signed, err := SignedAmount(e.EntryType, e.FunctionalAmount, acc.AccountType)
		if err != nil {
			return nil, fmt.Errorf("account %s: %w", e.AccountID, err)
		}
		eff, ok := byAccount[e.AccountID]
		if !ok {
			eff = &BalanceEffect{AccountID: e.AccountID, Delta: decimal.Zero, ExpectedVersion: acc.Version}
			byAccount[e.AccountID] = eff
		}
		eff.Delta = eff.Delta.Add(signed)
	}

	out := make([]BalanceEffect, 0, len(byAccount))
	for _, eff := range byAccount {
		out = append(out, *eff)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AccountID < out[j].AccountID })
	return out, nil
}
