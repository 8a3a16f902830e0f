// Package allocation splits an amount into parts that always sum exactly to
// the rounded whole, using the Largest Remainder Method.
package allocation

import (
	"cmp"
	"fmt"
	"math/big"
	"slices"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/currency"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AllocateEqual splits total into count parts at places decimal places.
// Earlier parts receive the leftover smallest units.
func AllocateEqual(total decimal.Decimal, count int, places int32) ([]decimal.Decimal, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative count %d", apperrors.ErrInvalidAllocation, count)
	}
	weights := make([]*big.Int, count)
	for i := range weights {
		weights[i] = big.NewInt(1)
	}
	return allocate(total, weights, places)
}

// AllocateByPercentages splits total proportionally to percentages.
// Percentages are normalized by their own sum, so [50, 30, 20] and [5, 3, 2]
// allocate identically. Negative weights, or weights that are all zero, are rejected.
func AllocateByPercentages(total decimal.Decimal, percentages []decimal.Decimal, places int32) ([]decimal.Decimal, error) {
	weights, err := integerWeights(percentages)
	if err != nil {
		return nil, err
	}
	return allocate(total, weights, places)
}

func allocate(total decimal.Decimal, weights []*big.Int, places int32) ([]decimal.Decimal, error) {
	if err := currency.ValidatePlaces(places); err != nil {
		return nil, err
	}
	if len(weights) == 0 {
		return []decimal.Decimal{}, nil
	}

	rounded := total.RoundBank(places)
	units := rounded.Shift(places).BigInt()
	negative := units.Sign() < 0
	units.Abs(units)

	weightSum := new(big.Int)
	for _, w := range weights {
		weightSum.Add(weightSum, w)
	}
	if weightSum.Sign() == 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", apperrors.ErrInvalidAllocation)
	}

	type share struct {
		index     int
		floor     *big.Int
		remainder *big.Int
	}
	shares := make([]share, len(weights))
	assigned := new(big.Int)
	for i, w := range weights {
		num := new(big.Int).Mul(units, w)
		q, r := new(big.Int).QuoRem(num, weightSum, new(big.Int))
		shares[i] = share{index: i, floor: q, remainder: r}
		assigned.Add(assigned, q)
	}

	shortfall := new(big.Int).Sub(units, assigned).Int64() // always < len(weights)
	order := slices.Clone(shares)
	slices.SortFunc(order, func(a, b share) int {
		if c := b.remainder.Cmp(a.remainder); c != 0 {
			return c
		}
		return cmp.Compare(a.index, b.index)
	})
	one := big.NewInt(1)
	for k := int64(0); k < shortfall; k++ {
		order[k].floor.Add(order[k].floor, one)
	}

	out := make([]decimal.Decimal, len(shares))
	for i, s := range shares {
		v := decimal.NewFromBigInt(s.floor, -places)
		if negative {
			v = v.Neg()
		}
		out[i] = v
	}
	return out, nil
}

// integerWeights scales decimal weights to a common exponent so they can be
// compared and summed as integers without loss.
func integerWeights(percentages []decimal.Decimal) ([]*big.Int, error) {
	minExp := int32(0)
	for i, p := range percentages {
		if p.IsNegative() {
			return nil, fmt.Errorf("%w: weight %d is negative", apperrors.ErrInvalidAllocation, i)
		}
		if p.Exponent() < minExp {
			minExp = p.Exponent()
		}
	}

	out := make([]*big.Int, len(percentages))
	ten := big.NewInt(10)
	for i, p := range percentages {
		scale := new(big.Int).Exp(ten, big.NewInt(int64(p.Exponent()-minExp)), nil)
		out[i] = new(big.Int).Mul(p.Coefficient(), scale)
	}
	return out, nil
}

// SplitTarget is one destination of a split entry.
type SplitTarget struct {
	AccountID  string
	Percentage decimal.Decimal
	Memo       string
}

// SplitEntry expands one input line into one line per target, dividing its
// amount by percentage. Every produced line keeps the source entry type,
// currency and dimensions; an empty target memo inherits the source memo.
func SplitEntry(input domain.LedgerEntryInput, targets []SplitTarget, places int32) ([]domain.LedgerEntryInput, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: split has no targets", apperrors.ErrInvalidAllocation)
	}
	percentages := make([]decimal.Decimal, len(targets))
	for i, t := range targets {
		percentages[i] = t.Percentage
	}
	parts, err := AllocateByPercentages(input.Amount, percentages, places)
	if err != nil {
		return nil, err
	}

	out := make([]domain.LedgerEntryInput, len(targets))
	for i, t := range targets {
		memo := t.Memo
		if memo == "" {
			memo = input.Memo
		}
		out[i] = domain.LedgerEntryInput{
			AccountID:  t.AccountID,
			EntryType:  input.EntryType,
			Amount:     parts[i],
			Currency:   input.Currency,
			Memo:       memo,
			Dimensions: input.Dimensions.Clone(),
		}
	}
	return out, nil
}
