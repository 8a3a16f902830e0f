package allocation_test

import (
	"testing"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/allocation"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func assertDecimals(t *testing.T, want []string, got []decimal.Decimal) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.True(t, got[i].Equal(d(want[i])), "index %d: got %s want %s", i, got[i], want[i])
	}
}

func sum(values []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, v := range values {
		total = total.Add(v)
	}
	return total
}

func TestAllocateEqual(t *testing.T) {
	tests := []struct {
		name   string
		total  string
		count  int
		places int32
		want   []string
	}{
		{"thirds of one hundred", "100", 3, 2, []string{"33.34", "33.33", "33.33"}},
		{"exact split", "90", 3, 2, []string{"30", "30", "30"}},
		{"single part is rounded total", "10.005", 1, 2, []string{"10"}},
		{"zero count", "100", 0, 2, []string{}},
		{"more parts than units", "0.02", 3, 2, []string{"0.01", "0.01", "0"}},
		{"negative total", "-100", 3, 2, []string{"-33.34", "-33.33", "-33.33"}},
		{"zero places", "10", 4, 0, []string{"3", "3", "2", "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := allocation.AllocateEqual(d(tt.total), tt.count, tt.places)
			require.NoError(t, err)
			assertDecimals(t, tt.want, got)
		})
	}
}

func TestAllocateEqual_Errors(t *testing.T) {
	_, err := allocation.AllocateEqual(d("1"), -1, 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAllocation)

	_, err = allocation.AllocateEqual(d("1"), 2, -1)
	assert.ErrorIs(t, err, apperrors.ErrInvalidPrecision)
}

func TestAllocateByPercentages(t *testing.T) {
	tests := []struct {
		name        string
		total       string
		percentages []string
		places      int32
		want        []string
	}{
		{"clean split", "100", []string{"50", "30", "20"}, 2, []string{"50", "30", "20"}},
		{"thirds by percentage", "100", []string{"33.3333", "33.3333", "33.3334"}, 2, []string{"33.33", "33.33", "33.34"}},
		{"tie goes to the earlier entry", "1", []string{"50", "50"}, 0, []string{"1", "0"}},
		{"normalized weights", "100", []string{"5", "3", "2"}, 2, []string{"50", "30", "20"}},
		{"zero weight gets nothing", "10", []string{"0", "100"}, 2, []string{"0", "10"}},
		{"empty", "10", []string{}, 2, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percentages := make([]decimal.Decimal, len(tt.percentages))
			for i, p := range tt.percentages {
				percentages[i] = d(p)
			}
			got, err := allocation.AllocateByPercentages(d(tt.total), percentages, tt.places)
			require.NoError(t, err)
			assertDecimals(t, tt.want, got)
		})
	}
}

func TestAllocateByPercentages_Errors(t *testing.T) {
	_, err := allocation.AllocateByPercentages(d("10"), []decimal.Decimal{d("-10"), d("110")}, 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAllocation)

	_, err = allocation.AllocateByPercentages(d("10"), []decimal.Decimal{decimal.Zero, decimal.Zero}, 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAllocation)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestAllocateEqual_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		units := rapid.Int64Range(0, 1_000_000_000_000).Draw(t, "units")
		scale := rapid.Int32Range(0, 6).Draw(t, "scale")
		places := rapid.Int32Range(0, 4).Draw(t, "places")
		count := rapid.IntRange(0, 50).Draw(t, "count")
		total := decimal.New(units, -scale)

		got, err := allocation.AllocateEqual(total, count, places)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != count {
			t.Fatalf("len = %d, want %d", len(got), count)
		}
		if count == 0 {
			return
		}
		if !sum(got).Equal(total.RoundBank(places)) {
			t.Fatalf("sum %s != rounded total %s", sum(got), total.RoundBank(places))
		}
		smallest := decimal.New(1, -places)
		for i, v := range got {
			if v.IsNegative() {
				t.Fatalf("part %d negative: %s", i, v)
			}
			if v.Sub(got[len(got)-1]).GreaterThan(smallest) {
				t.Fatalf("parts differ by more than one unit: %s vs %s", v, got[len(got)-1])
			}
		}
	})
}

func TestAllocateByPercentages_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		units := rapid.Int64Range(0, 1_000_000_000_000).Draw(t, "units")
		scale := rapid.Int32Range(0, 6).Draw(t, "scale")
		places := rapid.Int32Range(0, 4).Draw(t, "places")
		total := decimal.New(units, -scale)

		// percentages in basis points that sum to exactly 100
		n := rapid.IntRange(1, 12).Draw(t, "n")
		remaining := int64(10_000)
		percentages := make([]decimal.Decimal, n)
		for i := 0; i < n-1; i++ {
			bp := rapid.Int64Range(0, remaining).Draw(t, "bp")
			percentages[i] = decimal.New(bp, -2)
			remaining -= bp
		}
		percentages[n-1] = decimal.New(remaining, -2)

		got, err := allocation.AllocateByPercentages(total, percentages, places)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != n {
			t.Fatalf("len = %d, want %d", len(got), n)
		}
		if !sum(got).Equal(total.RoundBank(places)) {
			t.Fatalf("sum %s != rounded total %s", sum(got), total.RoundBank(places))
		}
		for i, v := range got {
			if v.IsNegative() {
				t.Fatalf("part %d negative: %s", i, v)
			}
		}
	})
}

func TestSplitEntry(t *testing.T) {
	input := domain.LedgerEntryInput{
		AccountID:  "expense",
		EntryType:  domain.Debit,
		Amount:     d("100"),
		Currency:   "USD",
		Memo:       "shared rent",
		Dimensions: domain.Dimensions{"project": "hq"},
	}
	targets := []allocation.SplitTarget{
		{AccountID: "rent-ops", Percentage: d("1")},
		{AccountID: "rent-sales", Percentage: d("1")},
		{AccountID: "rent-rd", Percentage: d("1"), Memo: "r&d share"},
	}

	lines, err := allocation.SplitEntry(input, targets, 2)
	require.NoError(t, err)
	require.Len(t, lines, 3)

	assert.Equal(t, "rent-ops", lines[0].AccountID)
	assert.True(t, lines[0].Amount.Equal(d("33.34")))
	assert.True(t, lines[1].Amount.Equal(d("33.33")))
	assert.True(t, lines[2].Amount.Equal(d("33.33")))
	assert.Equal(t, "shared rent", lines[0].Memo)
	assert.Equal(t, "r&d share", lines[2].Memo)
	for _, l := range lines {
		assert.Equal(t, domain.Debit, l.EntryType)
		assert.Equal(t, "USD", l.Currency)
		assert.Equal(t, "hq", l.Dimensions["project"])
	}

	_, err = allocation.SplitEntry(input, nil, 2)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAllocation)
}
