package pgsql

import (
	"testing"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestInvertRate(t *testing.T) {
	tests := []struct {
		rate string
		want string
	}{
		{"0.8", "1.25"},
		{"3", "0.333333333333"},
		{"1.1", "0.909090909091"},
		{"0.000001", "1000000"},
	}
	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			got, err := invertRate(decimal.RequireFromString(tt.rate))
			require.NoError(t, err)
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "got %s", got)
		})
	}
}

func TestInvertRate_Rejects(t *testing.T) {
	for _, rate := range []string{"0", "-2", "10000000000000"} {
		_, err := invertRate(decimal.RequireFromString(rate))
		assert.ErrorIs(t, err, apperrors.ErrInvalidExchangeRate, rate)
		assert.ErrorIs(t, err, apperrors.ErrValidation, rate)
	}
}

func TestInvertRate_FitsRateColumn(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		units := rapid.Int64Range(1, 1_000_000_000).Draw(t, "units")
		exp := rapid.Int32Range(-12, 0).Draw(t, "exp")

		inverse, err := invertRate(decimal.New(units, exp))
		if err != nil {
			t.Fatalf("invert %s: %v", decimal.New(units, exp), err)
		}
		if !inverse.Equal(inverse.Round(rateScale)) {
			t.Fatalf("inverse %s has more than %d decimal places", inverse, rateScale)
		}
	})
}
