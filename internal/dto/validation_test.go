package dto

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	v.SetTagName("binding")
	require.NoError(t, RegisterValidations(v))
	return v
}

func TestDecimalValidations(t *testing.T) {
	v := newValidator(t)
	base := CreateExchangeRateRequest{
		FromCurrencyCode: "EUR",
		ToCurrencyCode:   "USD",
		DateEffective:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		rate    string
		wantErr bool
	}{
		{"1.08", false},
		{"0.0001", false},
		{"0", true},
		{"-1", true},
	}
	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			req := base
			req.Rate = decimal.RequireFromString(tt.rate)
			err := v.Struct(req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestExchangeRateRequest_SameCurrencyRejected(t *testing.T) {
	v := newValidator(t)
	req := CreateExchangeRateRequest{
		FromCurrencyCode: "USD",
		ToCurrencyCode:   "USD",
		Rate:             decimal.NewFromInt(1),
		DateEffective:    time.Now(),
	}
	assert.Error(t, v.Struct(req))
}

func TestAddMemberRequest_ApprovalLimit(t *testing.T) {
	v := newValidator(t)
	zero := decimal.Zero
	negative := decimal.NewFromInt(-5)

	assert.NoError(t, v.Struct(AddMemberRequest{UserID: "u", Role: "APPROVER"}))
	assert.NoError(t, v.Struct(AddMemberRequest{UserID: "u", Role: "APPROVER", ApprovalLimit: &zero}))
	assert.Error(t, v.Struct(AddMemberRequest{UserID: "u", Role: "APPROVER", ApprovalLimit: &negative}))
	assert.Error(t, v.Struct(AddMemberRequest{UserID: "u", Role: "BOSS"}))
}

func TestEntryRequest_AccountOrSplit(t *testing.T) {
	v := newValidator(t)

	assert.Error(t, v.Struct(EntryRequest{EntryType: "DEBIT", Amount: decimal.NewFromInt(1)}))
	assert.NoError(t, v.Struct(EntryRequest{AccountID: "a", EntryType: "DEBIT", Amount: decimal.NewFromInt(1)}))
	assert.NoError(t, v.Struct(EntryRequest{
		EntryType: "CREDIT",
		Amount:    decimal.NewFromInt(1),
		Split:     []SplitTargetRequest{{AccountID: "x"}, {AccountID: "y"}},
	}))
	assert.Error(t, v.Struct(EntryRequest{AccountID: "a", EntryType: "SIDEWAYS", Amount: decimal.NewFromInt(1)}))
}
