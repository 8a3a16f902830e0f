package mapping_test

import (
	"testing"
	"time"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/models"
	"github.com/SscSPs/ledgerflow/internal/utils/mapping"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerEntryDimensions(t *testing.T) {
	t.Run("nil dimensions stored as empty object", func(t *testing.T) {
		m := mapping.ToModelLedgerEntry(domain.LedgerEntry{EntryID: "e1", EntryType: domain.Debit})
		require.NotNil(t, m.Dimensions)
		assert.Empty(t, m.Dimensions)
		assert.Equal(t, models.Debit, m.EntryType)
	})

	t.Run("empty stored object reads back as nil", func(t *testing.T) {
		d := mapping.ToDomainLedgerEntry(models.LedgerEntry{EntryID: "e1", EntryType: models.Credit, Dimensions: map[string]string{}})
		assert.Nil(t, d.Dimensions)
		assert.Equal(t, domain.Credit, d.EntryType)
	})

	t.Run("model does not alias domain map", func(t *testing.T) {
		dims := domain.Dimensions{"dept": "ops"}
		m := mapping.ToModelLedgerEntry(domain.LedgerEntry{Dimensions: dims})
		dims["dept"] = "sales"
		assert.Equal(t, "ops", m.Dimensions["dept"])
	})
}

func TestLedgerEntryTypeFromStorage(t *testing.T) {
	assert.Equal(t, domain.Debit, mapping.ToDomainLedgerEntry(models.LedgerEntry{EntryType: models.Debit}).EntryType)

	assert.PanicsWithValue(t, `domain: unknown entry type "SIDEWAYS"`, func() {
		mapping.ToDomainLedgerEntry(models.LedgerEntry{EntryID: "e1", EntryType: "SIDEWAYS"})
	})
	assert.Panics(t, func() {
		mapping.ToDomainLedgerEntrySlice([]models.LedgerEntry{{EntryType: models.Debit}, {EntryType: ""}})
	})
}

func TestTransactionRoundTripKeepsWorkflowFields(t *testing.T) {
	at := time.Date(2024, 1, 20, 9, 30, 0, 0, time.UTC)
	actor := "user-1"
	reason := "duplicate"
	reversal := "tx-2"
	tx := domain.Transaction{
		TransactionID: "tx-1",
		Type:          domain.TypeInvoice,
		Currency:      "USD",
		TotalAmount:   decimal.RequireFromString("100.50"),
		Status:        domain.StatusVoided,
		VoidedBy:      &actor,
		VoidedAt:      &at,
		VoidReason:    &reason,
		ReversedByID:  &reversal,
		AuditFields:   domain.NewAuditFields(actor, at),
	}

	m := mapping.ToModelTransaction(tx)
	assert.Equal(t, "USD", m.CurrencyCode)
	assert.Equal(t, "INVOICE", m.Type)

	back := mapping.ToDomainTransaction(m)
	assert.Equal(t, tx, back)
}

func TestApprovalRuleTypes(t *testing.T) {
	rule := domain.ApprovalRule{
		RuleID:           "r1",
		TransactionTypes: []domain.TransactionType{domain.TypeBill, domain.TypePayment},
		RequiredRole:     domain.RoleApprover,
	}
	m := mapping.ToModelApprovalRule(rule)
	assert.Equal(t, []string{"BILL", "PAYMENT"}, m.TransactionTypes)
	assert.Equal(t, rule, mapping.ToDomainApprovalRule(m))
}
