package approval_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/approval"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func decimalPtr(s string) *decimal.Decimal {
	v := d(s)
	return &v
}

func rule(id string, priority int, min, max *decimal.Decimal, role domain.UserRole, types ...domain.TransactionType) domain.ApprovalRule {
	return domain.ApprovalRule{
		RuleID:           id,
		Name:             id,
		MinAmount:        min,
		MaxAmount:        max,
		TransactionTypes: types,
		RequiredRole:     role,
		Priority:         priority,
		IsActive:         true,
	}
}

func TestMatchRule(t *testing.T) {
	rules := []domain.ApprovalRule{
		rule("small-bills", 10, nil, decimalPtr("1000"), domain.RoleAccountant, domain.TypeBill),
		rule("large-bills", 10, decimalPtr("1000.01"), nil, domain.RoleAdmin, domain.TypeBill),
		rule("any-payment", 50, nil, nil, domain.RoleApprover, domain.TypePayment, domain.TypeBill),
		rule("urgent-payment", 5, decimalPtr("500"), decimalPtr("500"), domain.RoleOwner, domain.TypePayment),
	}

	tests := []struct {
		name    string
		txType  domain.TransactionType
		amount  string
		wantID  string
		wantHit bool
	}{
		{"upper bound inclusive", domain.TypeBill, "1000", "small-bills", true},
		{"lower bound inclusive", domain.TypeBill, "1000.01", "large-bills", true},
		{"lower priority value wins", domain.TypePayment, "500", "urgent-payment", true},
		{"falls through to broad rule", domain.TypePayment, "499.99", "any-payment", true},
		{"type not covered", domain.TypeJournal, "10", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := approval.MatchRule(rules, tt.txType, d(tt.amount))
			assert.Equal(t, tt.wantHit, ok)
			assert.Equal(t, tt.wantID, got.RuleID)
		})
	}
}

func TestMatchRule_TieGoesToFirstInSlice(t *testing.T) {
	a := rule("a", 1, nil, nil, domain.RoleApprover, domain.TypeJournal)
	b := rule("b", 1, nil, nil, domain.RoleAdmin, domain.TypeJournal)

	got, ok := approval.MatchRule([]domain.ApprovalRule{a, b}, domain.TypeJournal, d("1"))
	require.True(t, ok)
	assert.Equal(t, "a", got.RuleID)

	got, ok = approval.MatchRule([]domain.ApprovalRule{b, a}, domain.TypeJournal, d("1"))
	require.True(t, ok)
	assert.Equal(t, "b", got.RuleID)
}

func TestMatchRule_SkipsInactive(t *testing.T) {
	inactive := rule("off", 0, nil, nil, domain.RoleOwner, domain.TypeJournal)
	inactive.IsActive = false
	active := rule("on", 9, nil, nil, domain.RoleApprover, domain.TypeJournal)

	role, ok := approval.RequiredRole([]domain.ApprovalRule{inactive, active}, domain.TypeJournal, d("1"))
	require.True(t, ok)
	assert.Equal(t, domain.RoleApprover, role)

	_, ok = approval.RequiredRole([]domain.ApprovalRule{inactive}, domain.TypeJournal, d("1"))
	assert.False(t, ok)
}

func TestMatchRule_LowestPriorityIndependentOfOrder(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		priorities := rapid.SliceOfNDistinct(rapid.IntRange(-100, 100), 1, 10, rapid.ID[int]).Draw(t, "priorities")
		rules := make([]domain.ApprovalRule, len(priorities))
		lowest := priorities[0]
		for i, p := range priorities {
			rules[i] = rule(string(rune('a'+i)), p, nil, nil, domain.RoleApprover, domain.TypeExpense)
			if p < lowest {
				lowest = p
			}
		}
		perm := rapid.Permutation(rules).Draw(t, "order")

		got, ok := approval.MatchRule(perm, domain.TypeExpense, decimal.NewFromInt(1))
		if !ok {
			t.Fatalf("no rule matched")
		}
		if got.Priority != lowest {
			t.Fatalf("selected priority %d, lowest is %d", got.Priority, lowest)
		}
	})
}

func TestCanApprove(t *testing.T) {
	limit := decimalPtr("1000")

	tests := []struct {
		name     string
		role     domain.UserRole
		limit    *decimal.Decimal
		required domain.UserRole
		amount   string
		wantErr  error
	}{
		{"approver within limit", domain.RoleApprover, limit, domain.RoleApprover, "1000", nil},
		{"approver over limit", domain.RoleApprover, limit, domain.RoleApprover, "1000.01", apperrors.ErrExceedsApprovalLimit},
		{"approver without limit", domain.RoleApprover, nil, domain.RoleSubmitter, "1000000", nil},
		{"admin ignores limit", domain.RoleAdmin, limit, domain.RoleApprover, "999999", nil},
		{"owner ignores limit", domain.RoleOwner, limit, domain.RoleOwner, "999999", nil},
		{"accountant ignores limit", domain.RoleAccountant, limit, domain.RoleAccountant, "999999", nil},
		{"accountant below approver", domain.RoleAccountant, nil, domain.RoleApprover, "1", apperrors.ErrInsufficientRole},
		{"submitter below accountant", domain.RoleSubmitter, nil, domain.RoleAccountant, "1", apperrors.ErrInsufficientRole},
		{"role check precedes limit", domain.RoleViewer, limit, domain.RoleApprover, "5000", apperrors.ErrInsufficientRole},
		{"unknown role", "GUEST", nil, domain.RoleViewer, "1", apperrors.ErrInsufficientRole},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := approval.CanApprove(tt.role, tt.limit, tt.required, d(tt.amount))
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, apperrors.ErrForbidden)
		})
	}
}

func TestCanApprove_ExceedsLimitCarriesAmounts(t *testing.T) {
	err := approval.CanApprove(domain.RoleApprover, decimalPtr("10"), domain.RoleApprover, d("11"))
	var exceeded *approval.ExceedsApprovalLimitError
	require.True(t, errors.As(err, &exceeded))
	assert.True(t, exceeded.Amount.Equal(d("11")))
	assert.True(t, exceeded.Limit.Equal(d("10")))
}

func TestCanApprove_HierarchyProperty(t *testing.T) {
	roles := domain.AllRoles()
	rapid.Check(t, func(t *rapid.T) {
		r1 := rapid.SampledFrom(roles).Draw(t, "r1")
		r2 := rapid.SampledFrom(roles).Draw(t, "r2")
		amount := decimal.New(rapid.Int64Range(0, 1_000_000_000).Draw(t, "amount"), -2)
		var limit *decimal.Decimal
		if rapid.Bool().Draw(t, "hasLimit") {
			l := decimal.New(rapid.Int64Range(0, 1_000_000_000).Draw(t, "limit"), -2)
			limit = &l
		}

		err := approval.CanApprove(r1, limit, r2, amount)
		switch {
		case r1.Rank() < r2.Rank():
			if !errors.Is(err, apperrors.ErrInsufficientRole) {
				t.Fatalf("%s approving %s rule: want insufficient role, got %v", r1, r2, err)
			}
		case r1 == domain.RoleApprover && limit != nil && amount.GreaterThan(*limit):
			if !errors.Is(err, apperrors.ErrExceedsApprovalLimit) {
				t.Fatalf("approver over limit: got %v", err)
			}
		default:
			if err != nil {
				t.Fatalf("%s approving %s rule for %s: unexpected %v", r1, r2, amount, err)
			}
		}
	})
}

func TestAuthorize(t *testing.T) {
	rules := []domain.ApprovalRule{
		rule("bills", 1, nil, nil, domain.RoleApprover, domain.TypeBill),
	}
	approver := domain.Membership{UserID: "u1", Role: domain.RoleApprover, ApprovalLimit: decimalPtr("100")}

	matched, err := approval.Authorize(rules, domain.TypeBill, d("50"), approver, "")
	require.NoError(t, err)
	assert.Equal(t, "bills", matched.RuleID)

	_, err = approval.Authorize(rules, domain.TypeBill, d("150"), approver, "")
	assert.ErrorIs(t, err, apperrors.ErrExceedsApprovalLimit)

	_, err = approval.Authorize(rules, domain.TypeJournal, d("50"), approver, "")
	assert.ErrorIs(t, err, apperrors.ErrNoApprovalRule)

	matched, err = approval.Authorize(rules, domain.TypeJournal, d("50"), approver, domain.RoleApprover)
	require.NoError(t, err)
	assert.Equal(t, approval.DefaultRuleName, matched.Name)

	submitter := domain.Membership{UserID: "u2", Role: domain.RoleSubmitter}
	_, err = approval.Authorize(rules, domain.TypeJournal, d("50"), submitter, domain.RoleApprover)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientRole)
}
