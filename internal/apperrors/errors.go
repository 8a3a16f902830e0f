package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the acting user may not perform the operation.
var ErrForbidden = errors.New("forbidden")

// ErrConflict indicates that the operation conflicts with the current state of a resource.
var ErrConflict = errors.New("conflict")

// ErrInternal indicates an unexpected failure in a collaborator.
var ErrInternal = errors.New("internal error")

// Ledger validation failures.
var (
	ErrNoEntries     = fmt.Errorf("%w: transaction has no entries", ErrValidation)
	ErrSingleSided   = fmt.Errorf("%w: transaction entries are all on one side", ErrValidation)
	ErrInvalidAmount = fmt.Errorf("%w: entry amount must be positive", ErrValidation)
	ErrUnbalanced    = fmt.Errorf("%w: debits do not equal credits", ErrValidation)
)

// Currency and allocation failures.
var (
	ErrInvalidExchangeRate = fmt.Errorf("%w: exchange rate must be positive", ErrValidation)
	ErrInvalidPrecision    = fmt.Errorf("%w: decimal places must be between 0 and 8", ErrValidation)
	ErrInvalidAllocation   = fmt.Errorf("%w: allocation weights must be non-negative with a positive sum", ErrValidation)
)

// Workflow failures.
var (
	ErrInvalidTransition       = fmt.Errorf("%w: invalid status transition", ErrConflict)
	ErrRejectionReasonRequired = fmt.Errorf("%w: rejection reason is required", ErrValidation)
	ErrVoidReasonRequired      = fmt.Errorf("%w: void reason is required", ErrValidation)
	ErrAuditDataRequired       = fmt.Errorf("%w: actor and timestamp are required", ErrValidation)
	ErrNotEditable             = fmt.Errorf("%w: transaction is not editable", ErrConflict)
)

// Authorization failures.
var (
	ErrInsufficientRole     = fmt.Errorf("%w: role does not meet the required approval role", ErrForbidden)
	ErrExceedsApprovalLimit = fmt.Errorf("%w: amount exceeds approval limit", ErrForbidden)
	ErrNoApprovalRule       = fmt.Errorf("%w: no approval rule matches the transaction", ErrForbidden)
	ErrPeriodClosed         = fmt.Errorf("%w: fiscal period is closed", ErrForbidden)
	ErrPeriodSoftClosed     = fmt.Errorf("%w: fiscal period is soft-closed", ErrForbidden)
	ErrNotMember            = fmt.Errorf("%w: user is not a member of the organization", ErrForbidden)
)

// Lookup failures.
var (
	ErrRateNotFound         = fmt.Errorf("%w: exchange rate", ErrNotFound)
	ErrAccountNotFound      = fmt.Errorf("%w: account", ErrNotFound)
	ErrFiscalPeriodNotFound = fmt.Errorf("%w: fiscal period", ErrNotFound)
	ErrTransactionNotFound  = fmt.Errorf("%w: transaction", ErrNotFound)
	ErrOrganizationNotFound = fmt.Errorf("%w: organization", ErrNotFound)
)

// ErrConcurrentModification indicates that an account changed between read and write.
var ErrConcurrentModification = fmt.Errorf("%w: account was modified concurrently", ErrConflict)

// VersionConflictError reports an optimistic version mismatch on an account.
// It is the only retryable error in the taxonomy.
type VersionConflictError struct {
	AccountID       string
	ExpectedVersion int64
}

func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("account %s: expected version %d no longer current", e.AccountID, e.ExpectedVersion)
}

func (e *VersionConflictError) Unwrap() error { return ErrConcurrentModification }

// Retryable marks the error as safe to retry with a fresh snapshot.
func (e *VersionConflictError) Retryable() bool { return true }

// IsRetryable reports whether err, or any error it wraps, is marked retryable.
func IsRetryable(err error) bool {
	var r interface{ Retryable() bool }
	if errors.As(err, &r) {
		return r.Retryable()
	}
	return false
}
