package domain

import (
	"time"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
)

// PeriodStatus is the posting state of a fiscal period.
type PeriodStatus string

const (
	PeriodOpen      PeriodStatus = "OPEN"
	PeriodSoftClose PeriodStatus = "SOFT_CLOSE"
	PeriodClosed    PeriodStatus = "CLOSED"
)

// IsValid reports whether s is one of the declared period statuses.
func (s PeriodStatus) IsValid() bool {
	switch s {
	case PeriodOpen, PeriodSoftClose, PeriodClosed:
		return true
	default:
		return false
	}
}

// FiscalPeriod is an accounting window transactions are posted into.
type FiscalPeriod struct {
	FiscalPeriodID string       `json:"fiscalPeriodID"`
	OrganizationID string       `json:"organizationID"`
	Name           string       `json:"name"`
	StartDate      time.Time    `json:"startDate"`
	EndDate        time.Time    `json:"endDate"`
	Status         PeriodStatus `json:"status"`
	AuditFields
}

// Contains reports whether date falls within the period, both ends inclusive.
func (p FiscalPeriod) Contains(date time.Time) bool {
	return !date.Before(p.StartDate) && !date.After(p.EndDate)
}

// CanPostToPeriod decides whether a user holding role may post into a period
// in the given status. Open admits everyone, SoftClose only elevated roles,
// Closed nobody.
func CanPostToPeriod(status PeriodStatus, role UserRole) error {
	switch status {
	case PeriodOpen:
		return nil
	case PeriodSoftClose:
		if role.IsElevated() {
			return nil
		}
		return apperrors.ErrPeriodSoftClosed
	case PeriodClosed:
		return apperrors.ErrPeriodClosed
	default:
		return apperrors.ErrPeriodClosed
	}
}
