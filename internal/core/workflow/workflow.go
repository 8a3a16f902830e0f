// Package workflow is the transaction lifecycle state machine.
//
//	Draft --submit--> Pending --approve--> Approved --post--> Posted --void--> Voided
//	                  Pending --reject---> Draft
//
// Every other (status, action) pair is an InvalidTransitionError.
package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/ledgerflow/internal/apperrors"
	"github.com/SscSPs/ledgerflow/internal/core/domain"
)

// Command is one of Submit, Approve, Reject, Post or Void.
type Command interface {
	Action() domain.WorkflowAction
	audit() (actor string, at time.Time, notes string)
	checkReason() error
}

// Submit moves a Draft to Pending.
type Submit struct {
	Actor string
	At    time.Time
}

// Approve moves a Pending transaction to Approved.
type Approve struct {
	Actor string
	At    time.Time
	Notes string
}

// Reject sends a Pending transaction back to Draft.
type Reject struct {
	Actor  string
	At     time.Time
	Reason string
}

// Post moves an Approved transaction to Posted.
type Post struct {
	Actor string
	At    time.Time
}

// Void moves a Posted transaction to Voided.
type Void struct {
	Actor  string
	At     time.Time
	Reason string
}

func (Submit) Action() domain.WorkflowAction  { return domain.ActionSubmit }
func (Approve) Action() domain.WorkflowAction { return domain.ActionApprove }
func (Reject) Action() domain.WorkflowAction  { return domain.ActionReject }
func (Post) Action() domain.WorkflowAction    { return domain.ActionPost }
func (Void) Action() domain.WorkflowAction    { return domain.ActionVoid }

func (c Submit) audit() (string, time.Time, string)  { return c.Actor, c.At, "" }
func (c Approve) audit() (string, time.Time, string) { return c.Actor, c.At, strings.TrimSpace(c.Notes) }
func (c Reject) audit() (string, time.Time, string)  { return c.Actor, c.At, strings.TrimSpace(c.Reason) }
func (c Post) audit() (string, time.Time, string)    { return c.Actor, c.At, "" }
func (c Void) audit() (string, time.Time, string)    { return c.Actor, c.At, strings.TrimSpace(c.Reason) }

func (Submit) checkReason() error  { return nil }
func (Approve) checkReason() error { return nil }
func (Post) checkReason() error    { return nil }

func (c Reject) checkReason() error {
	if strings.TrimSpace(c.Reason) == "" {
		return apperrors.ErrRejectionReasonRequired
	}
	return nil
}

func (c Void) checkReason() error {
	if strings.TrimSpace(c.Reason) == "" {
		return apperrors.ErrVoidReasonRequired
	}
	return nil
}

// InvalidTransitionError names the attempted source and target status.
type InvalidTransitionError struct {
	From   domain.TransactionStatus
	To     domain.TransactionStatus
	Action domain.WorkflowAction
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("%s: cannot %s from %s to %s",
		apperrors.ErrInvalidTransition.Error(), strings.ToLower(string(e.Action)), e.From, e.To)
}

func (e *InvalidTransitionError) Unwrap() error { return apperrors.ErrInvalidTransition }

// Target returns the status an action leads to when it is legal.
// It panics on an undeclared action.
func Target(action domain.WorkflowAction) domain.TransactionStatus {
	switch action {
	case domain.ActionSubmit:
		return domain.StatusPending
	case domain.ActionApprove:
		return domain.StatusApproved
	case domain.ActionReject:
		return domain.StatusDraft
	case domain.ActionPost:
		return domain.StatusPosted
	case domain.ActionVoid:
		return domain.StatusVoided
	default:
		panic(fmt.Sprintf("workflow: invalid action %q", string(action)))
	}
}

// Source returns the only status from which action is legal.
// It panics on an undeclared action.
func Source(action domain.WorkflowAction) domain.TransactionStatus {
	switch action {
	case domain.ActionSubmit:
		return domain.StatusDraft
	case domain.ActionApprove, domain.ActionReject:
		return domain.StatusPending
	case domain.ActionPost:
		return domain.StatusApproved
	case domain.ActionVoid:
		return domain.StatusPosted
	default:
		panic(fmt.Sprintf("workflow: invalid action %q", string(action)))
	}
}

// CanTransition reports whether action is legal from status.
func CanTransition(from domain.TransactionStatus, action domain.WorkflowAction) bool {
	return from.IsValid() && Source(action) == from
}

// AvailableActions lists the actions legal from status, in declaration order.
func AvailableActions(from domain.TransactionStatus) []domain.WorkflowAction {
	out := make([]domain.WorkflowAction, 0, 2)
	for _, a := range domain.AllActions() {
		if CanTransition(from, a) {
			out = append(out, a)
		}
	}
	return out
}

// Apply validates cmd against the current status and returns the audit record
// of the transition. It has no side effects.
func Apply(current domain.TransactionStatus, cmd Command) (domain.AuditRecord, error) {
	if err := cmd.checkReason(); err != nil {
		return domain.AuditRecord{}, err
	}
	actor, at, notes := cmd.audit()
	if strings.TrimSpace(actor) == "" || at.IsZero() {
		return domain.AuditRecord{}, apperrors.ErrAuditDataRequired
	}

	action := cmd.Action()
	to := Target(action)
	if !CanTransition(current, action) {
		return domain.AuditRecord{}, &InvalidTransitionError{From: current, To: to, Action: action}
	}

	return domain.AuditRecord{
		Action:     action,
		FromStatus: current,
		ToStatus:   to,
		Actor:      actor,
		At:         at,
		Notes:      notes,
	}, nil
}

// ApplyTo runs Apply against tx and, only on success, updates its status and
// the audit fields belonging to the action.
func ApplyTo(tx *domain.Transaction, cmd Command) (domain.AuditRecord, error) {
	record, err := Apply(tx.Status, cmd)
	if err != nil {
		return domain.AuditRecord{}, err
	}
	record.TransactionID = tx.TransactionID

	actor, at := record.Actor, record.At
	switch c := cmd.(type) {
	case Submit:
		tx.SubmittedBy, tx.SubmittedAt = &actor, &at
		tx.RejectedBy, tx.RejectedAt, tx.RejectionReason = nil, nil, nil
	case Approve:
		tx.ApprovedBy, tx.ApprovedAt = &actor, &at
		if record.Notes != "" {
			notes := record.Notes
			tx.ApprovalNotes = &notes
		}
	case Reject:
		reason := record.Notes
		tx.RejectedBy, tx.RejectedAt, tx.RejectionReason = &actor, &at, &reason
		tx.SubmittedBy, tx.SubmittedAt = nil, nil
	case Post:
		tx.PostedBy, tx.PostedAt = &actor, &at
	case Void:
		reason := record.Notes
		tx.VoidedBy, tx.VoidedAt, tx.VoidReason = &actor, &at, &reason
	default:
		panic(fmt.Sprintf("workflow: unhandled command %T", c))
	}
	tx.Status = record.ToStatus
	tx.Touch(actor, at)
	return record, nil
}
