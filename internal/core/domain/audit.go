package domain

import "time"

// WorkflowAction is a command that moves a transaction between statuses.
type WorkflowAction string

const (
	ActionSubmit  WorkflowAction = "SUBMIT"
	ActionApprove WorkflowAction = "APPROVE"
	ActionReject  WorkflowAction = "REJECT"
	ActionPost    WorkflowAction = "POST"
	ActionVoid    WorkflowAction = "VOID"
)

// AllActions lists every workflow action.
func AllActions() []WorkflowAction {
	return []WorkflowAction{ActionSubmit, ActionApprove, ActionReject, ActionPost, ActionVoid}
}

// AuditRecord is one entry in a transaction's workflow history.
type AuditRecord struct {
	AuditID       string            `json:"auditID"`
	TransactionID string            `json:"transactionID"`
	Action        WorkflowAction    `json:"action"`
	FromStatus    TransactionStatus `json:"fromStatus"`
	ToStatus      TransactionStatus `json:"toStatus"`
	Actor         string            `json:"actor"`
	At            time.Time         `json:"at"`
	Notes         string            `json:"notes,omitempty"` // approval notes, rejection or void reason
}
