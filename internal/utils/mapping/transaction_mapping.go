package mapping

import (
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction.
// Entries are mapped separately with ToModelLedgerEntry.
func ToModelTransaction(d domain.Transaction) models.Transaction {
	return models.Transaction{
		TransactionID:   d.TransactionID,
		OrganizationID:  d.OrganizationID,
		FiscalPeriodID:  d.FiscalPeriodID,
		Type:            string(d.Type),
		Date:            d.Date,
		CurrencyCode:    d.Currency,
		Description:     d.Description,
		Reference:       d.Reference,
		TotalAmount:     d.TotalAmount,
		Status:          string(d.Status),
		SubmittedBy:     d.SubmittedBy,
		SubmittedAt:     d.SubmittedAt,
		ApprovedBy:      d.ApprovedBy,
		ApprovedAt:      d.ApprovedAt,
		ApprovalNotes:   d.ApprovalNotes,
		RejectedBy:      d.RejectedBy,
		RejectedAt:      d.RejectedAt,
		RejectionReason: d.RejectionReason,
		PostedBy:        d.PostedBy,
		PostedAt:        d.PostedAt,
		VoidedBy:        d.VoidedBy,
		VoidedAt:        d.VoidedAt,
		VoidReason:      d.VoidReason,
		ReversalOfID:    d.ReversalOfID,
		ReversedByID:    d.ReversedByID,
		AuditFields:     ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTransaction converts a model Transaction to a domain Transaction without entries.
func ToDomainTransaction(m models.Transaction) domain.Transaction {
	return domain.Transaction{
		TransactionID:   m.TransactionID,
		OrganizationID:  m.OrganizationID,
		FiscalPeriodID:  m.FiscalPeriodID,
		Type:            domain.TransactionType(m.Type),
		Date:            m.Date,
		Currency:        m.CurrencyCode,
		Description:     m.Description,
		Reference:       m.Reference,
		TotalAmount:     m.TotalAmount,
		Status:          domain.TransactionStatus(m.Status),
		SubmittedBy:     m.SubmittedBy,
		SubmittedAt:     m.SubmittedAt,
		ApprovedBy:      m.ApprovedBy,
		ApprovedAt:      m.ApprovedAt,
		ApprovalNotes:   m.ApprovalNotes,
		RejectedBy:      m.RejectedBy,
		RejectedAt:      m.RejectedAt,
		RejectionReason: m.RejectionReason,
		PostedBy:        m.PostedBy,
		PostedAt:        m.PostedAt,
		VoidedBy:        m.VoidedBy,
		VoidedAt:        m.VoidedAt,
		VoidReason:      m.VoidReason,
		ReversalOfID:    m.ReversalOfID,
		ReversedByID:    m.ReversedByID,
		AuditFields:     ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelLedgerEntry converts a domain LedgerEntry to a model LedgerEntry.
// Missing dimensions become an empty object so the column is never NULL.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	dims := make(map[string]string, len(d.Dimensions))
	for k, v := range d.Dimensions {
		dims[k] = v
	}
	return models.LedgerEntry{
		EntryID:          d.EntryID,
		TransactionID:    d.TransactionID,
		LineNumber:       d.LineNumber,
		AccountID:        d.AccountID,
		EntryType:        models.TransactionType(d.EntryType),
		Amount:           d.Amount,
		CurrencyCode:     d.Currency,
		ExchangeRate:     d.ExchangeRate,
		FunctionalAmount: d.FunctionalAmount,
		Memo:             d.Memo,
		Dimensions:       dims,
	}
}

// ToDomainLedgerEntry converts a model LedgerEntry to a domain LedgerEntry
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	var dims domain.Dimensions
	if len(m.Dimensions) > 0 {
		dims = domain.Dimensions(m.Dimensions).Clone()
	}
	return domain.LedgerEntry{
		EntryID:          m.EntryID,
		TransactionID:    m.TransactionID,
		LineNumber:       m.LineNumber,
		AccountID:        m.AccountID,
		EntryType:        domain.MustEntryType(string(m.EntryType)),
		Amount:           m.Amount,
		Currency:         m.CurrencyCode,
		ExchangeRate:     m.ExchangeRate,
		FunctionalAmount: m.FunctionalAmount,
		Memo:             m.Memo,
		Dimensions:       dims,
	}
}

// ToDomainLedgerEntrySlice converts a slice of model LedgerEntries to a slice of domain LedgerEntries
func ToDomainLedgerEntrySlice(ms []models.LedgerEntry) []domain.LedgerEntry {
	ds := make([]domain.LedgerEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerEntry(m)
	}
	return ds
}

func ToModelAuditRecord(d domain.AuditRecord) models.AuditRecord {
	return models.AuditRecord{
		AuditID:       d.AuditID,
		TransactionID: d.TransactionID,
		Action:        string(d.Action),
		FromStatus:    string(d.FromStatus),
		ToStatus:      string(d.ToStatus),
		Actor:         d.Actor,
		At:            d.At,
		Notes:         d.Notes,
	}
}

func ToDomainAuditRecord(m models.AuditRecord) domain.AuditRecord {
	return domain.AuditRecord{
		AuditID:       m.AuditID,
		TransactionID: m.TransactionID,
		Action:        domain.WorkflowAction(m.Action),
		FromStatus:    domain.TransactionStatus(m.FromStatus),
		ToStatus:      domain.TransactionStatus(m.ToStatus),
		Actor:         m.Actor,
		At:            m.At,
		Notes:         m.Notes,
	}
}
