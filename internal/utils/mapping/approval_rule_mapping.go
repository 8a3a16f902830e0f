package mapping

import (
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/models"
)

// ToModelApprovalRule converts a domain ApprovalRule to a model ApprovalRule
func ToModelApprovalRule(d domain.ApprovalRule) models.ApprovalRule {
	types := make([]string, len(d.TransactionTypes))
	for i, t := range d.TransactionTypes {
		types[i] = string(t)
	}
	return models.ApprovalRule{
		RuleID:           d.RuleID,
		OrganizationID:   d.OrganizationID,
		Name:             d.Name,
		MinAmount:        d.MinAmount,
		MaxAmount:        d.MaxAmount,
		TransactionTypes: types,
		RequiredRole:     string(d.RequiredRole),
		Priority:         d.Priority,
		IsActive:         d.IsActive,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainApprovalRule converts a model ApprovalRule to a domain ApprovalRule
func ToDomainApprovalRule(m models.ApprovalRule) domain.ApprovalRule {
	types := make([]domain.TransactionType, len(m.TransactionTypes))
	for i, t := range m.TransactionTypes {
		types[i] = domain.TransactionType(t)
	}
	return domain.ApprovalRule{
		RuleID:           m.RuleID,
		OrganizationID:   m.OrganizationID,
		Name:             m.Name,
		MinAmount:        m.MinAmount,
		MaxAmount:        m.MaxAmount,
		TransactionTypes: types,
		RequiredRole:     domain.UserRole(m.RequiredRole),
		Priority:         m.Priority,
		IsActive:         m.IsActive,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
