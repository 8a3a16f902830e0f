package mapping

import (
	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/models"
)

// ToModelOrganization converts a domain Organization to a model Organization
func ToModelOrganization(d domain.Organization) models.Organization {
	return models.Organization{
		OrganizationID:     d.OrganizationID,
		Name:               d.Name,
		FunctionalCurrency: d.FunctionalCurrency,
		DecimalPlaces:      d.DecimalPlaces,
		IsActive:           d.IsActive,
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainOrganization converts a model Organization to a domain Organization
func ToDomainOrganization(m models.Organization) domain.Organization {
	return domain.Organization{
		OrganizationID:     m.OrganizationID,
		Name:               m.Name,
		FunctionalCurrency: m.FunctionalCurrency,
		DecimalPlaces:      m.DecimalPlaces,
		IsActive:           m.IsActive,
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainOrganizationSlice converts a slice of model Organizations to a slice of domain Organizations
func ToDomainOrganizationSlice(ms []models.Organization) []domain.Organization {
	ds := make([]domain.Organization, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainOrganization(m)
	}
	return ds
}

func ToModelMembership(d domain.Membership) models.Membership {
	return models.Membership{
		OrganizationID: d.OrganizationID,
		UserID:         d.UserID,
		Role:           string(d.Role),
		ApprovalLimit:  d.ApprovalLimit,
	}
}

func ToDomainMembership(m models.Membership) domain.Membership {
	return domain.Membership{
		OrganizationID: m.OrganizationID,
		UserID:         m.UserID,
		Role:           domain.UserRole(m.Role),
		ApprovalLimit:  m.ApprovalLimit,
	}
}
