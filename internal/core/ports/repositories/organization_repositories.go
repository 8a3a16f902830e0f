package repositories

import (
	"context"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
)

// OrganizationReader defines read operations for organizations.
type OrganizationReader interface {
	FindOrganizationByID(ctx context.Context, organizationID string) (*domain.Organization, error)

	// ListOrganizationsByUser returns the organizations userID belongs to.
	ListOrganizationsByUser(ctx context.Context, userID string) ([]domain.Organization, error)
}

// MembershipReader looks up a user's role and approval limit.
type MembershipReader interface {
	// FindMembership returns apperrors.ErrNotMember when userID has no role in the organization.
	FindMembership(ctx context.Context, organizationID, userID string) (*domain.Membership, error)
	ListMemberships(ctx context.Context, organizationID string) ([]domain.Membership, error)
}

// OrganizationWriter defines write operations for organizations and memberships.
type OrganizationWriter interface {
	// SaveOrganization stores a new organization together with its first member.
	SaveOrganization(ctx context.Context, org domain.Organization, owner domain.Membership) error

	// SaveMembership inserts or replaces a user's membership.
	SaveMembership(ctx context.Context, membership domain.Membership) error
}

// OrganizationRepositoryFacade combines all organization-related repository interfaces.
type OrganizationRepositoryFacade interface {
	OrganizationReader
	MembershipReader
	OrganizationWriter
}
