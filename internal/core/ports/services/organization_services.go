package services

import (
	"context"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/SscSPs/ledgerflow/internal/dto"
)

// OrganizationReaderSvc defines read operations for organizations.
type OrganizationReaderSvc interface {
	GetOrganization(ctx context.Context, organizationID, userID string) (*domain.Organization, error)
	ListUserOrganizations(ctx context.Context, userID string) ([]domain.Organization, error)
	ListMembers(ctx context.Context, organizationID, userID string) ([]domain.Membership, error)
}

// OrganizationWriterSvc defines write operations for organizations.
type OrganizationWriterSvc interface {
	// CreateOrganization creates an organization owned by its creator.
	CreateOrganization(ctx context.Context, req dto.CreateOrganizationRequest, userID string) (*domain.Organization, error)

	// AddMember grants or changes a member's role. Requires Admin or higher.
	AddMember(ctx context.Context, organizationID string, req dto.AddMemberRequest, userID string) (*domain.Membership, error)
}

// OrganizationAuthorizerSvc checks a user's standing in an organization.
type OrganizationAuthorizerSvc interface {
	// AuthorizeUserAction returns the user's membership if their role is at
	// least requiredRole, ErrNotMember if they have none, and
	// ErrInsufficientRole otherwise.
	AuthorizeUserAction(ctx context.Context, userID, organizationID string, requiredRole domain.UserRole) (*domain.Membership, error)
}

// OrganizationSvcFacade combines all organization-related service interfaces.
type OrganizationSvcFacade interface {
	OrganizationReaderSvc
	OrganizationWriterSvc
	OrganizationAuthorizerSvc
}
