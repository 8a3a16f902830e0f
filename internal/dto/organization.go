package dto

import (
	"time"

	"github.com/SscSPs/ledgerflow/internal/core/domain"
	"github.com/shopspring/decimal"
)

// --- Organization DTOs ---

// CreateOrganizationRequest defines data for creating a new organization.
type CreateOrganizationRequest struct {
	Name               string `json:"name" binding:"required,max=255"`
	FunctionalCurrency string `json:"functionalCurrency" binding:"required,len=3,uppercase"`
	DecimalPlaces      *int32 `json:"decimalPlaces,omitempty" binding:"omitempty,min=0,max=8"`
}

// OrganizationResponse defines data returned for an organization.
type OrganizationResponse struct {
	OrganizationID     string    `json:"organizationID"`
	Name               string    `json:"name"`
	FunctionalCurrency string    `json:"functionalCurrency"`
	DecimalPlaces      int32     `json:"decimalPlaces"`
	IsActive           bool      `json:"isActive"`
	CreatedAt          time.Time `json:"createdAt"`
	CreatedBy          string    `json:"createdBy"`
}

// ToOrganizationResponse converts domain.Organization to DTO.
func ToOrganizationResponse(o *domain.Organization) OrganizationResponse {
	return OrganizationResponse{
		OrganizationID:     o.OrganizationID,
		Name:               o.Name,
		FunctionalCurrency: o.FunctionalCurrency,
		DecimalPlaces:      o.Places(),
		IsActive:           o.IsActive,
		CreatedAt:          o.CreatedAt,
		CreatedBy:          o.CreatedBy,
	}
}

// --- Membership DTOs ---

// AddMemberRequest grants a user a role, and optionally an approval limit.
type AddMemberRequest struct {
	UserID        string           `json:"userID" binding:"required"`
	Role          string           `json:"role" binding:"required,oneof=VIEWER SUBMITTER ACCOUNTANT APPROVER ADMIN OWNER"`
	ApprovalLimit *decimal.Decimal `json:"approvalLimit,omitempty" binding:"omitempty,dgte0"`
}

// MembershipResponse defines data returned about a user's membership.
type MembershipResponse struct {
	UserID         string           `json:"userID"`
	OrganizationID string           `json:"organizationID"`
	Role           string           `json:"role"`
	ApprovalLimit  *decimal.Decimal `json:"approvalLimit,omitempty"`
}

// ToMembershipResponse converts domain.Membership to DTO.
func ToMembershipResponse(m *domain.Membership) MembershipResponse {
	return MembershipResponse{
		UserID:         m.UserID,
		OrganizationID: m.OrganizationID,
		Role:           string(m.Role),
		ApprovalLimit:  m.ApprovalLimit,
	}
}

// ToListMembershipResponse converts memberships to DTOs.
func ToListMembershipResponse(ms []domain.Membership) []MembershipResponse {
	out := make([]MembershipResponse, len(ms))
	for i := range ms {
		out[i] = ToMembershipResponse(&ms[i])
	}
	return out
}
