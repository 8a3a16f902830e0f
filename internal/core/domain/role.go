package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// UserRole is a user's role within an organization.
// Roles are totally ordered; see Rank.
type UserRole string

const (
	RoleViewer     UserRole = "VIEWER"
	RoleSubmitter  UserRole = "SUBMITTER"
	RoleAccountant UserRole = "ACCOUNTANT"
	RoleApprover   UserRole = "APPROVER"
	RoleAdmin      UserRole = "ADMIN"
	RoleOwner      UserRole = "OWNER"
)

// AllRoles lists every role from lowest to highest privilege.
func AllRoles() []UserRole {
	return []UserRole{RoleViewer, RoleSubmitter, RoleAccountant, RoleApprover, RoleAdmin, RoleOwner}
}

// Rank returns the position of r in the hierarchy, starting at 1.
// Accountant ranks below Approver even though it bypasses approval limits.
func (r UserRole) Rank() int {
	switch r {
	case RoleViewer:
		return 1
	case RoleSubmitter:
		return 2
	case RoleAccountant:
		return 3
	case RoleApprover:
		return 4
	case RoleAdmin:
		return 5
	case RoleOwner:
		return 6
	default:
		return 0
	}
}

// IsValid reports whether r is one of the declared roles.
func (r UserRole) IsValid() bool { return r.Rank() > 0 }

// AtLeast reports whether r meets or exceeds required in the hierarchy.
// Unknown roles never meet any bar.
func (r UserRole) AtLeast(required UserRole) bool {
	return r.IsValid() && required.IsValid() && r.Rank() >= required.Rank()
}

// IsElevated reports whether r may post into a soft-closed period.
func (r UserRole) IsElevated() bool {
	switch r {
	case RoleAccountant, RoleAdmin, RoleOwner:
		return true
	default:
		return false
	}
}

// ParseUserRole converts untrusted text into a UserRole.
func ParseUserRole(s string) (UserRole, error) {
	r := UserRole(s)
	if !r.IsValid() {
		return "", fmt.Errorf("unknown user role %q", s)
	}
	return r, nil
}

// Membership is a user's role, and optional approval limit, within an organization.
type Membership struct {
	UserID         string           `json:"userID"`
	OrganizationID string           `json:"organizationID"`
	Role           UserRole         `json:"role"`
	ApprovalLimit  *decimal.Decimal `json:"approvalLimit,omitempty"` // nil = no limit configured
}
