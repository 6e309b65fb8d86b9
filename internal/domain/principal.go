package domain

// Role of an authenticated principal
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

// Principal is the authenticated identity supplied by the identity
// collaborator for every call. The core trusts it and only performs role
// checks for admin-only operations and ownership checks for cancellation.
type Principal struct {
	ID    int64
	Name  string
	Email string
	Role  Role
}

// IsAdmin returns true if the principal has administrative rights
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
