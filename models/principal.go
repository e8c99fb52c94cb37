package models

// Roles attached to authenticated principals.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Principal is the authenticated identity attached to a request. It is set by
// the auth middleware and passed explicitly into every service call.
type Principal struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// IsAdmin reports whether the principal carries the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
