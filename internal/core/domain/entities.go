package domain

// Role represents a user role in the portal
type Role string

const (
	RoleApplicant    Role = "applicant"
	RoleAdmin        Role = "admin"
	RoleOrganization Role = "organization"
)

// DefaultRole is assigned when registration omits a role
const DefaultRole = RoleApplicant

// Valid reports whether the role is one of the supported roles
func (r Role) Valid() bool {
	switch r {
	case RoleApplicant, RoleAdmin, RoleOrganization:
		return true
	}
	return false
}

// DashboardPath returns the home path inside the role's territory
func (r Role) DashboardPath() string {
	return "/" + string(r) + "/dashboard"
}

// User represents a user account in the domain layer
type User struct {
	ID       string
	Name     string
	Email    string
	Password string // Hashed
	Role     Role
}

// Identity represents the authenticated identity decoded from a session token
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Identity returns the identity view of a user (password stripped)
func (u *User) Identity() *Identity {
	return &Identity{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
