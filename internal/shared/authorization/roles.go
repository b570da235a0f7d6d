package authorization

// UserRole identifies the privilege tier of an authenticated identity.
// Staff and admin are the privileged tiers: they see all tickets and may
// act on the admin surface, which is a privileged client of the same
// manager operations rather than a separate code path.
type UserRole string

const (
	RoleMember UserRole = "member"
	RoleStaff  UserRole = "staff"
	RoleAdmin  UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

// IsStaff reports whether the role carries staff privileges.
func (r UserRole) IsStaff() bool {
	return r == RoleStaff || r == RoleAdmin
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleMember || r == RoleStaff || r == RoleAdmin
}

// ParseUserRole parses a role string, falling back to member for anything
// unknown so a corrupt claim can never escalate privileges.
func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleMember
}
