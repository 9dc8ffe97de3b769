package identity

// Role represents a user's fixed role. The set is closed: an administrator
// who sees everything, and one operator role per company.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleAlcafer Role = "alcafer"
	RoleGabifer Role = "gabifer"
)

// IsValid checks if the role is a valid Role
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleAlcafer, RoleGabifer:
		return true
	}
	return false
}

// String returns the string representation of Role
func (r Role) String() string {
	return string(r)
}

// Permission identifies an action a role may perform
type Permission string

const (
	PermJobRead      Permission = "job:read"
	PermJobWrite     Permission = "job:write"
	PermQuoteRead    Permission = "quote:read"
	PermQuoteWrite   Permission = "quote:write"
	PermPartnerRead  Permission = "partner:read"
	PermPartnerWrite Permission = "partner:write"
	PermCostRead     Permission = "cost:read"
	PermCostWrite    Permission = "cost:write"
	PermUserRead     Permission = "user:read"
	PermUserWrite    Permission = "user:write"
)

// rolePermissions is the fixed permission matrix. Roles are not stored
// entities and the matrix is not editable at runtime; changing it is a code
// change.
var rolePermissions = map[Role]map[Permission]bool{
	RoleAdmin: {
		PermJobRead:      true,
		PermJobWrite:     true,
		PermQuoteRead:    true,
		PermQuoteWrite:   true,
		PermPartnerRead:  true,
		PermPartnerWrite: true,
		PermCostRead:     true,
		PermCostWrite:    true,
		PermUserRead:     true,
		PermUserWrite:    true,
	},
	RoleAlcafer: {
		PermJobRead:      true,
		PermJobWrite:     true,
		PermQuoteRead:    true,
		PermQuoteWrite:   true,
		PermPartnerRead:  true,
		PermPartnerWrite: true,
		PermCostRead:     true,
		PermCostWrite:    true,
	},
	RoleGabifer: {
		PermJobRead:      true,
		PermJobWrite:     true,
		PermQuoteRead:    true,
		PermQuoteWrite:   true,
		PermPartnerRead:  true,
		PermPartnerWrite: true,
		PermCostRead:     true,
		PermCostWrite:    true,
	},
}

// HasPermission reports whether the role may perform the given action
func (r Role) HasPermission(p Permission) bool {
	return rolePermissions[r][p]
}
