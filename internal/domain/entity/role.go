// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RolePublic indicates an unauthenticated visitor.
	RolePublic Role = "public"
	// RoleUser indicates a regular registered user.
	RoleUser Role = "user"
	// RoleAdmin indicates an administrator who can manage all content.
	RoleAdmin Role = "admin"
	// RoleSuperuser indicates a superuser who can additionally manage accounts.
	RoleSuperuser Role = "superuser"
)

// Permission names an action a role may perform.
type Permission string

const (
	// PermAccessPrivate allows access to pages behind a login.
	PermAccessPrivate Permission = "access_private"
	// PermManageContent allows mutating content owned by other users.
	PermManageContent Permission = "manage_content"
	// PermManageAccounts allows administering other accounts.
	PermManageAccounts Permission = "manage_accounts"
)

// rolePermissions is the static role to allowed-actions map.
// Higher roles inherit everything below them.
var rolePermissions = map[Role][]Permission{
	RolePublic:    {},
	RoleUser:      {PermAccessPrivate},
	RoleAdmin:     {PermAccessPrivate, PermManageContent},
	RoleSuperuser: {PermAccessPrivate, PermManageContent, PermManageAccounts},
}

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RolePublic, RoleUser, RoleAdmin, RoleSuperuser:
		return true
	default:
		return false
	}
}

// Can reports whether the role is allowed to perform the given action.
func (r Role) Can(p Permission) bool {
	return slices.Contains(rolePermissions[r], p)
}

// RoleFromString converts a stored string to a Role, falling back to public.
func RoleFromString(s string) Role {
	role := Role(s)
	if !role.IsValid() {
		return RolePublic
	}

	return role
}
