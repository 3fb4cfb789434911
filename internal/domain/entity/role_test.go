package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Can(t *testing.T) {
	assert.False(t, RolePublic.Can(PermAccessPrivate))

	assert.True(t, RoleUser.Can(PermAccessPrivate))
	assert.False(t, RoleUser.Can(PermManageContent))

	assert.True(t, RoleAdmin.Can(PermManageContent))
	assert.False(t, RoleAdmin.Can(PermManageAccounts))

	assert.True(t, RoleSuperuser.Can(PermAccessPrivate))
	assert.True(t, RoleSuperuser.Can(PermManageContent))
	assert.True(t, RoleSuperuser.Can(PermManageAccounts))
}

func TestRoleFromString(t *testing.T) {
	assert.Equal(t, RoleAdmin, RoleFromString("admin"))
	assert.Equal(t, RoleSuperuser, RoleFromString("superuser"))

	// Unknown values fall back to public.
	assert.Equal(t, RolePublic, RoleFromString("root"))
	assert.Equal(t, RolePublic, RoleFromString(""))
}
