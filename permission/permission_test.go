package permission

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStorePermissions(t *testing.T) {
	s, id := NewStore(), uuid.New()
	assert.False(t, s.HasPerm(id, PermissionAdd))

	s.AddPerm(id, PermissionAdd|PermissionList)
	assert.True(t, s.HasPerm(id, PermissionAdd))
	assert.True(t, s.HasPerm(id, PermissionAdd|PermissionList))
	assert.False(t, s.HasPerm(id, PermissionAdd|PermissionRemove))

	s.RemovePerm(id, PermissionAdd)
	assert.False(t, s.HasPerm(id, PermissionAdd))
	assert.True(t, s.HasPerm(id, PermissionList))

	s.RemovePerm(id, PermissionList)
	assert.Empty(t, s.perms)
}

func TestRulesAcknowledgement(t *testing.T) {
	s, id := NewStore(), uuid.New()
	s.AddPerm(id, PermissionAdmin)
	assert.False(t, s.HasAcknowledgedRules(id))

	s.AddPerm(id, PermissionJump)
	assert.True(t, s.HasAcknowledgedRules(id))

	s.Purge(id)
	assert.False(t, s.HasAcknowledgedRules(id))
	assert.False(t, s.HasPerm(id, PermissionGoto))
}

func TestName(t *testing.T) {
	assert.Equal(t, "jumppad.jump", Name(PermissionJump))
	assert.Equal(t, "jumppad.goto", Name(PermissionGoto))
	assert.Equal(t, "unknown", Name(PermissionAdmin))
}
