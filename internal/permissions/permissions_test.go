package permissions_test

import (
	"testing"

	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/identity"
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/permissions"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func authed(roles ...string) identity.Identity {
	return identity.Identity{
		ID:            uuid.New(),
		Name:          "test user",
		Roles:         roles,
		Authenticated: true,
	}
}

func TestResolve_RoleMapping(t *testing.T) {
	tests := []struct {
		name  string
		ident identity.Identity
		want  permissions.CapabilitySet
	}{
		{
			name:  "admin gets everything",
			ident: authed(permissions.RoleAdmin),
			want: permissions.CapabilitySet{
				CanModerate:    true,
				CanPin:         true,
				CanLock:        true,
				CanDelete:      true,
				CanEditAnyPost: true,
				CanManageUsers: true,
			},
		},
		{
			name:  "moderator gets the moderation subset",
			ident: authed(permissions.RoleModerator),
			want: permissions.CapabilitySet{
				CanModerate: true,
				CanPin:      true,
				CanLock:     true,
				CanDelete:   true,
			},
		},
		{
			name:  "member with no recognized roles gets nothing",
			ident: authed(),
			want:  permissions.CapabilitySet{},
		},
		{
			name:  "unrecognized roles grant nothing",
			ident: authed("wiki-editor", "event-host"),
			want:  permissions.CapabilitySet{},
		},
		{
			name:  "multiple roles union their capabilities",
			ident: authed("wiki-editor", permissions.RoleModerator, permissions.RoleAdmin),
			want: permissions.CapabilitySet{
				CanModerate:    true,
				CanPin:         true,
				CanLock:        true,
				CanDelete:      true,
				CanEditAnyPost: true,
				CanManageUsers: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, permissions.Resolve(tt.ident))
		})
	}
}

// An unauthenticated caller resolves to the all-false set, not an error.
func TestResolve_Anonymous(t *testing.T) {
	got := permissions.Resolve(identity.Anonymous())
	assert.Equal(t, permissions.CapabilitySet{}, got)
}

// Roles claimed on an unauthenticated identity must not grant anything.
func TestResolve_RolesWithoutAuthentication(t *testing.T) {
	ident := identity.Identity{Roles: []string{permissions.RoleAdmin}}
	assert.Equal(t, permissions.CapabilitySet{}, permissions.Resolve(ident))
}
