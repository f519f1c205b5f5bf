package permissions

import (
	"github.com/CA-Aviation-Photography-Alliance/CAPA-Website-sub001/internal/identity"
)

// Roles recognized in identity-provider claims. Anything else grants nothing.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
)

// CapabilitySet is the derived permission record for one actor in one request
// context. It is never persisted or cached: role claims can change between
// sessions (promotion/demotion), so it is recomputed per request.
type CapabilitySet struct {
	CanModerate    bool `json:"can_moderate"`
	CanPin         bool `json:"can_pin"`
	CanLock        bool `json:"can_lock"`
	CanDelete      bool `json:"can_delete"`
	CanEditAnyPost bool `json:"can_edit_any_post"`
	CanManageUsers bool `json:"can_manage_users"`
}

var roleCapabilities = map[string]CapabilitySet{
	RoleAdmin: {
		CanModerate:    true,
		CanPin:         true,
		CanLock:        true,
		CanDelete:      true,
		CanEditAnyPost: true,
		CanManageUsers: true,
	},
	RoleModerator: {
		CanModerate: true,
		CanPin:      true,
		CanLock:     true,
		CanDelete:   true,
	},
}

// Resolve derives the capability set for an identity. Pure function: an
// unauthenticated or unrecognized caller gets the zero set, never an error.
// Multiple roles union their capabilities.
func Resolve(ident identity.Identity) CapabilitySet {
	var caps CapabilitySet
	if !ident.Authenticated {
		return caps
	}
	for _, role := range ident.Roles {
		rc, ok := roleCapabilities[role]
		if !ok {
			continue
		}
		caps.CanModerate = caps.CanModerate || rc.CanModerate
		caps.CanPin = caps.CanPin || rc.CanPin
		caps.CanLock = caps.CanLock || rc.CanLock
		caps.CanDelete = caps.CanDelete || rc.CanDelete
		caps.CanEditAnyPost = caps.CanEditAnyPost || rc.CanEditAnyPost
		caps.CanManageUsers = caps.CanManageUsers || rc.CanManageUsers
	}
	return caps
}
