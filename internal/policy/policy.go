// Package policy decides whether a caller may touch a resource.
//
// Two roles exist: admins read and write everything, pilgrims read only
// the group they belong to. Destinations and spiritual content are public
// and never reach this package.
package policy

const (
	RoleAdmin   = "admin"
	RolePilgrim = "pilgrim"
)

// CanWrite reports whether the caller may mutate groups, itineraries,
// destinations or spiritual content.
func CanWrite(role string) bool {
	return role == RoleAdmin
}

// CanReadAll reports whether the caller may list every group, itinerary
// or user.
func CanReadAll(role string) bool {
	return role == RoleAdmin
}

// CanReadGroup reports whether the caller may read a specific group and
// its itinerary or members. Pilgrims are limited to their own group.
func CanReadGroup(role, ownGroupID, targetGroupID string) bool {
	if role == RoleAdmin {
		return true
	}
	return role == RolePilgrim && ownGroupID != "" && ownGroupID == targetGroupID
}

// ValidRole reports whether role is one of the two known roles.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RolePilgrim
}
