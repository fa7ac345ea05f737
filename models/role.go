package models

// Role is the closed set of user roles.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleUser     Role = "user"
	RoleProvider Role = "provider"
)

// Capability names an action a role may perform.
type Capability string

const (
	CapManageCategories   Capability = "categories:manage"
	CapManageServices     Capability = "services:manage"
	CapManageAvailability Capability = "availability:manage"
	CapCreateBooking      Capability = "bookings:create"
	CapConfirmBooking     Capability = "bookings:confirm"
	CapViewAllBookings    Capability = "bookings:read_all"
)

// roleCapabilities is the full authorization table. Admin rows are listed
// explicitly rather than wildcarded so the table stays greppable.
var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapManageCategories:   true,
		CapManageServices:     true,
		CapManageAvailability: true,
		CapCreateBooking:      true,
		CapConfirmBooking:     true,
		CapViewAllBookings:    true,
	},
	RoleProvider: {
		CapManageServices:     true,
		CapManageAvailability: true,
		CapConfirmBooking:     true,
	},
	RoleUser: {
		CapCreateBooking: true,
	},
}

// HasCapability reports whether the role grants the capability.
// Unknown roles grant nothing.
func HasCapability(role Role, capability Capability) bool {
	return roleCapabilities[role][capability]
}

// ValidRole reports whether role belongs to the closed role set.
func ValidRole(role Role) bool {
	switch role {
	case RoleAdmin, RoleUser, RoleProvider:
		return true
	}
	return false
}
