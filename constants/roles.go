package constants

// User roles
const (
	RoleStaff     = "STAFF"
	RoleExecutive = "EXECUTIVE"
	RoleAdmin     = "ADMIN"
)

// User account statuses
const (
	UserStatusPending  = "PENDING"
	UserStatusActive   = "ACTIVE"
	UserStatusDisabled = "DISABLED"
)

// BookingManagerRoles may edit and soft-delete bookings.
var BookingManagerRoles = []string{RoleAdmin, RoleExecutive}

// AdminRoles may approve users, change roles, restore bookings and edit settings.
var AdminRoles = []string{RoleAdmin}

// IsValidRole reports whether the given role is one of the known roles.
func IsValidRole(role string) bool {
	switch role {
	case RoleStaff, RoleExecutive, RoleAdmin:
		return true
	default:
		return false
	}
}
