package domain

// Role represents the role of the acting user, resolved by the identity provider
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

// IsValid returns true for known roles
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleEmployee
}

// Actor is the user performing a request
type Actor struct {
	ID   int64
	Role Role
}

// IsElevated returns true for admins and managers: they may act on other users' bookings
func (a Actor) IsElevated() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

// CanActOnBehalfOf returns true if the actor may create or modify bookings for userID
func (a Actor) CanActOnBehalfOf(userID int64) bool {
	return a.ID == userID || a.IsElevated()
}

// CanManage returns true if the actor may view, edit or cancel the booking
func (a Actor) CanManage(b *Booking) bool {
	return a.CanActOnBehalfOf(b.UserID)
}
