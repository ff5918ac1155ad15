package entity

import "time"

// Role is the authorization role carried by a user and their tokens.
type Role string

const (
	RoleGuest Role = "Guest"
	RoleUser  Role = "User"
	RoleAdmin Role = "Admin"
)

// DefaultProfilePhoto is served when a user never uploaded one.
const DefaultProfilePhoto = "/images/default-avatar.jpg"

// User is the aggregate root for the user domain.
// Password holds a bcrypt hash, never plaintext.
// Restricted users are denied login regardless of credential validity.
type User struct {
	ID           int64
	Username     string
	Email        string
	Password     string
	ProfilePhoto string
	Role         Role
	IsRestricted bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
