package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// User is a storefront account. Only its contact fields leave the identity boundary,
// to prefill checkout.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Email     string    // Login identifier and contact email.
	FirstName string
	LastName  string
	AvatarURL string
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name, skipping empty parts.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Contact returns the checkout contact block for this user.
func (u *User) Contact() ContactInfo {
	return ContactInfo{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
