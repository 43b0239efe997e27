package domain

import "time"

// UserStatus represents lifecycle states for a customer account.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// User is the domain model for storefront customers. Password holds the
// derived checksum or hash, never plaintext; it is cleared before a User
// crosses the store boundary outward.
type User struct {
	ID         string     `json:"id"`
	FullName   string     `json:"fullName"`
	Email      string     `json:"email"`
	Password   string     `json:"password,omitempty"`
	Phone      string     `json:"phone"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	PostalCode string     `json:"postalCode"`
	Status     UserStatus `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
}

// Sanitized returns a copy safe to hand to callers: the password field is
// stripped so neither plaintext nor checksum ever leaves the store.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// ProfilePatch is a partial profile update. Email and password are absent by
// construction; they cannot be changed through profile updates.
type ProfilePatch struct {
	FullName   *string `json:"fullName,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	Address    *string `json:"address,omitempty"`
	City       *string `json:"city,omitempty"`
	PostalCode *string `json:"postalCode,omitempty"`
}

// Apply merges the patch over the user in place.
func (p ProfilePatch) Apply(u *User) {
	if p.FullName != nil {
		u.FullName = *p.FullName
	}
	if p.Phone != nil {
		u.Phone = *p.Phone
	}
	if p.Address != nil {
		u.Address = *p.Address
	}
	if p.City != nil {
		u.City = *p.City
	}
	if p.PostalCode != nil {
		u.PostalCode = *p.PostalCode
	}
}

// RegisterInput carries the fields accepted at registration time.
type RegisterInput struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postalCode"`
}
