package domain

import "time"

// User models a registered storefront account. Accounts are created by an
// external registration flow; this service only reads them during login.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
