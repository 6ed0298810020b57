package domain

import "time"

type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	FirstName       string     `json:"first_name,omitempty"`
	Company         string     `json:"company,omitempty"`
	EmailVerifiedAt *time.Time `json:"email_verified_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// IsVerified indica si el usuario confirmó su correo.
func (u User) IsVerified() bool {
	return u.EmailVerifiedAt != nil
}
