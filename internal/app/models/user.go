package models

import "time"

// User defines the credential record based on the 'users' table. The user and
// its profile share the same identifier; the profile row is created together
// with the credentials at registration.
type User struct {
	ID          string     `json:"id" db:"id"`
	Email       string     `json:"email" db:"email"`
	Password    string     `json:"-" db:"password"` // Hashed, excluded from JSON
	IsActive    bool       `json:"isActive" db:"is_active"`
	CreatedAt   time.Time  `json:"createdAt" db:"created_at"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty" db:"last_login_at"`
}
