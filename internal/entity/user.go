package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account for data transfer between layers.
// PasswordHash never leaves the repository/auth layers.
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Aadhaar      string    `json:"aadhaar"`
	UserType     string    `json:"user_type"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
