package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                                  // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"John Doe"`                       // Display name supplied at registration
	Email     string    `json:"email" db:"email" example:"user@campschool.app"`          // User's email address, treated as the natural key
	PhotoURL  *string   `json:"photoUrl,omitempty" db:"photo_url"`                       // Avatar URL from the auth provider (nullable)
	Role      RoleType  `json:"role" db:"role" example:"student"`                        // User's role (admin, instructor or student)
	CreatedAt time.Time `json:"createdAt" db:"created_at" example:"2024-06-01T10:00:00Z"` // Timestamp when the user registered
}
