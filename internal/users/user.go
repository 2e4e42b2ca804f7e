package users

import (
	"time"

	"github.com/MohamedSultan7/davinci-bakers/pkg/enums"
	"github.com/google/uuid"
)

// User is a wholesale buyer account. PasswordHash never leaves this package.
type User struct {
	ID              uuid.UUID      `json:"id"`
	Email           string         `json:"email"`
	PasswordHash    string         `json:"-"`
	BusinessName    string         `json:"business_name"`
	ContactName     string         `json:"contact_name"`
	Phone           string         `json:"phone,omitempty"`
	Role            enums.UserRole `json:"role"`
	IsEmailVerified bool           `json:"is_email_verified"`
	CreatedAt       time.Time      `json:"created_at"`
}

// RegisterInput carries a signup payload.
type RegisterInput struct {
	Email        string
	Password     string
	BusinessName string
	ContactName  string
	Phone        string
}
