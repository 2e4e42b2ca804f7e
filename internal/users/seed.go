package users

import (
	"fmt"
	"time"

	"github.com/MohamedSultan7/davinci-bakers/pkg/config"
	"github.com/MohamedSultan7/davinci-bakers/pkg/enums"
	"github.com/MohamedSultan7/davinci-bakers/pkg/security"
	"github.com/google/uuid"
)

var DemoUserID = uuid.MustParse("d6e4f3a0-0004-4e00-8000-000000000001")

// DemoUserPassword is the well-known credential for the seeded demo buyer.
const (
	DemoUserEmail    = "orders@harborlightcafe.test"
	DemoUserPassword = "wholesale-demo-1"
)

// SeedUsers returns the demo buyer account. The password is hashed at boot so
// the seed never carries a stale hash when the argon parameters change.
func SeedUsers(cfg config.PasswordConfig) ([]User, error) {
	hash, err := security.HashPassword(DemoUserPassword, cfg)
	if err != nil {
		return nil, fmt.Errorf("hashing demo password: %w", err)
	}
	return []User{
		{
			ID:              DemoUserID,
			Email:           DemoUserEmail,
			PasswordHash:    hash,
			BusinessName:    "Harbor Light Cafe",
			ContactName:     "Rae Delgado",
			Phone:           "+1-503-555-0144",
			Role:            enums.UserRoleUser,
			IsEmailVerified: true,
			CreatedAt:       time.Date(2024, time.February, 12, 9, 0, 0, 0, time.UTC),
		},
	}, nil
}
