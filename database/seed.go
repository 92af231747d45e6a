package database

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/jamndev/portfolio-backend/models"
)

// EnsureAdmin creates the admin account on first boot so the panel is usable
// without manual database access. Existing accounts are left untouched.
func (d Database) EnsureAdmin(email, password, name string) error {
	if email == "" || password == "" {
		log.Warn().Msg("Admin seed credentials not configured, skipping admin bootstrap")
		return nil
	}

	existing, err := d.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
	}
	if err := d.userRepo.Add(admin); err != nil {
		return err
	}

	log.Info().Str("email", email).Msg("Seeded admin account")
	return nil
}
