package models

import (
	"time"

	"github.com/google/uuid"
)

// Role values for User.Role.
const (
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

// User is an account that can sign in to the admin panel.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Name         string    `json:"name" db:"name" gorm:"type:text;not null"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	Role         string    `json:"role" db:"role" gorm:"type:text;not null;default:USER"`
	CreatedAt    time.Time `json:"-" db:"created_at"`
	UpdatedAt    time.Time `json:"-" db:"updated_at"`
}

// LoginInput is the credential payload for /auth/login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}
