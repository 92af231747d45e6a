package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExperienceItem is one entry of the CV experience timeline.
type ExperienceItem struct {
	Company    string   `json:"company" validate:"required,min=2"`
	Role       string   `json:"role" validate:"required,min=2"`
	Period     string   `json:"period" validate:"required,min=3"`
	Highlights []string `json:"highlights" validate:"max=10,dive,min=3"`
}

// CvProfile is the singleton CV record. The app maintains at most one logical
// profile; when more than one row exists the earliest-created one wins.
type CvProfile struct {
	ID          uuid.UUID                           `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	FullName    string                              `json:"fullName" db:"full_name" gorm:"type:text;not null"`
	Title       string                              `json:"title" db:"title" gorm:"type:text;not null"`
	Summary     string                              `json:"summary" db:"summary" gorm:"type:text;not null"`
	Location    string                              `json:"location" db:"location" gorm:"type:text;not null"`
	Email       string                              `json:"email" db:"email" gorm:"type:text;not null"`
	Phone       string                              `json:"phone" db:"phone" gorm:"type:text;not null"`
	Website     *string                             `json:"website,omitempty" db:"website" gorm:"type:text"`
	Linkedin    *string                             `json:"linkedin,omitempty" db:"linkedin" gorm:"type:text"`
	Github      *string                             `json:"github,omitempty" db:"github" gorm:"type:text"`
	Skills      datatypes.JSONSlice[string]         `json:"skills" db:"skills"`
	Experiences datatypes.JSONSlice[ExperienceItem] `json:"experiences" db:"experiences"`
	CreatedAt   time.Time                           `json:"-" db:"created_at" gorm:"index"`
	UpdatedAt   time.Time                           `json:"-" db:"updated_at"`
}

// CvProfileDTO is the external shape of the CV profile.
type CvProfileDTO struct {
	ID          string           `json:"id"`
	FullName    string           `json:"fullName"`
	Title       string           `json:"title"`
	Summary     string           `json:"summary"`
	Location    string           `json:"location"`
	Email       string           `json:"email"`
	Phone       string           `json:"phone"`
	Website     *string          `json:"website,omitempty"`
	Linkedin    *string          `json:"linkedin,omitempty"`
	Github      *string          `json:"github,omitempty"`
	Skills      []string         `json:"skills"`
	Experiences []ExperienceItem `json:"experiences"`
}

// UpsertCvInput is the admin payload for saving the CV profile.
type UpsertCvInput struct {
	FullName    string           `json:"fullName" validate:"required,min=3"`
	Title       string           `json:"title" validate:"required,min=3"`
	Summary     string           `json:"summary" validate:"required,min=20"`
	Location    string           `json:"location" validate:"required,min=2"`
	Email       string           `json:"email" validate:"required,email"`
	Phone       string           `json:"phone" validate:"required,min=7"`
	Website     string           `json:"website" validate:"omitempty,url"`
	Linkedin    string           `json:"linkedin" validate:"omitempty,url"`
	Github      string           `json:"github" validate:"omitempty,url"`
	Skills      []string         `json:"skills" validate:"max=30,dive,min=1"`
	Experiences []ExperienceItem `json:"experiences" validate:"dive"`
}
