package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Exercise represents a coding exercise as persisted. The slug is the public
// lookup key and must be unique across exercises.
type Exercise struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Slug        string                      `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Description string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	Links       datatypes.JSONSlice[string] `json:"links" db:"links"`
	DemoURL     *string                     `json:"demoUrl,omitempty" db:"demo_url" gorm:"type:text"`
	RepoURL     *string                     `json:"repoUrl,omitempty" db:"repo_url" gorm:"type:text"`
	Date        time.Time                   `json:"date" db:"date" gorm:"not null;index"`
	CreatedAt   time.Time                   `json:"-" db:"created_at"`
	UpdatedAt   time.Time                   `json:"-" db:"updated_at"`
}

// ExerciseDTO is the external shape of an exercise.
type ExerciseDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Links       []string `json:"links"`
	DemoURL     *string  `json:"demoUrl,omitempty"`
	RepoURL     *string  `json:"repoUrl,omitempty"`
	Date        string   `json:"date"`
}

// CreateExerciseInput is the admin payload for creating an exercise.
type CreateExerciseInput struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Slug        string   `json:"slug" validate:"required,min=3"`
	Description string   `json:"description" validate:"required,min=10"`
	Tags        []string `json:"tags" validate:"max=10,dive,min=1"`
	Links       []string `json:"links" validate:"max=10,dive,url"`
	DemoURL     string   `json:"demoUrl" validate:"omitempty,url"`
	RepoURL     string   `json:"repoUrl" validate:"omitempty,url"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// UpdateExerciseInput carries a partial update; nil fields are left untouched.
type UpdateExerciseInput struct {
	Title       *string
	Slug        *string
	Description *string
	Tags        []string
	Links       []string
	DemoURL     *string
	RepoURL     *string
	Date        *string
}
