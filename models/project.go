package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Project represents a portfolio project as persisted
type Project struct {
	ID          uuid.UUID                   `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string                      `json:"title" db:"title" gorm:"type:text;not null"`
	Description string                      `json:"description" db:"description" gorm:"type:text;not null"`
	Tags        datatypes.JSONSlice[string] `json:"tags" db:"tags"`
	Stack       datatypes.JSONSlice[string] `json:"stack" db:"stack"`
	Links       datatypes.JSONSlice[string] `json:"links" db:"links"`
	DemoURL     *string                     `json:"demoUrl,omitempty" db:"demo_url" gorm:"type:text"`
	RepoURL     *string                     `json:"repoUrl,omitempty" db:"repo_url" gorm:"type:text"`
	Date        time.Time                   `json:"date" db:"date" gorm:"not null;index"`
	CreatedAt   time.Time                   `json:"-" db:"created_at"`
	UpdatedAt   time.Time                   `json:"-" db:"updated_at"`
}

// ProjectDTO is the external shape of a project. Dates are ISO-8601 strings.
type ProjectDTO struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Stack       []string `json:"stack"`
	Links       []string `json:"links"`
	DemoURL     *string  `json:"demoUrl,omitempty"`
	RepoURL     *string  `json:"repoUrl,omitempty"`
	Date        string   `json:"date"`
}

// CreateProjectInput is the admin payload for creating a project.
type CreateProjectInput struct {
	Title       string   `json:"title" validate:"required,min=3"`
	Description string   `json:"description" validate:"required,min=10"`
	Tags        []string `json:"tags" validate:"max=10,dive,min=1"`
	Stack       []string `json:"stack" validate:"max=10,dive,min=1"`
	Links       []string `json:"links" validate:"max=10,dive,url"`
	DemoURL     string   `json:"demoUrl" validate:"omitempty,url"`
	RepoURL     string   `json:"repoUrl" validate:"omitempty,url"`
	Date        string   `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

// UpdateProjectInput carries a partial update; nil fields are left untouched.
// An empty string in DemoURL/RepoURL clears the stored value.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	Tags        []string
	Stack       []string
	Links       []string
	DemoURL     *string
	RepoURL     *string
	Date        *string
}
