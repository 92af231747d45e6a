package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jamndev/portfolio-backend/errs"
	"github.com/jamndev/portfolio-backend/models"
)

type ProjectRepo struct {
	db *gorm.DB
}

func NewProjectRepo(db *gorm.DB) *ProjectRepo {
	return &ProjectRepo{db}
}

// mapProject translates a persisted record into its external DTO. This is the
// single place performing that translation for projects.
func mapProject(record models.Project) models.ProjectDTO {
	return models.ProjectDTO{
		ID:          record.ID.String(),
		Title:       record.Title,
		Description: record.Description,
		Tags:        asStringSlice(record.Tags),
		Stack:       asStringSlice(record.Stack),
		Links:       asStringSlice(record.Links),
		DemoURL:     record.DemoURL,
		RepoURL:     record.RepoURL,
		Date:        record.Date.UTC().Format(time.RFC3339),
	}
}

// List returns projects matching the filters, most recent by date first.
func (r *ProjectRepo) List(filters ListFilters) ([]models.ProjectDTO, error) {
	var records []models.Project
	tx := applyListFilters(r.db.Model(&models.Project{}), filters)
	if err := tx.Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	dtos := make([]models.ProjectDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, mapProject(record))
	}
	return dtos, nil
}

// FindByID returns a project by its ID, or nil when no such record exists.
func (r *ProjectRepo) FindByID(id uuid.UUID) (*models.ProjectDTO, error) {
	var record models.Project
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	dto := mapProject(record)
	return &dto, nil
}

// Add inserts a new project and returns it with its generated identifier.
func (r *ProjectRepo) Add(in models.CreateProjectInput) (*models.ProjectDTO, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	record := models.Project{
		ID:          uuid.New(),
		Title:       in.Title,
		Description: in.Description,
		Tags:        in.Tags,
		Stack:       in.Stack,
		Links:       in.Links,
		DemoURL:     nullable(in.DemoURL),
		RepoURL:     nullable(in.RepoURL),
		Date:        date,
	}
	if err := r.db.Create(&record).Error; err != nil {
		return nil, err
	}

	dto := mapProject(record)
	return &dto, nil
}

// Update merges only the provided fields into an existing project.
func (r *ProjectRepo) Update(id uuid.UUID, in models.UpdateProjectInput) (*models.ProjectDTO, error) {
	var record models.Project
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("project not found")
		}
		return nil, err
	}

	if in.Title != nil {
		record.Title = *in.Title
	}
	if in.Description != nil {
		record.Description = *in.Description
	}
	if in.Tags != nil {
		record.Tags = in.Tags
	}
	if in.Stack != nil {
		record.Stack = in.Stack
	}
	if in.Links != nil {
		record.Links = in.Links
	}
	if in.DemoURL != nil {
		record.DemoURL = nullable(*in.DemoURL)
	}
	if in.RepoURL != nil {
		record.RepoURL = nullable(*in.RepoURL)
	}
	if in.Date != nil {
		date, err := parseDate(*in.Date)
		if err != nil {
			return nil, err
		}
		record.Date = date
	}

	if err := r.db.Save(&record).Error; err != nil {
		return nil, err
	}

	dto := mapProject(record)
	return &dto, nil
}

// Delete removes a project and returns the DTO of what was deleted.
func (r *ProjectRepo) Delete(id uuid.UUID) (*models.ProjectDTO, error) {
	var record models.Project
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("project not found")
		}
		return nil, err
	}

	if err := r.db.Delete(&record).Error; err != nil {
		return nil, err
	}

	dto := mapProject(record)
	return &dto, nil
}
