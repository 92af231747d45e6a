package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jamndev/portfolio-backend/errs"
	"github.com/jamndev/portfolio-backend/models"
)

type ExerciseRepo struct {
	db *gorm.DB
}

func NewExerciseRepo(db *gorm.DB) *ExerciseRepo {
	return &ExerciseRepo{db}
}

// mapExercise translates a persisted record into its external DTO.
func mapExercise(record models.Exercise) models.ExerciseDTO {
	return models.ExerciseDTO{
		ID:          record.ID.String(),
		Title:       record.Title,
		Slug:        record.Slug,
		Description: record.Description,
		Tags:        asStringSlice(record.Tags),
		Links:       asStringSlice(record.Links),
		DemoURL:     record.DemoURL,
		RepoURL:     record.RepoURL,
		Date:        record.Date.UTC().Format(time.RFC3339),
	}
}

// List returns exercises matching the filters, most recent by date first.
func (r *ExerciseRepo) List(filters ListFilters) ([]models.ExerciseDTO, error) {
	var records []models.Exercise
	tx := applyListFilters(r.db.Model(&models.Exercise{}), filters)
	if err := tx.Order("date DESC").Find(&records).Error; err != nil {
		return nil, err
	}

	dtos := make([]models.ExerciseDTO, 0, len(records))
	for _, record := range records {
		dtos = append(dtos, mapExercise(record))
	}
	return dtos, nil
}

// FindByID returns an exercise by its ID, or nil when no such record exists.
func (r *ExerciseRepo) FindByID(id uuid.UUID) (*models.ExerciseDTO, error) {
	var record models.Exercise
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	dto := mapExercise(record)
	return &dto, nil
}

// FindBySlug returns an exercise by its public slug, or nil when absent.
func (r *ExerciseRepo) FindBySlug(slug string) (*models.ExerciseDTO, error) {
	var record models.Exercise
	if err := r.db.First(&record, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	dto := mapExercise(record)
	return &dto, nil
}

// Add inserts a new exercise. A duplicate slug surfaces as a conflict error.
func (r *ExerciseRepo) Add(in models.CreateExerciseInput) (*models.ExerciseDTO, error) {
	date, err := parseDate(in.Date)
	if err != nil {
		return nil, err
	}

	record := models.Exercise{
		ID:          uuid.New(),
		Title:       in.Title,
		Slug:        in.Slug,
		Description: in.Description,
		Tags:        in.Tags,
		Links:       in.Links,
		DemoURL:     nullable(in.DemoURL),
		RepoURL:     nullable(in.RepoURL),
		Date:        date,
	}
	if err := r.db.Create(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewConflictError("an exercise with this slug already exists")
		}
		return nil, err
	}

	dto := mapExercise(record)
	return &dto, nil
}

// Update merges only the provided fields into an existing exercise.
func (r *ExerciseRepo) Update(id uuid.UUID, in models.UpdateExerciseInput) (*models.ExerciseDTO, error) {
	var record models.Exercise
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("exercise not found")
		}
		return nil, err
	}

	if in.Title != nil {
		record.Title = *in.Title
	}
	if in.Slug != nil {
		record.Slug = *in.Slug
	}
	if in.Description != nil {
		record.Description = *in.Description
	}
	if in.Tags != nil {
		record.Tags = in.Tags
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
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errs.NewConflictError("an exercise with this slug already exists")
		}
		return nil, err
	}

	dto := mapExercise(record)
	return &dto, nil
}

// Delete removes an exercise and returns the DTO of what was deleted.
func (r *ExerciseRepo) Delete(id uuid.UUID) (*models.ExerciseDTO, error) {
	var record models.Exercise
	if err := r.db.First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewNotFoundError("exercise not found")
		}
		return nil, err
	}

	if err := r.db.Delete(&record).Error; err != nil {
		return nil, err
	}

	dto := mapExercise(record)
	return &dto, nil
}
