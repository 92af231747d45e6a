package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jamndev/portfolio-backend/models"
)

type CvRepo struct {
	db *gorm.DB
}

func NewCvRepo(db *gorm.DB) *CvRepo {
	return &CvRepo{db}
}

func mapCvProfile(record models.CvProfile) models.CvProfileDTO {
	experiences := []models.ExperienceItem(record.Experiences)
	if experiences == nil {
		experiences = []models.ExperienceItem{}
	}
	return models.CvProfileDTO{
		ID:          record.ID.String(),
		FullName:    record.FullName,
		Title:       record.Title,
		Summary:     record.Summary,
		Location:    record.Location,
		Email:       record.Email,
		Phone:       record.Phone,
		Website:     record.Website,
		Linkedin:    record.Linkedin,
		Github:      record.Github,
		Skills:      asStringSlice(record.Skills),
		Experiences: experiences,
	}
}

// current fetches the canonical profile row. The app keeps at most one
// profile; if more than one ever exists, the earliest-created row wins.
func (r *CvRepo) current() (*models.CvProfile, error) {
	var record models.CvProfile
	if err := r.db.Order("created_at ASC").First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &record, nil
}

// Get returns the active CV profile, or nil when none has been saved yet.
func (r *CvRepo) Get() (*models.CvProfileDTO, error) {
	record, err := r.current()
	if err != nil || record == nil {
		return nil, err
	}
	dto := mapCvProfile(*record)
	return &dto, nil
}

// Upsert updates the existing profile in place, or creates one on first save.
func (r *CvRepo) Upsert(in models.UpsertCvInput) (*models.CvProfileDTO, error) {
	record, err := r.current()
	if err != nil {
		return nil, err
	}

	if record == nil {
		record = &models.CvProfile{ID: uuid.New()}
	}

	record.FullName = in.FullName
	record.Title = in.Title
	record.Summary = in.Summary
	record.Location = in.Location
	record.Email = in.Email
	record.Phone = in.Phone
	record.Website = nullable(in.Website)
	record.Linkedin = nullable(in.Linkedin)
	record.Github = nullable(in.Github)
	record.Skills = in.Skills
	record.Experiences = in.Experiences

	if err := r.db.Save(record).Error; err != nil {
		return nil, err
	}

	dto := mapCvProfile(*record)
	return &dto, nil
}
