package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jamndev/portfolio-backend/models"
)

func cvInput(fullName string) models.UpsertCvInput {
	return models.UpsertCvInput{
		FullName: fullName,
		Title:    "Full Stack Engineer",
		Summary:  "Engineer focused on maintainable web products and performance.",
		Location: "Mexico (Remote)",
		Email:    "admin@example.com",
		Phone:    "+52 000 000 0000",
		Skills:   []string{"go", "postgresql"},
		Experiences: []models.ExperienceItem{
			{Company: "Jamn Labs", Role: "Lead Engineer", Period: "2023 - Now", Highlights: []string{"Shipped the platform."}},
		},
	}
}

func TestCvRepoGetEmpty(t *testing.T) {
	repo := NewCvRepo(testDB(t))

	profile, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, profile)
}

func TestCvRepoUpsert(t *testing.T) {
	repo := NewCvRepo(testDB(t))

	first, err := repo.Upsert(cvInput("Jamn Dev"))
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)
	assert.Equal(t, []string{"go", "postgresql"}, first.Skills)
	require.Len(t, first.Experiences, 1)

	// A second save must update the same logical record, not create a new one.
	second, err := repo.Upsert(cvInput("Jamn Developer"))
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Jamn Developer", second.FullName)

	current, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Jamn Developer", current.FullName)
}

func TestCvRepoEarliestRowWins(t *testing.T) {
	db := testDB(t)
	repo := NewCvRepo(db)

	older := models.CvProfile{
		ID:        uuid.New(),
		FullName:  "Older Row",
		Title:     "t",
		Summary:   "s",
		Location:  "l",
		Email:     "e@example.com",
		Phone:     "p",
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := models.CvProfile{
		ID:        uuid.New(),
		FullName:  "Newer Row",
		Title:     "t",
		Summary:   "s",
		Location:  "l",
		Email:     "e@example.com",
		Phone:     "p",
		CreatedAt: time.Now(),
	}
	require.NoError(t, db.Create(&older).Error)
	require.NoError(t, db.Create(&newer).Error)

	current, err := repo.Get()
	require.NoError(t, err)
	require.NotNil(t, current)
	assert.Equal(t, "Older Row", current.FullName)

	// And the upsert path must target that same canonical row.
	saved, err := repo.Upsert(cvInput("Updated"))
	require.NoError(t, err)
	assert.Equal(t, older.ID.String(), saved.ID)
}
