package database

import (
	"gorm.io/gorm"

	"github.com/jamndev/portfolio-backend/models"
)

type Database struct {
	cvRepo       *CvRepo
	projectRepo  *ProjectRepo
	exerciseRepo *ExerciseRepo
	userRepo     *UserRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		cvRepo:       NewCvRepo(db),
		projectRepo:  NewProjectRepo(db),
		exerciseRepo: NewExerciseRepo(db),
		userRepo:     NewUserRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) CvRepo() *CvRepo {
	return d.cvRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ExerciseRepo() *ExerciseRepo {
	return d.exerciseRepo
}

func (d Database) UserRepo() *UserRepo {
	return d.userRepo
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.CvProfile{},
		&models.Project{},
		&models.Exercise{},
		&models.User{},
	)
}
