package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jamndev/portfolio-backend/database"
	"github.com/jamndev/portfolio-backend/models"
)

// Landing page shows only the newest few entries of each collection.
const (
	homeProjectLimit  = 3
	homeExerciseLimit = 5
)

// CvGetter is the read-side CV dependency of the home use case.
type CvGetter interface {
	Get() (*models.CvProfileDTO, error)
}

// HomeContent is everything the landing page needs in a single response.
type HomeContent struct {
	Cv        *models.CvProfileDTO `json:"cv"`
	Projects  []models.ProjectDTO  `json:"projects"`
	Exercises []models.ExerciseDTO `json:"exercises"`
}

// HomeLoader assembles landing-page content from the content repositories.
type HomeLoader struct {
	cv        CvGetter
	projects  ProjectLister
	exercises ExerciseLister
}

func NewHomeLoader(cv CvGetter, projects ProjectLister, exercises ExerciseLister) HomeLoader {
	return HomeLoader{cv: cv, projects: projects, exercises: exercises}
}

// Load fetches the CV profile and both unfiltered lists concurrently, then
// keeps only the newest entries of each list. The date-descending ordering of
// List already puts the newest records first.
func (l HomeLoader) Load(ctx context.Context) (*HomeContent, error) {
	var content HomeContent
	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		cv, err := l.cv.Get()
		if err != nil {
			return err
		}
		content.Cv = cv
		return nil
	})

	g.Go(func() error {
		projects, err := l.projects.List(database.ListFilters{})
		if err != nil {
			return err
		}
		content.Projects = truncate(projects, homeProjectLimit)
		return nil
	})

	g.Go(func() error {
		exercises, err := l.exercises.List(database.ListFilters{})
		if err != nil {
			return err
		}
		content.Exercises = truncate(exercises, homeExerciseLimit)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &content, nil
}

func truncate[T any](items []T, limit int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > limit {
		return items[:limit]
	}
	return items
}
