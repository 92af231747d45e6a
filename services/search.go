package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jamndev/portfolio-backend/database"
	"github.com/jamndev/portfolio-backend/models"
)

// Search type discriminator values.
const (
	SearchAll       = "all"
	SearchExercises = "exercises"
	SearchProjects  = "projects"
)

// ProjectLister is the read-side project dependency of the use cases.
type ProjectLister interface {
	List(filters database.ListFilters) ([]models.ProjectDTO, error)
}

// ExerciseLister is the read-side exercise dependency of the use cases.
type ExerciseLister interface {
	List(filters database.ListFilters) ([]models.ExerciseDTO, error)
}

// SearchInput carries the cross-entity search criteria. An empty Type means
// SearchAll.
type SearchInput struct {
	Query string
	Tag   string
	Type  string
}

// SearchResult groups per-entity results. No merging or ranking is applied;
// each slice keeps its repository's most-recent-first ordering.
type SearchResult struct {
	Exercises []models.ExerciseDTO `json:"exercises"`
	Projects  []models.ProjectDTO  `json:"projects"`
}

// ContentSearcher fans a single search out to the content repositories.
type ContentSearcher struct {
	projects  ProjectLister
	exercises ExerciseLister
}

func NewContentSearcher(projects ProjectLister, exercises ExerciseLister) ContentSearcher {
	return ContentSearcher{projects: projects, exercises: exercises}
}

// Search dispatches to the repositories selected by in.Type concurrently and
// joins both branches before returning. A repository excluded by the type is
// never invoked and contributes an empty slice. Either branch failing fails
// the whole search.
func (s ContentSearcher) Search(ctx context.Context, in SearchInput) (*SearchResult, error) {
	searchType := in.Type
	if searchType == "" {
		searchType = SearchAll
	}

	filters := database.ListFilters{Query: in.Query, Tag: in.Tag}
	result := SearchResult{
		Exercises: []models.ExerciseDTO{},
		Projects:  []models.ProjectDTO{},
	}

	g, _ := errgroup.WithContext(ctx)

	if searchType == SearchAll || searchType == SearchExercises {
		g.Go(func() error {
			exercises, err := s.exercises.List(filters)
			if err != nil {
				return err
			}
			result.Exercises = exercises
			return nil
		})
	}

	if searchType == SearchAll || searchType == SearchProjects {
		g.Go(func() error {
			projects, err := s.projects.List(filters)
			if err != nil {
				return err
			}
			result.Projects = projects
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &result, nil
}
