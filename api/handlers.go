package api

import (
	"github.com/jamndev/portfolio-backend/config"
	"github.com/jamndev/portfolio-backend/database"
	"github.com/jamndev/portfolio-backend/services"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	cvHandler       cvHandler
	projectHandler  projectHandler
	exerciseHandler exerciseHandler
	contentHandler  contentHandler
	authHandler     authHandler
	contactHandler  contactHandler
}

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, cfg config.Config) *routeHandlers {
	searcher := services.NewContentSearcher(db.ProjectRepo(), db.ExerciseRepo())
	home := services.NewHomeLoader(db.CvRepo(), db.ProjectRepo(), db.ExerciseRepo())
	mailer := services.NewMailer(cfg.ResendAPIKey, cfg.ContactFrom, cfg.ContactTo)

	return &routeHandlers{
		cvHandler:       newCvHandler(db.CvRepo()),
		projectHandler:  newProjectHandler(db.ProjectRepo()),
		exerciseHandler: newExerciseHandler(db.ExerciseRepo()),
		contentHandler:  newContentHandler(searcher, home),
		authHandler:     newAuthHandler(db.UserRepo(), cfg.JWTSecret, cfg.TokenTTL),
		contactHandler:  newContactHandler(mailer),
	}
}
