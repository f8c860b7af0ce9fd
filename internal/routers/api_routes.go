package routers

import (
	"github.com/go-chi/chi/v5"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/handlers"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/middleware"
	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
)

// APIRoutes registers every authenticated endpoint under /api.
func APIRoutes(
	router *chi.Mux,
	auth middleware.Authenticator,
	authHandler *handlers.AuthHandler,
	interviewHandler *handlers.InterviewHandler,
	questionHandler *handlers.QuestionHandler,
	preferencesHandler *handlers.PreferencesHandler,
	analyticsHandler *handlers.AnalyticsHandler,
) {
	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireAuth(auth))

		r.Get("/auth/user", authHandler.CurrentUserHandler)

		r.Route("/interviews", func(r chi.Router) {
			r.Get("/", interviewHandler.ListHandler)
			r.With(middleware.ValidateRequest[*models.CreateInterviewRequest]()).Post("/", interviewHandler.CreateHandler)
			r.Get("/{id}", interviewHandler.GetHandler)
			r.With(middleware.ValidateRequest[*models.UpdateInterviewRequest]()).Patch("/{id}", interviewHandler.UpdateHandler)
			r.Delete("/{id}", interviewHandler.DeleteHandler)
			r.Post("/{id}/complete", interviewHandler.CompleteHandler)
			r.Post("/{id}/token", interviewHandler.TokenHandler)
		})

		r.With(middleware.ValidateRequest[*models.SubmitResponseRequest]()).
			Post("/questions/{id}/response", questionHandler.SubmitResponseHandler)

		r.Get("/preferences", preferencesHandler.GetHandler)
		r.With(middleware.ValidateRequest[*models.PreferencesRequest]()).
			Post("/preferences", preferencesHandler.UpsertHandler)

		r.Get("/analytics/stats", analyticsHandler.StatsHandler)
	})
}
