// internal/quiz/routes.go

package quiz

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/flatmatchau/flatmatch-backend/internal/auth"
)

// RegisterRoutes registers quiz routes on the router
func RegisterRoutes(router *mux.Router, handlers *Handlers, authMiddleware *auth.Middleware) {
	quizRouter := router.PathPrefix("/quiz").Subrouter()
	quizRouter.Use(authMiddleware.Authenticate)

	quizRouter.HandleFunc("/answers", handlers.SubmitAnswers).Methods(http.MethodPost)
	quizRouter.HandleFunc("/profile", handlers.GetProfile).Methods(http.MethodGet)
	quizRouter.HandleFunc("/profile", handlers.DeactivateProfile).Methods(http.MethodDelete)
}
