// internal/notification/routes.go

package notification

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/flatmatchau/flatmatch-backend/internal/auth"
)

// RegisterRoutes registers notification routes on the router
func RegisterRoutes(router *mux.Router, handlers *Handlers, authMiddleware *auth.Middleware) {
	supportRouter := router.PathPrefix("/support").Subrouter()
	supportRouter.Use(authMiddleware.Authenticate)

	supportRouter.HandleFunc("/tickets", handlers.SubmitSupportTicket).Methods(http.MethodPost)
}
