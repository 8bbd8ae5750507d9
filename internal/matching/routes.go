// internal/matching/routes.go

package matching

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/flatmatchau/flatmatch-backend/internal/auth"
)

// RegisterRoutes registers matching routes on the router
func RegisterRoutes(router *mux.Router, handlers *Handlers, authMiddleware *auth.Middleware) {
	matchRouter := router.PathPrefix("/matches").Subrouter()
	matchRouter.Use(authMiddleware.Authenticate)

	matchRouter.HandleFunc("/compatibility/{userId}", handlers.GetCompatibility).Methods(http.MethodGet)
	matchRouter.HandleFunc("/best", handlers.GetBestMatches).Methods(http.MethodGet)
	matchRouter.HandleFunc("/tenant-screen/{userId}", handlers.ScreenTenant).Methods(http.MethodPost)
}
