// internal/storage/routes.go

package storage

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/flatmatchau/flatmatch-backend/internal/auth"
)

// RegisterRoutes registers upload routes on the router
func RegisterRoutes(router *mux.Router, handlers *Handlers, authMiddleware *auth.Middleware) {
	verifyRouter := router.PathPrefix("/verification").Subrouter()
	verifyRouter.Use(authMiddleware.Authenticate)

	verifyRouter.HandleFunc("/photo", handlers.UploadVerificationPhoto).Methods(http.MethodPost)
}
