// internal/quiz/handlers.go

package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/flatmatchau/flatmatch-backend/internal/auth"
	"github.com/flatmatchau/flatmatch-backend/internal/common/utils"
)

// Handlers handles HTTP requests for quiz operations
type Handlers struct {
	service Service
}

// NewHandlers creates a new quiz handlers instance
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

type submitAnswersRequest struct {
	DisplayName string                 `json:"display_name"`
	Answers     map[string]interface{} `json:"answers"`
}

// SubmitAnswers handles POST /api/v1/quiz/answers
func (h *Handlers) SubmitAnswers(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req submitAnswersRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Answers == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing answers")
		return
	}

	profile, err := h.service.SubmitAnswers(r.Context(), userID, req.DisplayName, req.Answers)
	if err != nil {
		var vErr *ValidationError
		if errors.As(err, &vErr) {
			utils.RespondWithFieldError(w, http.StatusBadRequest, vErr.Field, vErr.Message)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save quiz answers")
		return
	}

	utils.RespondWithData(w, http.StatusOK, profile)
}

// GetProfile handles GET /api/v1/quiz/profile
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get profile")
		return
	}

	utils.RespondWithData(w, http.StatusOK, profile)
}

// DeactivateProfile handles DELETE /api/v1/quiz/profile
func (h *Handlers) DeactivateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if err := h.service.DeactivateProfile(r.Context(), userID); err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to deactivate profile")
		return
	}

	utils.RespondWithMessage(w, http.StatusOK, "Profile deactivated")
}
