// internal/matching/handlers.go

package matching

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/flatmatchau/flatmatch-backend/internal/auth"
	"github.com/flatmatchau/flatmatch-backend/internal/common/utils"
	"github.com/flatmatchau/flatmatch-backend/internal/notification"
	"github.com/flatmatchau/flatmatch-backend/internal/quiz"
)

// Handlers handles HTTP requests for matching operations
type Handlers struct {
	service Service
	alerts  notification.Service
}

// NewHandlers creates a new matching handlers instance. A nil alerts
// service disables match alerts.
func NewHandlers(service Service, alerts notification.Service) *Handlers {
	return &Handlers{service: service, alerts: alerts}
}

// Matches at or above this score trigger an alert to the requesting user.
const alertScoreThreshold = 85

// GetCompatibility handles GET /api/v1/matches/compatibility/{userId}
func (h *Handlers) GetCompatibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	otherID := mux.Vars(r)["userId"]
	if otherID == "" || otherID == userID {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	score, err := h.service.GetCompatibility(r.Context(), userID, otherID)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to compute compatibility")
		return
	}

	utils.RespondWithData(w, http.StatusOK, score)
}

// GetBestMatches handles GET /api/v1/matches/best
func (h *Handlers) GetBestMatches(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	opts := MatchOptions{}
	if v := r.URL.Query().Get("min_score"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n > 100 {
			utils.RespondWithError(w, http.StatusBadRequest, "min_score must be between 0 and 100")
			return
		}
		opts.MinimumScore = n
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 50 {
			utils.RespondWithError(w, http.StatusBadRequest, "limit must be between 1 and 50")
			return
		}
		opts.MaxResults = n
	}

	matches, err := h.service.FindBestMatches(r.Context(), userID, opts)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Complete the quiz before requesting matches")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to find matches")
		return
	}

	if h.alerts != nil && len(matches) > 0 && matches[0].Overall >= alertScoreThreshold {
		if email, ok := auth.GetEmailFromContext(r.Context()); ok {
			h.alerts.SendMatchAlert(r.Context(), &notification.MatchAlert{
				Email:     email,
				MatchName: matches[0].DisplayName,
				Score:     matches[0].Overall,
				AlertsOn:  true,
			})
		}
	}

	utils.RespondWithData(w, http.StatusOK, matches)
}

type screenTenantRequest struct {
	PropertyRequirements *quiz.PropertyPreferences `json:"property_requirements"`
	HouseRules           []string                  `json:"house_rules"`
}

// ScreenTenant handles POST /api/v1/matches/tenant-screen/{userId}
func (h *Handlers) ScreenTenant(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	tenantID := mux.Vars(r)["userId"]
	if tenantID == "" || tenantID == ownerID {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req screenTenantRequest
	if r.Body != nil {
		// Body is optional; decode errors on an empty body are fine.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	pctx := &PropertyContext{
		IsPropertyOwner:      true,
		PropertyRequirements: req.PropertyRequirements,
		HouseRules:           req.HouseRules,
	}

	score, err := h.service.ScreenTenant(r.Context(), ownerID, tenantID, pctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "Profile not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to screen tenant")
		return
	}

	utils.RespondWithData(w, http.StatusOK, score)
}
