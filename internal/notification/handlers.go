// internal/notification/handlers.go

package notification

import (
	"encoding/json"
	"net/http"

	"github.com/flatmatchau/flatmatch-backend/internal/auth"
	"github.com/flatmatchau/flatmatch-backend/internal/common/utils"
)

// Handlers handles HTTP requests for notifications
type Handlers struct {
	service Service
}

// NewHandlers creates a new notification handlers instance
func NewHandlers(service Service) *Handlers {
	return &Handlers{service: service}
}

// SubmitSupportTicket handles POST /api/v1/support/tickets
func (h *Handlers) SubmitSupportTicket(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var ticket SupportTicket
	if err := json.NewDecoder(r.Body).Decode(&ticket); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	ticket.UserID = userID
	if ticket.Email == "" {
		if email, ok := auth.GetEmailFromContext(r.Context()); ok {
			ticket.Email = email
		}
	}

	if err := utils.ValidateStruct(&ticket); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.service.SendSupportTicket(r.Context(), &ticket)

	utils.RespondWithMessage(w, http.StatusAccepted, "Support ticket received")
}
