// internal/storage/handlers.go

package storage

import (
	"net/http"

	"github.com/flatmatchau/flatmatch-backend/internal/auth"
	"github.com/flatmatchau/flatmatch-backend/internal/common/utils"
)

// Handlers handles HTTP requests for uploads
type Handlers struct {
	uploads       UploadService
	maxUploadSize int64
}

// NewHandlers creates a new storage handlers instance
func NewHandlers(uploads UploadService, maxUploadSize int64) *Handlers {
	return &Handlers{uploads: uploads, maxUploadSize: maxUploadSize}
}

// UploadVerificationPhoto handles POST /api/v1/verification/photo
func (h *Handlers) UploadVerificationPhoto(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.GetUserIDFromContext(r.Context())
	if !ok {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "File too large or invalid form")
		return
	}

	file, header, err := r.FormFile("photo")
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing photo file")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")

	url, err := h.uploads.UploadVerificationPhoto(r.Context(), userID, contentType, file)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	utils.RespondWithData(w, http.StatusOK, map[string]string{"url": url})
}
