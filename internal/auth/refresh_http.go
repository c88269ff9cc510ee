package auth

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"
)

type refreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type refreshResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refresh_token"`
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// RefreshHTTPHandler serves POST /api/token/refresh. It swaps a valid
// refresh token for a fresh access/refresh pair.
func RefreshHTTPHandler(db *gorm.DB, svc *RefreshService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req refreshRequest
		// a missing or malformed body is treated the same as a missing field
		_ = json.NewDecoder(r.Body).Decode(&req)

		access, refresh, err := svc.Rotate(db, req.RefreshToken)
		switch {
		case errors.Is(err, ErrMissingToken):
			writeJSONError(w, http.StatusBadRequest, "missing refresh_token")
			return
		case errors.Is(err, ErrInvalidToken):
			writeJSONError(w, http.StatusUnauthorized, "invalid or expired refresh_token")
			return
		case err != nil:
			log.Printf("[REFRESH] rotation failed: %v", err)
			writeJSONError(w, http.StatusInternalServerError, "internal error")
			return
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(refreshResponse{
			Token:        access,
			RefreshToken: refresh,
		})
	}
}
