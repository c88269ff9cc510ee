package rating

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/soundstack/api-music/internal/auth"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
	}
}

// Rate handles PUT /tracks/{id}/rating; creates or replaces the caller's
// score for the track.
func (h *Handler) Rate(w http.ResponseWriter, r *http.Request) {
	trackID, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid track id", http.StatusBadRequest)
		return
	}

	var payload struct {
		Score int `json:"score"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if payload.Score < 1 || payload.Score > 5 {
		http.Error(w, "score must be between 1 and 5", http.StatusBadRequest)
		return
	}

	rt := Rating{
		UserID:  auth.UserIDFromContext(r.Context()),
		TrackID: uint(trackID),
		Score:   payload.Score,
	}
	if err := h.Repository.Upsert(h.DB, &rt); err != nil {
		http.Error(w, "could not save rating", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(rt)
}

// ListByTrack handles GET /tracks/{id}/ratings
func (h *Handler) ListByTrack(w http.ResponseWriter, r *http.Request) {
	trackID, _ := strconv.Atoi(mux.Vars(r)["id"])

	ratings, err := h.Repository.ListByTrack(h.DB, uint(trackID))
	if err != nil {
		http.Error(w, "could not list ratings", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(ratings)
}

// Stats handles GET /tracks/{id}/ratings/stats
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	trackID, _ := strconv.Atoi(mux.Vars(r)["id"])

	stats, err := h.Repository.StatsByTrack(h.DB, uint(trackID))
	if err != nil {
		http.Error(w, "could not load stats", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(stats)
}

// Unrate handles DELETE /tracks/{id}/rating; removes the caller's score.
func (h *Handler) Unrate(w http.ResponseWriter, r *http.Request) {
	trackID, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Delete(h.DB, auth.UserIDFromContext(r.Context()), uint(trackID)); err != nil {
		http.Error(w, "could not remove rating", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
