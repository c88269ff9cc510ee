package track

import (
	"encoding/json"
	"net/http"
	"strconv"

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

type trackRequest struct {
	Title       string `json:"title"`
	DurationSec int    `json:"durationSec"`
	Position    int    `json:"position"`
	AlbumID     uint   `json:"albumId"`
}

// Create handles POST /tracks
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.AlbumID == 0 {
		http.Error(w, "the 'title' and 'albumId' fields are required", http.StatusBadRequest)
		return
	}

	t := Track{
		Title:       req.Title,
		DurationSec: req.DurationSec,
		Position:    req.Position,
		AlbumID:     req.AlbumID,
	}
	if err := h.Repository.Create(h.DB, &t); err != nil {
		http.Error(w, "could not create track", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(t)
}

// List handles GET /tracks
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	tracks, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "could not list tracks", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tracks)
}

// GetByID handles GET /tracks/{id}; the detail view includes tags and
// rating stats.
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	t, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "track not found", http.StatusNotFound)
		return
	}

	avg, count, err := h.Repository.RatingStats(h.DB, t.ID)
	if err != nil {
		http.Error(w, "could not load rating stats", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDetailDTO(*t, avg, count))
}

// ListByAlbum handles GET /albums/{id}/tracks
func (h *Handler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	tracks, err := h.Repository.ListByAlbum(h.DB, uint(id))
	if err != nil {
		http.Error(w, "could not list tracks", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tracks)
}

// Update handles PUT /tracks/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req trackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	updated := Track{Title: req.Title, DurationSec: req.DurationSec, Position: req.Position}
	if err := h.Repository.Update(h.DB, uint(id), &updated); err != nil {
		http.Error(w, "could not update track", http.StatusInternalServerError)
		return
	}

	t, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "track not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(t)
}

// Delete handles DELETE /tracks/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete track", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddTag handles POST /tracks/{id}/tags/{tagId}
func (h *Handler) AddTag(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, _ := strconv.Atoi(vars["id"])
	tagID, _ := strconv.Atoi(vars["tagId"])

	if err := h.Repository.AddTag(h.DB, uint(id), uint(tagID)); err != nil {
		http.Error(w, "could not attach tag", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveTag handles DELETE /tracks/{id}/tags/{tagId}
func (h *Handler) RemoveTag(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, _ := strconv.Atoi(vars["id"])
	tagID, _ := strconv.Atoi(vars["tagId"])

	if err := h.Repository.RemoveTag(h.DB, uint(id), uint(tagID)); err != nil {
		http.Error(w, "could not detach tag", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
