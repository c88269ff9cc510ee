package playlist

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

// Create handles POST /playlists; the playlist belongs to the caller.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if payload.Name == "" {
		http.Error(w, "the 'name' field is required", http.StatusBadRequest)
		return
	}

	p := Playlist{Name: payload.Name, OwnerID: auth.UserIDFromContext(r.Context())}
	if err := h.Repository.Create(h.DB, &p); err != nil {
		http.Error(w, "could not create playlist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(p)
}

// List handles GET /playlists; only the caller's own playlists.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	playlists, err := h.Repository.ListByOwner(h.DB, auth.UserIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "could not list playlists", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(playlists)
}

// GetByID handles GET /playlists/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(p)
}

// Rename handles PUT /playlists/{id}
func (h *Handler) Rename(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Rename(h.DB, p.ID, payload.Name); err != nil {
		http.Error(w, "could not rename playlist", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Delete handles DELETE /playlists/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadOwned(w, r)
	if !ok {
		return
	}

	if err := h.Repository.Delete(h.DB, p.ID); err != nil {
		http.Error(w, "could not delete playlist", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddTrack handles POST /playlists/{id}/tracks/{trackId}
func (h *Handler) AddTrack(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	trackID, _ := strconv.Atoi(mux.Vars(r)["trackId"])

	if err := h.Repository.AddTrack(h.DB, p.ID, uint(trackID)); err != nil {
		http.Error(w, "could not add track", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// RemoveTrack handles DELETE /playlists/{id}/tracks/{trackId}
func (h *Handler) RemoveTrack(w http.ResponseWriter, r *http.Request) {
	p, ok := h.loadOwned(w, r)
	if !ok {
		return
	}
	trackID, _ := strconv.Atoi(mux.Vars(r)["trackId"])

	if err := h.Repository.RemoveTrack(h.DB, p.ID, uint(trackID)); err != nil {
		http.Error(w, "could not remove track", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// loadOwned fetches the playlist in the URL and enforces that the caller
// owns it (admins pass). Writes the error response itself on failure.
func (h *Handler) loadOwned(w http.ResponseWriter, r *http.Request) (*Playlist, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return nil, false
	}

	p, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "playlist not found", http.StatusNotFound)
		return nil, false
	}

	ctx := r.Context()
	if p.OwnerID != auth.UserIDFromContext(ctx) && !auth.IsAdminFromContext(ctx) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return nil, false
	}
	return p, true
}
