package media

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"
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

type mediaRequest struct {
	Kind        string `json:"kind"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	AlbumID     *uint  `json:"albumId"`
	TrackID     *uint  `json:"trackId"`
}

// Create handles POST /media. The storage key is assigned here; the client
// uploads the bytes separately under that key.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req mediaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.Kind != KindCover && req.Kind != KindAudio {
		http.Error(w, "the 'kind' field must be 'cover' or 'audio'", http.StatusBadRequest)
		return
	}
	if (req.AlbumID == nil) == (req.TrackID == nil) {
		http.Error(w, "exactly one of 'albumId' or 'trackId' is required", http.StatusBadRequest)
		return
	}

	m := Media{
		Kind:        req.Kind,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		StorageKey:  uuid.NewString(),
		AlbumID:     req.AlbumID,
		TrackID:     req.TrackID,
	}
	if err := h.Repository.Create(h.DB, &m); err != nil {
		http.Error(w, "could not create media", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(m)
}

// ListByAlbum handles GET /albums/{id}/media
func (h *Handler) ListByAlbum(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	list, err := h.Repository.ListByAlbum(h.DB, uint(id))
	if err != nil {
		http.Error(w, "could not list media", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// ListByTrack handles GET /tracks/{id}/media
func (h *Handler) ListByTrack(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	list, err := h.Repository.ListByTrack(h.DB, uint(id))
	if err != nil {
		http.Error(w, "could not list media", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(list)
}

// Delete handles DELETE /media/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete media", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
