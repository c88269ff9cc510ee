package album

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

type albumRequest struct {
	Title    string `json:"title"`
	Year     int    `json:"year"`
	ArtistID uint   `json:"artistId"`
	GenreID  *uint  `json:"genreId"`
}

// Create handles POST /albums
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.Title == "" || req.ArtistID == 0 {
		http.Error(w, "the 'title' and 'artistId' fields are required", http.StatusBadRequest)
		return
	}

	a := Album{
		Title:    req.Title,
		Year:     req.Year,
		ArtistID: req.ArtistID,
		GenreID:  req.GenreID,
	}
	if err := h.Repository.Create(h.DB, &a); err != nil {
		http.Error(w, "could not create album", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// List handles GET /albums; returns summaries with track counts.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	albums, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "could not list albums", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toSummaryDTOs(albums))
}

// ListByArtist handles GET /artists/{id}/albums
func (h *Handler) ListByArtist(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	albums, err := h.Repository.ListByArtist(h.DB, uint(id))
	if err != nil {
		http.Error(w, "could not list albums", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toSummaryDTOs(albums))
}

// GetByID handles GET /albums/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	a, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "album not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// Update handles PUT /albums/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req albumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	updated := Album{Title: req.Title, Year: req.Year, GenreID: req.GenreID}
	if err := h.Repository.Update(h.DB, uint(id), &updated); err != nil {
		http.Error(w, "could not update album", http.StatusInternalServerError)
		return
	}

	a, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "album not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// Delete handles DELETE /albums/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete album", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
