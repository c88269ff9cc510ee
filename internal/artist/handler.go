package artist

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

type artistRequest struct {
	Name    string `json:"name"`
	Country string `json:"country"`
	Bio     string `json:"bio"`
}

// Create handles POST /artists
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req artistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" {
		http.Error(w, "the 'name' field is required", http.StatusBadRequest)
		return
	}

	a := Artist{Name: req.Name, Country: req.Country, Bio: req.Bio}
	if err := h.Repository.Create(h.DB, &a); err != nil {
		http.Error(w, "could not create artist", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(a)
}

// List handles GET /artists
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	artists, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "could not list artists", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(artists)
}

// GetByID handles GET /artists/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	a, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "artist not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// Update handles PUT /artists/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var req artistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	updated := Artist{Name: req.Name, Country: req.Country, Bio: req.Bio}
	if err := h.Repository.Update(h.DB, uint(id), &updated); err != nil {
		http.Error(w, "could not update artist", http.StatusInternalServerError)
		return
	}

	a, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "artist not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(a)
}

// Delete handles DELETE /artists/{id} (admin only, wired in main)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete artist", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
