package genre

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

// Create handles POST /genres (admin only, wired in main)
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

	g := Genre{Name: payload.Name}
	if err := h.Repository.Create(h.DB, &g); err != nil {
		http.Error(w, "could not create genre", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(g)
}

// List handles GET /genres
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	genres, err := h.Repository.ListAll(h.DB)
	if err != nil {
		http.Error(w, "could not list genres", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(genres)
}

// GetByID handles GET /genres/{id}
func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	g, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "genre not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(g)
}

// Update handles PUT /genres/{id} (admin only, wired in main)
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	var payload struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Update(h.DB, uint(id), payload.Name); err != nil {
		http.Error(w, "could not update genre", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// Delete handles DELETE /genres/{id} (admin only, wired in main)
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])

	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete genre", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
