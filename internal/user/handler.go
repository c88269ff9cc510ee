package user

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/soundstack/api-music/internal/auth"
	"github.com/soundstack/api-music/internal/utils"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsAdmin  bool   `json:"isAdmin"`
}

type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Refresh    *auth.RefreshService
}

func NewHandler(db *gorm.DB, refresh *auth.RefreshService) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Refresh:    refresh,
	}
}

// Login checks email/password and returns an access token plus the first
// refresh token of the session.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}

	u, err := h.Repository.FindByEmail(h.DB, req.Email)
	if err != nil {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if !utils.CheckPassword(u.Password, req.Password) {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := auth.GenerateAccessToken(u.ID, u.IsAdmin)
	if err != nil {
		http.Error(w, "could not generate token", http.StatusInternalServerError)
		return
	}

	payload := map[string]any{
		"token": token,
		"user":  toDTO(*u),
	}
	if err := h.Refresh.AttachOnLogin(h.DB, u, payload); err != nil {
		http.Error(w, "could not create session", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}

// Register creates a new account. Open endpoint; the admin flag is only
// honored when the caller is already an admin.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		http.Error(w, "email and password are required", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		http.Error(w, "could not process password", http.StatusInternalServerError)
		return
	}

	u := User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hash,
		IsAdmin:  req.IsAdmin && auth.IsAdminFromContext(r.Context()),
	}

	if err := h.Repository.Save(h.DB, &u); err != nil {
		http.Error(w, "could not create user", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(toDTO(u))
}

// List returns every account for admins, or just the caller's own.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	if auth.IsAdminFromContext(r.Context()) {
		users, err := h.Repository.ListAll(h.DB)
		if err != nil {
			http.Error(w, "could not list users", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(toDTOs(users))
		return
	}

	u, err := h.Repository.FindByID(h.DB, auth.UserIDFromContext(r.Context()))
	if err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode([]UserDTO{toDTO(*u)})
}

func (h *Handler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if !h.canAccess(r, uint(id)) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	u, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTO(*u))
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if !h.canAccess(r, uint(id)) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	var updated User
	if err := json.NewDecoder(r.Body).Decode(&updated); err != nil {
		http.Error(w, "invalid payload", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Update(h.DB, uint(id), &updated); err != nil {
		http.Error(w, "could not update user", http.StatusInternalServerError)
		return
	}

	u, err := h.Repository.FindByID(h.DB, uint(id))
	if err != nil {
		http.Error(w, "user not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(toDTO(*u))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if !h.canAccess(r, uint(id)) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if err := h.Repository.Delete(h.DB, uint(id)); err != nil {
		http.Error(w, "could not delete user", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// canAccess allows admins everywhere and everyone else on their own record.
func (h *Handler) canAccess(r *http.Request, id uint) bool {
	return auth.IsAdminFromContext(r.Context()) || auth.UserIDFromContext(r.Context()) == id
}
