package user

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soundstack/api-music/internal/auth"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&User{}, &auth.RefreshToken{}))
	return NewHandler(db, auth.NewRefreshService())
}

func register(t *testing.T, h *Handler, email, password string) {
	t.Helper()
	body := `{"name":"Test","email":"` + email + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Register(rr, req)
	require.Equal(t, http.StatusCreated, rr.Code)
}

func login(t *testing.T, h *Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	body := `{"email":"` + email + `","password":"` + password + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rr := httptest.NewRecorder()
	h.Login(rr, req)
	return rr
}

func TestRegisterAndLogin(t *testing.T) {
	h := newTestHandler(t)
	register(t, h, "ana@example.com", "secret123")

	rr := login(t, h, "ana@example.com", "secret123")
	require.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
	require.NotEmpty(t, payload["token"])

	refresh, ok := payload["refresh_token"].(string)
	require.True(t, ok, "login response must carry the first refresh token")
	require.Len(t, refresh, 128)

	claims, err := auth.ParseAndValidate(payload["token"].(string))
	require.NoError(t, err)
	require.False(t, claims.IsAdmin)
}

func TestLoginWrongPassword(t *testing.T) {
	h := newTestHandler(t)
	register(t, h, "ana@example.com", "secret123")

	rr := login(t, h, "ana@example.com", "wrong")
	require.Equal(t, http.StatusUnauthorized, rr.Code)

	// unknown account gets the same answer
	rr = login(t, h, "nobody@example.com", "secret123")
	require.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLoginThenRotateSession(t *testing.T) {
	h := newTestHandler(t)
	register(t, h, "ana@example.com", "secret123")

	rr := login(t, h, "ana@example.com", "secret123")
	require.Equal(t, http.StatusOK, rr.Code)

	var payload map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&payload))
	t1 := payload["refresh_token"].(string)

	refresh := auth.RefreshHTTPHandler(h.DB, h.Refresh)

	req := httptest.NewRequest(http.MethodPost, "/api/token/refresh",
		strings.NewReader(`{"refresh_token":"`+t1+`"}`))
	rec := httptest.NewRecorder()
	refresh(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var rotated map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rotated))
	require.NotEqual(t, t1, rotated["refresh_token"])
	require.NotEmpty(t, rotated["token"])

	// the original token is gone for good
	req = httptest.NewRequest(http.MethodPost, "/api/token/refresh",
		strings.NewReader(`{"refresh_token":"`+t1+`"}`))
	rec = httptest.NewRecorder()
	refresh(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
