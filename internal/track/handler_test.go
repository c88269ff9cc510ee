package track

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soundstack/api-music/internal/rating"
	"github.com/soundstack/api-music/internal/tag"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&tag.Tag{}, &Track{}, &rating.Rating{}))
	return NewHandler(db)
}

func newRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/tracks", h.Create).Methods("POST")
	r.HandleFunc("/api/tracks/{id}", h.GetByID).Methods("GET")
	r.HandleFunc("/api/tracks/{id}/tags/{tagId}", h.AddTag).Methods("POST")
	r.HandleFunc("/api/tracks/{id}/tags/{tagId}", h.RemoveTag).Methods("DELETE")
	return r
}

func TestCreateTrackValidation(t *testing.T) {
	h := newTestHandler(t)
	r := newRouter(h)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/tracks",
		strings.NewReader(`{"durationSec":120}`)))
	require.Equal(t, http.StatusBadRequest, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/tracks",
		strings.NewReader(`{"title":"Intro","albumId":1,"durationSec":120,"position":1}`)))
	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestTrackDetailWithTagsAndStats(t *testing.T) {
	h := newTestHandler(t)
	r := newRouter(h)

	tr := Track{Title: "Intro", AlbumID: 1, DurationSec: 120, Position: 1}
	require.NoError(t, h.DB.Create(&tr).Error)

	tg := tag.Tag{Name: "chill"}
	require.NoError(t, h.DB.Create(&tg).Error)

	require.NoError(t, h.DB.Create(&rating.Rating{UserID: 1, TrackID: tr.ID, Score: 4}).Error)
	require.NoError(t, h.DB.Create(&rating.Rating{UserID: 2, TrackID: tr.ID, Score: 2}).Error)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/tracks/1/tags/1", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tracks/1", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	var dto TrackDetailDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&dto))
	require.Equal(t, "Intro", dto.Title)
	require.Len(t, dto.Tags, 1)
	require.Equal(t, "chill", dto.Tags[0].Name)
	require.EqualValues(t, 2, dto.RatingCount)
	require.InDelta(t, 3.0, dto.AverageRating, 0.001)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/api/tracks/1/tags/1", nil))
	require.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tracks/1", nil))
	var after TrackDetailDTO
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&after))
	require.Empty(t, after.Tags)
}

func TestGetUnknownTrack(t *testing.T) {
	h := newTestHandler(t)
	r := newRouter(h)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tracks/42", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)
}
