package playlist

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/soundstack/api-music/internal/tag"
	"github.com/soundstack/api-music/internal/track"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&tag.Tag{}, &track.Track{}, &Playlist{}))
	return db
}

func TestAddAndRemoveTrack(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	tr := track.Track{Title: "Intro", AlbumID: 1}
	require.NoError(t, db.Create(&tr).Error)

	p := Playlist{Name: "Morning", OwnerID: 1}
	require.NoError(t, repo.Create(db, &p))

	require.NoError(t, repo.AddTrack(db, p.ID, tr.ID))

	got, err := repo.FindByID(db, p.ID)
	require.NoError(t, err)
	require.Len(t, got.Tracks, 1)
	require.Equal(t, "Intro", got.Tracks[0].Title)

	require.NoError(t, repo.RemoveTrack(db, p.ID, tr.ID))

	got, err = repo.FindByID(db, p.ID)
	require.NoError(t, err)
	require.Empty(t, got.Tracks)
}

func TestAddTrackUnknownIDs(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	p := Playlist{Name: "Morning", OwnerID: 1}
	require.NoError(t, repo.Create(db, &p))

	require.Error(t, repo.AddTrack(db, p.ID, 999))
	require.Error(t, repo.AddTrack(db, 999, 1))
}

func TestListByOwner(t *testing.T) {
	db := newTestDB(t)
	repo := NewRepository()

	require.NoError(t, repo.Create(db, &Playlist{Name: "A", OwnerID: 1}))
	require.NoError(t, repo.Create(db, &Playlist{Name: "B", OwnerID: 1}))
	require.NoError(t, repo.Create(db, &Playlist{Name: "C", OwnerID: 2}))

	mine, err := repo.ListByOwner(db, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)

	theirs, err := repo.ListByOwner(db, 2)
	require.NoError(t, err)
	require.Len(t, theirs, 1)
	require.Equal(t, "C", theirs[0].Name)
}
