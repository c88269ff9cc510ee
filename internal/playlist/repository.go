package playlist

import (
	"gorm.io/gorm"

	"github.com/soundstack/api-music/internal/track"
)

type Repository interface {
	Create(db *gorm.DB, p *Playlist) error
	FindByID(db *gorm.DB, id uint) (*Playlist, error)
	ListByOwner(db *gorm.DB, ownerID uint) ([]Playlist, error)
	Rename(db *gorm.DB, id uint, name string) error
	Delete(db *gorm.DB, id uint) error
	AddTrack(db *gorm.DB, playlistID, trackID uint) error
	RemoveTrack(db *gorm.DB, playlistID, trackID uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, p *Playlist) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Playlist, error) {
	var p Playlist
	err := db.Preload("Tracks").First(&p, id).Error
	return &p, err
}

func (r *repositoryImpl) ListByOwner(db *gorm.DB, ownerID uint) ([]Playlist, error) {
	var playlists []Playlist
	err := db.Preload("Tracks").Where("owner_id = ?", ownerID).Find(&playlists).Error
	return playlists, err
}

func (r *repositoryImpl) Rename(db *gorm.DB, id uint, name string) error {
	return db.Model(&Playlist{}).Where("id = ?", id).Update("name", name).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Playlist{}, id).Error
}

func (r *repositoryImpl) AddTrack(db *gorm.DB, playlistID, trackID uint) error {
	var p Playlist
	if err := db.First(&p, playlistID).Error; err != nil {
		return err
	}
	var t track.Track
	if err := db.First(&t, trackID).Error; err != nil {
		return err
	}
	return db.Model(&p).Association("Tracks").Append(&t)
}

func (r *repositoryImpl) RemoveTrack(db *gorm.DB, playlistID, trackID uint) error {
	var p Playlist
	if err := db.First(&p, playlistID).Error; err != nil {
		return err
	}
	return db.Model(&p).Association("Tracks").Delete(&track.Track{Model: gorm.Model{ID: trackID}})
}
