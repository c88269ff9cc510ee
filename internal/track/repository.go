package track

import (
	"gorm.io/gorm"

	"github.com/soundstack/api-music/internal/tag"
)

type Repository interface {
	Create(db *gorm.DB, t *Track) error
	FindByID(db *gorm.DB, id uint) (*Track, error)
	ListByAlbum(db *gorm.DB, albumID uint) ([]Track, error)
	ListAll(db *gorm.DB) ([]Track, error)
	Update(db *gorm.DB, id uint, updated *Track) error
	Delete(db *gorm.DB, id uint) error
	AddTag(db *gorm.DB, trackID, tagID uint) error
	RemoveTag(db *gorm.DB, trackID, tagID uint) error
	// RatingStats sums up the ratings table for one track.
	RatingStats(db *gorm.DB, trackID uint) (avg float64, count int64, err error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, t *Track) error {
	return db.Create(t).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Track, error) {
	var t Track
	err := db.Preload("Tags").First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) ListByAlbum(db *gorm.DB, albumID uint) ([]Track, error) {
	var tracks []Track
	err := db.Where("album_id = ?", albumID).Order("position").Find(&tracks).Error
	return tracks, err
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Track, error) {
	var tracks []Track
	err := db.Preload("Tags").Find(&tracks).Error
	return tracks, err
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, updated *Track) error {
	var existing Track
	if err := db.First(&existing, id).Error; err != nil {
		return err
	}

	existing.Title = updated.Title
	existing.DurationSec = updated.DurationSec
	existing.Position = updated.Position

	return db.Save(&existing).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Track{}, id).Error
}

func (r *repositoryImpl) AddTag(db *gorm.DB, trackID, tagID uint) error {
	var t Track
	if err := db.First(&t, trackID).Error; err != nil {
		return err
	}
	var tg tag.Tag
	if err := db.First(&tg, tagID).Error; err != nil {
		return err
	}
	return db.Model(&t).Association("Tags").Append(&tg)
}

func (r *repositoryImpl) RemoveTag(db *gorm.DB, trackID, tagID uint) error {
	var t Track
	if err := db.First(&t, trackID).Error; err != nil {
		return err
	}
	return db.Model(&t).Association("Tags").Delete(&tag.Tag{Model: gorm.Model{ID: tagID}})
}

func (r *repositoryImpl) RatingStats(db *gorm.DB, trackID uint) (float64, int64, error) {
	var stats struct {
		Avg   float64
		Count int64
	}
	err := db.Table("ratings").
		Where("track_id = ? AND deleted_at IS NULL", trackID).
		Select("COALESCE(AVG(score), 0) AS avg, COUNT(*) AS count").
		Scan(&stats).Error
	return stats.Avg, stats.Count, err
}
