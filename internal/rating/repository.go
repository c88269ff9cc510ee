package rating

import (
	"errors"

	"gorm.io/gorm"
)

type Repository interface {
	// Upsert creates the rating or replaces the score when the user already
	// rated the track.
	Upsert(db *gorm.DB, rt *Rating) error
	ListByTrack(db *gorm.DB, trackID uint) ([]Rating, error)
	StatsByTrack(db *gorm.DB, trackID uint) (TrackStatsDTO, error)
	Delete(db *gorm.DB, userID, trackID uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Upsert(db *gorm.DB, rt *Rating) error {
	var existing Rating
	err := db.Where("user_id = ? AND track_id = ?", rt.UserID, rt.TrackID).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(rt).Error
	}
	if err != nil {
		return err
	}
	existing.Score = rt.Score
	*rt = existing
	return db.Save(&existing).Error
}

func (r *repositoryImpl) ListByTrack(db *gorm.DB, trackID uint) ([]Rating, error) {
	var ratings []Rating
	err := db.Where("track_id = ?", trackID).Find(&ratings).Error
	return ratings, err
}

func (r *repositoryImpl) StatsByTrack(db *gorm.DB, trackID uint) (TrackStatsDTO, error) {
	stats := TrackStatsDTO{TrackID: trackID}
	err := db.Model(&Rating{}).
		Where("track_id = ?", trackID).
		Select("COALESCE(AVG(score), 0) AS average, COUNT(*) AS count").
		Scan(&stats).Error
	return stats, err
}

func (r *repositoryImpl) Delete(db *gorm.DB, userID, trackID uint) error {
	return db.Where("user_id = ? AND track_id = ?", userID, trackID).Delete(&Rating{}).Error
}
