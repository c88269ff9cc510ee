package media

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, m *Media) error
	FindByID(db *gorm.DB, id uint) (*Media, error)
	ListByAlbum(db *gorm.DB, albumID uint) ([]Media, error)
	ListByTrack(db *gorm.DB, trackID uint) ([]Media, error)
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, m *Media) error {
	return db.Create(m).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Media, error) {
	var m Media
	err := db.First(&m, id).Error
	return &m, err
}

func (r *repositoryImpl) ListByAlbum(db *gorm.DB, albumID uint) ([]Media, error) {
	var list []Media
	err := db.Where("album_id = ?", albumID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) ListByTrack(db *gorm.DB, trackID uint) ([]Media, error) {
	var list []Media
	err := db.Where("track_id = ?", trackID).Find(&list).Error
	return list, err
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Media{}, id).Error
}
