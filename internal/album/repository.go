package album

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, a *Album) error
	FindByID(db *gorm.DB, id uint) (*Album, error)
	ListAll(db *gorm.DB) ([]Album, error)
	ListByArtist(db *gorm.DB, artistID uint) ([]Album, error)
	Update(db *gorm.DB, id uint, updated *Album) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, a *Album) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Album, error) {
	var a Album
	err := db.Preload("Tracks").First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Album, error) {
	var albums []Album
	err := db.Preload("Tracks").Find(&albums).Error
	return albums, err
}

func (r *repositoryImpl) ListByArtist(db *gorm.DB, artistID uint) ([]Album, error) {
	var albums []Album
	err := db.Preload("Tracks").Where("artist_id = ?", artistID).Find(&albums).Error
	return albums, err
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, updated *Album) error {
	var existing Album
	if err := db.First(&existing, id).Error; err != nil {
		return err
	}

	existing.Title = updated.Title
	existing.Year = updated.Year
	existing.GenreID = updated.GenreID

	return db.Save(&existing).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Album{}, id).Error
}
