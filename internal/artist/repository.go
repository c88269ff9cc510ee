package artist

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, a *Artist) error
	FindByID(db *gorm.DB, id uint) (*Artist, error)
	ListAll(db *gorm.DB) ([]Artist, error)
	Update(db *gorm.DB, id uint, updated *Artist) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, a *Artist) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Artist, error) {
	var a Artist
	err := db.Preload("Albums.Tracks").First(&a, id).Error
	return &a, err
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Artist, error) {
	var artists []Artist
	err := db.Preload("Albums").Find(&artists).Error
	return artists, err
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, updated *Artist) error {
	var existing Artist
	if err := db.First(&existing, id).Error; err != nil {
		return err
	}

	existing.Name = updated.Name
	existing.Country = updated.Country
	existing.Bio = updated.Bio

	return db.Save(&existing).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Artist{}, id).Error
}
