package tag

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, t *Tag) error
	FindByID(db *gorm.DB, id uint) (*Tag, error)
	ListAll(db *gorm.DB) ([]Tag, error)
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, t *Tag) error {
	return db.Create(t).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Tag, error) {
	var t Tag
	err := db.First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Tag, error) {
	var tags []Tag
	err := db.Order("name").Find(&tags).Error
	return tags, err
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Tag{}, id).Error
}
