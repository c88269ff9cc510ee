package genre

import "gorm.io/gorm"

type Repository interface {
	Create(db *gorm.DB, g *Genre) error
	FindByID(db *gorm.DB, id uint) (*Genre, error)
	ListAll(db *gorm.DB) ([]Genre, error)
	Update(db *gorm.DB, id uint, name string) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Create(db *gorm.DB, g *Genre) error {
	return db.Create(g).Error
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*Genre, error) {
	var g Genre
	err := db.First(&g, id).Error
	return &g, err
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]Genre, error) {
	var genres []Genre
	err := db.Order("name").Find(&genres).Error
	return genres, err
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, name string) error {
	return db.Model(&Genre{}).Where("id = ?", id).Update("name", name).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&Genre{}, id).Error
}
