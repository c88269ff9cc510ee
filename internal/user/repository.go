package user

import "gorm.io/gorm"

type Repository interface {
	FindByEmail(db *gorm.DB, email string) (*User, error)
	FindByID(db *gorm.DB, id uint) (*User, error)
	Save(db *gorm.DB, u *User) error
	ListAll(db *gorm.DB) ([]User, error)
	Update(db *gorm.DB, id uint, updated *User) error
	Delete(db *gorm.DB, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) FindByEmail(db *gorm.DB, email string) (*User, error) {
	var u User
	if err := db.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) FindByID(db *gorm.DB, id uint) (*User, error) {
	var u User
	if err := db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repositoryImpl) Save(db *gorm.DB, u *User) error {
	return db.Save(u).Error
}

func (r *repositoryImpl) ListAll(db *gorm.DB) ([]User, error) {
	var users []User
	err := db.Find(&users).Error
	return users, err
}

func (r *repositoryImpl) Update(db *gorm.DB, id uint, updated *User) error {
	var existing User
	if err := db.First(&existing, id).Error; err != nil {
		return err
	}

	existing.Name = updated.Name
	existing.Email = updated.Email

	return db.Save(&existing).Error
}

func (r *repositoryImpl) Delete(db *gorm.DB, id uint) error {
	return db.Delete(&User{}, id).Error
}
