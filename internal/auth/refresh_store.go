package auth

import (
	"time"

	"gorm.io/gorm"
)

// RefreshStore persists refresh tokens. All methods take the *gorm.DB so the
// rotation service can run them inside a single transaction.
type RefreshStore interface {
	Find(db *gorm.DB, token string) (*RefreshToken, error)
	Save(db *gorm.DB, rt *RefreshToken) error
	// Delete removes the row for the given token string and returns how many
	// rows went away. Zero means someone else deleted it first.
	Delete(db *gorm.DB, token string) (int64, error)
	// DeleteExpiredBefore removes every token with expires_at <= now and
	// returns the count.
	DeleteExpiredBefore(db *gorm.DB, now time.Time) (int64, error)
	ListByUser(db *gorm.DB, userID uint) ([]RefreshToken, error)
}

type refreshStoreImpl struct{}

func NewRefreshStore() RefreshStore {
	return &refreshStoreImpl{}
}

func (s *refreshStoreImpl) Find(db *gorm.DB, token string) (*RefreshToken, error) {
	var rt RefreshToken
	if err := db.Where("token = ?", token).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

func (s *refreshStoreImpl) Save(db *gorm.DB, rt *RefreshToken) error {
	return db.Create(rt).Error
}

func (s *refreshStoreImpl) Delete(db *gorm.DB, token string) (int64, error) {
	res := db.Where("token = ?", token).Delete(&RefreshToken{})
	return res.RowsAffected, res.Error
}

func (s *refreshStoreImpl) DeleteExpiredBefore(db *gorm.DB, now time.Time) (int64, error) {
	res := db.Where("expires_at <= ?", now).Delete(&RefreshToken{})
	return res.RowsAffected, res.Error
}

func (s *refreshStoreImpl) ListByUser(db *gorm.DB, userID uint) ([]RefreshToken, error) {
	var tokens []RefreshToken
	err := db.Where("user_id = ?", userID).Order("created_at").Find(&tokens).Error
	return tokens, err
}
