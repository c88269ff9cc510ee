package auth

import "time"

// RefreshTTL is the fixed lifetime of a refresh token.
const RefreshTTL = 30 * 24 * time.Hour

// RefreshToken is one long-lived session credential. Rows are immutable:
// rotation and expiry remove them, nothing ever updates them.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	Token     string    `gorm:"uniqueIndex;size:128"`
	IsAdmin   bool      // role carried over so refresh can re-mint equivalent access tokens
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
}

func (RefreshToken) TableName() string {
	return "refresh_tokens"
}

// Expired reports whether the token is past its lifetime. A token expiring
// exactly at now counts as expired.
func (t *RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
