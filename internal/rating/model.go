package rating

import "gorm.io/gorm"

// Rating is one user's score for one track. The (user, track) pair is
// unique; rating again replaces the score.
type Rating struct {
	gorm.Model
	UserID  uint `json:"userId" gorm:"uniqueIndex:idx_user_track;not null"`
	TrackID uint `json:"trackId" gorm:"uniqueIndex:idx_user_track;not null"`
	Score   int  `json:"score" gorm:"not null"`
}
