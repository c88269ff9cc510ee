package track

import (
	"gorm.io/gorm"

	"github.com/soundstack/api-music/internal/tag"
)

type Track struct {
	gorm.Model
	Title       string    `json:"title" gorm:"not null"`
	DurationSec int       `json:"durationSec"`
	Position    int       `json:"position"`
	AlbumID     uint      `json:"albumId" gorm:"index;not null"`
	Tags        []tag.Tag `json:"tags,omitempty" gorm:"many2many:track_tags"`
}
