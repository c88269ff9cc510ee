package playlist

import (
	"gorm.io/gorm"

	"github.com/soundstack/api-music/internal/track"
)

type Playlist struct {
	gorm.Model
	Name    string        `json:"name" gorm:"not null"`
	OwnerID uint          `json:"ownerId" gorm:"index;not null"`
	Tracks  []track.Track `json:"tracks,omitempty" gorm:"many2many:playlist_tracks"`
}
