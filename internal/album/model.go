package album

import (
	"gorm.io/gorm"

	"github.com/soundstack/api-music/internal/track"
)

type Album struct {
	gorm.Model
	Title    string        `json:"title" gorm:"not null"`
	Year     int           `json:"year"`
	ArtistID uint          `json:"artistId" gorm:"index;not null"`
	GenreID  *uint         `json:"genreId" gorm:"index"`
	Tracks   []track.Track `json:"tracks,omitempty" gorm:"foreignKey:AlbumID"`
}
