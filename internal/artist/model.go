package artist

import (
	"gorm.io/gorm"

	"github.com/soundstack/api-music/internal/album"
)

type Artist struct {
	gorm.Model
	Name    string        `json:"name" gorm:"index"`
	Country string        `json:"country"`
	Bio     string        `json:"bio"`
	Albums  []album.Album `json:"albums,omitempty" gorm:"foreignKey:ArtistID"`
}
