package media

import "gorm.io/gorm"

const (
	KindCover = "cover"
	KindAudio = "audio"
)

// Media is a file attached to an album or a track. The bytes themselves
// live in object storage under StorageKey; only metadata is kept here.
type Media struct {
	gorm.Model
	Kind        string `json:"kind" gorm:"not null"`
	FileName    string `json:"fileName"`
	ContentType string `json:"contentType"`
	StorageKey  string `json:"storageKey" gorm:"uniqueIndex;size:36"`
	AlbumID     *uint  `json:"albumId" gorm:"index"`
	TrackID     *uint  `json:"trackId" gorm:"index"`
}
