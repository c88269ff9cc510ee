package track

import "github.com/soundstack/api-music/internal/tag"

type TrackDetailDTO struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	DurationSec   int       `json:"durationSec"`
	Position      int       `json:"position"`
	AlbumID       uint      `json:"albumId"`
	Tags          []tag.Tag `json:"tags"`
	AverageRating float64   `json:"averageRating"`
	RatingCount   int64     `json:"ratingCount"`
}

func toDetailDTO(t Track, avg float64, count int64) TrackDetailDTO {
	tags := t.Tags
	if tags == nil {
		tags = []tag.Tag{}
	}
	return TrackDetailDTO{
		ID:            t.ID,
		Title:         t.Title,
		DurationSec:   t.DurationSec,
		Position:      t.Position,
		AlbumID:       t.AlbumID,
		Tags:          tags,
		AverageRating: avg,
		RatingCount:   count,
	}
}
