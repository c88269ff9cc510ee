package album

type AlbumSummaryDTO struct {
	ID         uint   `json:"id"`
	Title      string `json:"title"`
	Year       int    `json:"year"`
	ArtistID   uint   `json:"artistId"`
	GenreID    *uint  `json:"genreId"`
	TrackCount int    `json:"trackCount"`
	TotalSec   int    `json:"totalSec"`
}

func toSummaryDTO(a Album) AlbumSummaryDTO {
	total := 0
	for _, t := range a.Tracks {
		total += t.DurationSec
	}
	return AlbumSummaryDTO{
		ID:         a.ID,
		Title:      a.Title,
		Year:       a.Year,
		ArtistID:   a.ArtistID,
		GenreID:    a.GenreID,
		TrackCount: len(a.Tracks),
		TotalSec:   total,
	}
}

func toSummaryDTOs(list []Album) []AlbumSummaryDTO {
	out := make([]AlbumSummaryDTO, 0, len(list))
	for _, a := range list {
		out = append(out, toSummaryDTO(a))
	}
	return out
}
