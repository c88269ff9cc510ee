package rating

type TrackStatsDTO struct {
	TrackID uint    `json:"trackId"`
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}
