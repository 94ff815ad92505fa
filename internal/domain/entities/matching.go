package entities

const (
	RatingWeight   = 0.7
	DistanceWeight = 0.3
)

// MatchCriteria is the job window handed to the availability index.
type MatchCriteria struct {
	ServiceDate string `json:"service_date"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	ZipCode     string `json:"zip_code"`
	ServiceID   string `json:"service_id"`
}

// Candidate is a cleaner returned by the availability index. Distance is in
// index-specific units, lower is closer.
type Candidate struct {
	ProviderID string  `json:"provider_id"`
	Name       string  `json:"name,omitempty"`
	Rating     float64 `json:"rating"`
	Distance   float64 `json:"distance"`
}

// Score rewards rating and penalizes distance.
func (c Candidate) Score() float64 {
	return RatingWeight*c.Rating - DistanceWeight*c.Distance
}

type ScoredCandidate struct {
	Candidate
	Score float64 `json:"score"`
}
