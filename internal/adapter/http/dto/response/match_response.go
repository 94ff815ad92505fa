package response

import "cleaning_assignments/internal/domain/entities"

type CandidateResponse struct {
	ProviderID string  `json:"provider_id"`
	Name       string  `json:"name,omitempty"`
	Rating     float64 `json:"rating"`
	Distance   float64 `json:"distance"`
	Score      float64 `json:"score"`
}

type MatchResponse struct {
	Matched    bool                `json:"matched"`
	Provider   *CandidateResponse  `json:"provider,omitempty"`
	Candidates []CandidateResponse `json:"candidates"`
}

// FromRanking expects candidates best first; the head is the match.
func FromRanking(ranked []entities.ScoredCandidate) MatchResponse {
	res := MatchResponse{Candidates: make([]CandidateResponse, 0, len(ranked))}
	for _, c := range ranked {
		res.Candidates = append(res.Candidates, CandidateResponse{
			ProviderID: c.ProviderID,
			Name:       c.Name,
			Rating:     c.Rating,
			Distance:   c.Distance,
			Score:      c.Score,
		})
	}
	if len(res.Candidates) > 0 {
		best := res.Candidates[0]
		res.Matched = true
		res.Provider = &best
	}
	return res
}
