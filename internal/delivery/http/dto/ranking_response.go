package dto

import "cv-smart-hire/internal/domain/ranking"

type RankingEntryResponse struct {
	Candidate  CandidateResponse `json:"candidate"`
	MatchScore int               `json:"matchScore"`
}

func NewRankingResponses(items []ranking.RankedCandidate) []RankingEntryResponse {
	out := make([]RankingEntryResponse, 0, len(items))
	for _, rc := range items {
		out = append(out, RankingEntryResponse{
			Candidate:  NewCandidateResponse(rc.Candidate),
			MatchScore: rc.Score,
		})
	}
	return out
}
