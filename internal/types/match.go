package types

import "math"

// MatchResult is the outcome of matching job keywords against resume keywords.
type MatchResult struct {
	// Matched maps a matched job lemma to its match weight (always 1;
	// matching is idempotent per lemma).
	Matched map[string]int `json:"matched"`
	// Unmatched holds the job keywords left unmatched after both phases,
	// in original job-keyword order.
	Unmatched []*KeywordEntry `json:"unmatched"`
	// Score is the display score: round(100 * |matched| / max(|job|, 1)).
	Score int `json:"score"`
}

// ScorePercent computes the display score for a match state. A job with zero
// keywords scores 0 rather than dividing by zero.
func ScorePercent(matchedCount, jobKeywordCount int) int {
	if jobKeywordCount < 1 {
		jobKeywordCount = 1
	}
	return int(math.Round(100 * float64(matchedCount) / float64(jobKeywordCount)))
}
