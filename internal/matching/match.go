// Package matching scores a resume against a job posting's keywords. Exact
// lemma matching runs first; keywords it misses get a second pass through
// the LLM, which can recognize semantic variants exact matching cannot.
package matching

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/types"
)

// equivalence is one semantic pairing proposed by the LLM.
type equivalence struct {
	JobKeyword    string `json:"job_keyword"`
	ResumeKeyword string `json:"resume_keyword"`
}

// Match runs both matching phases and returns the result. A nil client
// skips the semantic phase, as does any oracle or decode failure; exact
// matches are never at risk from a failing second phase.
func Match(ctx context.Context, client llm.Client, jobKeywords, resumeKeywords []*types.KeywordEntry) *types.MatchResult {
	resumeLemmas := make(map[string]struct{}, len(resumeKeywords))
	for _, entry := range resumeKeywords {
		resumeLemmas[entry.Lemma] = struct{}{}
	}

	matched := make(map[string]int)
	var unmatched []*types.KeywordEntry
	for _, entry := range jobKeywords {
		if _, ok := resumeLemmas[entry.Lemma]; ok {
			matched[entry.Lemma] = 1
		} else {
			unmatched = append(unmatched, entry)
		}
	}

	if len(unmatched) > 0 && client != nil {
		for _, jobLemma := range semanticMatches(ctx, client, unmatched, resumeKeywords) {
			matched[jobLemma] = 1
		}
		unmatched = filterMatched(unmatched, matched)
	}

	return &types.MatchResult{
		Matched:   matched,
		Unmatched: unmatched,
		Score:     types.ScorePercent(len(matched), len(jobKeywords)),
	}
}

// semanticMatches asks the LLM for equivalences between the unmatched job
// lemmas and the resume lemmas. Pairs naming a job lemma that is not
// actually unmatched are ignored; the oracle does not get to invent
// keywords. Failures return no matches.
func semanticMatches(ctx context.Context, client llm.Client, unmatched, resumeKeywords []*types.KeywordEntry) []string {
	template, err := prompts.Get("matching.json", "semantic_equivalences")
	if err != nil {
		return nil
	}
	prompt := prompts.Format(template, map[string]string{
		"JobLemmas":    strings.Join(types.Lemmas(unmatched), ", "),
		"ResumeLemmas": strings.Join(types.Lemmas(resumeKeywords), ", "),
	})

	response, err := client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return nil
	}

	var pairs []equivalence
	if err := json.Unmarshal([]byte(llm.CleanJSONBlock(response)), &pairs); err != nil {
		return nil
	}

	pending := make(map[string]struct{}, len(unmatched))
	for _, entry := range unmatched {
		pending[entry.Lemma] = struct{}{}
	}

	var lemmas []string
	for _, pair := range pairs {
		jobLemma := strings.ToLower(strings.TrimSpace(pair.JobKeyword))
		if _, ok := pending[jobLemma]; !ok {
			continue
		}
		delete(pending, jobLemma)
		lemmas = append(lemmas, jobLemma)
	}
	return lemmas
}

// filterMatched drops entries whose lemma got matched, preserving order.
func filterMatched(entries []*types.KeywordEntry, matched map[string]int) []*types.KeywordEntry {
	var remaining []*types.KeywordEntry
	for _, entry := range entries {
		if _, ok := matched[entry.Lemma]; !ok {
			remaining = append(remaining, entry)
		}
	}
	return remaining
}
