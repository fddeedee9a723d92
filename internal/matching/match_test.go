package matching

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/types"
)

type fakeClient struct {
	response   string
	err        error
	lastPrompt string
	calls      int
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateJSON(ctx, prompt, tier)
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("not supported")
}

func (f *fakeClient) GetModel(tier llm.ModelTier) string { return "fake" }
func (f *fakeClient) Close() error                       { return nil }

func entries(lemmas ...string) []*types.KeywordEntry {
	result := make([]*types.KeywordEntry, 0, len(lemmas))
	for _, lemma := range lemmas {
		result = append(result, types.NewKeywordEntry(lemma, lemma, ""))
	}
	return result
}

func TestMatchExactOnly(t *testing.T) {
	job := entries("python", "sql", "docker", "kubernetes")
	resume := entries("python", "sql", "terraform")

	result := Match(context.Background(), nil, job, resume)

	assert.Equal(t, map[string]int{"python": 1, "sql": 1}, result.Matched)
	assert.Equal(t, []string{"docker", "kubernetes"}, types.Lemmas(result.Unmatched))
	assert.Equal(t, 50, result.Score)
}

func TestMatchSkipsSemanticPhaseWhenAllExact(t *testing.T) {
	client := &fakeClient{response: "[]"}
	result := Match(context.Background(), client, entries("python"), entries("python"))

	assert.Equal(t, 100, result.Score)
	assert.Zero(t, client.calls, "no unmatched keywords, oracle should not be consulted")
}

func TestMatchSemanticPhase(t *testing.T) {
	client := &fakeClient{
		response: `[{"job_keyword":"pipe","resume_keyword":"piping"}]`,
	}
	job := entries("pipe", "hazop")
	resume := entries("piping", "hazop")

	result := Match(context.Background(), client, job, resume)

	assert.Equal(t, map[string]int{"hazop": 1, "pipe": 1}, result.Matched)
	assert.Empty(t, result.Unmatched)
	assert.Equal(t, 100, result.Score)
	assert.Contains(t, client.lastPrompt, "pipe")
	assert.NotContains(t, strings.Split(client.lastPrompt, "Resume Keywords")[0], "hazop",
		"already-matched lemmas must not be sent as unmatched")
}

func TestMatchIgnoresInventedJobKeywords(t *testing.T) {
	client := &fakeClient{
		response: `[{"job_keyword":"golang","resume_keyword":"go"},{"job_keyword":"pipe","resume_keyword":"piping"}]`,
	}
	result := Match(context.Background(), client, entries("pipe"), entries("piping"))

	assert.Equal(t, map[string]int{"pipe": 1}, result.Matched)
	assert.Equal(t, 100, result.Score)
}

func TestMatchOracleFailureKeepsExactMatches(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exceeded")}
	job := entries("python", "docker")
	resume := entries("python")

	result := Match(context.Background(), client, job, resume)

	assert.Equal(t, map[string]int{"python": 1}, result.Matched)
	assert.Equal(t, []string{"docker"}, types.Lemmas(result.Unmatched))
	assert.Equal(t, 50, result.Score)
}

func TestMatchMalformedOracleOutput(t *testing.T) {
	client := &fakeClient{response: "sure! here are the matches: pipe -> piping"}
	result := Match(context.Background(), client, entries("pipe"), entries("piping"))

	assert.Empty(t, result.Matched)
	assert.Equal(t, 0, result.Score)
}

func TestMatchFencedOracleOutput(t *testing.T) {
	client := &fakeClient{
		response: "```json\n[{\"job_keyword\":\"design\",\"resume_keyword\":\"designed\"}]\n```",
	}
	result := Match(context.Background(), client, entries("design"), entries("designed"))

	assert.Equal(t, 100, result.Score)
}

func TestMatchZeroJobKeywords(t *testing.T) {
	result := Match(context.Background(), nil, nil, entries("python"))

	require.NotNil(t, result)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Unmatched)
	assert.Equal(t, 0, result.Score)
}

func TestMatchIdempotentPerLemma(t *testing.T) {
	// The same lemma appearing in both lists contributes weight 1, not its
	// occurrence count.
	job := entries("python", "sql")
	job[0].Observe("Python")
	job[0].Observe("python")

	result := Match(context.Background(), nil, job, entries("python", "sql"))

	assert.Equal(t, 1, result.Matched["python"])
	assert.Equal(t, 100, result.Score)
}
