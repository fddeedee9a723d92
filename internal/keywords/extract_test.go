package keywords

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAnnotator splits on spaces and lemmatizes via a fixed table, so tests
// are deterministic and independent of the real NLP stack.
type fakeAnnotator struct {
	lemmas map[string]string
	tags   map[string]string
}

func (f *fakeAnnotator) Annotate(text string) ([]Token, error) {
	var tokens []Token
	cursor := 0
	for _, field := range strings.Fields(text) {
		start := strings.Index(text[cursor:], field) + cursor
		cursor = start + len(field)

		lower := strings.ToLower(field)
		lemma := lower
		if l, ok := f.lemmas[lower]; ok {
			lemma = l
		}
		tokens = append(tokens, Token{Text: field, Lemma: lemma, Tag: f.tags[lower], Start: start})
	}
	return tokens, nil
}

func newTestAnnotator() *fakeAnnotator {
	return &fakeAnnotator{
		lemmas: map[string]string{
			"engineering": "engineer",
			"engineers":   "engineer",
			"pipelines":   "pipeline",
			"designed":    "design",
		},
		tags: map[string]string{},
	}
}

func newTestExtractor(t *testing.T, phrases []string) *Extractor {
	t.Helper()
	annotator := newTestAnnotator()
	gazetteer, err := NewGazetteer(phrases, annotator)
	require.NoError(t, err)
	return NewExtractor(annotator, gazetteer)
}

func TestExtract_OneEntryPerDistinctLemma(t *testing.T) {
	x := newTestExtractor(t, []string{"engineer", "python"})

	entries, err := x.Extract("engineering engineers python engineer")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	byLemma := map[string]int{}
	for _, e := range entries {
		byLemma[e.Lemma]++
	}
	assert.Equal(t, map[string]int{"engineer": 1, "python": 1}, byLemma)
}

func TestExtract_CountsAndFormCounts(t *testing.T) {
	x := newTestExtractor(t, []string{"engineer"})

	entries, err := x.Extract("engineering engineers engineering Engineer")
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, "engineer", e.Lemma)
	assert.Equal(t, 4, e.Count)
	assert.Equal(t, "engineering", e.DisplayForm)

	sum := 0
	for _, c := range e.FormCounts {
		sum += c
	}
	assert.Equal(t, e.Count, sum)
}

func TestExtract_MultiWordPhrase(t *testing.T) {
	x := newTestExtractor(t, []string{"machine learning", "learning"})

	entries, err := x.Extract("applied machine learning models")
	require.NoError(t, err)

	lemmas := map[string]bool{}
	for _, e := range entries {
		lemmas[e.Lemma] = true
	}
	// Both the phrase and its overlapping single word are reported.
	assert.True(t, lemmas["machine learning"])
	assert.True(t, lemmas["learning"])
}

func TestExtract_SnippetWindow(t *testing.T) {
	annotator := newTestAnnotator()
	gazetteer, err := NewGazetteer([]string{"python"}, annotator)
	require.NoError(t, err)
	x := NewExtractor(annotator, gazetteer, WithSnippetWidth(10))

	text := "aaaa bbbb cccc python dddd eeee ffff"
	entries, err := x.Extract(text)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	snippet := entries[0].Snippet
	assert.Contains(t, snippet, "python")
	assert.LessOrEqual(t, len(snippet), 20+len("")) // at most width on each side
}

func TestExtract_SnippetFrozenAtFirstOccurrence(t *testing.T) {
	x := newTestExtractor(t, []string{"python"})

	entries, err := x.Extract("first python mention and later another python here")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Snippet, "first python")
}

func TestExtract_EmptyText(t *testing.T) {
	x := newTestExtractor(t, []string{"python"})

	entries, err := x.Extract("   ")
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestExtract_SingleTokenPOSFilter(t *testing.T) {
	annotator := newTestAnnotator()
	annotator.tags["lead"] = "VB"
	annotator.tags["the"] = "DT"
	gazetteer, err := NewGazetteer([]string{"lead", "the"}, annotator)
	require.NoError(t, err)
	x := NewExtractor(annotator, gazetteer)

	entries, err := x.Extract("the lead")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "lead", entries[0].Lemma)
}

func TestGazetteer_MatchTokens(t *testing.T) {
	annotator := newTestAnnotator()
	g, err := NewGazetteer([]string{"data pipeline", "pipeline"}, annotator)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Size())

	tokens, err := annotator.Annotate("data pipelines everywhere")
	require.NoError(t, err)

	matches := g.MatchTokens(tokens)
	require.Len(t, matches, 2)
	assert.Equal(t, Match{Start: 0, End: 2}, matches[0]) // data pipeline
	assert.Equal(t, Match{Start: 1, End: 2}, matches[1]) // pipeline
}

func TestGazetteer_DuplicatePhrasesCollapse(t *testing.T) {
	annotator := newTestAnnotator()
	g, err := NewGazetteer([]string{"engineer", "engineering", "Engineer"}, annotator)
	require.NoError(t, err)
	// All three share the lemma "engineer".
	assert.Equal(t, 1, g.Size())
}
