package keywords

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// DefaultSnippetWidth is the context window captured on each side of a
// keyword's first occurrence, in bytes.
const DefaultSnippetWidth = 40

// contentTags are the POS tag prefixes accepted for single-token matches:
// nouns, proper nouns, verbs, and adjectives.
var contentTags = []string{"NN", "VB", "JJ"}

// Extractor runs linguistic annotation and gazetteer phrase matching over
// normalized text, producing a deduplicated, frequency-tracked keyword set.
type Extractor struct {
	annotator    Annotator
	gazetteer    *Gazetteer
	snippetWidth int
}

// ExtractorOption customizes an Extractor.
type ExtractorOption func(*Extractor)

// WithSnippetWidth overrides the snippet context window width.
func WithSnippetWidth(width int) ExtractorOption {
	return func(x *Extractor) {
		if width >= 0 {
			x.snippetWidth = width
		}
	}
}

// NewExtractor creates a keyword extractor over the given annotator and
// gazetteer.
func NewExtractor(annotator Annotator, gazetteer *Gazetteer, opts ...ExtractorOption) *Extractor {
	x := &Extractor{
		annotator:    annotator,
		gazetteer:    gazetteer,
		snippetWidth: DefaultSnippetWidth,
	}
	for _, opt := range opts {
		opt(x)
	}
	return x
}

// Extract annotates the text and collects one KeywordEntry per distinct
// matched lemma. Counts accumulate across surface forms; the display form
// tracks the most frequent form; the snippet is frozen at first occurrence.
// Entries are returned in first-seen order.
func (x *Extractor) Extract(text string) ([]*types.KeywordEntry, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	tokens, err := x.annotator.Annotate(text)
	if err != nil {
		return nil, err
	}

	byLemma := make(map[string]*types.KeywordEntry)
	var order []*types.KeywordEntry

	for _, match := range x.gazetteer.MatchTokens(tokens) {
		span := tokens[match.Start:match.End]
		if len(span) == 1 && !isContentToken(span[0]) {
			continue
		}

		lemma := joinLemmas(span)
		form := strings.ToLower(surfaceForm(text, span))

		if entry, seen := byLemma[lemma]; seen {
			entry.Observe(form)
			continue
		}

		entry := types.NewKeywordEntry(lemma, form, x.snippet(text, span[0].Start))
		byLemma[lemma] = entry
		order = append(order, entry)
	}

	return order, nil
}

// isContentToken keeps single-word matches only when the annotator tagged
// them as content words. Untagged tokens pass through.
func isContentToken(tok Token) bool {
	if tok.Tag == "" {
		return true
	}
	for _, prefix := range contentTags {
		if strings.HasPrefix(tok.Tag, prefix) {
			return true
		}
	}
	return false
}

func joinLemmas(span []Token) string {
	lemmas := make([]string, len(span))
	for i, tok := range span {
		lemmas[i] = tok.Lemma
	}
	return strings.Join(lemmas, " ")
}

func surfaceForm(text string, span []Token) string {
	first := span[0]
	last := span[len(span)-1]
	return text[first.Start : last.Start+len(last.Text)]
}

// snippet captures the context window around a match's start offset.
func (x *Extractor) snippet(text string, start int) string {
	lo := start - x.snippetWidth
	if lo < 0 {
		lo = 0
	}
	hi := start + x.snippetWidth
	if hi > len(text) {
		hi = len(text)
	}
	return strings.TrimSpace(text[lo:hi])
}
