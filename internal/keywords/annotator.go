// Package keywords extracts salient keyword and phrase units from normalized
// document text, tracking occurrence counts and surface forms per lemma.
package keywords

import (
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
	prose "github.com/jdkato/prose/v2"
)

// Token is one annotated token of the source text.
type Token struct {
	Text  string // surface form as it appears in the text
	Lemma string // lowercased canonical base form
	Tag   string // Penn Treebank POS tag; empty when the annotator has none
	Start int    // byte offset of the token in the source text
}

// Annotator tokenizes text and assigns lemmas and part-of-speech tags.
// Implementations must return tokens in document order with correct offsets.
type Annotator interface {
	Annotate(text string) ([]Token, error)
}

// EnglishAnnotator is the default Annotator, backed by prose for
// tokenization/tagging and golem for English lemmatization.
type EnglishAnnotator struct {
	lemmatizer *golem.Lemmatizer
}

// NewEnglishAnnotator creates the default English annotator.
func NewEnglishAnnotator() (*EnglishAnnotator, error) {
	lemmatizer, err := golem.New(en.New())
	if err != nil {
		return nil, &AnnotationError{Message: "failed to load lemmatizer dictionary", Cause: err}
	}
	return &EnglishAnnotator{lemmatizer: lemmatizer}, nil
}

// Annotate tokenizes and tags the text, attaching a lowercased lemma and the
// byte offset of each token.
func (a *EnglishAnnotator) Annotate(text string) ([]Token, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}

	doc, err := prose.NewDocument(text, prose.WithExtraction(false), prose.WithSegmentation(false))
	if err != nil {
		return nil, &AnnotationError{Message: "tokenization failed", Cause: err}
	}

	proseTokens := doc.Tokens()
	tokens := make([]Token, 0, len(proseTokens))
	cursor := 0
	for _, tok := range proseTokens {
		start := strings.Index(text[cursor:], tok.Text)
		if start < 0 {
			// Tokenizer rewrote the surface form (rare); skip rather than
			// guess an offset.
			continue
		}
		start += cursor
		cursor = start + len(tok.Text)

		lower := strings.ToLower(tok.Text)
		tokens = append(tokens, Token{
			Text:  tok.Text,
			Lemma: strings.ToLower(a.lemmatizer.Lemma(lower)),
			Tag:   tok.Tag,
			Start: start,
		})
	}

	return tokens, nil
}
