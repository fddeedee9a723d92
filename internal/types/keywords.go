// Package types defines the shared data structures passed between the
// matcher core's components.
package types

// KeywordEntry is a semantic unit extracted from a document. Entries are
// deduplicated by lemma within a single extraction run; the display form
// tracks the most frequent surface form observed so far.
type KeywordEntry struct {
	Lemma       string         `json:"lemma"`
	DisplayForm string         `json:"display_form"`
	Count       int            `json:"count"`
	FormCounts  map[string]int `json:"form_counts"`
	Snippet     string         `json:"snippet"`

	// formOrder preserves first-seen order of surface forms. Ties between
	// equal-count forms resolve to the earliest-seen form.
	formOrder []string
}

// NewKeywordEntry creates an entry for a lemma seen for the first time.
// The snippet is captured once, around the first occurrence.
func NewKeywordEntry(lemma, form, snippet string) *KeywordEntry {
	return &KeywordEntry{
		Lemma:       lemma,
		DisplayForm: form,
		Count:       1,
		FormCounts:  map[string]int{form: 1},
		Snippet:     snippet,
		formOrder:   []string{form},
	}
}

// Observe records one more occurrence of the lemma under the given surface
// form and recomputes the display form as the argmax-count form.
func (e *KeywordEntry) Observe(form string) {
	e.Count++
	if _, seen := e.FormCounts[form]; !seen {
		e.formOrder = append(e.formOrder, form)
	}
	e.FormCounts[form]++

	best := ""
	bestCount := 0
	for _, f := range e.formOrder {
		if e.FormCounts[f] > bestCount {
			best = f
			bestCount = e.FormCounts[f]
		}
	}
	e.DisplayForm = best
}

// Lemmas returns the lemma of every entry, preserving order.
func Lemmas(entries []*KeywordEntry) []string {
	lemmas := make([]string, 0, len(entries))
	for _, e := range entries {
		lemmas = append(lemmas, e.Lemma)
	}
	return lemmas
}
