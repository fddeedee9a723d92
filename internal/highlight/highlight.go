// Package highlight wraps keyword occurrences in job text with span markup
// for display. Multi-word phrases are marked before the single words they
// contain so a phrase is never split by an inner highlight.
package highlight

import (
	"regexp"
	"sort"
	"strings"
)

const (
	openTag  = `<span class="keyword">`
	closeTag = `</span>`
)

// spanPattern matches an already-emitted highlight span so later passes
// skip over it instead of nesting tags.
var spanPattern = regexp.MustCompile(regexp.QuoteMeta(openTag) + `.*?` + regexp.QuoteMeta(closeTag))

// Mark wraps every case-insensitive whole-word occurrence of the given
// terms in highlight spans, preserving the original casing of the text.
// Terms are applied longest-first by word count, with stable order among
// equal lengths.
func Mark(text string, terms []string) string {
	ordered := make([]string, len(terms))
	copy(ordered, terms)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(strings.Fields(ordered[i])) > len(strings.Fields(ordered[j]))
	})

	for _, term := range ordered {
		term = strings.TrimSpace(term)
		if term == "" {
			continue
		}
		pattern, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
		if err != nil {
			continue
		}
		text = markOutsideSpans(text, pattern)
	}
	return text
}

// markOutsideSpans applies the pattern only to the segments of text that
// are not already inside a highlight span.
func markOutsideSpans(text string, pattern *regexp.Regexp) string {
	spans := spanPattern.FindAllStringIndex(text, -1)

	var sb strings.Builder
	cursor := 0
	for _, span := range spans {
		sb.WriteString(wrapMatches(text[cursor:span[0]], pattern))
		sb.WriteString(text[span[0]:span[1]])
		cursor = span[1]
	}
	sb.WriteString(wrapMatches(text[cursor:], pattern))
	return sb.String()
}

// wrapMatches surrounds every pattern match in segment with highlight tags.
func wrapMatches(segment string, pattern *regexp.Regexp) string {
	return pattern.ReplaceAllStringFunc(segment, func(match string) string {
		return openTag + match + closeTag
	})
}
