// Package ingestion turns raw uploaded documents into clean text for the
// keyword pipeline: byte extraction (PDF/HTML/plain), prose normalization,
// and contact-info heuristics.
package ingestion

import (
	"regexp"
	"strings"
)

// BulletGlyphs lists the bullet characters treated as list markers across
// the pipeline. The first entry is the canonical glyph.
var BulletGlyphs = []string{"•", "◦", "·", "▪", "▫", "‣", "*"}

var (
	// Everything outside letters, digits, underscore, whitespace, and the
	// fixed punctuation allow-list (. + & # - /) becomes a space. Letter
	// and digit classes are Unicode so accented names survive.
	disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}_\s.+&#/-]`)
	whitespaceRuns  = regexp.MustCompile(`\s+`)
)

// Normalize strips formatting artifacts from raw extracted text into clean
// whitespace-delimited prose. Line breaks, commas, and bullet glyphs become
// single spaces; disallowed characters become spaces; whitespace runs
// collapse to one space. Normalize is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	pairs := []string{"\r\n", " ", "\n", " ", "\r", " ", ",", " "}
	for _, glyph := range BulletGlyphs {
		pairs = append(pairs, glyph, " ")
	}
	text = strings.NewReplacer(pairs...).Replace(text)

	text = disallowedChars.ReplaceAllString(text, " ")
	text = whitespaceRuns.ReplaceAllString(text, " ")

	return strings.TrimSpace(text)
}

// Rebullet normalizes every bullet glyph variant in a section span to the
// canonical glyph and converts newlines to a line-break marker. Used for
// skills/misc/catch_all sections that are stored verbatim.
func Rebullet(content string) string {
	pairs := make([]string, 0, 2*len(BulletGlyphs))
	for _, glyph := range BulletGlyphs[1:] {
		pairs = append(pairs, glyph, BulletGlyphs[0])
	}
	content = strings.NewReplacer(pairs...).Replace(content)

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\n", "<br>")
	return content
}
