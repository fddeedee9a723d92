// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 10
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintKeywords outputs the extracted keywords with counts and snippets.
func (p *Printer) PrintKeywords(title string, entries []*types.KeywordEntry) {
	if len(entries) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total keywords: %d\n\n", len(entries)))

	count := min(len(entries), maxItemsToShow)
	for i := 0; i < count; i++ {
		entry := entries[i]
		sb.WriteString(fmt.Sprintf("  • %s", entry.DisplayForm))
		if entry.Count > 1 {
			sb.WriteString(fmt.Sprintf(" (x%d)", entry.Count))
		}
		sb.WriteString("\n")
	}
	if len(entries) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(entries)-maxItemsToShow))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintMatchReport outputs the score and the matched/unmatched split.
func (p *Printer) PrintMatchReport(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score: %d%%\n\n", result.Score))

	if len(result.Matched) > 0 {
		lemmas := make([]string, 0, len(result.Matched))
		for lemma := range result.Matched {
			lemmas = append(lemmas, lemma)
		}
		sort.Strings(lemmas)

		sb.WriteString(fmt.Sprintf("Matched (%d):\n", len(lemmas)))
		count := min(len(lemmas), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  ✓ %s\n", lemmas[i]))
		}
		if len(lemmas) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(lemmas)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.Unmatched) > 0 {
		sb.WriteString(fmt.Sprintf("Unmatched (%d):\n", len(result.Unmatched)))
		count := min(len(result.Unmatched), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := result.Unmatched[i]
			sb.WriteString(fmt.Sprintf("  ✗ %s\n", entry.DisplayForm))
		}
		if len(result.Unmatched) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Unmatched)-maxItemsToShow))
		}
	}

	p.printBox("MATCH REPORT", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSections outputs the detected resume sections and entry counts.
func (p *Printer) PrintSections(sections []types.Section) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	for _, section := range sections {
		sb.WriteString(fmt.Sprintf("%s [%s]", section.Header, section.Type))
		switch section.Type {
		case types.SectionEducation:
			sb.WriteString(fmt.Sprintf("  %d entries", len(section.Education)))
		case types.SectionExperience:
			sb.WriteString(fmt.Sprintf("  %d entries", len(section.Experience)))
		case types.SectionProjects:
			sb.WriteString(fmt.Sprintf("  %d entries", len(section.Projects)))
		}
		sb.WriteString("\n")
	}

	p.printBox("RESUME SECTIONS", strings.TrimSuffix(sb.String(), "\n"))
}
