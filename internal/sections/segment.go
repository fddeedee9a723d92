// Package sections segments raw resume text into labeled sections and
// promotes education, experience, and projects spans into structured
// entries via the LLM with schema validation.
package sections

import (
	"strings"
)

// maxHeaderLen caps how long a line can be and still count as a header.
// Real headers are short; a sentence mentioning "experience" is not one.
const maxHeaderLen = 50

// headerCandidate is a detected header and the line it sits on.
type headerCandidate struct {
	text string
	line int
}

// rawSection is a header plus the body lines below it, before
// classification and structuring.
type rawSection struct {
	header string
	body   string
}

// detectHeaders scans lines for section headers, deduplicating repeats
// case-insensitively while keeping first occurrence order.
func detectHeaders(lines []string) []headerCandidate {
	var candidates []headerCandidate
	seen := make(map[string]struct{})
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if !isHeaderLine(trimmed) {
			continue
		}
		key := strings.ToLower(trimmed)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		candidates = append(candidates, headerCandidate{text: trimmed, line: i})
	}
	return candidates
}

// segment splits resume text into raw sections. Each section's body is the
// lines between its header and the next header, blank lines dropped. Text
// before the first header (the contact block) is not part of any section.
// No headers means no sections.
func segment(text string) []rawSection {
	lines := strings.Split(text, "\n")
	headers := detectHeaders(lines)
	if len(headers) == 0 {
		return nil
	}

	sections := make([]rawSection, 0, len(headers))
	for i, h := range headers {
		end := len(lines)
		if i+1 < len(headers) {
			end = headers[i+1].line
		}
		var body []string
		for _, line := range lines[h.line+1 : end] {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			body = append(body, trimmed)
		}
		sections = append(sections, rawSection{
			header: h.text,
			body:   strings.Join(body, "\n"),
		})
	}
	return sections
}
