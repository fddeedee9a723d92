package sections

import (
	"strings"

	"github.com/jonathan/resume-matcher/internal/types"
)

// Per-type header vocabularies. A header line is assigned the first type
// whose vocabulary it matches; lines matching none fall through to catch_all.
var headerVocab = map[types.SectionType][]string{
	types.SectionEducation: {
		"education",
		"academic background",
		"academics",
		"degrees",
	},
	types.SectionExperience: {
		"experience",
		"work experience",
		"professional experience",
		"employment",
		"employment history",
		"work history",
		"internships",
	},
	types.SectionProjects: {
		"projects",
		"personal projects",
		"academic projects",
		"design projects",
		"research",
		"research experience",
	},
	types.SectionSkills: {
		"skills",
		"technical skills",
		"skills & interests",
		"skills and interests",
		"core competencies",
		"technologies",
		"tools",
	},
	types.SectionMisc: {
		"certifications",
		"awards",
		"honors",
		"publications",
		"activities",
		"leadership",
		"volunteering",
		"interests",
		"languages",
	},
}

// headerSuffixes marks a line as a header when its last word is one of
// these, even if the full line is not in any vocabulary ("Chemical
// Engineering Experience", "Relevant Projects").
var headerSuffixes = map[string]struct{}{
	"experience":     {},
	"education":      {},
	"skills":         {},
	"projects":       {},
	"certifications": {},
	"awards":         {},
	"publications":   {},
}

// classificationOrder fixes the vocabulary lookup order so that a header
// matching two vocabularies resolves deterministically.
var classificationOrder = []types.SectionType{
	types.SectionEducation,
	types.SectionExperience,
	types.SectionProjects,
	types.SectionSkills,
	types.SectionMisc,
}

// cleanHeader lowercases a header candidate and strips a trailing colon.
func cleanHeader(line string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimRight(strings.TrimSpace(line), ":")))
}

// isHeaderLine reports whether a trimmed line looks like a section header.
// Headers are short lines that equal or sit inside a vocabulary entry, or
// end in a recognized section word. The containment runs line-inside-entry
// so truncated headers ("Academic") still match while prose lines that
// merely mention a vocabulary word do not.
func isHeaderLine(line string) bool {
	if line == "" || len(line) > maxHeaderLen {
		return false
	}
	lower := cleanHeader(line)
	for _, vocab := range headerVocab {
		for _, term := range vocab {
			if lower == term || strings.Contains(term, lower) {
				return true
			}
		}
	}
	words := strings.Fields(lower)
	if len(words) == 0 {
		return false
	}
	_, ok := headerSuffixes[words[len(words)-1]]
	return ok
}

// classifyHeader maps a header line to a section type. Vocabulary lookup is
// exact; the suffix rule applies after, so "Technical Skills" resolves via
// the skills vocabulary and "Relevant Projects" via the suffix.
func classifyHeader(header string) types.SectionType {
	lower := cleanHeader(header)
	for _, sectionType := range classificationOrder {
		for _, term := range headerVocab[sectionType] {
			if lower == term {
				return sectionType
			}
		}
	}
	if words := strings.Fields(lower); len(words) > 0 {
		switch words[len(words)-1] {
		case "experience":
			return types.SectionExperience
		case "education":
			return types.SectionEducation
		case "skills":
			return types.SectionSkills
		case "projects":
			return types.SectionProjects
		case "certifications", "awards", "publications":
			return types.SectionMisc
		}
	}
	return types.SectionCatchAll
}
