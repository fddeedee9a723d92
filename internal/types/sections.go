package types

// SectionType classifies a resume section. The set is closed; headers that
// match no per-type vocabulary are classified CatchAll.
type SectionType string

// Section type constants
const (
	SectionEducation  SectionType = "education"
	SectionExperience SectionType = "experience"
	SectionProjects   SectionType = "projects"
	SectionSkills     SectionType = "skills"
	SectionMisc       SectionType = "misc"
	SectionCatchAll   SectionType = "catch_all"
)

// EducationEntry is one structured record in an education section.
type EducationEntry struct {
	Degree   string `json:"degree"`
	School   string `json:"school"`
	Location string `json:"location"`
	Duration string `json:"duration"`
	Content  string `json:"content"`
}

// ExperienceEntry is one structured record in an experience section.
type ExperienceEntry struct {
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Duration string `json:"duration"`
	Content  string `json:"content"`
}

// ProjectEntry is one structured record in a projects section.
type ProjectEntry struct {
	Project     string `json:"project"`
	Location    string `json:"location"`
	Affiliation string `json:"affiliation"`
	Duration    string `json:"duration"`
	Content     string `json:"content"`
}

// Section is a labeled contiguous span of resume body text. It is a tagged
// union over Type: education/experience/projects sections carry typed entry
// slices, skills/misc/catch_all sections carry an opaque Content string.
// Sections are immutable once built; a new resume upload replaces them.
type Section struct {
	Type   SectionType `json:"type"`
	Header string      `json:"header"`

	Education  []EducationEntry  `json:"education_entries,omitempty"`
	Experience []ExperienceEntry `json:"experience_entries,omitempty"`
	Projects   []ProjectEntry    `json:"project_entries,omitempty"`
	Content    string            `json:"content,omitempty"`
}

// Structured reports whether the section type carries typed entries
// (as opposed to an opaque content span).
func (t SectionType) Structured() bool {
	switch t {
	case SectionEducation, SectionExperience, SectionProjects:
		return true
	default:
		return false
	}
}
