package sections

import (
	"context"
	"encoding/json"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/prompts"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/types"
)

// Segmenter turns raw resume text into classified sections, using the LLM
// client to structure education, experience, and projects spans. A nil
// client leaves those sections opaque.
type Segmenter struct {
	client llm.Client
}

// NewSegmenter creates a Segmenter backed by the given LLM client.
func NewSegmenter(client llm.Client) *Segmenter {
	return &Segmenter{client: client}
}

// Segment splits text into labeled sections. Structured section types go
// through the LLM and schema validation; on any failure the section keeps
// its header but carries zero entries rather than unvalidated data.
// Opaque sections get their bullets normalized for rendering.
func (s *Segmenter) Segment(ctx context.Context, text string) ([]types.Section, error) {
	raw := segment(text)
	if len(raw) == 0 {
		return nil, nil
	}

	result := make([]types.Section, 0, len(raw))
	for _, r := range raw {
		sectionType := classifyHeader(r.header)
		section := types.Section{Type: sectionType, Header: r.header}

		if sectionType.Structured() && s.client != nil {
			s.structure(ctx, &section, r.body)
		} else {
			section.Content = ingestion.Rebullet(r.body)
		}
		result = append(result, section)
	}
	return result, nil
}

// structure asks the LLM for typed entries and fills the section's entry
// slice. Any oracle, validation, or decode failure leaves the slice empty.
func (s *Segmenter) structure(ctx context.Context, section *types.Section, body string) {
	template, err := prompts.Get("sections.json", string(section.Type))
	if err != nil {
		return
	}
	prompt := prompts.Format(template, map[string]string{"SectionText": body})

	response, err := s.client.GenerateJSON(ctx, prompt, llm.TierStandard)
	if err != nil {
		return
	}
	document := []byte(llm.CleanJSONBlock(response))

	if err := schemas.ValidateEntries(string(section.Type), document); err != nil {
		return
	}

	switch section.Type {
	case types.SectionEducation:
		var entries []types.EducationEntry
		if json.Unmarshal(document, &entries) == nil {
			section.Education = entries
		}
	case types.SectionExperience:
		var entries []types.ExperienceEntry
		if json.Unmarshal(document, &entries) == nil {
			section.Experience = entries
		}
	case types.SectionProjects:
		var entries []types.ProjectEntry
		if json.Unmarshal(document, &entries) == nil {
			section.Projects = entries
		}
	}
}
