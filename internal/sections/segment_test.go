package sections

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/types"
)

const sampleResume = `Jane Doe
jane.doe@example.com | (555) 123-4567

EDUCATION
B.S. Chemical Engineering, State University
Ann Arbor, MI | 2019 - 2023

EXPERIENCE
Process Engineer, Acme Chemicals
• Designed heat exchanger networks
• Led HAZOP reviews for three units

TECHNICAL SKILLS
Python, SQL, Aspen Plus

Relevant Projects
Senior Design Project
• Modeled a distillation column in Aspen`

func TestDetectHeaders(t *testing.T) {
	raw := segment(sampleResume)
	require.Len(t, raw, 4)
	assert.Equal(t, "EDUCATION", raw[0].header)
	assert.Equal(t, "EXPERIENCE", raw[1].header)
	assert.Equal(t, "TECHNICAL SKILLS", raw[2].header)
	assert.Equal(t, "Relevant Projects", raw[3].header)
}

func TestSegmentBodies(t *testing.T) {
	raw := segment(sampleResume)
	require.Len(t, raw, 4)

	// Contact block before the first header belongs to no section.
	assert.NotContains(t, raw[0].body, "Jane Doe")
	assert.Contains(t, raw[0].body, "State University")
	assert.Contains(t, raw[1].body, "HAZOP")
	assert.Equal(t, "Python, SQL, Aspen Plus", raw[2].body)
}

func TestSegmentNoHeaders(t *testing.T) {
	assert.Empty(t, segment("just a paragraph of text\nwith no headers at all"))
	assert.Empty(t, segment(""))
}

func TestSegmentDedupesRepeatedHeaders(t *testing.T) {
	text := "EDUCATION\nfirst\neducation\nsecond"
	raw := segment(text)
	require.Len(t, raw, 1)
	assert.Equal(t, "first\neducation\nsecond", raw[0].body)
}

func TestHeaderLengthCap(t *testing.T) {
	long := "I gained a lot of experience working on process safety teams at my last experience"
	assert.False(t, isHeaderLine(long))
	assert.True(t, isHeaderLine("Work Experience"))
}

func TestHeaderVocabularyContainmentDirection(t *testing.T) {
	// A prose line mentioning a vocabulary word is not a header; a line
	// that is a truncated vocabulary entry is.
	assert.False(t, isHeaderLine("Proficient with modern developer tools"))
	assert.False(t, isHeaderLine("Led research into new catalysts"))
	assert.True(t, isHeaderLine("Academic"))
	assert.True(t, isHeaderLine("Skills:"))
}

func TestClassifyHeader(t *testing.T) {
	cases := map[string]types.SectionType{
		"EDUCATION":                       types.SectionEducation,
		"Professional Experience":         types.SectionExperience,
		"Chemical Engineering Experience": types.SectionExperience,
		"Relevant Projects":               types.SectionProjects,
		"Technical Skills":                types.SectionSkills,
		"Skills:":                         types.SectionSkills,
		"Certifications":                  types.SectionMisc,
		"Awards":                          types.SectionMisc,
		// A truncated vocabulary entry is a header but classifies only
		// on exact match, so it falls to catch_all.
		"Academic": types.SectionCatchAll,
	}
	for header, want := range cases {
		assert.Equal(t, want, classifyHeader(header), header)
	}
}

// fakeClient returns canned JSON for structured section prompts.
type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) GenerateContent(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	return f.GenerateJSON(ctx, prompt, tier)
}

func (f *fakeClient) GenerateJSON(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) EmbedText(ctx context.Context, text string) ([]float32, error) {
	return nil, errors.New("not supported")
}

func (f *fakeClient) GetModel(tier llm.ModelTier) string { return "fake" }
func (f *fakeClient) Close() error                       { return nil }

func TestSegmentStructuresEducation(t *testing.T) {
	client := &fakeClient{
		response: "```json\n[{\"degree\":\"B.S. Chemical Engineering\",\"school\":\"State University\",\"location\":\"Ann Arbor, MI\",\"duration\":\"2019 - 2023\",\"content\":\"\"}]\n```",
	}
	segmenter := NewSegmenter(client)

	sections, err := segmenter.Segment(context.Background(), "EDUCATION\nB.S. Chemical Engineering, State University")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	require.Len(t, sections[0].Education, 1)
	assert.Equal(t, "State University", sections[0].Education[0].School)
	assert.Equal(t, 1, client.calls)
}

func TestSegmentFailsClosedOnOracleError(t *testing.T) {
	segmenter := NewSegmenter(&fakeClient{err: errors.New("quota exceeded")})

	sections, err := segmenter.Segment(context.Background(), "EXPERIENCE\nProcess Engineer, Acme")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Experience)
}

func TestSegmentFailsClosedOnInvalidSchema(t *testing.T) {
	// Missing the required "company" field.
	segmenter := NewSegmenter(&fakeClient{response: `[{"title":"Engineer"}]`})

	sections, err := segmenter.Segment(context.Background(), "EXPERIENCE\nProcess Engineer, Acme")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Experience)
}

func TestSegmentRebulletsOpaqueSections(t *testing.T) {
	segmenter := NewSegmenter(nil)

	sections, err := segmenter.Segment(context.Background(), "SKILLS\n· Python\n▪ SQL")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Equal(t, types.SectionSkills, sections[0].Type)
	assert.Equal(t, "• Python<br>• SQL", sections[0].Content)
}

func TestSegmentNilClientLeavesStructuredOpaque(t *testing.T) {
	segmenter := NewSegmenter(nil)

	sections, err := segmenter.Segment(context.Background(), "EDUCATION\nB.S. Chemistry, State University")
	require.NoError(t, err)
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Education)
	assert.Contains(t, sections[0].Content, "State University")
}
