// Package markup models a resume as an ordered list of addressable blocks.
// Rewording targets a block by its stable ID, so a rewrite never depends on
// finding the old text inside a rendered page.
package markup

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/types"
)

// BlockType labels what a block renders as.
type BlockType string

// Block type constants
const (
	BlockName    BlockType = "name"
	BlockContact BlockType = "contact"
	BlockHeader  BlockType = "header"
	BlockEntry   BlockType = "entry"
	BlockBullet  BlockType = "bullet"
	BlockText    BlockType = "text"
)

// Block is one addressable unit of resume content. IDs are assigned
// sequentially at build time and survive cloning and replacement.
type Block struct {
	ID       int       `json:"id"`
	Type     BlockType `json:"type"`
	Text     string    `json:"text"`
	Reworded bool      `json:"reworded,omitempty"`
}

// Document is an ordered resume. The block order is the render order.
type Document struct {
	Blocks []Block `json:"blocks"`
}

// Bullet pairs a bullet block's ID with its text, for ranking candidates.
type Bullet struct {
	BlockID int
	Text    string
}

// FromSections flattens a parsed resume into a block document. Structured
// entries become an entry heading block followed by one block per bullet
// line; opaque section content is split on its break markers.
func FromSections(contact ingestion.ContactInfo, sections []types.Section) *Document {
	b := &builder{}

	if contact.Name != "" {
		b.add(BlockName, contact.Name)
	}
	if line := contactLine(contact); line != "" {
		b.add(BlockContact, line)
	}

	for _, section := range sections {
		b.add(BlockHeader, section.Header)
		switch section.Type {
		case types.SectionEducation:
			for _, e := range section.Education {
				b.entry(entryHeading(e.Degree, e.School, e.Location, e.Duration), e.Content)
			}
		case types.SectionExperience:
			for _, e := range section.Experience {
				b.entry(entryHeading(e.Title, e.Company, e.Location, e.Duration), e.Content)
			}
		case types.SectionProjects:
			for _, e := range section.Projects {
				b.entry(entryHeading(e.Project, e.Affiliation, e.Location, e.Duration), e.Content)
			}
		default:
			b.content(section.Content)
		}
	}
	return &Document{Blocks: b.blocks}
}

// Bullets returns every bullet block in document order.
func (d *Document) Bullets() []Bullet {
	var bullets []Bullet
	for _, block := range d.Blocks {
		if block.Type == BlockBullet {
			bullets = append(bullets, Bullet{BlockID: block.ID, Text: block.Text})
		}
	}
	return bullets
}

// ReplaceBlock swaps the text of the block with the given ID and marks it
// reworded. Replacing an unknown ID is an error.
func (d *Document) ReplaceBlock(id int, text string) error {
	for i := range d.Blocks {
		if d.Blocks[i].ID == id {
			d.Blocks[i].Text = text
			d.Blocks[i].Reworded = true
			return nil
		}
	}
	return fmt.Errorf("no block with id %d", id)
}

// Clone returns a deep copy sharing no state with the original. Block IDs
// are preserved so a pending copy can be edited and later swapped in.
func (d *Document) Clone() *Document {
	blocks := make([]Block, len(d.Blocks))
	copy(blocks, d.Blocks)
	return &Document{Blocks: blocks}
}

// builder assigns sequential IDs as blocks are appended.
type builder struct {
	blocks []Block
	nextID int
}

func (b *builder) add(blockType BlockType, text string) {
	b.nextID++
	b.blocks = append(b.blocks, Block{ID: b.nextID, Type: blockType, Text: text})
}

// entry appends an entry heading and one bullet block per content line.
func (b *builder) entry(heading, content string) {
	if heading != "" {
		b.add(BlockEntry, heading)
	}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		b.add(BlockBullet, stripBullet(line))
	}
}

// content splits an opaque section span into bullet and text blocks.
func (b *builder) content(content string) {
	for _, line := range strings.Split(content, "<br>") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if bulleted(line) {
			b.add(BlockBullet, stripBullet(line))
		} else {
			b.add(BlockText, line)
		}
	}
}

// contactLine joins the non-empty contact fields after the name.
func contactLine(contact ingestion.ContactInfo) string {
	var fields []string
	for _, field := range []string{contact.Email, contact.Phone, contact.LinkedIn, contact.GitHub, contact.Website} {
		if field != "" {
			fields = append(fields, field)
		}
	}
	return strings.Join(fields, " | ")
}

// entryHeading joins an entry's identifying fields, skipping empties.
func entryHeading(fields ...string) string {
	var present []string
	for _, field := range fields {
		if strings.TrimSpace(field) != "" {
			present = append(present, strings.TrimSpace(field))
		}
	}
	return strings.Join(present, " | ")
}

func bulleted(line string) bool {
	for _, glyph := range ingestion.BulletGlyphs {
		if strings.HasPrefix(line, glyph) {
			return true
		}
	}
	return false
}

func stripBullet(line string) string {
	for _, glyph := range ingestion.BulletGlyphs {
		if strings.HasPrefix(line, glyph) {
			return strings.TrimSpace(strings.TrimPrefix(line, glyph))
		}
	}
	return line
}
