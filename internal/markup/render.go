package markup

import (
	"html"
	"strings"
)

// RenderHTML renders the document as an HTML fragment. Block text is
// escaped; reworded bullets get a marker span so the UI can call them out.
func (d *Document) RenderHTML() string {
	var sb strings.Builder
	sb.WriteString(`<div class="resume">` + "\n")

	inSection := false
	for _, block := range d.Blocks {
		switch block.Type {
		case BlockName:
			sb.WriteString("<h1>" + html.EscapeString(block.Text) + "</h1>\n")
		case BlockContact:
			sb.WriteString(`<p class="contact">` + html.EscapeString(block.Text) + "</p>\n")
		case BlockHeader:
			if inSection {
				sb.WriteString("</div>\n")
			}
			sb.WriteString(`<h2 class="section-header">` + html.EscapeString(block.Text) + "</h2>\n")
			sb.WriteString(`<div class="section-content">` + "\n")
			inSection = true
		case BlockEntry:
			sb.WriteString(`<p class="entry-heading"><strong>` + html.EscapeString(block.Text) + "</strong></p>\n")
		case BlockBullet:
			text := html.EscapeString(block.Text)
			if block.Reworded {
				text = `<span class="reworded-bullet">` + text + "</span>"
			}
			sb.WriteString(`<p class="bullet">` + "• " + text + "</p>\n")
		case BlockText:
			sb.WriteString("<p>" + html.EscapeString(block.Text) + "</p>\n")
		}
	}
	if inSection {
		sb.WriteString("</div>\n")
	}
	sb.WriteString("</div>")
	return sb.String()
}
