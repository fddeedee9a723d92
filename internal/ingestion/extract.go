package ingestion

import (
	"bytes"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ledongthuc/pdf"
)

// ExtractText extracts plain text from an uploaded document. The format is
// chosen by filename extension with a content sniff as fallback: PDF bytes go
// through the PDF reader, HTML through a DOM text walk, anything else is
// treated as UTF-8 plain text. An empty result with a nil error is a valid
// (if unhelpful) zero-keyword document.
func ExtractText(filename string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", nil
	}

	ext := strings.ToLower(filepath.Ext(filename))
	switch {
	case ext == ".pdf" || bytes.HasPrefix(data, []byte("%PDF")):
		return extractPDF(data)
	case ext == ".html" || ext == ".htm" || looksLikeHTML(data):
		return extractHTML(data)
	default:
		return string(data), nil
	}
}

// extractPDF concatenates the plain text of every page. Malformed pages are
// skipped rather than failing the whole document.
func extractPDF(data []byte) (text string, err error) {
	// The PDF library panics on some malformed cross-reference tables;
	// convert that to a partial-extraction result.
	defer func() {
		if r := recover(); r != nil {
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		// Unreadable documents degrade to an empty, zero-keyword text.
		return "", nil
	}

	var sb strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		sb.WriteString(content)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// extractHTML reduces an HTML document to its visible text.
func extractHTML(data []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(data))
	if err != nil {
		return "", &ExtractionError{Message: "failed to parse HTML", Cause: err}
	}

	doc.Find("script, style, noscript").Remove()

	// Insert line breaks at block boundaries so downstream line-based
	// processing (section segmentation) still sees document structure.
	var sb strings.Builder
	doc.Find("p, div, li, br, h1, h2, h3, h4, h5, h6, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	sb.WriteString(doc.Text())

	return sb.String(), nil
}

func looksLikeHTML(data []byte) bool {
	trimmed := bytes.TrimLeftFunc(data, func(r rune) bool { return r == ' ' || r == '\n' || r == '\r' || r == '\t' })
	return bytes.HasPrefix(trimmed, []byte("<"))
}
