package ingestion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextPlain(t *testing.T) {
	got, err := ExtractText("resume.txt", []byte("Jane Doe\nProcess Engineer"))
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe\nProcess Engineer", got)
}

func TestExtractTextEmpty(t *testing.T) {
	got, err := ExtractText("resume.txt", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestExtractTextHTML(t *testing.T) {
	page := `<html><head><style>body{color:red}</style></head>
<body><h1>Jane Doe</h1><script>alert(1)</script><p>Process Engineer</p></body></html>`

	got, err := ExtractText("resume.html", []byte(page))
	require.NoError(t, err)
	assert.Contains(t, got, "Jane Doe")
	assert.Contains(t, got, "Process Engineer")
	assert.NotContains(t, got, "alert(1)")
	assert.NotContains(t, got, "color:red")
}

func TestExtractTextHTMLSniffed(t *testing.T) {
	// No .html extension, detected from content.
	got, err := ExtractText("resume", []byte("<!DOCTYPE html><html><body><p>Jane</p></body></html>"))
	require.NoError(t, err)
	assert.Contains(t, got, "Jane")
}

func TestExtractTextMalformedPDF(t *testing.T) {
	got, err := ExtractText("resume.pdf", []byte("%PDF-1.4 truncated garbage"))
	require.NoError(t, err, "malformed documents degrade to empty text, not errors")
	assert.Empty(t, got)
}
