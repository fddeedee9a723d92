package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEntries_ValidEducation(t *testing.T) {
	doc := `[{"degree":"B.S. Chemistry","school":"State University","location":"Ann Arbor, MI","duration":"2019 - 2023","content":"GPA: 3.8"}]`
	assert.NoError(t, ValidateEntries("education", []byte(doc)))
}

func TestValidateEntries_NullOptionalFields(t *testing.T) {
	doc := `[{"degree":"B.S. Chemistry","school":"State University","location":null,"duration":null,"content":null}]`
	assert.NoError(t, ValidateEntries("education", []byte(doc)))
}

func TestValidateEntries_EmptyArray(t *testing.T) {
	assert.NoError(t, ValidateEntries("experience", []byte("[]")))
}

func TestValidateEntries_MissingRequiredField(t *testing.T) {
	doc := `[{"school":"State University"}]`
	err := ValidateEntries("education", []byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateEntries_WrongShape(t *testing.T) {
	assert.Error(t, ValidateEntries("projects", []byte(`{"project":"not an array"}`)))
	assert.Error(t, ValidateEntries("projects", []byte(`[{"project":42}]`)))
}

func TestValidateEntries_UnknownSectionType(t *testing.T) {
	err := ValidateEntries("skills", []byte("[]"))
	require.Error(t, err)

	var le *SchemaLoadError
	assert.ErrorAs(t, err, &le)
}

func TestValidateEntries_MalformedJSON(t *testing.T) {
	assert.Error(t, ValidateEntries("experience", []byte("not json")))
}
