package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Projects(t *testing.T) {
	valid := `[
		{"name": "Portfolio Website", "description": "Personal portfolio", "technologies": "Go, HTMX", "source": "local"},
		{"name": "API Service"}
	]`
	require.NoError(t, Validate(ProjectsSchema, []byte(valid)))

	missing := `[{"description": "no name"}]`
	err := Validate(ProjectsSchema, []byte(missing))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.NotEmpty(t, ve.Errors)
	assert.Contains(t, err.Error(), "name")
}

func TestValidate_Contacts(t *testing.T) {
	valid := `[{"name": "Alice", "email": "alice@example.com", "message": "hi", "created_at": "2024-01-01T00:00:00Z"}]`
	require.NoError(t, Validate(ContactsSchema, []byte(valid)))

	invalid := `[{"name": "Alice", "email": "alice@example.com"}]`
	err := Validate(ContactsSchema, []byte(invalid))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message")
}

func TestValidate_Locale(t *testing.T) {
	valid := `{
		"personal": {"name": "Leonardo Murakami", "title": "Software Engineer", "email": "leo@example.com"},
		"summary": "Experienced software engineer.",
		"company": {"name": "Tech Company", "period": "2020 - Present"},
		"roles": [{"title": "Engineer", "period": "2020 - 2022", "achievements": ["Shipped things"]}],
		"education": {"degree": "BSc", "institution": "USP"}
	}`
	require.NoError(t, Validate(LocaleSchema, []byte(valid)))

	noRoles := `{
		"personal": {"name": "Leo", "title": "SWE", "email": "leo@example.com"},
		"summary": "s",
		"company": {"name": "c", "period": "p"},
		"roles": [],
		"education": {"degree": "d", "institution": "i"}
	}`
	err := Validate(LocaleSchema, []byte(noRoles))
	require.Error(t, err)

	var ve *ValidationError
	assert.ErrorAs(t, err, &ve)
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope.schema.json", []byte(`{}`))
	require.Error(t, err)

	var le *SchemaLoadError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "nope.schema.json", le.Name)
}

func TestValidate_MalformedDocument(t *testing.T) {
	err := Validate(ProjectsSchema, []byte(`{not json`))
	require.Error(t, err)
}
