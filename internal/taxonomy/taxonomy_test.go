package taxonomy

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTaxonomy(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skills_taxonomy.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeTaxonomy(t, `{
		"AI/ML Intern": {
			"Python": ["python", "python3"],
			"TensorFlow": ["tensorflow", "tf"]
		},
		"Backend Intern": {
			"Go": ["go", "golang"],
			"Python": ["python"]
		}
	}`)

	tax, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"AI/ML Intern", "Backend Intern"}, tax.Roles())
	assert.True(t, tax.HasRole("AI/ML Intern"))
	assert.False(t, tax.HasRole("DevOps"))
	assert.Equal(t, []string{"Python", "TensorFlow"}, tax.SkillNames("AI/ML Intern"))
	assert.Equal(t, []string{"python", "python3"}, tax.Skills("AI/ML Intern")["Python"])
}

func TestLoad_PreservesAliasOrder(t *testing.T) {
	path := writeTaxonomy(t, `{"Role": {"JavaScript": ["js", "javascript", "es6"]}}`)

	tax, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"js", "javascript", "es6"}, tax.Skills("Role")["JavaScript"])
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))

	var loadErr *TaxonomyLoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "read failed", loadErr.Reason)
}

func TestLoad_Malformed(t *testing.T) {
	for name, content := range map[string]string{
		"invalid json":     `{"Role": `,
		"top level array":  `[1, 2, 3]`,
		"role not object":  `{"Role": "skills"}`,
		"skill not array":  `{"Role": {"Python": "python"}}`,
		"zero aliases":     `{"Role": {"Python": []}}`,
		"non-string alias": `{"Role": {"Python": [1]}}`,
		"empty taxonomy":   `{}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeTaxonomy(t, content))
			var loadErr *TaxonomyLoadError
			assert.True(t, errors.As(err, &loadErr), "expected TaxonomyLoadError, got %v", err)
		})
	}
}

func TestVocabulary_ExcludesOwnedSkills(t *testing.T) {
	path := writeTaxonomy(t, `{
		"AI/ML Intern": {"Python": ["python"], "TensorFlow": ["tensorflow"]},
		"Backend Intern": {"Python": ["python"], "Go": ["go", "golang"]},
		"Data Intern": {"SQL": ["sql"]}
	}`)

	tax, err := Load(path)
	require.NoError(t, err)

	vocab := tax.Vocabulary("AI/ML Intern")
	assert.Contains(t, vocab, "Go")
	assert.Contains(t, vocab, "SQL")
	assert.NotContains(t, vocab, "Python", "skills owned by the selected role are never extra")
	assert.NotContains(t, vocab, "TensorFlow")
}
