package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	apperrors "talenthub/internal/errors"
	"talenthub/internal/model"
)

func sampleCandidate() *model.Candidate {
	return &model.Candidate{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@x.com",
		Phone:           "+31 6 1234",
		Location:        "Amsterdam",
		CurrentPosition: "QA Engineer",
		Summary:         "QA engineer with five years of automation experience.",
		Skills:          pq.StringArray{"Go", "SQL", "Selenium"},
		Experience:      `[{"role":"QA Engineer","company":"Acme","duration":"2021-2024","responsibilities":["Built the regression suite"]}]`,
		Education:       `[{"degree":"BSc Computer Science","institution":"UvA","year":"2018"}]`,
		Languages:       `[{"language":"Dutch","proficiency":"native"},{"language":"English","level":"C1"}]`,
		Certifications:  `["ISTQB Foundation"]`,
		Hobbies:         "Climbing, chess",
	}
}

func TestParseTemplate(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      Template
		expectedError error
	}{
		{name: "empty defaults to classic", input: "", expected: TemplateClassic},
		{name: "classic", input: "classic", expected: TemplateClassic},
		{name: "modern", input: "modern", expected: TemplateModern},
		{name: "compact", input: "compact", expected: TemplateCompact},
		{name: "unknown", input: "fancy", expectedError: apperrors.ErrUnknownTemplate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := ParseTemplate(tt.input)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, tpl)
			}
		})
	}
}

func TestRender_AllTemplates(t *testing.T) {
	for _, tpl := range []Template{TemplateClassic, TemplateModern, TemplateCompact} {
		t.Run(string(tpl), func(t *testing.T) {
			out, err := Render(sampleCandidate(), tpl, "")
			assert.NoError(t, err)
			assert.NotEmpty(t, out)
			assert.Equal(t, "%PDF", string(out[:4]))
		})
	}
}

func TestRender_UnknownTemplate(t *testing.T) {
	out, err := Render(sampleCandidate(), Template("fancy"), "")
	assert.ErrorIs(t, err, apperrors.ErrUnknownTemplate)
	assert.Nil(t, out)
}

func TestRender_FreeTextColumns(t *testing.T) {
	c := sampleCandidate()
	c.Experience = "Five years of QA at Acme."
	c.Education = "Self-taught"
	c.Languages = "Dutch, English"
	c.Certifications = "ISTQB"

	out, err := Render(c, TemplateClassic, "")
	assert.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestRender_MissingLogoIsSkipped(t *testing.T) {
	out, err := Render(sampleCandidate(), TemplateClassic, "/nonexistent/logo.png")
	assert.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestFindLogo(t *testing.T) {
	t.Run("empty directory", func(t *testing.T) {
		assert.Empty(t, FindLogo(t.TempDir()))
	})

	t.Run("returns the uploaded logo", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "logo.png")
		assert.NoError(t, os.WriteFile(path, []byte("png"), 0o644))

		assert.Equal(t, path, FindLogo(dir))
	})

	t.Run("newest logo wins when extensions differ", func(t *testing.T) {
		dir := t.TempDir()
		old := filepath.Join(dir, "logo.png")
		recent := filepath.Join(dir, "logo.jpg")
		assert.NoError(t, os.WriteFile(old, []byte("png"), 0o644))
		assert.NoError(t, os.WriteFile(recent, []byte("jpg"), 0o644))
		stale := time.Now().Add(-time.Hour)
		assert.NoError(t, os.Chtimes(old, stale, stale))

		assert.Equal(t, recent, FindLogo(dir))
	})

	t.Run("ignores non-logo files", func(t *testing.T) {
		dir := t.TempDir()
		assert.NoError(t, os.WriteFile(filepath.Join(dir, "template_abc.png"), []byte("png"), 0o644))

		assert.Empty(t, FindLogo(dir))
	})
}

func TestRender_SparseCandidate(t *testing.T) {
	out, err := Render(&model.Candidate{FirstName: "Jane", LastName: "Doe"}, TemplateCompact, "")
	assert.NoError(t, err)
	assert.NotEmpty(t, out)
}
