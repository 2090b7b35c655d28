package validation_test

import (
	"errors"
	"testing"

	"md-terceirizacao-api/internal/domain"
	"md-terceirizacao-api/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMissingFieldsContact(t *testing.T) {
	v := validation.New()

	t.Run("complete submission passes", func(t *testing.T) {
		err := v.Struct(&domain.ContactSubmission{Name: "Ana", Email: "ana@x.com", Message: "Oi"})
		assert.NoError(t, err)
	})

	t.Run("empty fields are reported by wire name", func(t *testing.T) {
		err := v.Struct(&domain.ContactSubmission{Email: "ana@x.com"})
		require.Error(t, err)
		assert.ElementsMatch(t, []string{"nome", "mensagem"}, validation.MissingFields(err))
	})

	t.Run("whitespace counts as present", func(t *testing.T) {
		err := v.Struct(&domain.ContactSubmission{Name: " ", Email: "a@b.com", Message: "hi"})
		assert.NoError(t, err)
	})
}

func TestMissingFieldsApplication(t *testing.T) {
	v := validation.New()

	err := v.Struct(&domain.ApplicationSubmission{Name: "Ana", Email: "ana@x.com", Phone: "119999"})
	require.Error(t, err)
	assert.Equal(t, []string{"curriculo"}, validation.MissingFields(err))

	err = v.Struct(&domain.ApplicationSubmission{
		Name: "Ana", Email: "ana@x.com", Phone: "119999",
		Resume: &domain.UploadedFile{OriginalName: "cv.pdf", StoredPath: "uploads/1-cv.pdf"},
	})
	assert.NoError(t, err)
}

func TestFormatValidationErrors(t *testing.T) {
	v := validation.New()

	err := v.Struct(&domain.ContactSubmission{})
	msgs := validation.FormatValidationErrors(err)
	assert.Contains(t, msgs, "Nome: obrigatório")
	assert.Contains(t, msgs, "Mensagem: obrigatório")

	assert.Nil(t, validation.MissingFields(errors.New("boom")))
	assert.Equal(t, []string{"boom"}, validation.FormatValidationErrors(errors.New("boom")))
}
