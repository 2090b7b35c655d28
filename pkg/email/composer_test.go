package email_test

import (
	"testing"

	"md-terceirizacao-api/internal/domain"
	"md-terceirizacao-api/pkg/email"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeContact(t *testing.T) {
	c := email.NewComposer("MD <onboarding@resend.dev>", "rh@example.com", false)

	msg, err := c.ComposeContact(&domain.ContactSubmission{
		Name:    "Ana",
		Email:   "ana@x.com",
		Message: "Olá\nTudo bem?",
	})
	require.NoError(t, err)

	assert.Equal(t, "📬 Nova mensagem de Ana", msg.Subject)
	assert.Equal(t, "rh@example.com", msg.To)
	assert.Equal(t, "MD <onboarding@resend.dev>", msg.From)
	assert.Contains(t, msg.HTMLBody, "<p><strong>Nome:</strong> Ana</p>")
	assert.Contains(t, msg.HTMLBody, "<p><strong>Email:</strong> ana@x.com</p>")
	assert.Contains(t, msg.HTMLBody, "Olá<br>Tudo bem?")
	assert.Nil(t, msg.Attachment)
}

func TestComposeContactHTMLHandling(t *testing.T) {
	sub := &domain.ContactSubmission{Name: "<b>Ana</b>", Email: "a@b.com", Message: "1 < 2 & 3\nfim"}

	t.Run("verbatim by default", func(t *testing.T) {
		msg, err := email.NewComposer("f", "t", false).ComposeContact(sub)
		require.NoError(t, err)
		assert.Contains(t, msg.HTMLBody, "<b>Ana</b>")
		assert.Contains(t, msg.HTMLBody, "1 < 2 & 3<br>fim")
	})

	t.Run("escaped when enabled", func(t *testing.T) {
		msg, err := email.NewComposer("f", "t", true).ComposeContact(sub)
		require.NoError(t, err)
		assert.Contains(t, msg.HTMLBody, "&lt;b&gt;Ana&lt;/b&gt;")
		assert.Contains(t, msg.HTMLBody, "1 &lt; 2 &amp; 3<br>fim")
		// subject is plain text, never escaped
		assert.Equal(t, "📬 Nova mensagem de <b>Ana</b>", msg.Subject)
	})
}

func TestComposeApplication(t *testing.T) {
	c := email.NewComposer("from", "rh@example.com", false)
	resume := []byte("%PDF-1.4\x00\x01\x02binary")

	msg, err := c.ComposeApplication(&domain.ApplicationSubmission{
		Name:  "Bruno",
		Email: "bruno@x.com",
		Phone: "11 99999-0000",
		Resume: &domain.UploadedFile{
			OriginalName: "cv bruno.pdf",
			StoredPath:   "uploads/1700000000000-cv bruno.pdf",
		},
	}, resume)
	require.NoError(t, err)

	assert.Equal(t, "📄 Novo candidato: Bruno", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "<p><strong>Telefone:</strong> 11 99999-0000</p>")
	assert.Contains(t, msg.HTMLBody, "O currículo segue em anexo.")
	assert.NotContains(t, msg.HTMLBody, "binary")

	require.NotNil(t, msg.Attachment)
	assert.Equal(t, "cv bruno.pdf", msg.Attachment.Filename)
	assert.Equal(t, resume, msg.Attachment.Content)
	assert.Equal(t, "uploads/1700000000000-cv bruno.pdf", msg.Attachment.Path)
}

func TestComposeApplicationWithoutResume(t *testing.T) {
	_, err := email.NewComposer("f", "t", false).ComposeApplication(&domain.ApplicationSubmission{Name: "x"}, nil)
	assert.Error(t, err)
}
