package email

import (
	"bytes"
	"fmt"
	"html"
	"strings"
	"text/template"

	"md-terceirizacao-api/internal/domain"
)

// Composer builds notification messages from submissions.
//
// Submitted text is interpolated into the HTML verbatim unless EscapeHTML is set.
type Composer struct {
	From       string
	To         string
	EscapeHTML bool
}

const contactEmailTemplate = `
<h1>Nova mensagem de contato</h1>
<p><strong>Nome:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Mensagem:</strong></p>
<p>{{.Message}}</p>
`

const applicationEmailTemplate = `
<h1>Novo Currículo Recebido</h1>
<p><strong>Nome:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Telefone:</strong> {{.Phone}}</p>
<p>O currículo segue em anexo.</p>
`

var (
	contactTmpl     = template.Must(template.New("contact").Parse(contactEmailTemplate))
	applicationTmpl = template.Must(template.New("application").Parse(applicationEmailTemplate))
)

func NewComposer(from, to string, escapeHTML bool) *Composer {
	return &Composer{From: from, To: to, EscapeHTML: escapeHTML}
}

// ComposeContact builds the notification for a contact form submission.
func (c *Composer) ComposeContact(sub *domain.ContactSubmission) (*Message, error) {
	data := struct {
		Name, Email, Message string
	}{
		Name:    c.text(sub.Name),
		Email:   c.text(sub.Email),
		Message: nl2br(c.text(sub.Message)),
	}

	var body bytes.Buffer
	if err := contactTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute contact template: %w", err)
	}

	return &Message{
		From:     c.From,
		To:       c.To,
		Subject:  fmt.Sprintf("📬 Nova mensagem de %s", sub.Name),
		HTMLBody: body.String(),
	}, nil
}

// ComposeApplication builds the notification for a job application. The
// résumé travels as an attachment, never inline in the body.
func (c *Composer) ComposeApplication(sub *domain.ApplicationSubmission, resume []byte) (*Message, error) {
	if sub.Resume == nil {
		return nil, fmt.Errorf("application has no staged résumé")
	}

	data := struct {
		Name, Email, Phone string
	}{
		Name:  c.text(sub.Name),
		Email: c.text(sub.Email),
		Phone: c.text(sub.Phone),
	}

	var body bytes.Buffer
	if err := applicationTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute application template: %w", err)
	}

	return &Message{
		From:     c.From,
		To:       c.To,
		Subject:  fmt.Sprintf("📄 Novo candidato: %s", sub.Name),
		HTMLBody: body.String(),
		Attachment: &Attachment{
			Filename: sub.Resume.OriginalName,
			Content:  resume,
			Path:     sub.Resume.StoredPath,
		},
	}, nil
}

func (c *Composer) text(s string) string {
	if c.EscapeHTML {
		return html.EscapeString(s)
	}
	return s
}

func nl2br(s string) string {
	return strings.ReplaceAll(s, "\n", "<br>")
}
