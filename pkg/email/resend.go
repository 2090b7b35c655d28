package email

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/resend/resend-go/v2"
)

const emailsPath = "emails"

// sendEmailPayload is the emails request body. The SDK's own request type
// serializes attachment content as a number array, so the body is built here.
type sendEmailPayload struct {
	From        string              `json:"from"`
	To          []string            `json:"to"`
	Subject     string              `json:"subject"`
	HTML        string              `json:"html"`
	Attachments []attachmentPayload `json:"attachments,omitempty"`
}

type attachmentPayload struct {
	Filename string `json:"filename"`
	Content  string `json:"content"`
}

// ResendSender delivers messages through the Resend transactional email API.
type ResendSender struct {
	client *resend.Client
}

func NewResendSender(client *resend.Client) *ResendSender {
	return &ResendSender{client: client}
}

// Send submits the message in a single authenticated HTTPS call to the
// emails endpoint. The attachment goes out as a base64 content string.
func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	payload := &sendEmailPayload{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTMLBody,
	}

	if a := msg.Attachment; a != nil {
		payload.Attachments = []attachmentPayload{{
			Filename: a.Filename,
			Content:  base64.StdEncoding.EncodeToString(a.Content),
		}}
	}

	req, err := s.client.NewRequest(ctx, http.MethodPost, emailsPath, payload)
	if err != nil {
		return fmt.Errorf("resend: failed to build request: %w", err)
	}

	var resp resend.SendEmailResponse
	if _, err := s.client.Perform(req, &resp); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}

	return nil
}
