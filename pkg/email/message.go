package email

import "context"

// Attachment is a file carried alongside a message. Transports choose whether
// to send Content inline or to reference Path.
type Attachment struct {
	Filename string
	Content  []byte
	Path     string
}

// Message is the transport-agnostic representation of an outbound notification.
type Message struct {
	From       string // sender display, e.g. "Name <addr>"
	To         string
	Subject    string
	HTMLBody   string
	Attachment *Attachment
}

// Sender delivers a composed Message. Implementations make a single attempt
// and never retry.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}
