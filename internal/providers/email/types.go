package email

import (
	"context"
	"time"
)

// Payload is the canonical representation of an outbound email passed to the
// provider.
type Payload struct {
	MessageID string
	From      string
	To        []string
	Subject   string
	Body      string
	Headers   map[string]string
}

// RawResponse mirrors the low level SMTP-style response.
type RawResponse struct {
	ID        string
	Code      int
	Body      string
	Timestamp time.Time
}

// Provider is the contract exposed by email providers. Rejections are
// reported as an error carrying the SMTP code alongside the response.
type Provider interface {
	Send(ctx context.Context, payload *Payload) (*RawResponse, error)
}
