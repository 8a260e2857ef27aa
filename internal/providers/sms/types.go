package sms

import (
	"context"
	"time"
)

// Status values reported by the SMS gateway.
const (
	StatusQueued = "queued"
	StatusFailed = "failed"
)

// RawResponse describes what the gateway reports after accepting a text.
// Rejections are reported through Status, not an error.
type RawResponse struct {
	ID        string
	Status    string
	Code      int
	Detail    string
	Timestamp time.Time
}

// Provider represents an outbound SMS gateway (e.g. Twilio).
type Provider interface {
	SendText(ctx context.Context, phone, body string) (*RawResponse, error)
}
