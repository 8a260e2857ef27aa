package email_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/adapter-workshop/internal/providers/email"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
}

func TestSendSuccess(t *testing.T) {
	p := email.NewMockProvider(zerolog.Nop(), email.WithClock(fixedClock))

	resp, err := p.Send(context.Background(), &email.Payload{To: []string{"a@example.com"}, Subject: "hi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Code != 250 {
		t.Fatalf("code = %d, want 250", resp.Code)
	}
	if _, err := uuid.Parse(resp.ID); err != nil {
		t.Fatalf("expected generated uuid id, got %q", resp.ID)
	}
	if !resp.Timestamp.Equal(fixedClock()) {
		t.Fatalf("timestamp = %v", resp.Timestamp)
	}
}

func TestSendKeepsSuppliedMessageID(t *testing.T) {
	p := email.NewMockProvider(zerolog.Nop())

	resp, err := p.Send(context.Background(), &email.Payload{MessageID: "msg-1", To: []string{"a@example.com"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != "msg-1" {
		t.Fatalf("id = %q, want msg-1", resp.ID)
	}
}

func TestSendRejectedViaHeader(t *testing.T) {
	p := email.NewMockProvider(zerolog.Nop())

	resp, err := p.Send(context.Background(), &email.Payload{
		To:      []string{"a@example.com"},
		Headers: map[string]string{"x-mock-provider-scenario": "rejected"},
	})
	if err == nil || !strings.Contains(err.Error(), "smtp 550") {
		t.Fatalf("expected smtp 550 error, got %v", err)
	}
	if resp == nil || resp.Code != 550 {
		t.Fatalf("expected response with code 550, got %+v", resp)
	}
}

func TestSendValidatesPayload(t *testing.T) {
	p := email.NewMockProvider(zerolog.Nop(), email.WithDefaultScenario(email.ScenarioRejected))

	if _, err := p.Send(context.Background(), nil); err == nil {
		t.Fatalf("expected error for nil payload")
	}
	if _, err := p.Send(context.Background(), &email.Payload{}); err == nil {
		t.Fatalf("expected error without recipients")
	}
}
