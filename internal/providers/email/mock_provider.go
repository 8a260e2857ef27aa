package email

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/adapter-workshop/internal/logger"
)

// Scenario enumerates the supported mock behaviours.
type Scenario string

const (
	ScenarioSuccess  Scenario = "success"
	ScenarioRejected Scenario = "rejected"

	headerScenario = "X-Mock-Provider-Scenario"
)

// ParseScenario maps a configuration value onto a Scenario, defaulting to
// success for unknown input.
func ParseScenario(value string) Scenario {
	if Scenario(strings.ToLower(strings.TrimSpace(value))) == ScenarioRejected {
		return ScenarioRejected
	}
	return ScenarioSuccess
}

// Option customizes the behaviour of the mock provider at construction time.
type Option func(*MockProvider)

// WithDefaultScenario configures the behaviour when a payload does not
// specify an explicit scenario via headers.
func WithDefaultScenario(s Scenario) Option {
	return func(p *MockProvider) {
		p.defaultScenario = s
	}
}

// WithClock overrides the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(p *MockProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// MockProvider is an in-process SMTP stand-in. Behaviour is controlled via
// options and the X-Mock-Provider-Scenario header without any network calls.
type MockProvider struct {
	logger          zerolog.Logger
	defaultScenario Scenario
	now             func() time.Time
}

// NewMockProvider constructs a mock SMTP provider that accepts every message
// by default.
func NewMockProvider(log zerolog.Logger, opts ...Option) *MockProvider {
	p := &MockProvider{
		logger:          logger.OrNop(log),
		defaultScenario: ScenarioSuccess,
		now:             time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Send simulates delivering the supplied payload.
func (p *MockProvider) Send(ctx context.Context, payload *Payload) (*RawResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if payload == nil {
		return nil, errors.New("email: payload is required")
	}
	if len(payload.To) == 0 {
		return nil, errors.New("email: at least one recipient is required")
	}

	scenario := p.resolveScenario(payload)
	p.logger.Debug().
		Str("provider", "mock_smtp").
		Str("scenario", string(scenario)).
		Str("message_id", payload.MessageID).
		Msg("mock email provider invoked")

	if scenario == ScenarioRejected {
		resp := p.baseResponse(payload, 550, "mock: mailbox unavailable")
		return resp, fmt.Errorf("smtp %d: %s", resp.Code, resp.Body)
	}
	return p.baseResponse(payload, 250, "mock: message queued"), nil
}

func (p *MockProvider) resolveScenario(payload *Payload) Scenario {
	for k, v := range payload.Headers {
		if strings.EqualFold(k, headerScenario) && strings.TrimSpace(v) != "" {
			return ParseScenario(v)
		}
	}
	return p.defaultScenario
}

func (p *MockProvider) baseResponse(payload *Payload, code int, body string) *RawResponse {
	id := payload.MessageID
	if id == "" {
		id = uuid.NewString()
	}
	return &RawResponse{
		ID:        id,
		Code:      code,
		Body:      body,
		Timestamp: p.now(),
	}
}

var _ Provider = (*MockProvider)(nil)
