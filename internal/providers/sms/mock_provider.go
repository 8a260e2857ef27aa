package sms

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/example/adapter-workshop/internal/logger"
)

// Scenario enumerates the mock behaviours supported by the SMS provider.
type Scenario string

const (
	ScenarioSuccess  Scenario = "success"
	ScenarioRejected Scenario = "rejected"
)

// ParseScenario maps a configuration value onto a Scenario, defaulting to
// success for unknown input.
func ParseScenario(value string) Scenario {
	if Scenario(strings.ToLower(strings.TrimSpace(value))) == ScenarioRejected {
		return ScenarioRejected
	}
	return ScenarioSuccess
}

// Option customises the mock provider.
type Option func(*MockProvider)

// WithScenario sets the scenario used for every text.
func WithScenario(s Scenario) Option {
	return func(p *MockProvider) {
		p.scenario = s
	}
}

// WithRandomSeed swaps the RNG seed used when generating message ids. A zero
// seed keeps the time based default.
func WithRandomSeed(seed int64) Option {
	return func(p *MockProvider) {
		if seed != 0 {
			p.rnd = rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic seed for tests.
		}
	}
}

// WithClock overrides the clock used to timestamp responses.
func WithClock(now func() time.Time) Option {
	return func(p *MockProvider) {
		if now != nil {
			p.now = now
		}
	}
}

// MockProvider is an in-process SMS gateway stand-in.
type MockProvider struct {
	logger   zerolog.Logger
	scenario Scenario
	now      func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockProvider constructs a mock SMS provider.
func NewMockProvider(log zerolog.Logger, opts ...Option) *MockProvider {
	p := &MockProvider{
		logger:   logger.OrNop(log),
		scenario: ScenarioSuccess,
		now:      time.Now,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// SendText simulates sending body to phone according to the configured
// scenario.
func (p *MockProvider) SendText(ctx context.Context, phone, body string) (*RawResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(phone) == "" {
		return nil, errors.New("sms mock: phone is required")
	}

	p.logger.Debug().
		Str("provider", "mock_sms").
		Str("scenario", string(p.scenario)).
		Int("body_len", len(body)).
		Msg("mock sms provider invoked")

	resp := &RawResponse{
		ID:        p.generateID(),
		Status:    StatusQueued,
		Code:      200,
		Detail:    "mock: message accepted",
		Timestamp: p.now(),
	}
	if p.scenario == ScenarioRejected {
		resp.Status = StatusFailed
		resp.Code = 21211
		resp.Detail = "mock: invalid recipient"
	}
	return resp, nil
}

func (p *MockProvider) generateID() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return fmt.Sprintf("SM%016x", p.rnd.Int63())
}

var _ Provider = (*MockProvider)(nil)
