package stripe

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

// Scenario enumerates the behaviours supported by the mock gateway.
type Scenario string

const (
	ScenarioSuccess Scenario = "success"
	ScenarioDecline Scenario = "decline"
)

// ParseScenario maps a configuration value onto a Scenario, defaulting to
// success for unknown input.
func ParseScenario(value string) Scenario {
	if Scenario(strings.ToLower(strings.TrimSpace(value))) == ScenarioDecline {
		return ScenarioDecline
	}
	return ScenarioSuccess
}

// Option customises the mock gateway.
type Option func(*MockService)

// WithScenario sets whether charges and refunds succeed.
func WithScenario(s Scenario) Option {
	return func(m *MockService) {
		m.scenario = s
	}
}

// WithRandomSeed swaps the RNG seed used when fabricating charge identifiers.
// A zero seed keeps the time based default.
func WithRandomSeed(seed int64) Option {
	return func(m *MockService) {
		if seed != 0 {
			m.rnd = rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic seed for tests.
		}
	}
}

// MockService fabricates Stripe-like responses in process. It never performs
// I/O.
type MockService struct {
	logger   zerolog.Logger
	scenario Scenario

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewMockService constructs a gateway that succeeds unless configured
// otherwise.
func NewMockService(log zerolog.Logger, opts ...Option) *MockService {
	m := &MockService{
		logger:   logger.OrNop(log),
		scenario: ScenarioSuccess,
		rnd:      rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// Charge simulates charging amountInCents against token.
func (m *MockService) Charge(ctx context.Context, amountInCents int64, token string) (*ChargeResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if amountInCents <= 0 {
		return nil, fmt.Errorf("stripe mock: amount must be positive, got %d", amountInCents)
	}
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("stripe mock: token is required")
	}

	m.logger.Debug().
		Str("provider", "mock_stripe").
		Str("scenario", string(m.scenario)).
		Int64("amount_cents", amountInCents).
		Msg("mock stripe charge invoked")

	if m.scenario == ScenarioDecline {
		return &ChargeResponse{Success: false}, nil
	}
	return &ChargeResponse{Success: true, TransactionID: m.nextID()}, nil
}

// Refund simulates refunding the charge identified by reference.
func (m *MockService) Refund(ctx context.Context, reference string) (*RefundResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reference) == "" {
		return nil, errors.New("stripe mock: reference is required")
	}

	m.logger.Debug().
		Str("provider", "mock_stripe").
		Str("scenario", string(m.scenario)).
		Str("reference", reference).
		Msg("mock stripe refund invoked")

	return &RefundResponse{Success: m.scenario != ScenarioDecline}, nil
}

func (m *MockService) nextID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fmt.Sprintf("ch_%d", m.rnd.Intn(1_000_000))
}

var _ Service = (*MockService)(nil)
