package paypal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/example/adapter-workshop/internal/logger"
	"github.com/example/adapter-workshop/internal/util"
)

// Scenario enumerates the behaviours supported by the mock gateway.
type Scenario string

const (
	ScenarioSuccess Scenario = "success"
	ScenarioPending Scenario = "pending"
	ScenarioDenied  Scenario = "denied"
)

// ParseScenario maps a configuration value onto a Scenario, defaulting to
// success for unknown input.
func ParseScenario(value string) Scenario {
	switch s := Scenario(strings.ToLower(strings.TrimSpace(value))); s {
	case ScenarioPending, ScenarioDenied:
		return s
	default:
		return ScenarioSuccess
	}
}

// Option customises the mock gateway.
type Option func(*MockService)

// WithScenario selects the statuses the gateway reports.
func WithScenario(s Scenario) Option {
	return func(m *MockService) {
		m.scenario = s
	}
}

// WithIDGenerator overrides how payment identifiers are fabricated.
func WithIDGenerator(next func() string) Option {
	return func(m *MockService) {
		if next != nil {
			m.nextID = next
		}
	}
}

// WithRandomSeed derives payment identifiers from a seeded RNG so runs are
// reproducible. A zero seed keeps random UUIDs.
func WithRandomSeed(seed int64) Option {
	return func(m *MockService) {
		if seed == 0 {
			return
		}
		var mu sync.Mutex
		rnd := rand.New(rand.NewSource(seed)) // #nosec G404 -- deterministic seed for tests.
		m.nextID = func() string {
			mu.Lock()
			defer mu.Unlock()
			id, err := uuid.NewRandomFromReader(rnd)
			if err != nil {
				return newPaymentID()
			}
			return "PAYID-" + strings.ToUpper(id.String())
		}
	}
}

// MockService fabricates PayPal-like responses in process. It never performs
// I/O.
type MockService struct {
	logger   zerolog.Logger
	scenario Scenario
	nextID   func() string
}

// NewMockService constructs a gateway that completes payments unless
// configured otherwise.
func NewMockService(log zerolog.Logger, opts ...Option) *MockService {
	m := &MockService{
		logger:   logger.OrNop(log),
		scenario: ScenarioSuccess,
		nextID:   newPaymentID,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(m)
		}
	}
	return m
}

// MakePayment simulates paying amount from account.
func (m *MockService) MakePayment(ctx context.Context, amount float64, account string) (*PaymentResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !(amount > 0) || math.IsInf(amount, 0) {
		return nil, fmt.Errorf("paypal mock: amount must be positive and finite, got %v", amount)
	}
	if _, err := util.NormalizeEmail(account); err != nil {
		return nil, fmt.Errorf("paypal mock: account: %w", err)
	}

	m.logger.Debug().
		Str("provider", "mock_paypal").
		Str("scenario", string(m.scenario)).
		Float64("amount", amount).
		Msg("mock paypal payment invoked")

	resp := &PaymentResponse{PaypalID: m.nextID()}
	switch m.scenario {
	case ScenarioPending:
		resp.Status = StatusPending
	case ScenarioDenied:
		resp.Status = StatusDenied
	default:
		resp.Status = StatusCompleted
	}
	return resp, nil
}

// IssueRefund simulates refunding transactionID.
func (m *MockService) IssueRefund(ctx context.Context, transactionID string) (*RefundResponse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(transactionID) == "" {
		return nil, errors.New("paypal mock: transaction id is required")
	}

	m.logger.Debug().
		Str("provider", "mock_paypal").
		Str("scenario", string(m.scenario)).
		Str("paypal_id", transactionID).
		Msg("mock paypal refund invoked")

	switch m.scenario {
	case ScenarioPending:
		return &RefundResponse{Status: StatusPending}, nil
	case ScenarioDenied:
		return &RefundResponse{Status: StatusDenied}, nil
	default:
		return &RefundResponse{Status: StatusRefunded}, nil
	}
}

func newPaymentID() string {
	return "PAYID-" + strings.ToUpper(uuid.NewString())
}

var _ Service = (*MockService)(nil)
