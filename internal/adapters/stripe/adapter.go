package stripe

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	common "github.com/example/adapter-workshop/internal/adapters/common"
	"github.com/example/adapter-workshop/internal/logger"
	stripeprovider "github.com/example/adapter-workshop/internal/providers/stripe"
)

// DefaultToken is the card token charged when none is configured.
const DefaultToken = "tok_visa"

// Option customises adapter behaviour.
type Option func(*Adapter)

// WithToken overrides the card token passed to the gateway.
func WithToken(token string) Option {
	return func(a *Adapter) {
		if token != "" {
			a.token = token
		}
	}
}

// Adapter implements common.Processor on top of a Stripe-like gateway,
// converting amounts to minor units and flattening its responses.
type Adapter struct {
	logger  zerolog.Logger
	service stripeprovider.Service
	token   string
}

// NewAdapter binds an adapter to service for its lifetime.
func NewAdapter(service stripeprovider.Service, log zerolog.Logger, opts ...Option) (*Adapter, error) {
	if service == nil {
		return nil, errors.New("stripe adapter: service dependency is required")
	}

	a := &Adapter{
		logger:  logger.OrNop(log),
		service: service,
		token:   DefaultToken,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a, nil
}

// ProcessPayment charges amount, given in major units, through the gateway.
func (a *Adapter) ProcessPayment(ctx context.Context, amount float64) (*common.Result, error) {
	if err := common.ValidateAmount(amount); err != nil {
		return nil, fmt.Errorf("stripe adapter: %w", err)
	}
	cents := toMinorUnits(amount)

	resp, err := a.service.Charge(ctx, cents, a.token)
	if err != nil {
		a.logger.Warn().
			Str("provider", "stripe").
			Int64("amount_cents", cents).
			Err(err).
			Msg("stripe charge errored")
		return nil, fmt.Errorf("stripe adapter: charge: %w", err)
	}
	if resp == nil || !resp.Success {
		a.logger.Info().
			Str("provider", "stripe").
			Int64("amount_cents", cents).
			Msg("stripe charge declined")
		return common.Failed(common.MsgPaymentFailed), nil
	}

	a.logger.Debug().
		Str("provider", "stripe").
		Int64("amount_cents", cents).
		Str("transaction_id", resp.TransactionID).
		Msg("stripe charge succeeded")
	return common.Succeeded(resp.TransactionID), nil
}

// RefundPayment refunds the charge identified by transactionID.
func (a *Adapter) RefundPayment(ctx context.Context, transactionID string) (*common.Result, error) {
	resp, err := a.service.Refund(ctx, transactionID)
	if err != nil {
		a.logger.Warn().
			Str("provider", "stripe").
			Str("transaction_id", transactionID).
			Err(err).
			Msg("stripe refund errored")
		return nil, fmt.Errorf("stripe adapter: refund: %w", err)
	}
	if resp == nil || !resp.Success {
		a.logger.Info().
			Str("provider", "stripe").
			Str("transaction_id", transactionID).
			Msg("stripe refund declined")
		return common.Failed(common.MsgRefundFailed), nil
	}

	a.logger.Debug().
		Str("provider", "stripe").
		Str("transaction_id", transactionID).
		Msg("stripe refund succeeded")
	return &common.Result{Success: true}, nil
}

// toMinorUnits multiplies by 100 and rounds, so 19.99 becomes 1999 rather
// than 1998. amount must have passed common.ValidateAmount.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

var _ common.Processor = (*Adapter)(nil)
