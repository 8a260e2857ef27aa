package paypal

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	common "github.com/example/adapter-workshop/internal/adapters/common"
	"github.com/example/adapter-workshop/internal/logger"
	paypalprovider "github.com/example/adapter-workshop/internal/providers/paypal"
)

// DefaultAccount is the merchant account payments are made from when none is
// configured.
const DefaultAccount = "store@example.com"

// Option customises adapter behaviour.
type Option func(*Adapter)

// WithAccount overrides the account passed to the gateway.
func WithAccount(account string) Option {
	return func(a *Adapter) {
		if account != "" {
			a.account = account
		}
	}
}

// Adapter implements common.Processor on top of a PayPal-like gateway. It
// maps the gateway's status strings to a success flag and renames paypal_id
// to transaction_id.
type Adapter struct {
	logger  zerolog.Logger
	service paypalprovider.Service
	account string
}

// NewAdapter binds an adapter to service for its lifetime.
func NewAdapter(service paypalprovider.Service, log zerolog.Logger, opts ...Option) (*Adapter, error) {
	if service == nil {
		return nil, errors.New("paypal adapter: service dependency is required")
	}

	a := &Adapter{
		logger:  logger.OrNop(log),
		service: service,
		account: DefaultAccount,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(a)
		}
	}
	return a, nil
}

// ProcessPayment pays amount through the gateway. Only a COMPLETED status is
// a success; every other status is reported as a failed Result.
func (a *Adapter) ProcessPayment(ctx context.Context, amount float64) (*common.Result, error) {
	if err := common.ValidateAmount(amount); err != nil {
		return nil, fmt.Errorf("paypal adapter: %w", err)
	}
	resp, err := a.service.MakePayment(ctx, amount, a.account)
	if err != nil {
		a.logger.Warn().
			Str("provider", "paypal").
			Float64("amount", amount).
			Err(err).
			Msg("paypal payment errored")
		return nil, fmt.Errorf("paypal adapter: make payment: %w", err)
	}
	if resp == nil || resp.Status != paypalprovider.StatusCompleted {
		a.logger.Info().
			Str("provider", "paypal").
			Str("provider_status", statusOf(resp)).
			Msg("paypal payment not completed")
		return common.Failed(common.MsgPaymentFailed), nil
	}

	a.logger.Debug().
		Str("provider", "paypal").
		Str("transaction_id", resp.PaypalID).
		Msg("paypal payment completed")
	return common.Succeeded(resp.PaypalID), nil
}

// RefundPayment refunds transactionID. Only a REFUNDED status is a success.
func (a *Adapter) RefundPayment(ctx context.Context, transactionID string) (*common.Result, error) {
	resp, err := a.service.IssueRefund(ctx, transactionID)
	if err != nil {
		a.logger.Warn().
			Str("provider", "paypal").
			Str("transaction_id", transactionID).
			Err(err).
			Msg("paypal refund errored")
		return nil, fmt.Errorf("paypal adapter: issue refund: %w", err)
	}
	if resp == nil || resp.Status != paypalprovider.StatusRefunded {
		var status string
		if resp != nil {
			status = resp.Status
		}
		a.logger.Info().
			Str("provider", "paypal").
			Str("transaction_id", transactionID).
			Str("provider_status", status).
			Msg("paypal refund not completed")
		return common.Failed(common.MsgRefundFailed), nil
	}

	a.logger.Debug().
		Str("provider", "paypal").
		Str("transaction_id", transactionID).
		Msg("paypal refund completed")
	return &common.Result{Success: true}, nil
}

func statusOf(resp *paypalprovider.PaymentResponse) string {
	if resp == nil {
		return ""
	}
	return resp.Status
}

var _ common.Processor = (*Adapter)(nil)
