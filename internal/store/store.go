// Package store is the client side of the payment demo. OnlineStore is
// written once against common.Processor and never knows which gateway sits
// behind it.
package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	common "github.com/example/adapter-workshop/internal/adapters/common"
	"github.com/example/adapter-workshop/internal/logger"
)

// OnlineStore sells products through a single payment processor.
type OnlineStore struct {
	processor common.Processor
	out       io.Writer
	logger    zerolog.Logger
}

// New constructs a store that prints customer facing messages to out.
func New(processor common.Processor, out io.Writer, log zerolog.Logger) (*OnlineStore, error) {
	if processor == nil {
		return nil, errors.New("store: payment processor is required")
	}
	if out == nil {
		out = io.Discard
	}
	return &OnlineStore{
		processor: processor,
		out:       out,
		logger:    logger.OrNop(log),
	}, nil
}

// PurchaseProduct charges amount for the product called name. It returns the
// transaction id on success and an empty string when the payment failed.
// A non-nil error means the processor could not be used at all; it is
// returned to the caller and not printed.
func (s *OnlineStore) PurchaseProduct(ctx context.Context, name string, amount float64) (string, error) {
	res, err := s.processor.ProcessPayment(ctx, amount)
	if err != nil {
		s.logger.Error().
			Str("product", name).
			Float64("amount", amount).
			Err(err).
			Msg("purchase errored")
		return "", fmt.Errorf("store: purchase %s: %w", name, err)
	}
	if res == nil || !res.Success {
		msg := common.MsgPaymentFailed
		if res != nil && res.Error != "" {
			msg = res.Error
		}
		s.logger.Info().
			Str("product", name).
			Float64("amount", amount).
			Str("reason", msg).
			Msg("purchase declined")
		fmt.Fprintf(s.out, "Payment failed for %s: %s\n", name, msg)
		return "", nil
	}

	s.logger.Info().
		Str("product", name).
		Float64("amount", amount).
		Str("transaction_id", res.TransactionID).
		Msg("purchase completed")
	fmt.Fprintf(s.out, "Successfully purchased %s for $%.2f. Transaction ID: %s\n", name, amount, res.TransactionID)
	return res.TransactionID, nil
}

// RefundProduct refunds a previous purchase. An empty transactionID is the
// result of a failed purchase and is ignored without calling the processor.
// Processor errors are returned, not printed.
func (s *OnlineStore) RefundProduct(ctx context.Context, transactionID string) error {
	if transactionID == "" {
		s.logger.Debug().Msg("refund skipped: no transaction")
		return nil
	}

	res, err := s.processor.RefundPayment(ctx, transactionID)
	if err != nil {
		s.logger.Error().
			Str("transaction_id", transactionID).
			Err(err).
			Msg("refund errored")
		return fmt.Errorf("store: refund %s: %w", transactionID, err)
	}
	if res == nil || !res.Success {
		msg := common.MsgRefundFailed
		if res != nil && res.Error != "" {
			msg = res.Error
		}
		s.logger.Info().
			Str("transaction_id", transactionID).
			Str("reason", msg).
			Msg("refund declined")
		fmt.Fprintf(s.out, "Refund failed for transaction %s: %s\n", transactionID, msg)
		return nil
	}

	s.logger.Info().
		Str("transaction_id", transactionID).
		Msg("refund completed")
	fmt.Fprintf(s.out, "Successfully refunded transaction %s\n", transactionID)
	return nil
}
