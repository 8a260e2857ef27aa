package stripe

import "context"

// ChargeResponse is what the gateway returns for a charge.
type ChargeResponse struct {
	Success       bool
	TransactionID string
}

// RefundResponse is what the gateway returns for a refund.
type RefundResponse struct {
	Success bool
}

// Service is the Stripe-like gateway surface. Amounts are in minor units.
type Service interface {
	Charge(ctx context.Context, amountInCents int64, token string) (*ChargeResponse, error)
	Refund(ctx context.Context, reference string) (*RefundResponse, error)
}
