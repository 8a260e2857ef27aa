package paypal

import "context"

// Status values reported by the PayPal-like gateway.
const (
	StatusCompleted = "COMPLETED"
	StatusPending   = "PENDING"
	StatusDenied    = "DENIED"
	StatusRefunded  = "REFUNDED"
)

// PaymentResponse is what the gateway returns for a payment.
type PaymentResponse struct {
	Status   string
	PaypalID string
}

// RefundResponse is what the gateway returns for a refund.
type RefundResponse struct {
	Status string
}

// Service is the PayPal-like gateway surface. Amounts are in major units.
type Service interface {
	MakePayment(ctx context.Context, amount float64, account string) (*PaymentResponse, error)
	IssueRefund(ctx context.Context, transactionID string) (*RefundResponse, error)
}
