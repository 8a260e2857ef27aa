package common

import "context"

// Messages substituted into Result.Error when a wrapped service reports a
// non-success status.
const (
	MsgPaymentFailed = "Payment failed"
	MsgRefundFailed  = "Refund failed"
)

// Processor is the payment capability client code is written against. Each
// adapter translates it to one third party gateway.
//
// A declined payment or refund is reported through Result, never through the
// error return. Errors are reserved for contract violations such as
// ErrNotImplemented and for context cancellation.
type Processor interface {
	ProcessPayment(ctx context.Context, amount float64) (*Result, error)
	RefundPayment(ctx context.Context, transactionID string) (*Result, error)
}

// Result is the normalized outcome of a single Processor call. It is produced
// per call and never cached.
type Result struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	Error         string `json:"error,omitempty"`
}

// Succeeded builds a successful Result carrying transactionID.
func Succeeded(transactionID string) *Result {
	return &Result{Success: true, TransactionID: transactionID}
}

// Failed builds a failed Result carrying msg.
func Failed(msg string) *Result {
	return &Result{Success: false, Error: msg}
}

// UnimplementedProcessor is the abstract Processor. Embed it in a concrete
// variant and override both methods; calls that reach it report
// ErrNotImplemented.
type UnimplementedProcessor struct{}

// ProcessPayment always fails with ErrNotImplemented.
func (UnimplementedProcessor) ProcessPayment(context.Context, float64) (*Result, error) {
	return nil, NotImplemented("ProcessPayment")
}

// RefundPayment always fails with ErrNotImplemented.
func (UnimplementedProcessor) RefundPayment(context.Context, string) (*Result, error) {
	return nil, NotImplemented("RefundPayment")
}

var _ Processor = UnimplementedProcessor{}
