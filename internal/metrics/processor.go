// Package metrics counts payment operations flowing through a
// common.Processor without changing its behaviour.
package metrics

import (
	"context"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"

	common "github.com/example/adapter-workshop/internal/adapters/common"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
	OutcomeError   = "error"
)

// Operation label values.
const (
	OperationPayment = "payment"
	OperationRefund  = "refund"
)

// Recorder owns the counters shared by every instrumented processor.
type Recorder struct {
	operations *prometheus.CounterVec
}

// NewRecorder registers the payment counters with reg.
func NewRecorder(reg prometheus.Registerer) (*Recorder, error) {
	ops := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "adapter",
		Name:      "payment_operations_total",
		Help:      "Payment processor calls partitioned by provider, operation and outcome.",
	}, []string{"provider", "operation", "outcome"})

	if err := reg.Register(ops); err != nil {
		return nil, err
	}
	return &Recorder{operations: ops}, nil
}

// Counter exposes the counter for a label set, mainly for tests.
func (r *Recorder) Counter(provider, operation, outcome string) prometheus.Counter {
	return r.operations.WithLabelValues(provider, operation, outcome)
}

// Instrument wraps next so every call is counted under provider.
func (r *Recorder) Instrument(provider string, next common.Processor) common.Processor {
	return &instrumented{provider: provider, next: next, rec: r}
}

type instrumented struct {
	provider string
	next     common.Processor
	rec      *Recorder
}

func (p *instrumented) ProcessPayment(ctx context.Context, amount float64) (*common.Result, error) {
	res, err := p.next.ProcessPayment(ctx, amount)
	p.observe(OperationPayment, res, err)
	return res, err
}

func (p *instrumented) RefundPayment(ctx context.Context, transactionID string) (*common.Result, error) {
	res, err := p.next.RefundPayment(ctx, transactionID)
	p.observe(OperationRefund, res, err)
	return res, err
}

func (p *instrumented) observe(op string, res *common.Result, err error) {
	outcome := OutcomeFailure
	switch {
	case err != nil:
		outcome = OutcomeError
	case res != nil && res.Success:
		outcome = OutcomeSuccess
	}
	p.rec.operations.WithLabelValues(p.provider, op, outcome).Inc()
}

// WriteText dumps everything gathered by g in the Prometheus text format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return err
	}
	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return err
		}
	}
	return nil
}
