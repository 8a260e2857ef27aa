package stripe_test

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	common "github.com/example/adapter-workshop/internal/adapters/common"
	stripeadapter "github.com/example/adapter-workshop/internal/adapters/stripe"
	stripeprovider "github.com/example/adapter-workshop/internal/providers/stripe"
)

type recordingService struct {
	charge     *stripeprovider.ChargeResponse
	refund     *stripeprovider.RefundResponse
	err        error
	gotCents   []int64
	gotToken   string
	gotRefunds []string
}

func (s *recordingService) Charge(_ context.Context, cents int64, token string) (*stripeprovider.ChargeResponse, error) {
	s.gotCents = append(s.gotCents, cents)
	s.gotToken = token
	return s.charge, s.err
}

func (s *recordingService) Refund(_ context.Context, reference string) (*stripeprovider.RefundResponse, error) {
	s.gotRefunds = append(s.gotRefunds, reference)
	return s.refund, s.err
}

func TestNewAdapterRequiresService(t *testing.T) {
	if _, err := stripeadapter.NewAdapter(nil, zerolog.Nop()); err == nil {
		t.Fatalf("expected constructor error for nil service")
	}
}

func TestProcessPaymentConvertsToMinorUnits(t *testing.T) {
	cases := map[float64]int64{
		50:     5000,
		19.99:  1999,
		0.01:   1,
		1234.5: 123450,
		1e13:   1e15,
	}

	for amount, want := range cases {
		svc := &recordingService{charge: &stripeprovider.ChargeResponse{Success: true, TransactionID: "ch_1"}}
		adapter, err := stripeadapter.NewAdapter(svc, zerolog.Nop())
		if err != nil {
			t.Fatalf("unexpected constructor error: %v", err)
		}

		if _, err := adapter.ProcessPayment(context.Background(), amount); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(svc.gotCents) != 1 || svc.gotCents[0] != want {
			t.Fatalf("amount %.3f delegated as %v, want %d", amount, svc.gotCents, want)
		}
	}
}

func TestProcessPaymentRejectsUnchargeableAmounts(t *testing.T) {
	for _, amount := range []float64{0, -5, 1e17, math.Inf(1), math.Inf(-1), math.NaN()} {
		svc := &recordingService{charge: &stripeprovider.ChargeResponse{Success: true, TransactionID: "ch_1"}}
		adapter, err := stripeadapter.NewAdapter(svc, zerolog.Nop())
		if err != nil {
			t.Fatalf("unexpected constructor error: %v", err)
		}

		res, err := adapter.ProcessPayment(context.Background(), amount)
		if !errors.Is(err, common.ErrInvalidAmount) {
			t.Fatalf("amount %v: expected ErrInvalidAmount, got (%+v, %v)", amount, res, err)
		}
		if len(svc.gotCents) != 0 {
			t.Fatalf("amount %v must not reach the gateway, delegated %v", amount, svc.gotCents)
		}
	}
}

func TestProcessPaymentCarriesTransactionID(t *testing.T) {
	svc := &recordingService{charge: &stripeprovider.ChargeResponse{Success: true, TransactionID: "ch_424242"}}
	adapter, err := stripeadapter.NewAdapter(svc, zerolog.Nop(), stripeadapter.WithToken("tok_amex"))
	if err != nil {
		t.Fatalf("unexpected constructor error: %v", err)
	}

	res, err := adapter.ProcessPayment(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success || res.TransactionID != "ch_424242" || res.Error != "" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if svc.gotToken != "tok_amex" {
		t.Fatalf("token = %q, want tok_amex", svc.gotToken)
	}
}

func TestProcessPaymentDeclined(t *testing.T) {
	svc := &recordingService{charge: &stripeprovider.ChargeResponse{Success: false}}
	adapter, _ := stripeadapter.NewAdapter(svc, zerolog.Nop())

	res, err := adapter.ProcessPayment(context.Background(), 10)
	if err != nil {
		t.Fatalf("declines must not surface as errors: %v", err)
	}
	if res.Success || res.Error != common.MsgPaymentFailed || res.TransactionID != "" {
		t.Fatalf("unexpected result: %+v", res)
	}
	if svc.gotToken != stripeadapter.DefaultToken {
		t.Fatalf("token = %q, want default", svc.gotToken)
	}
}

func TestRefundPayment(t *testing.T) {
	svc := &recordingService{refund: &stripeprovider.RefundResponse{Success: true}}
	adapter, _ := stripeadapter.NewAdapter(svc, zerolog.Nop())

	res, err := adapter.RefundPayment(context.Background(), "ch_9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success {
		t.Fatalf("expected successful refund, got %+v", res)
	}
	if len(svc.gotRefunds) != 1 || svc.gotRefunds[0] != "ch_9" {
		t.Fatalf("refund delegated with %v", svc.gotRefunds)
	}

	svc.refund = &stripeprovider.RefundResponse{Success: false}
	res, err = adapter.RefundPayment(context.Background(), "ch_9")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Success || res.Error != common.MsgRefundFailed {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestServiceErrorsAreWrapped(t *testing.T) {
	svc := &recordingService{err: context.DeadlineExceeded}
	adapter, _ := stripeadapter.NewAdapter(svc, zerolog.Nop())

	_, err := adapter.ProcessPayment(context.Background(), 10)
	if !errors.Is(err, context.DeadlineExceeded) || !strings.Contains(err.Error(), "stripe adapter") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestAdapterWithMockService(t *testing.T) {
	svc := stripeprovider.NewMockService(zerolog.Nop(), stripeprovider.WithRandomSeed(1))
	adapter, _ := stripeadapter.NewAdapter(svc, zerolog.Nop())

	res, err := adapter.ProcessPayment(context.Background(), 99.95)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Success || !strings.HasPrefix(res.TransactionID, "ch_") {
		t.Fatalf("unexpected result: %+v", res)
	}

	refund, err := adapter.RefundPayment(context.Background(), res.TransactionID)
	if err != nil || !refund.Success {
		t.Fatalf("refund = (%+v, %v)", refund, err)
	}
}
