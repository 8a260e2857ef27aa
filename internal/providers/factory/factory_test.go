package factory_test

import (
	"context"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/adapter-workshop/internal/adapters/notify"
	"github.com/example/adapter-workshop/internal/config"
	"github.com/example/adapter-workshop/internal/metrics"
	"github.com/example/adapter-workshop/internal/providers/factory"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Mock.RandomSeed = 11
	cfg.Providers.Stripe.Token = "tok_visa"
	cfg.Providers.Stripe.Scenario = "success"
	cfg.Providers.PayPal.Account = "store@example.com"
	cfg.Providers.PayPal.Scenario = "success"
	cfg.Providers.Notify.EmailScenario = "success"
	cfg.Providers.Notify.SMSScenario = "success"
	return cfg
}

func TestProcessorVariants(t *testing.T) {
	prefixes := map[string]string{factory.Stripe: "ch_", factory.PayPal: "PAYID-"}

	for _, name := range factory.Names() {
		proc, err := factory.Processor(" "+strings.ToUpper(name)+" ", testConfig(), zerolog.Nop(), nil)
		require.NoError(t, err)

		res, err := proc.ProcessPayment(context.Background(), 25)
		require.NoError(t, err)
		assert.True(t, res.Success)
		assert.True(t, strings.HasPrefix(res.TransactionID, prefixes[name]), "unexpected id %q", res.TransactionID)
	}
}

func TestProcessorIDsAreReproducibleUnderSeed(t *testing.T) {
	for _, name := range factory.Names() {
		a, err := factory.Processor(name, testConfig(), zerolog.Nop(), nil)
		require.NoError(t, err)
		b, err := factory.Processor(name, testConfig(), zerolog.Nop(), nil)
		require.NoError(t, err)

		ra, err := a.ProcessPayment(context.Background(), 25)
		require.NoError(t, err)
		rb, err := b.ProcessPayment(context.Background(), 25)
		require.NoError(t, err)
		assert.Equal(t, ra.TransactionID, rb.TransactionID, "processor %s", name)
	}
}

func TestProcessorHonoursScenario(t *testing.T) {
	cfg := testConfig()
	cfg.Providers.PayPal.Scenario = "pending"

	proc, err := factory.Processor(factory.PayPal, cfg, zerolog.Nop(), nil)
	require.NoError(t, err)

	res, err := proc.ProcessPayment(context.Background(), 25)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Payment failed", res.Error)
}

func TestProcessorInstrumented(t *testing.T) {
	rec, err := metrics.NewRecorder(prometheus.NewRegistry())
	require.NoError(t, err)

	proc, err := factory.Processor(factory.Stripe, testConfig(), zerolog.Nop(), rec)
	require.NoError(t, err)

	_, err = proc.ProcessPayment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(rec.Counter("stripe", metrics.OperationPayment, metrics.OutcomeSuccess)))
}

func TestProcessorUnsupported(t *testing.T) {
	_, err := factory.Processor("bitcoin", testConfig(), zerolog.Nop(), nil)
	require.Error(t, err)

	_, err = factory.Processor(factory.Stripe, nil, zerolog.Nop(), nil)
	require.Error(t, err)
}

func TestNotifiers(t *testing.T) {
	cfg := testConfig()
	email, err := factory.EmailNotifier(cfg, zerolog.Nop())
	require.NoError(t, err)
	sms, err := factory.SMSNotifier(cfg, zerolog.Nop())
	require.NoError(t, err)

	require.NoError(t, notify.Broadcast(context.Background(), "hi",
		notify.Delivery{Notifier: email, Recipient: "buyer@example.com"},
		notify.Delivery{Notifier: sms, Recipient: "+14155552671"},
	))

	cfg.Providers.Notify.SMSScenario = "rejected"
	sms, err = factory.SMSNotifier(cfg, zerolog.Nop())
	require.NoError(t, err)
	require.ErrorIs(t, sms.Notify(context.Background(), "+14155552671", "hi"), notify.ErrDeliveryFailed)
}
