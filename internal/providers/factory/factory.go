package factory

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	common "github.com/example/adapter-workshop/internal/adapters/common"
	"github.com/example/adapter-workshop/internal/adapters/notify"
	paypaladapter "github.com/example/adapter-workshop/internal/adapters/paypal"
	stripeadapter "github.com/example/adapter-workshop/internal/adapters/stripe"
	"github.com/example/adapter-workshop/internal/config"
	"github.com/example/adapter-workshop/internal/metrics"
	emailprovider "github.com/example/adapter-workshop/internal/providers/email"
	paypalprovider "github.com/example/adapter-workshop/internal/providers/paypal"
	smsprovider "github.com/example/adapter-workshop/internal/providers/sms"
	stripeprovider "github.com/example/adapter-workshop/internal/providers/stripe"
)

// Supported processor names.
const (
	Stripe = "stripe"
	PayPal = "paypal"
)

// Names lists the supported processors in a fixed order.
func Names() []string {
	return []string{Stripe, PayPal}
}

// Processor wraps the named gateway in its adapter. When rec is non-nil the
// result is instrumented.
func Processor(name string, cfg *config.Config, logger zerolog.Logger, rec *metrics.Recorder) (common.Processor, error) {
	if cfg == nil {
		return nil, fmt.Errorf("factory: config is required")
	}

	var (
		proc common.Processor
		err  error
	)
	switch normalize(name) {
	case Stripe:
		proc, err = stripeProcessor(cfg, logger)
	case PayPal:
		proc, err = paypalProcessor(cfg, logger)
	default:
		return nil, fmt.Errorf("factory: unsupported payment processor %q", name)
	}
	if err != nil {
		return nil, err
	}

	logger.Info().
		Str("processor", normalize(name)).
		Msg("payment processor initialised")

	if rec != nil {
		proc = rec.Instrument(normalize(name), proc)
	}
	return proc, nil
}

func stripeProcessor(cfg *config.Config, logger zerolog.Logger) (common.Processor, error) {
	svc := stripeprovider.NewMockService(logger,
		stripeprovider.WithScenario(stripeprovider.ParseScenario(cfg.Providers.Stripe.Scenario)),
		stripeprovider.WithRandomSeed(cfg.Mock.RandomSeed),
	)
	adapter, err := stripeadapter.NewAdapter(svc, logger, stripeadapter.WithToken(cfg.Providers.Stripe.Token))
	if err != nil {
		return nil, fmt.Errorf("factory: stripe adapter init: %w", err)
	}
	return adapter, nil
}

func paypalProcessor(cfg *config.Config, logger zerolog.Logger) (common.Processor, error) {
	svc := paypalprovider.NewMockService(logger,
		paypalprovider.WithScenario(paypalprovider.ParseScenario(cfg.Providers.PayPal.Scenario)),
		paypalprovider.WithRandomSeed(cfg.Mock.RandomSeed),
	)
	adapter, err := paypaladapter.NewAdapter(svc, logger, paypaladapter.WithAccount(cfg.Providers.PayPal.Account))
	if err != nil {
		return nil, fmt.Errorf("factory: paypal adapter init: %w", err)
	}
	return adapter, nil
}

// EmailNotifier builds the email notifier sending from the PayPal merchant
// account address.
func EmailNotifier(cfg *config.Config, logger zerolog.Logger) (notify.Notifier, error) {
	provider := emailprovider.NewMockProvider(logger,
		emailprovider.WithDefaultScenario(emailprovider.ParseScenario(cfg.Providers.Notify.EmailScenario)),
	)
	n, err := notify.NewEmailAdapter(provider, cfg.Providers.PayPal.Account, logger)
	if err != nil {
		return nil, fmt.Errorf("factory: email notifier init: %w", err)
	}
	return n, nil
}

// SMSNotifier builds the SMS notifier.
func SMSNotifier(cfg *config.Config, logger zerolog.Logger) (notify.Notifier, error) {
	provider := smsprovider.NewMockProvider(logger,
		smsprovider.WithScenario(smsprovider.ParseScenario(cfg.Providers.Notify.SMSScenario)),
		smsprovider.WithRandomSeed(cfg.Mock.RandomSeed),
	)
	n, err := notify.NewSMSAdapter(provider, logger)
	if err != nil {
		return nil, fmt.Errorf("factory: sms notifier init: %w", err)
	}
	return n, nil
}

func normalize(value string) string {
	return strings.TrimSpace(strings.ToLower(value))
}
