package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config captures the runtime settings of the workshop demos. None of it is
// required: every key has a default so the demos run from a clean shell.
type Config struct {
	App       AppConfig
	Mock      MockConfig
	Providers ProviderConfig
	Store     StoreConfig
}

// AppConfig contains generic application level settings.
type AppConfig struct {
	Env      string
	LogLevel string
}

// MockConfig controls the in-process stand-ins for third party services.
type MockConfig struct {
	// RandomSeed seeds identifier generation. Zero means time based.
	RandomSeed int64
}

// StripeConfig holds the inputs the Stripe-like gateway needs.
type StripeConfig struct {
	Token    string
	Scenario string
}

// PayPalConfig holds the inputs the PayPal-like gateway needs.
type PayPalConfig struct {
	Account  string
	Scenario string
}

// NotifyConfig selects the behaviour of the notification providers.
type NotifyConfig struct {
	EmailScenario string
	SMSScenario   string
}

// ProviderConfig wraps configuration for the simulated external services.
type ProviderConfig struct {
	Stripe StripeConfig
	PayPal PayPalConfig
	Notify NotifyConfig
}

// StoreConfig controls which processors the store demo is run against.
type StoreConfig struct {
	Providers []string
}

// Load reads environment variables (and a .env file when present), applies
// defaults, validates values and returns a populated Config instance.
func Load() (*Config, error) {
	_ = godotenv.Load()

	ldr := &envLoader{}

	cfg := &Config{}
	cfg.App.Env = ldr.getString("APP_ENV", "development")
	cfg.App.LogLevel = ldr.getString("LOG_LEVEL", "info")

	cfg.Mock.RandomSeed = ldr.getInt64("MOCK_RANDOM_SEED", 0)

	cfg.Providers.Stripe.Token = ldr.getString("STRIPE_TOKEN", "tok_visa")
	cfg.Providers.Stripe.Scenario = ldr.getEnum("STRIPE_SCENARIO", "success", "success", "decline")
	cfg.Providers.PayPal.Account = ldr.getString("PAYPAL_ACCOUNT", "store@example.com")
	cfg.Providers.PayPal.Scenario = ldr.getEnum("PAYPAL_SCENARIO", "success", "success", "pending", "denied")
	cfg.Providers.Notify.EmailScenario = ldr.getEnum("EMAIL_SCENARIO", "success", "success", "rejected")
	cfg.Providers.Notify.SMSScenario = ldr.getEnum("SMS_SCENARIO", "success", "success", "rejected")

	cfg.Store.Providers = ldr.getStringSlice("STORE_PROVIDERS", []string{"stripe", "paypal"})

	if err := ldr.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

type envLoader struct {
	errs []string
}

func (l *envLoader) validate() error {
	if len(l.errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed: %s", strings.Join(l.errs, "; "))
}

func (l *envLoader) lookup(key string) (string, bool) {
	val, ok := os.LookupEnv(key)
	if !ok {
		return "", false
	}
	val = strings.TrimSpace(val)
	return val, val != ""
}

func (l *envLoader) getString(key, def string) string {
	if val, ok := l.lookup(key); ok {
		return val
	}
	return def
}

func (l *envLoader) getInt64(key string, def int64) int64 {
	val, ok := l.lookup(key)
	if !ok {
		return def
	}
	i, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		l.addError(fmt.Sprintf("%s must be a valid integer", key))
		return def
	}
	return i
}

func (l *envLoader) getEnum(key, def string, allowed ...string) string {
	val, ok := l.lookup(key)
	if !ok {
		return def
	}
	val = strings.ToLower(val)
	for _, a := range allowed {
		if val == a {
			return val
		}
	}
	l.addError(fmt.Sprintf("%s must be one of %s", key, strings.Join(allowed, ", ")))
	return def
}

func (l *envLoader) getStringSlice(key string, def []string) []string {
	raw, ok := l.lookup(key)
	if !ok {
		return append([]string(nil), def...)
	}
	var out []string
	for _, p := range strings.Split(raw, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		l.addError(fmt.Sprintf("%s must contain at least one entry", key))
		return append([]string(nil), def...)
	}
	return out
}

func (l *envLoader) addError(err string) {
	l.errs = append(l.errs, err)
}
