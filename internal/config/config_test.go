package config_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/example/adapter-workshop/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"APP_ENV", "LOG_LEVEL", "MOCK_RANDOM_SEED", "STRIPE_TOKEN", "STRIPE_SCENARIO",
		"PAYPAL_ACCOUNT", "PAYPAL_SCENARIO", "EMAIL_SCENARIO", "SMS_SCENARIO", "STORE_PROVIDERS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Env != "development" || cfg.App.LogLevel != "info" {
		t.Fatalf("unexpected app config: %+v", cfg.App)
	}
	if cfg.Mock.RandomSeed != 0 {
		t.Fatalf("expected time based seed by default, got %d", cfg.Mock.RandomSeed)
	}
	if cfg.Providers.Stripe.Token != "tok_visa" || cfg.Providers.Stripe.Scenario != "success" {
		t.Fatalf("unexpected stripe config: %+v", cfg.Providers.Stripe)
	}
	if cfg.Providers.PayPal.Account != "store@example.com" || cfg.Providers.PayPal.Scenario != "success" {
		t.Fatalf("unexpected paypal config: %+v", cfg.Providers.PayPal)
	}
	if want := []string{"stripe", "paypal"}; !reflect.DeepEqual(cfg.Store.Providers, want) {
		t.Fatalf("store providers = %v, want %v", cfg.Store.Providers, want)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("MOCK_RANDOM_SEED", "42")
	t.Setenv("STRIPE_TOKEN", "tok_mastercard")
	t.Setenv("STRIPE_SCENARIO", "DECLINE")
	t.Setenv("PAYPAL_ACCOUNT", "shop@example.org")
	t.Setenv("PAYPAL_SCENARIO", "pending")
	t.Setenv("EMAIL_SCENARIO", "rejected")
	t.Setenv("SMS_SCENARIO", "success")
	t.Setenv("STORE_PROVIDERS", " PayPal , ")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Env != "production" || cfg.App.LogLevel != "warn" {
		t.Fatalf("unexpected app config: %+v", cfg.App)
	}
	if cfg.Mock.RandomSeed != 42 {
		t.Fatalf("seed = %d, want 42", cfg.Mock.RandomSeed)
	}
	if cfg.Providers.Stripe.Token != "tok_mastercard" || cfg.Providers.Stripe.Scenario != "decline" {
		t.Fatalf("unexpected stripe config: %+v", cfg.Providers.Stripe)
	}
	if cfg.Providers.PayPal.Account != "shop@example.org" || cfg.Providers.PayPal.Scenario != "pending" {
		t.Fatalf("unexpected paypal config: %+v", cfg.Providers.PayPal)
	}
	if cfg.Providers.Notify.EmailScenario != "rejected" {
		t.Fatalf("email scenario = %q", cfg.Providers.Notify.EmailScenario)
	}
	if want := []string{"paypal"}; !reflect.DeepEqual(cfg.Store.Providers, want) {
		t.Fatalf("store providers = %v, want %v", cfg.Store.Providers, want)
	}
}

func TestLoadCollectsValidationErrors(t *testing.T) {
	t.Setenv("MOCK_RANDOM_SEED", "not-a-number")
	t.Setenv("STRIPE_SCENARIO", "explode")
	t.Setenv("STORE_PROVIDERS", " , ")

	_, err := config.Load()
	if err == nil {
		t.Fatalf("expected validation error")
	}

	for _, want := range []string{"MOCK_RANDOM_SEED", "STRIPE_SCENARIO", "STORE_PROVIDERS"} {
		if !strings.Contains(err.Error(), want) {
			t.Fatalf("expected error to mention %s, got %v", want, err)
		}
	}
}
