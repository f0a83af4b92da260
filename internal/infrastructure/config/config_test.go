package config

import (
	"errors"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Setenv("MERCADOPAGO_ACCESS_TOKEN", " TEST-token ")
	t.Setenv("FRONTEND_BASE_URL", "https://store.example/")
	t.Setenv("BACKEND_BASE_URL", "")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	cfg := Load()
	if cfg.MercadoPagoAccessToken != "TEST-token" {
		t.Errorf("expected trimmed token, got %q", cfg.MercadoPagoAccessToken)
	}
	if cfg.FrontendBaseURL != "https://store.example" {
		t.Errorf("expected trailing slash stripped, got %q", cfg.FrontendBaseURL)
	}
	if cfg.BackendBaseURL != "http://localhost:8080" {
		t.Errorf("expected default backend url, got %q", cfg.BackendBaseURL)
	}
	if cfg.MockGateway {
		t.Error("expected mock mode disabled")
	}
}

func TestValidate(t *testing.T) {
	t.Run("missing token fails", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); !errors.Is(err, ErrMissingAccessToken) {
			t.Fatalf("expected ErrMissingAccessToken, got %v", err)
		}
	})

	t.Run("token present passes", func(t *testing.T) {
		cfg := Config{MercadoPagoAccessToken: "TEST-token"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("mock mode skips credential check", func(t *testing.T) {
		cfg := Config{MockGateway: true}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestIsMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	if isMockEnabled() {
		t.Fatal("expected mock disabled by default")
	}

	t.Setenv("MERCADOPAGO_MOCK", "on")
	if !isMockEnabled() {
		t.Fatal("expected mock enabled")
	}
}
