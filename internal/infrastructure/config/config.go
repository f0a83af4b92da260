package config

import (
	"errors"
	"os"
	"strings"
)

var ErrMissingAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")

// Config is the process-wide payment configuration, loaded once at startup
// and read-only afterwards; concurrent reads from in-flight requests are safe.
type Config struct {
	MercadoPagoAccessToken string
	MercadoPagoPublicKey   string
	FrontendBaseURL        string
	BackendBaseURL         string
	MockGateway            bool
}

// Load reads the configuration from the environment. godotenv autoload in
// main has already merged .env by the time this runs.
func Load() Config {
	return Config{
		MercadoPagoAccessToken: strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoPublicKey:   strings.TrimSpace(os.Getenv("MERCADOPAGO_PUBLIC_KEY")),
		FrontendBaseURL:        getenvDefault("FRONTEND_BASE_URL", "http://localhost:3000"),
		BackendBaseURL:         getenvDefault("BACKEND_BASE_URL", "http://localhost:8080"),
		MockGateway:            isMockEnabled(),
	}
}

// Validate fails fast on missing credentials. Callers must not probe for
// credential presence per request; a bad configuration stops startup.
func (c Config) Validate() error {
	if c.MockGateway {
		return nil
	}
	if c.MercadoPagoAccessToken == "" {
		return ErrMissingAccessToken
	}
	return nil
}

func isMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func getenvDefault(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return strings.TrimSuffix(v, "/")
}
