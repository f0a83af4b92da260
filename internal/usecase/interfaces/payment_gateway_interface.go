package interfaces

import (
	"context"
	"fmt"

	"filtros_store/internal/domain/entities"
)

// IPaymentGateway abstracts the external payment provider (Mercado Pago).
//
// CreatePreference registers a checkout preference and returns the redirect
// data for the hosted checkout. GetPaymentInfo looks up the authoritative
// payment state by the id delivered in a webhook event.
type IPaymentGateway interface {
	CreatePreference(ctx context.Context, payload entities.PreferencePayload) (entities.CheckoutRedirect, error)
	GetPaymentInfo(ctx context.Context, paymentID string) (entities.PaymentInfo, error)
}

// GatewayError wraps any transport or provider-side failure coming out of the
// gateway client. NotFound marks lookups whose target does not exist so the
// HTTP layer can answer 404 instead of 502.
type GatewayError struct {
	Op       string
	NotFound bool
	Err      error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error { return e.Err }

// NewGatewayError wraps err with the failing gateway operation name.
func NewGatewayError(op string, err error) *GatewayError {
	return &GatewayError{Op: op, Err: err}
}
