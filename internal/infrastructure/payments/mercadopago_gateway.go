package payments

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"filtros_store/internal/domain/entities"
	appconfig "filtros_store/internal/infrastructure/config"
	"filtros_store/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// MercadoPagoGateway implements IPaymentGateway on top of the official SDK.
//
// Credentials live in the injected configuration; a missing access token is a
// construction-time error so callers never probe for it per request. Mock
// mode fabricates approved responses for local runs without network access.
type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
	mockMode    bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(cfg appconfig.Config) (*MercadoPagoGateway, error) {
	if cfg.MockGateway {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if cfg.MercadoPagoAccessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, appconfig.ErrMissingAccessToken
	}

	sdkCfg, err := config.New(cfg.MercadoPagoAccessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(sdkCfg),
		payments:    payment.NewClient(sdkCfg),
	}, nil
}

// CreatePreference registers the checkout preference at the gateway and
// returns the hosted-checkout redirect data.
func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, payload entities.PreferencePayload) (entities.CheckoutRedirect, error) {
	if g != nil && g.mockMode {
		id := fmt.Sprintf("MOCK-%d", time.Now().UTC().UnixNano())
		log.Printf("[payment][gateway] mock preference created preference_id=%s external_reference=%s", id, payload.ExternalReference)
		return entities.CheckoutRedirect{
			PreferenceID:     id,
			InitPoint:        "https://sandbox.mercadopago.example/checkout/" + id,
			SandboxInitPoint: "https://sandbox.mercadopago.example/checkout/" + id,
		}, nil
	}
	if g == nil || g.preferences == nil {
		return entities.CheckoutRedirect{}, interfaces.NewGatewayError("preferences.create", appconfig.ErrMissingAccessToken)
	}

	log.Printf("[payment][gateway] preference create start external_reference=%s items=%d", payload.ExternalReference, len(payload.Items))

	resp, err := g.preferences.Create(ctx, toPreferenceRequest(payload))
	if err != nil {
		log.Printf("[payment][gateway] preference create failed external_reference=%s err=%v", payload.ExternalReference, err)
		return entities.CheckoutRedirect{}, interfaces.NewGatewayError("preferences.create", err)
	}

	log.Printf("[payment][gateway] preference create success preference_id=%s", resp.ID)
	return entities.CheckoutRedirect{
		PreferenceID:     resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}

// GetPaymentInfo looks up the authoritative payment state by gateway id.
func (g *MercadoPagoGateway) GetPaymentInfo(ctx context.Context, paymentID string) (entities.PaymentInfo, error) {
	if g != nil && g.mockMode {
		now := time.Now().UTC()
		log.Printf("[payment][gateway] mock payment lookup payment_id=%s", paymentID)
		return entities.PaymentInfo{
			ID:                paymentID,
			Status:            "approved",
			StatusDetail:      "accredited",
			PaymentMethodID:   "account_money",
			PaymentTypeID:     "account_money",
			ExternalReference: "mock-order",
			DateCreated:       now,
			DateApproved:      &now,
		}, nil
	}
	if g == nil || g.payments == nil {
		return entities.PaymentInfo{}, interfaces.NewGatewayError("payments.get", appconfig.ErrMissingAccessToken)
	}

	id, err := strconv.Atoi(strings.TrimSpace(paymentID))
	if err != nil {
		return entities.PaymentInfo{}, &interfaces.GatewayError{
			Op:       "payments.get",
			NotFound: true,
			Err:      fmt.Errorf("malformed payment id %q", paymentID),
		}
	}

	log.Printf("[payment][gateway] payment lookup start payment_id=%d", id)

	resp, err := g.payments.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][gateway] payment lookup failed payment_id=%d err=%v", id, err)
		return entities.PaymentInfo{}, &interfaces.GatewayError{
			Op:       "payments.get",
			NotFound: isNotFound(err),
			Err:      err,
		}
	}

	log.Printf("[payment][gateway] payment lookup success payment_id=%d status=%s external_reference=%s", resp.ID, resp.Status, resp.ExternalReference)
	return fromPaymentResponse(resp), nil
}

func toPreferenceRequest(payload entities.PreferencePayload) preference.Request {
	items := make([]preference.ItemRequest, 0, len(payload.Items))
	for _, it := range payload.Items {
		items = append(items, preference.ItemRequest{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			PictureURL:  it.PictureURL,
			CategoryID:  it.CategoryID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}

	return preference.Request{
		Items: items,
		Payer: &preference.PayerRequest{
			Name:    payload.Payer.Name,
			Surname: payload.Payer.Surname,
			Email:   payload.Payer.Email,
			Phone: &preference.PhoneRequest{
				AreaCode: payload.Payer.Phone.AreaCode,
				Number:   payload.Payer.Phone.Number,
			},
			Address: &preference.AddressRequest{
				ZipCode:      payload.Payer.Address.ZipCode,
				StreetName:   payload.Payer.Address.StreetName,
				StreetNumber: payload.Payer.Address.StreetNumber,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: payload.BackURLs.Success,
			Failure: payload.BackURLs.Failure,
			Pending: payload.BackURLs.Pending,
		},
		AutoReturn:        payload.AutoReturn,
		NotificationURL:   payload.NotificationURL,
		ExternalReference: payload.ExternalReference,
		Shipments: &preference.ShipmentsRequest{
			Cost: payload.Shipments.Cost,
			Mode: payload.Shipments.Mode,
		},
	}
}

func fromPaymentResponse(resp *payment.Response) entities.PaymentInfo {
	info := entities.PaymentInfo{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		PaymentMethodID:   resp.PaymentMethodID,
		PaymentTypeID:     resp.PaymentTypeID,
		ExternalReference: resp.ExternalReference,
		TransactionAmount: resp.TransactionAmount,
		DateCreated:       resp.DateCreated,
	}
	if !resp.DateApproved.IsZero() {
		approved := resp.DateApproved
		info.DateApproved = &approved
	}
	return info
}

// The SDK surfaces vendor errors as strings; sniff the status like the rest
// of the codebase does for gateway error classification.
func isNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"status\":404") || strings.Contains(msg, "not_found") || strings.Contains(msg, "payment not found")
}
