package payments

import (
	"context"
	"testing"
	"time"

	"filtros_store/internal/domain/entities"
	appconfig "filtros_store/internal/infrastructure/config"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

func TestNewMercadoPagoGateway_MissingToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(appconfig.Config{})
	if err == nil {
		t.Fatal("expected error for missing access token")
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway(appconfig.Config{MockGateway: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("create preference", func(t *testing.T) {
		redirect, err := g.CreatePreference(context.Background(), entities.PreferencePayload{ExternalReference: "O1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if redirect.PreferenceID == "" || redirect.InitPoint == "" {
			t.Fatalf("expected fabricated redirect, got %+v", redirect)
		}
	})

	t.Run("payment lookup", func(t *testing.T) {
		info, err := g.GetPaymentInfo(context.Background(), "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.Status != "approved" || info.DateApproved == nil {
			t.Fatalf("expected approved mock payment, got %+v", info)
		}
	})
}

func TestToPreferenceRequest(t *testing.T) {
	payload := entities.PreferencePayload{
		Items: []entities.PreferenceItem{{
			ID:         "p-1",
			Title:      "Filter",
			PictureURL: "https://api.store.example/uploads/f.jpg",
			CategoryID: "filters",
			Quantity:   2,
			UnitPrice:  15.5,
		}},
		Payer: entities.PreferencePayer{
			Name:    "Jane",
			Surname: "Doe",
			Email:   "j@x.com",
		},
		BackURLs: entities.PreferenceBackURLs{
			Success: "https://store.example/payment/success",
			Failure: "https://store.example/payment/failure",
			Pending: "https://store.example/payment/pending",
		},
		AutoReturn:        "approved",
		NotificationURL:   "https://api.store.example/v1/webhooks/mercadopago",
		ExternalReference: "O1",
		Shipments:         entities.PreferenceShipments{Cost: 3500, Mode: "not_specified"},
	}

	req := toPreferenceRequest(payload)

	if len(req.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(req.Items))
	}
	if req.Items[0].Title != "Filter" || req.Items[0].Quantity != 2 || req.Items[0].UnitPrice != 15.5 {
		t.Fatalf("unexpected item %+v", req.Items[0])
	}
	if req.Payer == nil || req.Payer.Name != "Jane" || req.Payer.Surname != "Doe" {
		t.Fatalf("unexpected payer %+v", req.Payer)
	}
	if req.ExternalReference != "O1" {
		t.Fatalf("expected external_reference O1, got %q", req.ExternalReference)
	}
	if req.BackURLs == nil || req.BackURLs.Success != payload.BackURLs.Success {
		t.Fatalf("unexpected back urls %+v", req.BackURLs)
	}
	if req.Shipments == nil || req.Shipments.Cost != 3500 || req.Shipments.Mode != "not_specified" {
		t.Fatalf("unexpected shipments %+v", req.Shipments)
	}
}

func TestFromPaymentResponse(t *testing.T) {
	created := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("approved payment keeps approval time", func(t *testing.T) {
		approved := created.Add(time.Minute)
		info := fromPaymentResponse(&payment.Response{
			ID:                77,
			Status:            "approved",
			StatusDetail:      "accredited",
			PaymentMethodID:   "visa",
			PaymentTypeID:     "credit_card",
			ExternalReference: "O1",
			TransactionAmount: 31,
			DateCreated:       created,
			DateApproved:      approved,
		})

		if info.ID != "77" {
			t.Errorf("expected id 77, got %q", info.ID)
		}
		if info.DateApproved == nil || !info.DateApproved.Equal(approved) {
			t.Errorf("expected approval time %v, got %v", approved, info.DateApproved)
		}
	})

	t.Run("unapproved payment has nil approval time", func(t *testing.T) {
		info := fromPaymentResponse(&payment.Response{
			ID:                78,
			Status:            "pending",
			ExternalReference: "O1",
			DateCreated:       created,
		})

		if info.DateApproved != nil {
			t.Errorf("expected nil approval time, got %v", info.DateApproved)
		}
		if !info.DateCreated.Equal(created) {
			t.Errorf("expected creation time %v, got %v", created, info.DateCreated)
		}
	})
}
