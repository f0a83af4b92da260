package response

import (
	"testing"
	"time"

	"filtros_store/internal/domain/entities"
)

func TestFromPaymentRecord(t *testing.T) {
	paidAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("approved record", func(t *testing.T) {
		resp := FromPaymentRecord(entities.PaymentRecord{
			ID:                "77",
			OrderID:           "O1",
			Status:            entities.PaymentStatusApproved,
			StatusDetail:      "accredited",
			PaymentMethod:     "visa",
			PaymentType:       "credit_card",
			TransactionAmount: 31,
			PaidAt:            paidAt,
		})

		if resp.PaymentID != "77" || resp.OrderID != "O1" {
			t.Fatalf("unexpected ids %+v", resp)
		}
		if !resp.Approved {
			t.Fatal("expected approved=true")
		}
		if !resp.PaidAt.Equal(paidAt) {
			t.Fatalf("expected paid_at %v, got %v", paidAt, resp.PaidAt)
		}
	})

	t.Run("pending record is not approved", func(t *testing.T) {
		resp := FromPaymentRecord(entities.PaymentRecord{
			ID:      "78",
			OrderID: "O1",
			Status:  entities.PaymentStatusPending,
			PaidAt:  paidAt,
		})

		if resp.Approved {
			t.Fatal("expected approved=false for pending status")
		}
	})
}
