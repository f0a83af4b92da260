package response

import (
	"time"

	"filtros_store/internal/domain/entities"
)

type PaymentResponse struct {
	PaymentID         string    `json:"payment_id"`
	OrderID           string    `json:"order_id"`
	Status            string    `json:"status"`
	StatusDetail      string    `json:"status_detail,omitempty"`
	PaymentMethod     string    `json:"payment_method,omitempty"`
	PaymentType       string    `json:"payment_type,omitempty"`
	TransactionAmount float64   `json:"transaction_amount"`
	PaidAt            time.Time `json:"paid_at"`
	Approved          bool      `json:"approved"`
}

func FromPaymentRecord(r entities.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:         r.ID,
		OrderID:           r.OrderID,
		Status:            r.Status,
		StatusDetail:      r.StatusDetail,
		PaymentMethod:     r.PaymentMethod,
		PaymentType:       r.PaymentType,
		TransactionAmount: r.TransactionAmount,
		PaidAt:            r.PaidAt,
		Approved:          r.FulfillmentEligible(),
	}
}

// WebhookResponse acknowledges a notification. Processed false means the
// event kind was outside this service's interest and was deliberately
// skipped.
type WebhookResponse struct {
	Processed bool             `json:"processed"`
	Record    *PaymentResponse `json:"record,omitempty"`
}
