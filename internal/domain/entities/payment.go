package entities

import "time"

// WebhookEvent is the asynchronous notification sent by the payment gateway.
//
// Only events with Type "payment" are of interest here; the gateway also
// delivers merchant_order and other kinds that this subsystem ignores.
type WebhookEvent struct {
	Type   string `json:"type"`
	Action string `json:"action"`
	Data   struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Gateway payment statuses used during reconciliation. Only approved payments
// may trigger fulfillment downstream.
const (
	PaymentStatusApproved = "approved"
	PaymentStatusPending  = "pending"
	PaymentStatusRejected = "rejected"
)

// PaymentInfo is the raw payment lookup result as reported by the gateway.
//
// DateApproved is nil while the payment has not been approved yet.
type PaymentInfo struct {
	ID                string
	Status            string
	StatusDetail      string
	PaymentMethodID   string
	PaymentTypeID     string
	ExternalReference string
	TransactionAmount float64
	DateCreated       time.Time
	DateApproved      *time.Time
}

// PaymentRecord is the normalized payment outcome produced once per webhook
// event and handed to persistence for the fulfillment side to consume.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_id-index): order_id
//
// PaidAt falls back to the gateway's creation time when no approval time is
// present, so it is only meaningful for fulfillment when Status is approved.
type PaymentRecord struct {
	ID                string    `json:"id"`
	OrderID           string    `json:"order_id"`
	Status            string    `json:"status"`
	StatusDetail      string    `json:"status_detail"`
	PaymentMethod     string    `json:"payment_method"`
	PaymentType       string    `json:"payment_type"`
	TransactionAmount float64   `json:"transaction_amount"`
	PaidAt            time.Time `json:"paid_at"`
}

// FulfillmentEligible reports whether this record may trigger fulfillment.
func (r PaymentRecord) FulfillmentEligible() bool {
	return r.Status == PaymentStatusApproved
}
