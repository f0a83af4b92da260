package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"filtros_store/internal/domain/entities"
	"filtros_store/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound       = errors.New("order not found")
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrInvalidOrderID      = errors.New("invalid order id")
	ErrInvalidNotification = errors.New("invalid notification payload")
)

// NotificationResult is the reconciler outcome. Events outside this
// subsystem's interest come back with Processed false and a nil Record.
type NotificationResult struct {
	Processed bool                    `json:"processed"`
	Record    *entities.PaymentRecord `json:"record,omitempty"`
}

// IPaymentUseCase covers the payment side of checkout:
//   - StartCheckout builds and registers the gateway preference for an order.
//   - HandleNotification reconciles a webhook event into a PaymentRecord.
//   - GetLatestByOrderID exposes the most recent reconciled record.
type IPaymentUseCase interface {
	StartCheckout(ctx context.Context, orderID string) (entities.CheckoutRedirect, error)
	HandleNotification(ctx context.Context, event entities.WebhookEvent) (NotificationResult, error)
	GetLatestByOrderID(ctx context.Context, orderID string) (entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	orders   interfaces.IOrderRepository
	payments interfaces.IPaymentRecordRepository
	gateway  interfaces.IPaymentGateway
	builder  PreferenceBuilder
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(orders interfaces.IOrderRepository, payments interfaces.IPaymentRecordRepository, gateway interfaces.IPaymentGateway, builder PreferenceBuilder) *PaymentUseCase {
	return &PaymentUseCase{orders: orders, payments: payments, gateway: gateway, builder: builder}
}

// StartCheckout loads the order, translates it into a preference and creates
// it at the gateway. The returned redirect carries the hosted-checkout URL.
func (u *PaymentUseCase) StartCheckout(ctx context.Context, orderID string) (entities.CheckoutRedirect, error) {
	orderID = strings.TrimSpace(orderID)
	log.Printf("[checkout][usecase] start order_id=%s", orderID)
	if orderID == "" {
		return entities.CheckoutRedirect{}, ErrInvalidOrderID
	}
	if u.orders == nil {
		return entities.CheckoutRedirect{}, errors.New("order repository not configured")
	}
	if u.gateway == nil {
		return entities.CheckoutRedirect{}, errors.New("payment gateway not configured")
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[checkout][usecase] failed loading order order_id=%s err=%v", orderID, err)
		return entities.CheckoutRedirect{}, err
	}
	if order.ID == "" {
		log.Printf("[checkout][usecase] order not found order_id=%s", orderID)
		return entities.CheckoutRedirect{}, ErrOrderNotFound
	}

	payload, err := u.builder.Build(&order)
	if err != nil {
		log.Printf("[checkout][usecase] preference build failed order_id=%s err=%v", orderID, err)
		return entities.CheckoutRedirect{}, err
	}

	redirect, err := u.gateway.CreatePreference(ctx, payload)
	if err != nil {
		log.Printf("[checkout][usecase] preference create failed order_id=%s err=%v", orderID, err)
		return entities.CheckoutRedirect{}, err
	}

	log.Printf("[checkout][usecase] success order_id=%s preference_id=%s", orderID, redirect.PreferenceID)
	return redirect, nil
}

// HandleNotification reconciles one webhook event.
//
// Event kinds other than "payment" are answered without contacting the
// gateway; that is a deliberate no-op, not an error. A lookup failure
// propagates to the caller so the gateway sees a failed delivery and
// redelivers; no retry happens here.
func (u *PaymentUseCase) HandleNotification(ctx context.Context, event entities.WebhookEvent) (NotificationResult, error) {
	log.Printf("[webhook][usecase] notification received type=%s action=%s data_id=%s", event.Type, event.Action, event.Data.ID)

	if event.Type != "payment" {
		log.Printf("[webhook][usecase] ignoring event type=%s", event.Type)
		return NotificationResult{Processed: false}, nil
	}

	paymentID := strings.TrimSpace(event.Data.ID)
	if paymentID == "" {
		return NotificationResult{}, ErrInvalidNotification
	}
	if u.gateway == nil {
		return NotificationResult{}, errors.New("payment gateway not configured")
	}

	info, err := u.gateway.GetPaymentInfo(ctx, paymentID)
	if err != nil {
		log.Printf("[webhook][usecase] payment lookup failed payment_id=%s err=%v", paymentID, err)
		return NotificationResult{}, err
	}

	record := normalizePayment(info)
	log.Printf("[webhook][usecase] payment reconciled payment_id=%s order_id=%s status=%s", record.ID, record.OrderID, record.Status)

	if u.payments != nil {
		if _, err := u.payments.Create(ctx, record); err != nil {
			log.Printf("[webhook][usecase] payment record persist failed payment_id=%s err=%v", record.ID, err)
			return NotificationResult{}, err
		}
	}

	return NotificationResult{Processed: true, Record: &record}, nil
}

// GetLatestByOrderID returns the most recent reconciled record for an order.
func (u *PaymentUseCase) GetLatestByOrderID(ctx context.Context, orderID string) (entities.PaymentRecord, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return entities.PaymentRecord{}, ErrInvalidOrderID
	}
	if u.payments == nil {
		return entities.PaymentRecord{}, errors.New("payment record repository not configured")
	}

	records, err := u.payments.ListByOrderID(ctx, orderID)
	if err != nil {
		return entities.PaymentRecord{}, err
	}
	if len(records) == 0 {
		return entities.PaymentRecord{}, ErrPaymentNotFound
	}

	latest := records[0]
	for _, r := range records[1:] {
		if r.PaidAt.After(latest.PaidAt) {
			latest = r
		}
	}
	return latest, nil
}

// normalizePayment projects the gateway lookup into the internal record.
// PaidAt falls back to the creation time when no approval time exists yet.
func normalizePayment(info entities.PaymentInfo) entities.PaymentRecord {
	paidAt := info.DateCreated
	if info.DateApproved != nil && !info.DateApproved.IsZero() {
		paidAt = *info.DateApproved
	}

	return entities.PaymentRecord{
		ID:                info.ID,
		OrderID:           info.ExternalReference,
		Status:            info.Status,
		StatusDetail:      info.StatusDetail,
		PaymentMethod:     info.PaymentMethodID,
		PaymentType:       info.PaymentTypeID,
		TransactionAmount: info.TransactionAmount,
		PaidAt:            paidAt.UTC(),
	}
}
