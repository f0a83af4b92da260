package interfaces

import (
	"context"

	"filtros_store/internal/domain/entities"
)

// IPaymentRecordRepository abstracts DynamoDB persistence for PaymentRecord.
//
// Records are written once per reconciled webhook event; the fulfillment side
// reads them through ListByOrderID.
type IPaymentRecordRepository interface {
	Create(ctx context.Context, r entities.PaymentRecord) (entities.PaymentRecord, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRecord, error)
	ListByOrderID(ctx context.Context, orderID string) ([]entities.PaymentRecord, error)
}
