package interfaces

import (
	"context"

	"filtros_store/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// The payments subsystem only reads orders; Create exists for the
// order-registration endpoint that feeds checkout.
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}
