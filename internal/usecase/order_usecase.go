package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"filtros_store/internal/domain/entities"
	"filtros_store/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var ErrInvalidOrderPayload = errors.New("invalid order payload")

// IOrderUseCase is the write/read path for order records consumed by checkout.
type IOrderUseCase interface {
	Register(ctx context.Context, order entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
}

type OrderUseCase struct {
	repo interfaces.IOrderRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository) *OrderUseCase {
	return &OrderUseCase{repo: repo}
}

// Register stores a new order. An id is assigned when the caller did not
// provide one; items are required since an order without items can never
// reach checkout.
func (u *OrderUseCase) Register(ctx context.Context, order entities.Order) (entities.Order, error) {
	if u.repo == nil {
		return entities.Order{}, errors.New("order repository not configured")
	}
	if len(order.Items) == 0 {
		log.Printf("[order][usecase] register rejected: no items")
		return entities.Order{}, ErrInvalidOrderPayload
	}

	order.ID = strings.TrimSpace(order.ID)
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	if order.CreatedAt.IsZero() {
		order.CreatedAt = time.Now().UTC()
	}

	created, err := u.repo.Create(ctx, order)
	if err != nil {
		log.Printf("[order][usecase] register failed order_id=%s err=%v", order.ID, err)
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] register success order_id=%s items=%d", created.ID, len(created.Items))
	return created, nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if u.repo == nil {
		return entities.Order{}, errors.New("order repository not configured")
	}

	order, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}
