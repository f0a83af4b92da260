package usecase

import (
	"context"
	"errors"
	"testing"

	"filtros_store/internal/domain/entities"
	mock_interfaces "filtros_store/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_Register(t *testing.T) {
	t.Run("no items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		_, err := uc.Register(context.Background(), entities.Order{ID: "O1"})
		if !errors.Is(err, ErrInvalidOrderPayload) {
			t.Fatalf("expected ErrInvalidOrderPayload, got %v", err)
		}
	})

	t.Run("assigns id when missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" {
					t.Fatal("expected generated order id")
				}
				if o.CreatedAt.IsZero() {
					t.Fatal("expected created_at to be set")
				}
				return o, nil
			})

		created, err := uc.Register(context.Background(), entities.Order{
			Items: []entities.OrderItem{{Product: entities.ProductRef{Name: "Filter"}, Quantity: 1, Price: "10"}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatal("expected order id in result")
		}
	})

	t.Run("keeps caller id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				return o, nil
			})

		created, err := uc.Register(context.Background(), entities.Order{
			ID:    "O1",
			Items: []entities.OrderItem{{Product: entities.ProductRef{Name: "Filter"}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "O1" {
			t.Fatalf("expected O1, got %q", created.ID)
		}
	})
}

func TestOrderUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		uc := NewOrderUseCase(nil)
		_, err := uc.GetByID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidOrderID) {
			t.Fatalf("expected ErrInvalidOrderID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "O1").Return(entities.Order{}, nil)

		_, err := uc.GetByID(context.Background(), "O1")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "O1").Return(entities.Order{ID: "O1"}, nil)

		order, err := uc.GetByID(context.Background(), "O1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.ID != "O1" {
			t.Fatalf("expected O1, got %q", order.ID)
		}
	})
}
