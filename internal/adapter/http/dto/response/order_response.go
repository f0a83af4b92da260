package response

import (
	"time"

	"filtros_store/internal/domain/entities"
)

type OrderResponse struct {
	ID        string    `json:"id"`
	Items     int       `json:"items"`
	BuyerName string    `json:"buyer_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromOrder(o entities.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Items:     len(o.Items),
		BuyerName: o.User.Name,
		CreatedAt: o.CreatedAt,
	}
}
