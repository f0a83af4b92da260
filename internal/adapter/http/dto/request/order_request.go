package request

import "filtros_store/internal/domain/entities"

type ProductRequest struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
}

type OrderItemRequest struct {
	Product  ProductRequest `json:"product" binding:"required"`
	Quantity int            `json:"quantity"`
	Price    string         `json:"price"`
}

type BuyerRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type ShippingRequest struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	ZipCode string `json:"zip_code"`
}

// OrderRequest is the order-registration payload sent by the storefront.
// Everything except the item list is optional; checkout translation applies
// its own field-by-field defaults.
type OrderRequest struct {
	ID            string             `json:"id"`
	Items         []OrderItemRequest `json:"items" binding:"required"`
	User          BuyerRequest       `json:"user"`
	Shipping      ShippingRequest    `json:"shipping"`
	ShippingPrice string             `json:"shipping_price"`
}

func (r OrderRequest) ToEntity() entities.Order {
	items := make([]entities.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.OrderItem{
			Product: entities.ProductRef{
				ID:          it.Product.ID,
				Name:        it.Product.Name,
				Description: it.Product.Description,
				Images:      it.Product.Images,
				Category:    it.Product.Category,
			},
			Quantity: it.Quantity,
			Price:    it.Price,
		})
	}
	return entities.Order{
		ID:    r.ID,
		Items: items,
		User: entities.Buyer{
			Name:  r.User.Name,
			Email: r.User.Email,
			Phone: r.User.Phone,
		},
		Shipping: entities.ShippingAddress{
			Street:  r.Shipping.Street,
			Number:  r.Shipping.Number,
			ZipCode: r.Shipping.ZipCode,
		},
		ShippingPrice: r.ShippingPrice,
	}
}
