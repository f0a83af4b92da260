package entities

import "time"

// ProductRef is the catalog snapshot carried by an order line.
//
// Orders keep a denormalized copy of the product fields needed for checkout
// so that later catalog edits do not change what the buyer was charged for.
type ProductRef struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Category    string   `json:"category"`
}

// OrderItem is one purchased line.
//
// Price is carried as a string because legacy catalog rows stored prices that
// way; translation to the gateway coerces it, with invalid values becoming 0.
type OrderItem struct {
	Product  ProductRef `json:"product"`
	Quantity int        `json:"quantity"`
	Price    string     `json:"price"`
}

// Buyer identifies who placed the order.
type Buyer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// ShippingAddress is the delivery address attached to the order.
type ShippingAddress struct {
	Street  string `json:"street"`
	Number  string `json:"number"`
	ZipCode string `json:"zip_code"`
}

// Order is the order record owned by the order-management side of the store.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The payments subsystem reads orders only; it never mutates them.
type Order struct {
	ID            string          `json:"id"`
	Items         []OrderItem     `json:"items"`
	User          Buyer           `json:"user"`
	Shipping      ShippingAddress `json:"shipping"`
	ShippingPrice string          `json:"shipping_price"`
	CreatedAt     time.Time       `json:"created_at"`
}
