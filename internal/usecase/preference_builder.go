package usecase

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"filtros_store/internal/domain/entities"
)

var ErrInvalidOrder = errors.New("invalid order")

const (
	fallbackItemTitle       = "Producto"
	fallbackItemDescription = "Sin descripción"
	fallbackCategoryID      = "general"
	fallbackPayerName       = "Usuario"
	fallbackPayerSurname    = "Apellido"
	fallbackPayerEmail      = "test_user@testuser.com"

	maxItemDescriptionLen = 100

	uploadsPath = "/uploads/"
	webhookPath = "/v1/webhooks/mercadopago"

	successPath = "/payment/success"
	failurePath = "/payment/failure"
	pendingPath = "/payment/pending"

	shipmentModeNotSpecified = "not_specified"
)

// PreferenceBuilder translates an order into the gateway-shaped checkout
// preference. Construction is pure: every optional field defaults explicitly
// and no order field is ever mutated.
type PreferenceBuilder struct {
	FrontendBaseURL string
	BackendBaseURL  string
}

// Build maps an order into a PreferencePayload.
//
// Fails with ErrInvalidOrder when the order is nil, has no id, or has no
// items. Optional buyer attributes (email, phone, address) never fail; each
// falls back field by field.
func (b PreferenceBuilder) Build(order *entities.Order) (entities.PreferencePayload, error) {
	if order == nil {
		return entities.PreferencePayload{}, fmt.Errorf("%w: order is nil", ErrInvalidOrder)
	}
	if strings.TrimSpace(order.ID) == "" {
		return entities.PreferencePayload{}, fmt.Errorf("%w: order has no id", ErrInvalidOrder)
	}
	if len(order.Items) == 0 {
		return entities.PreferencePayload{}, fmt.Errorf("%w: order %s has no items", ErrInvalidOrder, order.ID)
	}

	items := make([]entities.PreferenceItem, 0, len(order.Items))
	for _, it := range order.Items {
		items = append(items, b.buildItem(it))
	}

	payload := entities.PreferencePayload{
		Items: items,
		Payer: buildPayer(order.User, order.Shipping),
		BackURLs: entities.PreferenceBackURLs{
			Success: b.FrontendBaseURL + successPath,
			Failure: b.FrontendBaseURL + failurePath,
			Pending: b.FrontendBaseURL + pendingPath,
		},
		AutoReturn:        "approved",
		NotificationURL:   b.BackendBaseURL + webhookPath,
		ExternalReference: order.ID,
		Shipments: entities.PreferenceShipments{
			Cost: coerceFloat(order.ShippingPrice),
			Mode: shipmentModeNotSpecified,
		},
	}

	log.Printf("[checkout][builder] preference built order_id=%s items=%d amount_first=%.2f",
		order.ID, len(payload.Items), payload.Items[0].UnitPrice)
	return payload, nil
}

func (b PreferenceBuilder) buildItem(it entities.OrderItem) entities.PreferenceItem {
	title := strings.TrimSpace(it.Product.Name)
	if title == "" {
		title = fallbackItemTitle
	}

	description := truncate(strings.TrimSpace(it.Product.Description), maxItemDescriptionLen)
	if description == "" {
		description = fallbackItemDescription
	}

	pictureURL := ""
	if len(it.Product.Images) > 0 && it.Product.Images[0] != "" {
		pictureURL = strings.TrimSuffix(b.BackendBaseURL, "/") + uploadsPath + it.Product.Images[0]
	}

	category := strings.TrimSpace(it.Product.Category)
	if category == "" {
		category = fallbackCategoryID
	}

	quantity := it.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	return entities.PreferenceItem{
		ID:          it.Product.ID,
		Title:       title,
		Description: description,
		PictureURL:  pictureURL,
		CategoryID:  category,
		Quantity:    quantity,
		UnitPrice:   coerceFloat(it.Price),
	}
}

func buildPayer(buyer entities.Buyer, shipping entities.ShippingAddress) entities.PreferencePayer {
	name, surname := splitBuyerName(buyer.Name)

	email := strings.TrimSpace(buyer.Email)
	if email == "" {
		email = fallbackPayerEmail
	}

	return entities.PreferencePayer{
		Name:    name,
		Surname: surname,
		Email:   email,
		Phone: entities.PreferencePhone{
			AreaCode: "",
			Number:   strings.TrimSpace(buyer.Phone),
		},
		Address: entities.PreferenceAddress{
			ZipCode:      strings.TrimSpace(shipping.ZipCode),
			StreetName:   strings.TrimSpace(shipping.Street),
			StreetNumber: strings.TrimSpace(shipping.Number),
		},
	}
}

// splitBuyerName splits a display name on whitespace: first token is the given
// name, the remaining tokens joined with spaces are the surname.
func splitBuyerName(display string) (name, surname string) {
	parts := strings.Fields(display)
	if len(parts) == 0 {
		return fallbackPayerName, fallbackPayerSurname
	}
	if len(parts) == 1 {
		return parts[0], fallbackPayerSurname
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// coerceFloat parses legacy string prices. Invalid values become 0 rather
// than rejecting the order; the storefront has always behaved this way.
func coerceFloat(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return v
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
