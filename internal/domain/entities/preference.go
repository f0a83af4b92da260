package entities

// PreferenceItem is one purchasable line in a checkout preference.
type PreferenceItem struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	PictureURL  string  `json:"picture_url"`
	CategoryID  string  `json:"category_id"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// PreferencePhone holds the payer phone split the way the gateway expects it.
type PreferencePhone struct {
	AreaCode string `json:"area_code"`
	Number   string `json:"number"`
}

// PreferenceAddress holds the payer address block.
type PreferenceAddress struct {
	ZipCode      string `json:"zip_code"`
	StreetName   string `json:"street_name"`
	StreetNumber string `json:"street_number"`
}

// PreferencePayer is the payer block of a checkout preference.
type PreferencePayer struct {
	Name    string            `json:"name"`
	Surname string            `json:"surname"`
	Email   string            `json:"email"`
	Phone   PreferencePhone   `json:"phone"`
	Address PreferenceAddress `json:"address"`
}

// PreferenceBackURLs are the storefront pages the buyer is sent back to.
type PreferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

// PreferenceShipments carries the shipping cost and mode.
type PreferenceShipments struct {
	Cost float64 `json:"cost"`
	Mode string  `json:"mode"`
}

// PreferencePayload is the gateway-shaped projection of an Order, built fresh
// for each checkout and discarded after the preference is created.
//
// ExternalReference always carries the source order id so webhook events can
// be joined back to the order during reconciliation.
type PreferencePayload struct {
	Items             []PreferenceItem    `json:"items"`
	Payer             PreferencePayer     `json:"payer"`
	BackURLs          PreferenceBackURLs  `json:"back_urls"`
	AutoReturn        string              `json:"auto_return"`
	NotificationURL   string              `json:"notification_url"`
	ExternalReference string              `json:"external_reference"`
	Shipments         PreferenceShipments `json:"shipments"`
}

// CheckoutRedirect is what the storefront needs to send the buyer to the
// gateway's hosted checkout.
type CheckoutRedirect struct {
	PreferenceID     string `json:"preference_id"`
	InitPoint        string `json:"init_point"`
	SandboxInitPoint string `json:"sandbox_init_point,omitempty"`
}
