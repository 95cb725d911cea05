package dto

// AddressRequest is the delivery address submitted at checkout.
type AddressRequest struct {
	AddressType string `json:"addressType"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Street      string `json:"street"`
	Apartment   string `json:"apartment"`
	City        string `json:"city"`
	State       string `json:"state"`
	Postcode    string `json:"postcode"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
}

// CheckoutItemRequest is one cart line submitted at checkout. UnitPrice
// is in paise.
type CheckoutItemRequest struct {
	ItemID    string  `json:"itemId"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	UnitPrice int64   `json:"unitPrice"`
	Weight    float64 `json:"weight"`
}

// CheckoutRequest is the full checkout submission.
type CheckoutRequest struct {
	Address  AddressRequest        `json:"address"`
	Provider string                `json:"provider"`
	Items    []CheckoutItemRequest `json:"items"`
	Notes    string                `json:"notes"`
}

// QuoteResponse answers a delivery estimate request.
type QuoteResponse struct {
	Distance float64 `json:"distanceKm"`
	Fee      string  `json:"fee"`
}

// CheckoutResponse returns the created order and the gateway order the
// payment widget should open.
type CheckoutResponse struct {
	OrderID        string `json:"orderId"`
	TotalAmount    string `json:"totalAmount"`
	GatewayOrderID string `json:"gatewayOrderId"`
	Currency       string `json:"currency"`
}
