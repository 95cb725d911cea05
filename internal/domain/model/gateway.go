package model

// GatewayOrder is the payment gateway's reference for a checkout, created
// before the customer is handed to the payment widget.
type GatewayOrder struct {
	ID       string
	Amount   Paise
	Currency string
}

// GatewayPayload is the signed callback the gateway delivers after a
// payment attempt completes.
type GatewayPayload struct {
	GatewayOrderID string
	PaymentID      string
	Signature      string
	Amount         Paise
	Method         string
}

// Quote is a delivery feasibility answer for a pincode.
type Quote struct {
	Distance float64
	Fee      Paise
}

// TrackingInfo is the courier's current view of a shipment.
type TrackingInfo struct {
	Status   DeliveryStatus
	Location string
}
