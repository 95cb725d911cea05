package model

import (
	"strings"
	"time"
)

// OrderStatus describes the order lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusFailed    OrderStatus = "failed"
)

// PaymentStatus describes the state of the gateway round-trip.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusPaid      PaymentStatus = "paid"
	PaymentStatusFailed    PaymentStatus = "failed"
	PaymentStatusCancelled PaymentStatus = "cancelled"
)

// DeliveryStatus describes shipment progress reported by the courier or
// entered manually for self-delivered orders.
type DeliveryStatus string

const (
	DeliveryStatusPending         DeliveryStatus = "PENDING"
	DeliveryStatusShipmentCreated DeliveryStatus = "SHIPMENT_CREATED"
	DeliveryStatusOutForDelivery  DeliveryStatus = "OUT_FOR_DELIVERY"
	DeliveryStatusDelivered       DeliveryStatus = "DELIVERED"
	DeliveryStatusRTO             DeliveryStatus = "RTO"
)

// DeliveryProvider identifies who fulfils the order.
type DeliveryProvider string

const (
	ProviderSelf      DeliveryProvider = "SELF"
	ProviderDelhivery DeliveryProvider = "DELHIVERY"
)

// ParseProvider normalizes provider input. Historical records carry
// lowercase variants, so parsing is case-insensitive.
func ParseProvider(s string) (DeliveryProvider, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(ProviderSelf):
		return ProviderSelf, true
	case string(ProviderDelhivery):
		return ProviderDelhivery, true
	}
	return "", false
}

// ParseOrderStatus normalizes order status input.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(strings.ToLower(strings.TrimSpace(s))) {
	case OrderStatusPending:
		return OrderStatusPending, true
	case OrderStatusConfirmed:
		return OrderStatusConfirmed, true
	case OrderStatusShipped:
		return OrderStatusShipped, true
	case OrderStatusDelivered:
		return OrderStatusDelivered, true
	case OrderStatusCancelled:
		return OrderStatusCancelled, true
	case OrderStatusFailed:
		return OrderStatusFailed, true
	}
	return "", false
}

// ParsePaymentStatus normalizes payment status input.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentStatusPending:
		return PaymentStatusPending, true
	case PaymentStatusPaid:
		return PaymentStatusPaid, true
	case PaymentStatusFailed:
		return PaymentStatusFailed, true
	case PaymentStatusCancelled:
		return PaymentStatusCancelled, true
	}
	return "", false
}

// ParseDeliveryStatus normalizes delivery status input. IN_TRANSIT is a
// legacy alias for OUT_FOR_DELIVERY kept by older courier configurations.
func ParseDeliveryStatus(s string) (DeliveryStatus, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(DeliveryStatusPending):
		return DeliveryStatusPending, true
	case string(DeliveryStatusShipmentCreated):
		return DeliveryStatusShipmentCreated, true
	case string(DeliveryStatusOutForDelivery), "IN_TRANSIT":
		return DeliveryStatusOutForDelivery, true
	case string(DeliveryStatusDelivered):
		return DeliveryStatusDelivered, true
	case string(DeliveryStatusRTO):
		return DeliveryStatusRTO, true
	}
	return "", false
}

// OrderItem is a purchased cart line.
type OrderItem struct {
	ItemID    string
	Name      string
	Quantity  int
	UnitPrice Paise
	Weight    float64
}

// Order is the central commerce entity. Monetary fields are derived from
// items and shipping and must always reconcile: TotalAmount equals
// Subtotal + Tax + ShippingTotal.
type Order struct {
	ID            string
	UserID        int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	AddressID     int64

	Items         []OrderItem
	Subtotal      Paise
	Tax           Paise
	ShippingTotal Paise
	TotalAmount   Paise

	Distance    float64
	TotalWeight float64

	Provider        DeliveryProvider
	Status          OrderStatus
	PaymentStatus   PaymentStatus
	DeliveryStatus  DeliveryStatus
	Waybill         string
	ShippingPincode string

	GatewayOrderID string
	Transactions   []PaymentTransaction

	OrderDate   time.Time
	ConfirmedAt *time.Time
	UpdatedAt   time.Time
}

// RecomputeTotals rederives the monetary fields and total weight from the
// current items and shipping charge.
func (o *Order) RecomputeTotals() {
	var subtotal Paise
	var weight float64
	for _, item := range o.Items {
		subtotal += item.UnitPrice * Paise(item.Quantity)
		weight += item.Weight * float64(item.Quantity)
	}
	o.Subtotal = subtotal
	o.Tax = TaxOn(subtotal)
	o.TotalAmount = subtotal + o.Tax + o.ShippingTotal
	o.TotalWeight = weight
}
