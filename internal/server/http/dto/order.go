package dto

import (
	"time"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// OrderItemResponse is one cart line of an order listing.
type OrderItemResponse struct {
	ItemID    string `json:"itemId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// TransactionResponse is one gateway transaction attempt.
type TransactionResponse struct {
	PaymentID         string    `json:"paymentId"`
	Amount            string    `json:"amount"`
	Method            string    `json:"method"`
	Status            string    `json:"status"`
	SignatureVerified bool      `json:"signatureVerified"`
	ErrorCode         string    `json:"errorCode,omitempty"`
	ErrorDescription  string    `json:"errorDescription,omitempty"`
	CreatedAt         time.Time `json:"createdAt"`
}

// OrderResponse is the admin view of an order. Monetary values are
// rendered as rupee strings.
type OrderResponse struct {
	ID             string                `json:"id"`
	CustomerName   string                `json:"customerName"`
	CustomerEmail  string                `json:"customerEmail"`
	CustomerPhone  string                `json:"customerPhone"`
	Items          []OrderItemResponse   `json:"items"`
	Subtotal       string                `json:"subtotal"`
	Tax            string                `json:"tax"`
	ShippingTotal  string                `json:"shippingTotal"`
	TotalAmount    string                `json:"totalAmount"`
	Provider       string                `json:"provider"`
	Status         string                `json:"status"`
	PaymentStatus  string                `json:"paymentStatus"`
	DeliveryStatus string                `json:"deliveryStatus"`
	Waybill        string                `json:"waybill,omitempty"`
	Transactions   []TransactionResponse `json:"transactions,omitempty"`
	OrderDate      time.Time             `json:"orderDate"`
	ConfirmedAt    *time.Time            `json:"confirmedAt,omitempty"`

	// AvailableStatuses drives the status dropdown on the order detail
	// screen; the listing leaves it empty.
	AvailableStatuses []string `json:"availableStatuses,omitempty"`
}

// OrderFromModel converts a domain order to its response shape.
func OrderFromModel(order model.Order) OrderResponse {
	resp := OrderResponse{
		ID:             order.ID,
		CustomerName:   order.CustomerName,
		CustomerEmail:  order.CustomerEmail,
		CustomerPhone:  order.CustomerPhone,
		Subtotal:       order.Subtotal.String(),
		Tax:            order.Tax.String(),
		ShippingTotal:  order.ShippingTotal.String(),
		TotalAmount:    order.TotalAmount.String(),
		Provider:       string(order.Provider),
		Status:         string(order.Status),
		PaymentStatus:  string(order.PaymentStatus),
		DeliveryStatus: string(order.DeliveryStatus),
		Waybill:        order.Waybill,
		OrderDate:      order.OrderDate,
		ConfirmedAt:    order.ConfirmedAt,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ItemID:    item.ItemID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice.String(),
		})
	}
	for _, txn := range order.Transactions {
		resp.Transactions = append(resp.Transactions, TransactionResponse{
			PaymentID:         txn.PaymentID,
			Amount:            txn.Amount.String(),
			Method:            txn.Method,
			Status:            string(txn.Status),
			SignatureVerified: txn.SignatureVerified,
			ErrorCode:         txn.ErrorCode,
			ErrorDescription:  txn.ErrorDescription,
			CreatedAt:         txn.CreatedAt,
		})
	}
	return resp
}

// PaginationResponse mirrors repository paging info.
type PaginationResponse struct {
	Page  int `json:"page"`
	Size  int `json:"size"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// StatsResponse is the dashboard summary block of an order listing.
type StatsResponse struct {
	Total     int `json:"total"`
	Delhivery int `json:"delhivery"`
	Self      int `json:"self"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Shipped   int `json:"shipped"`
	Delivered int `json:"delivered"`
}

// OrderListResponse is the admin order listing envelope.
type OrderListResponse struct {
	Orders     []OrderResponse    `json:"orders"`
	Pagination PaginationResponse `json:"pagination"`
	Stats      StatsResponse      `json:"stats"`
}

// StatusUpdateRequest carries a single status value for PATCH endpoints.
type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

// ShipmentResponse reports the waybill after dispatch.
type ShipmentResponse struct {
	Waybill string `json:"waybill"`
}

// TrackingResponse is the courier's current view of a shipment.
type TrackingResponse struct {
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
}
