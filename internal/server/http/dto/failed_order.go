package dto

import (
	"time"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// FailedOrderResponse is one failed-payment record in the admin listing.
type FailedOrderResponse struct {
	OrderID       string    `json:"orderId"`
	CustomerName  string    `json:"customerName"`
	CustomerEmail string    `json:"customerEmail"`
	CustomerPhone string    `json:"customerPhone"`
	ItemsSummary  string    `json:"itemsSummary"`
	TotalAmount   string    `json:"totalAmount"`
	ErrorMessage  string    `json:"errorMessage"`
	OrderDate     time.Time `json:"orderDate"`
	RecordedAt    time.Time `json:"recordedAt"`
}

// FailedOrderFromModel converts a failure record to its response shape.
func FailedOrderFromModel(f model.FailedOrder) FailedOrderResponse {
	return FailedOrderResponse{
		OrderID:       f.OrderID,
		CustomerName:  f.CustomerName,
		CustomerEmail: f.CustomerEmail,
		CustomerPhone: f.CustomerPhone,
		ItemsSummary:  f.ItemsSummary,
		TotalAmount:   f.TotalAmount.String(),
		ErrorMessage:  f.ErrorMessage,
		OrderDate:     f.OrderDate,
		RecordedAt:    f.RecordedAt,
	}
}

// FailedOrderListResponse is the failed-order listing envelope.
type FailedOrderListResponse struct {
	Orders     []FailedOrderResponse `json:"orders"`
	Pagination PaginationResponse    `json:"pagination"`
}

// CleanResponse reports how many failure records were purged.
type CleanResponse struct {
	Removed int64 `json:"removed"`
}
