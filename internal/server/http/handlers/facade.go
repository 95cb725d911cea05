package handlers

import (
	"context"

	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/domain/repository"
	"github.com/chowdhry/storefront/internal/usecase"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, login, password string) (string, error)
	Authenticate(ctx context.Context, login, password string) (string, error)
	ParseToken(token string) (int64, error)
}

// CheckoutFacade covers the storefront checkout flow.
type CheckoutFacade interface {
	QuoteDelivery(ctx context.Context, pincode string) (*model.Quote, error)
	PlaceOrder(ctx context.Context, req usecase.CheckoutRequest) (*model.Order, *model.GatewayOrder, error)
}

// PaymentFacade covers the gateway callback reconciliation.
type PaymentFacade interface {
	ConfirmPayment(ctx context.Context, orderID string, payload model.GatewayPayload) error
	FailPayment(ctx context.Context, orderID, reason string) error
	CancelPayment(ctx context.Context, orderID string) error
}

// AdminFacade covers the back-office order management surface.
type AdminFacade interface {
	Orders(ctx context.Context, page, size int, filters usecase.FilterSet) ([]model.Order, repository.Pagination, usecase.Stats, error)
	Order(ctx context.Context, orderID string) (*model.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error
	UpdatePaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus) error
	UpdateDeliveryStatus(ctx context.Context, orderID string, status model.DeliveryStatus) error
	CreateShipment(ctx context.Context, orderID string) (string, error)
	TrackShipment(ctx context.Context, orderID string) (*model.TrackingInfo, error)
	FailedOrders(ctx context.Context, page, size int) ([]model.FailedOrder, repository.Pagination, error)
	CleanFailedOrders(ctx context.Context) (int64, error)
}

// CommerceFacade aggregates the full set of operations used across handlers.
type CommerceFacade interface {
	AuthFacade
	CheckoutFacade
	PaymentFacade
	AdminFacade
}
