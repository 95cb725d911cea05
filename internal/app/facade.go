package app

import (
	"context"
	"time"

	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/domain/repository"
	"github.com/chowdhry/storefront/internal/usecase"
)

// CommerceFacade aggregates the storefront and back-office use cases
// behind one application surface consumed by HTTP handlers and the
// dispatch worker.
type CommerceFacade struct {
	auth       *usecase.AuthUseCase
	checkout   *usecase.CheckoutUseCase
	payments   *usecase.PaymentUseCase
	shipments  *usecase.ShipmentUseCase
	statuses   *usecase.StatusUseCase
	backoffice *usecase.BackofficeUseCase
	orders     repository.OrderRepository
}

// NewCommerceFacade constructs CommerceFacade.
func NewCommerceFacade(
	auth *usecase.AuthUseCase,
	checkout *usecase.CheckoutUseCase,
	payments *usecase.PaymentUseCase,
	shipments *usecase.ShipmentUseCase,
	statuses *usecase.StatusUseCase,
	backoffice *usecase.BackofficeUseCase,
	orders repository.OrderRepository,
) *CommerceFacade {
	return &CommerceFacade{
		auth:       auth,
		checkout:   checkout,
		payments:   payments,
		shipments:  shipments,
		statuses:   statuses,
		backoffice: backoffice,
		orders:     orders,
	}
}

// --- authentication ---

func (f *CommerceFacade) Register(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Register(ctx, login, password)
	return token, err
}

func (f *CommerceFacade) Authenticate(ctx context.Context, login, password string) (string, error) {
	_, token, err := f.auth.Authenticate(ctx, login, password)
	return token, err
}

func (f *CommerceFacade) ParseToken(token string) (int64, error) {
	return f.auth.ParseToken(token)
}

// --- storefront checkout ---

func (f *CommerceFacade) QuoteDelivery(ctx context.Context, pincode string) (*model.Quote, error) {
	return f.checkout.QuoteDelivery(ctx, pincode)
}

func (f *CommerceFacade) PlaceOrder(ctx context.Context, req usecase.CheckoutRequest) (*model.Order, *model.GatewayOrder, error) {
	return f.checkout.PlaceOrder(ctx, req)
}

// --- payment reconciliation ---

func (f *CommerceFacade) ConfirmPayment(ctx context.Context, orderID string, payload model.GatewayPayload) error {
	return f.payments.RecordSuccess(ctx, orderID, payload)
}

func (f *CommerceFacade) FailPayment(ctx context.Context, orderID, reason string) error {
	return f.payments.RecordFailure(ctx, orderID, reason)
}

func (f *CommerceFacade) CancelPayment(ctx context.Context, orderID string) error {
	return f.payments.RecordCancellation(ctx, orderID)
}

// --- back-office ---

// Orders returns one page of orders with the requested filters applied.
// Dashboard stats cover the full fetched page regardless of filters, so
// the summary counters stay stable while the operator narrows the list.
func (f *CommerceFacade) Orders(ctx context.Context, page, size int, filters usecase.FilterSet) ([]model.Order, repository.Pagination, usecase.Stats, error) {
	orders, pagination, err := f.backoffice.ListOrders(ctx, page, size)
	if err != nil {
		return nil, repository.Pagination{}, usecase.Stats{}, err
	}
	stats := usecase.ComputeStats(orders)
	return usecase.FilterOrders(orders, filters, time.Now()), pagination, stats, nil
}

func (f *CommerceFacade) Order(ctx context.Context, orderID string) (*model.Order, error) {
	return f.backoffice.GetOrder(ctx, orderID)
}

func (f *CommerceFacade) UpdateOrderStatus(ctx context.Context, orderID string, status model.OrderStatus) error {
	return f.statuses.UpdateOrderStatus(ctx, orderID, status)
}

func (f *CommerceFacade) UpdatePaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus) error {
	return f.statuses.UpdatePaymentStatus(ctx, orderID, status)
}

func (f *CommerceFacade) UpdateDeliveryStatus(ctx context.Context, orderID string, status model.DeliveryStatus) error {
	return f.statuses.UpdateDeliveryStatus(ctx, orderID, status)
}

func (f *CommerceFacade) CreateShipment(ctx context.Context, orderID string) (string, error) {
	return f.shipments.CreateShipment(ctx, orderID)
}

func (f *CommerceFacade) TrackShipment(ctx context.Context, orderID string) (*model.TrackingInfo, error) {
	return f.shipments.Track(ctx, orderID)
}

func (f *CommerceFacade) FailedOrders(ctx context.Context, page, size int) ([]model.FailedOrder, repository.Pagination, error) {
	return f.backoffice.ListFailedOrders(ctx, page, size)
}

func (f *CommerceFacade) CleanFailedOrders(ctx context.Context) (int64, error) {
	return f.backoffice.CleanFailedOrders(ctx)
}

// --- dispatch worker ---

func (f *CommerceFacade) OrdersForDispatch(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectBatchForDispatch(ctx, limit)
}

func (f *CommerceFacade) OrdersForTracking(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectBatchForTracking(ctx, limit)
}
