package usecase

import (
	"context"

	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/domain/repository"
)

// BackofficeUseCase serves the admin console's read and cleanup paths.
type BackofficeUseCase struct {
	orders repository.OrderRepository
	failed repository.FailedOrderRepository
}

// NewBackofficeUseCase constructs BackofficeUseCase.
func NewBackofficeUseCase(orders repository.OrderRepository, failed repository.FailedOrderRepository) *BackofficeUseCase {
	return &BackofficeUseCase{orders: orders, failed: failed}
}

// ListOrders returns one page of orders with pagination info.
func (u *BackofficeUseCase) ListOrders(ctx context.Context, page, size int) ([]model.Order, repository.Pagination, error) {
	return u.orders.List(ctx, page, size)
}

// GetOrder fetches a single order.
func (u *BackofficeUseCase) GetOrder(ctx context.Context, orderID string) (*model.Order, error) {
	return u.orders.GetByID(ctx, orderID)
}

// ListFailedOrders returns one page of failed-payment records.
func (u *BackofficeUseCase) ListFailedOrders(ctx context.Context, page, size int) ([]model.FailedOrder, repository.Pagination, error) {
	return u.failed.List(ctx, page, size)
}

// CleanFailedOrders purges all failed-payment records.
func (u *BackofficeUseCase) CleanFailedOrders(ctx context.Context) (int64, error) {
	return u.failed.Clean(ctx)
}
