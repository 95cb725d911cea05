package usecase

import (
	"context"
	"log/slog"
	"time"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/domain/repository"
)

// transitions lists the statuses reachable by a direct manual transition.
// delivered and cancelled are terminal; failed allows re-submission.
var transitions = map[model.OrderStatus][]model.OrderStatus{
	model.OrderStatusPending:   {model.OrderStatusConfirmed, model.OrderStatusCancelled},
	model.OrderStatusConfirmed: {model.OrderStatusShipped, model.OrderStatusDelivered, model.OrderStatusCancelled},
	model.OrderStatusShipped:   {model.OrderStatusDelivered, model.OrderStatusCancelled},
	model.OrderStatusDelivered: {},
	model.OrderStatusCancelled: {},
	model.OrderStatusFailed:    {model.OrderStatusPending},
}

// CanTransition reports whether target is reachable from current by a
// direct manual transition.
func CanTransition(current, target model.OrderStatus) bool {
	for _, allowed := range transitions[current] {
		if allowed == target {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the next statuses available from current.
func AllowedTransitions(current model.OrderStatus) []model.OrderStatus {
	return transitions[current]
}

// StatusUseCase applies order status transitions and keeps orderStatus and
// deliveryStatus synchronized.
type StatusUseCase struct {
	orders    repository.OrderRepository
	inventory repository.InventoryRepository
	logger    *slog.Logger
}

// NewStatusUseCase constructs StatusUseCase.
func NewStatusUseCase(orders repository.OrderRepository, inventory repository.InventoryRepository, logger *slog.Logger) *StatusUseCase {
	return &StatusUseCase{orders: orders, inventory: inventory, logger: logger}
}

// UpdateOrderStatus applies a manual transition. It fails with
// ErrInvalidTransition without mutating anything when target is not
// reachable from the order's current status.
func (u *StatusUseCase) UpdateOrderStatus(ctx context.Context, orderID string, target model.OrderStatus) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if !CanTransition(order.Status, target) {
		return domainErrors.ErrInvalidTransition
	}

	upd := repository.OrderUpdate{Status: &target}
	switch target {
	case model.OrderStatusConfirmed:
		now := time.Now().UTC()
		upd.ConfirmedAt = &now
		if order.PaymentStatus != model.PaymentStatusPaid {
			// Manual admin override: allowed, but loud.
			u.logger.Warn("confirming order without completed payment",
				slog.String("order", order.ID),
				slog.String("payment_status", string(order.PaymentStatus)),
			)
		}
	case model.OrderStatusDelivered:
		if err := u.inventory.DecrementStock(ctx, order.ID, order.Items); err != nil {
			return err
		}
	}

	return u.orders.Update(ctx, orderID, upd)
}

// UpdateDeliveryStatus records courier or manual delivery progress and
// drives the order status forward when needed. Delivery updates never move
// the order status backward, and cancelled orders reject further updates.
func (u *StatusUseCase) UpdateDeliveryStatus(ctx context.Context, orderID string, status model.DeliveryStatus) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status == model.OrderStatusCancelled {
		return domainErrors.ErrInvalidTransition
	}

	upd := repository.OrderUpdate{DeliveryStatus: &status}
	switch status {
	case model.DeliveryStatusDelivered:
		if order.Status != model.OrderStatusDelivered {
			if err := u.inventory.DecrementStock(ctx, order.ID, order.Items); err != nil {
				return err
			}
			delivered := model.OrderStatusDelivered
			upd.Status = &delivered
		}
	case model.DeliveryStatusOutForDelivery:
		if order.Status == model.OrderStatusPending || order.Status == model.OrderStatusConfirmed {
			shipped := model.OrderStatusShipped
			upd.Status = &shipped
		}
	}

	return u.orders.Update(ctx, orderID, upd)
}

// UpdatePaymentStatus applies a manual payment status change. Once an
// order is paid, failure and cancellation updates are no-ops.
func (u *StatusUseCase) UpdatePaymentStatus(ctx context.Context, orderID string, status model.PaymentStatus) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.PaymentStatus == status {
		return nil
	}
	if order.PaymentStatus == model.PaymentStatusPaid &&
		(status == model.PaymentStatusFailed || status == model.PaymentStatusCancelled) {
		return nil
	}

	return u.orders.Update(ctx, orderID, repository.OrderUpdate{PaymentStatus: &status})
}
