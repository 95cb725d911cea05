package usecase

import (
	"context"
	"fmt"
	"log/slog"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/domain/repository"
)

// CourierGateway exposes the courier collaborator operations.
type CourierGateway interface {
	CreateShipment(ctx context.Context, order *model.Order) (string, error)
	Track(ctx context.Context, waybill string) (*model.TrackingInfo, error)
}

// ShipmentUseCase routes fulfilment by delivery provider. SELF orders are
// advanced manually and never touch the courier; DELHIVERY orders get a
// courier shipment and waybill.
type ShipmentUseCase struct {
	orders  repository.OrderRepository
	courier CourierGateway
	status  *StatusUseCase
	logger  *slog.Logger
}

// NewShipmentUseCase constructs ShipmentUseCase.
func NewShipmentUseCase(orders repository.OrderRepository, courier CourierGateway, status *StatusUseCase, logger *slog.Logger) *ShipmentUseCase {
	return &ShipmentUseCase{orders: orders, courier: courier, status: status, logger: logger}
}

// CreateShipment creates a courier shipment for a confirmed, paid
// DELHIVERY order. An existing waybill is returned as-is: courier shipment
// creation is not idempotent, so a second shipment must never be created.
// Exactly one courier attempt is made per invocation; the caller decides
// on retry or manual fallback after a failure.
func (u *ShipmentUseCase) CreateShipment(ctx context.Context, orderID string) (string, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	if order.Provider != model.ProviderDelhivery {
		return "", fmt.Errorf("%w: %s orders are dispatched manually", domainErrors.ErrValidation, order.Provider)
	}
	if order.Waybill != "" {
		return order.Waybill, nil
	}
	if order.Status != model.OrderStatusConfirmed || order.PaymentStatus != model.PaymentStatusPaid {
		return "", fmt.Errorf("%w: order must be confirmed and paid before dispatch", domainErrors.ErrValidation)
	}

	waybill, err := u.courier.CreateShipment(ctx, order)
	if err != nil {
		return "", fmt.Errorf("%w: %s", domainErrors.ErrShipmentCreationFailed, err)
	}

	created := model.DeliveryStatusShipmentCreated
	upd := repository.OrderUpdate{Waybill: &waybill, DeliveryStatus: &created}
	if err := u.orders.Update(ctx, orderID, upd); err != nil {
		// The courier shipment exists but we failed to persist it. Surface
		// loudly; the waybill short-circuit above keeps a retry safe.
		u.logger.Error("persisting waybill failed",
			slog.String("order", orderID), slog.String("waybill", waybill),
			slog.String("error", err.Error()))
		return "", err
	}

	u.logger.Info("shipment created", slog.String("order", orderID), slog.String("waybill", waybill))
	return waybill, nil
}

// Track fetches the courier's current view of the shipment and writes the
// delivery status back when it changed, re-synchronizing the order status.
// Orders without a waybill cannot be tracked; that is a caller error.
func (u *ShipmentUseCase) Track(ctx context.Context, orderID string) (*model.TrackingInfo, error) {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.Waybill == "" {
		return nil, domainErrors.ErrTrackingUnavailable
	}

	info, err := u.courier.Track(ctx, order.Waybill)
	if err != nil {
		return nil, fmt.Errorf("track shipment %s: %w", order.Waybill, err)
	}

	if info.Status != order.DeliveryStatus {
		if err := u.status.UpdateDeliveryStatus(ctx, orderID, info.Status); err != nil {
			return nil, err
		}
	}
	return info, nil
}
