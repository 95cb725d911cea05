package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/domain/repository"
)

// SignatureVerifier checks the authenticity of a gateway callback.
type SignatureVerifier interface {
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

const cancelledByUserReason = "Payment cancelled by user"

// PaymentUseCase reconciles asynchronous gateway callbacks against orders.
type PaymentUseCase struct {
	orders   repository.OrderRepository
	failed   repository.FailedOrderRepository
	verifier SignatureVerifier
	logger   *slog.Logger
}

// NewPaymentUseCase constructs PaymentUseCase.
func NewPaymentUseCase(orders repository.OrderRepository, failed repository.FailedOrderRepository, verifier SignatureVerifier, logger *slog.Logger) *PaymentUseCase {
	return &PaymentUseCase{orders: orders, failed: failed, verifier: verifier, logger: logger}
}

// RecordSuccess verifies and applies a successful payment callback. The
// order is marked paid only when the signature check passes; a failed
// check records the attempt and returns ErrVerificationFailed. Repeat
// success callbacks for an already-paid order are no-ops.
func (u *PaymentUseCase) RecordSuccess(ctx context.Context, orderID string, payload model.GatewayPayload) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.PaymentStatus == model.PaymentStatusPaid {
		return nil
	}

	txn := model.PaymentTransaction{
		OrderID:   orderID,
		PaymentID: payload.PaymentID,
		Amount:    payload.Amount,
		Method:    payload.Method,
		CreatedAt: time.Now().UTC(),
	}

	if !u.verifier.VerifySignature(payload.GatewayOrderID, payload.PaymentID, payload.Signature) {
		txn.Status = model.PaymentStatusFailed
		txn.ErrorCode = "SIGNATURE_MISMATCH"
		txn.ErrorDescription = "gateway signature did not match payload"
		if err := u.orders.AppendTransaction(ctx, orderID, txn); err != nil {
			u.logger.Error("recording failed verification attempt",
				slog.String("order", orderID), slog.String("error", err.Error()))
		}
		return domainErrors.ErrVerificationFailed
	}

	txn.Status = model.PaymentStatusPaid
	txn.SignatureVerified = true
	if err := u.orders.AppendTransaction(ctx, orderID, txn); err != nil {
		return err
	}

	paid := model.PaymentStatusPaid
	upd := repository.OrderUpdate{PaymentStatus: &paid}
	if order.Status == model.OrderStatusPending || order.Status == model.OrderStatusFailed {
		confirmed := model.OrderStatusConfirmed
		now := time.Now().UTC()
		upd.Status = &confirmed
		upd.ConfirmedAt = &now
	}
	return u.orders.Update(ctx, orderID, upd)
}

// RecordFailure marks the order's payment as failed and mirrors it into
// the failed-order collection. Safe to call repeatedly; the latest reason
// wins. Once an order is paid or cancelled this is a no-op: success takes
// precedence and cancelled is terminal.
func (u *PaymentUseCase) RecordFailure(ctx context.Context, orderID, reason string) error {
	return u.recordAbandonment(ctx, orderID, reason, model.PaymentStatusFailed)
}

// RecordCancellation records a client-side cancellation. Both the gateway
// failure callback and the cancellation fallback may race to report the
// same abandonment; recordAbandonment tolerates either arriving twice.
func (u *PaymentUseCase) RecordCancellation(ctx context.Context, orderID string) error {
	return u.recordAbandonment(ctx, orderID, cancelledByUserReason, model.PaymentStatusCancelled)
}

func (u *PaymentUseCase) recordAbandonment(ctx context.Context, orderID, reason string, status model.PaymentStatus) error {
	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return err
	}
	if order.PaymentStatus == model.PaymentStatusPaid {
		return nil
	}
	// cancelled is terminal; a late gateway callback must not revive it.
	if order.Status == model.OrderStatusCancelled {
		return nil
	}

	failed := model.OrderStatusFailed
	upd := repository.OrderUpdate{PaymentStatus: &status, Status: &failed}
	if err := u.orders.Update(ctx, orderID, upd); err != nil {
		return err
	}

	return u.failed.Upsert(ctx, &model.FailedOrder{
		OrderID:       order.ID,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		ItemsSummary:  summarizeItems(order.Items),
		Subtotal:      order.Subtotal,
		Tax:           order.Tax,
		ShippingTotal: order.ShippingTotal,
		TotalAmount:   order.TotalAmount,
		ErrorMessage:  reason,
		OrderDate:     order.OrderDate,
		RecordedAt:    time.Now().UTC(),
	})
}

func summarizeItems(items []model.OrderItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (Qty: %d)", item.Name, item.Quantity))
	}
	return strings.Join(parts, ", ")
}
