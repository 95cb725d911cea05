package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
	"github.com/chowdhry/storefront/internal/domain/repository"
)

// FeeEstimator answers whether a pincode is serviceable and at what cost.
type FeeEstimator interface {
	Estimate(ctx context.Context, pincode string) (*model.Quote, error)
}

// PaymentGateway creates gateway-side orders ahead of the checkout widget.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount model.Paise, currency, receipt string) (*model.GatewayOrder, error)
}

// CheckoutRequest carries everything the storefront submits when the
// customer places an order.
type CheckoutRequest struct {
	UserID   int64
	Address  model.Address
	Provider model.DeliveryProvider
	Items    []model.OrderItem
	Notes    string
}

// CheckoutUseCase validates a checkout, computes derived totals, and
// creates the pending order plus its gateway counterpart.
type CheckoutUseCase struct {
	orders    repository.OrderRepository
	addresses repository.AddressRepository
	estimator FeeEstimator
	gateway   PaymentGateway
	logger    *slog.Logger
}

// NewCheckoutUseCase constructs CheckoutUseCase.
func NewCheckoutUseCase(orders repository.OrderRepository, addresses repository.AddressRepository, estimator FeeEstimator, gateway PaymentGateway, logger *slog.Logger) *CheckoutUseCase {
	return &CheckoutUseCase{orders: orders, addresses: addresses, estimator: estimator, gateway: gateway, logger: logger}
}

// QuoteDelivery validates the pincode format and asks the estimator for
// distance and fee. Unserviceable pincodes surface ErrNotServiceable.
func (u *CheckoutUseCase) QuoteDelivery(ctx context.Context, pincode string) (*model.Quote, error) {
	if !ValidatePincode(pincode) {
		return nil, fmt.Errorf("%w: invalid pincode format", domainErrors.ErrValidation)
	}
	return u.estimator.Estimate(ctx, pincode)
}

// PlaceOrder runs the full checkout: field validation, delivery quote,
// address dedup, derived totals, gateway order creation, and persistence
// of the pending order. Nothing is persisted when any step fails.
func (u *CheckoutUseCase) PlaceOrder(ctx context.Context, req CheckoutRequest) (*model.Order, *model.GatewayOrder, error) {
	if err := validateCheckout(req); err != nil {
		return nil, nil, err
	}

	quote, err := u.QuoteDelivery(ctx, req.Address.Postcode)
	if err != nil {
		return nil, nil, err
	}

	addr, err := u.getOrCreateAddress(ctx, req.UserID, req.Address)
	if err != nil {
		return nil, nil, err
	}

	order := &model.Order{
		ID:              newOrderID(),
		UserID:          req.UserID,
		CustomerName:    strings.TrimSpace(req.Address.FirstName + " " + req.Address.LastName),
		CustomerEmail:   req.Address.Email,
		CustomerPhone:   req.Address.Phone,
		AddressID:       addr.ID,
		Items:           req.Items,
		ShippingTotal:   quote.Fee,
		Distance:        quote.Distance,
		ShippingPincode: req.Address.Postcode,
		Provider:        req.Provider,
		Status:          model.OrderStatusPending,
		PaymentStatus:   model.PaymentStatusPending,
		DeliveryStatus:  model.DeliveryStatusPending,
		OrderDate:       time.Now().UTC(),
	}
	order.RecomputeTotals()

	gatewayOrder, err := u.gateway.CreateOrder(ctx, order.TotalAmount, "INR", order.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("create gateway order: %w", err)
	}
	order.GatewayOrderID = gatewayOrder.ID

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, nil, err
	}

	u.logger.Info("order placed",
		slog.String("order", order.ID),
		slog.String("provider", string(order.Provider)),
		slog.String("total", order.TotalAmount.String()),
	)
	return order, gatewayOrder, nil
}

func (u *CheckoutUseCase) getOrCreateAddress(ctx context.Context, userID int64, addr model.Address) (*model.Address, error) {
	saved, err := u.addresses.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, existing := range saved {
		if existing.Matches(addr) {
			return &existing, nil
		}
	}
	addr.UserID = userID
	return u.addresses.Create(ctx, &addr)
}

func validateCheckout(req CheckoutRequest) error {
	required := map[string]string{
		"addressType": req.Address.AddressType,
		"firstName":   req.Address.FirstName,
		"lastName":    req.Address.LastName,
		"street":      req.Address.Street,
		"city":        req.Address.City,
		"state":       req.Address.State,
		"postcode":    req.Address.Postcode,
		"email":       req.Address.Email,
		"phone":       req.Address.Phone,
	}
	for field, value := range required {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%w: missing required field %s", domainErrors.ErrValidation, field)
		}
	}

	if _, ok := model.ParseProvider(string(req.Provider)); !ok {
		return fmt.Errorf("%w: unknown delivery provider %q", domainErrors.ErrValidation, req.Provider)
	}
	if len(req.Items) == 0 {
		return fmt.Errorf("%w: cart is empty", domainErrors.ErrValidation)
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.UnitPrice <= 0 {
			return fmt.Errorf("%w: item %s has non-positive quantity or price", domainErrors.ErrValidation, item.ItemID)
		}
	}
	return nil
}

func newOrderID() string {
	buf := make([]byte, 8)
	_, _ = rand.Read(buf)
	return "ord_" + hex.EncodeToString(buf)
}
