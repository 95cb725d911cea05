package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
	testhelpers "github.com/chowdhry/storefront/internal/test"
)

type courierStub struct {
	waybill   string
	createErr error
	info      *model.TrackingInfo
	trackErr  error
	creates   int
	tracks    int
}

func (c *courierStub) CreateShipment(ctx context.Context, order *model.Order) (string, error) {
	c.creates++
	if c.createErr != nil {
		return "", c.createErr
	}
	return c.waybill, nil
}

func (c *courierStub) Track(ctx context.Context, waybill string) (*model.TrackingInfo, error) {
	c.tracks++
	if c.trackErr != nil {
		return nil, c.trackErr
	}
	return c.info, nil
}

func dispatchableOrder(id string) *model.Order {
	return &model.Order{
		ID:             id,
		Status:         model.OrderStatusConfirmed,
		PaymentStatus:  model.PaymentStatusPaid,
		DeliveryStatus: model.DeliveryStatusPending,
		Provider:       model.ProviderDelhivery,
		Items:          []model.OrderItem{{ItemID: "sku-1", Name: "Ghee", Quantity: 1, UnitPrice: 50000, Weight: 0.5}},
	}
}

func newShipmentUseCase(repo *testhelpers.OrderRepositoryStub, courier *courierStub) *ShipmentUseCase {
	status := NewStatusUseCase(repo, &testhelpers.InventoryRepositoryStub{}, testLogger())
	return NewShipmentUseCase(repo, courier, status, testLogger())
}

func TestCreateShipmentSuccess(t *testing.T) {
	order := dispatchableOrder("o1")
	repo := testhelpers.NewOrderRepositoryStub(order)
	courier := &courierStub{waybill: "WB123"}
	uc := newShipmentUseCase(repo, courier)

	waybill, err := uc.CreateShipment(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if waybill != "WB123" {
		t.Fatalf("unexpected waybill %q", waybill)
	}
	if order.Waybill != "WB123" {
		t.Fatalf("waybill not persisted, got %q", order.Waybill)
	}
	if order.DeliveryStatus != model.DeliveryStatusShipmentCreated {
		t.Fatalf("expected SHIPMENT_CREATED, got %s", order.DeliveryStatus)
	}
	if courier.creates != 1 {
		t.Fatalf("expected one courier call, got %d", courier.creates)
	}
}

func TestCreateShipmentRejectsSelfDelivery(t *testing.T) {
	order := dispatchableOrder("o1")
	order.Provider = model.ProviderSelf
	repo := testhelpers.NewOrderRepositoryStub(order)
	courier := &courierStub{waybill: "WB123"}
	uc := newShipmentUseCase(repo, courier)

	_, err := uc.CreateShipment(context.Background(), "o1")
	if !errors.Is(err, domainErrors.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if courier.creates != 0 {
		t.Fatal("courier must not be called for self delivery")
	}
}

func TestCreateShipmentExistingWaybillIsNoOp(t *testing.T) {
	order := dispatchableOrder("o1")
	order.Waybill = "WB999"
	order.DeliveryStatus = model.DeliveryStatusShipmentCreated
	repo := testhelpers.NewOrderRepositoryStub(order)
	courier := &courierStub{waybill: "WB123"}
	uc := newShipmentUseCase(repo, courier)

	waybill, err := uc.CreateShipment(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if waybill != "WB999" {
		t.Fatalf("expected existing waybill, got %q", waybill)
	}
	if courier.creates != 0 {
		t.Fatal("second shipment must never be created")
	}
}

func TestCreateShipmentRequiresConfirmedAndPaid(t *testing.T) {
	cases := []struct {
		name    string
		status  model.OrderStatus
		payment model.PaymentStatus
	}{
		{"pending order", model.OrderStatusPending, model.PaymentStatusPaid},
		{"unpaid order", model.OrderStatusConfirmed, model.PaymentStatusPending},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order := dispatchableOrder("o1")
			order.Status = tc.status
			order.PaymentStatus = tc.payment
			repo := testhelpers.NewOrderRepositoryStub(order)
			courier := &courierStub{waybill: "WB123"}
			uc := newShipmentUseCase(repo, courier)

			_, err := uc.CreateShipment(context.Background(), "o1")
			if !errors.Is(err, domainErrors.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if courier.creates != 0 {
				t.Fatal("courier must not be called")
			}
		})
	}
}

func TestCreateShipmentCourierFailure(t *testing.T) {
	order := dispatchableOrder("o1")
	repo := testhelpers.NewOrderRepositoryStub(order)
	courier := &courierStub{createErr: errors.New("courier unavailable")}
	uc := newShipmentUseCase(repo, courier)

	_, err := uc.CreateShipment(context.Background(), "o1")
	if !errors.Is(err, domainErrors.ErrShipmentCreationFailed) {
		t.Fatalf("expected ErrShipmentCreationFailed, got %v", err)
	}
	if order.Waybill != "" {
		t.Fatal("failed dispatch must not assign a waybill")
	}
	if order.Status != model.OrderStatusConfirmed || order.PaymentStatus != model.PaymentStatusPaid {
		t.Fatal("failed dispatch must not mutate order state")
	}
	if courier.creates != 1 {
		t.Fatalf("expected exactly one courier attempt, got %d", courier.creates)
	}
}

func TestTrackWithoutWaybill(t *testing.T) {
	order := dispatchableOrder("o1")
	repo := testhelpers.NewOrderRepositoryStub(order)
	uc := newShipmentUseCase(repo, &courierStub{})

	_, err := uc.Track(context.Background(), "o1")
	if !errors.Is(err, domainErrors.ErrTrackingUnavailable) {
		t.Fatalf("expected ErrTrackingUnavailable, got %v", err)
	}
}

func TestTrackSyncsDeliveryStatus(t *testing.T) {
	order := dispatchableOrder("o1")
	order.Waybill = "WB123"
	order.DeliveryStatus = model.DeliveryStatusShipmentCreated
	repo := testhelpers.NewOrderRepositoryStub(order)
	courier := &courierStub{info: &model.TrackingInfo{Status: model.DeliveryStatusOutForDelivery, Location: "Pune hub"}}
	uc := newShipmentUseCase(repo, courier)

	info, err := uc.Track(context.Background(), "o1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Location != "Pune hub" {
		t.Fatalf("unexpected location %q", info.Location)
	}
	if order.DeliveryStatus != model.DeliveryStatusOutForDelivery {
		t.Fatalf("expected synced delivery status, got %s", order.DeliveryStatus)
	}
	if order.Status != model.OrderStatusShipped {
		t.Fatalf("expected shipped order, got %s", order.Status)
	}
}

func TestTrackUnchangedStatusSkipsUpdate(t *testing.T) {
	order := dispatchableOrder("o1")
	order.Waybill = "WB123"
	order.DeliveryStatus = model.DeliveryStatusOutForDelivery
	order.Status = model.OrderStatusShipped
	repo := testhelpers.NewOrderRepositoryStub(order)
	courier := &courierStub{info: &model.TrackingInfo{Status: model.DeliveryStatusOutForDelivery}}
	uc := newShipmentUseCase(repo, courier)

	if _, err := uc.Track(context.Background(), "o1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.Updates) != 0 {
		t.Fatal("unchanged tracking status must not write")
	}
}
