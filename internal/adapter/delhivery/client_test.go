package delhivery

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/chowdhry/storefront/internal/domain/model"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func testOrder() *model.Order {
	return &model.Order{
		ID:              "ord_1",
		CustomerName:    "Asha Rao",
		CustomerPhone:   "9876543210",
		ShippingPincode: "560034",
		TotalWeight:     1.5,
		TotalAmount:     110000,
		Items:           []model.OrderItem{{ItemID: "sku-1", Name: "Ghee", Quantity: 2}},
	}
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", "t", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", "t", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestCreateShipmentSendsPayloadAndToken(t *testing.T) {
	var got shipmentRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Token api-token" {
			t.Errorf("unexpected auth header %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(shipmentResponse{Success: true, Waybill: "WB42"})
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, "api-token", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	waybill, err := client.CreateShipment(context.Background(), testOrder())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if waybill != "WB42" {
		t.Fatalf("unexpected waybill %q", waybill)
	}
	if got.Order != "ord_1" || got.Pincode != "560034" || got.Weight != 1.5 {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if len(got.Products) != 1 || got.Products[0].SKU != "sku-1" || got.Products[0].Quantity != 2 {
		t.Fatalf("unexpected products: %+v", got.Products)
	}
}

func TestCreateShipmentRejectedByCourier(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(shipmentResponse{Success: false, Remarks: "pincode not serviceable"})
	}))
	defer srv.Close()

	client, _ := NewHTTPClient(srv.URL, "t", testLogger())
	if _, err := client.CreateShipment(context.Background(), testOrder()); err == nil {
		t.Fatal("expected rejection error")
	}
}

func TestCreateShipmentRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Retry-After", "7")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, _ := NewHTTPClient(srv.URL, "t", testLogger())
	_, err := client.CreateShipment(context.Background(), testOrder())
	var tm TooManyRequestsError
	if !errors.As(err, &tm) {
		t.Fatalf("expected TooManyRequestsError, got %v", err)
	}
	if tm.RetryAfter != 7*time.Second {
		t.Fatalf("expected retry after 7s, got %v", tm.RetryAfter)
	}
}

func TestTrackParsesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("waybill"); got != "WB42" {
			t.Errorf("unexpected waybill param %q", got)
		}
		json.NewEncoder(w).Encode(trackingResponse{Waybill: "WB42", Status: "In_Transit", Location: "Pune hub"})
	}))
	defer srv.Close()

	client, _ := NewHTTPClient(srv.URL, "t", testLogger())
	info, err := client.Track(context.Background(), "WB42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Status != model.DeliveryStatusOutForDelivery {
		t.Fatalf("expected legacy status to normalize, got %s", info.Status)
	}
	if info.Location != "Pune hub" {
		t.Fatalf("unexpected location %q", info.Location)
	}
}

func TestTrackUnknownWaybill(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client, _ := NewHTTPClient(srv.URL, "t", testLogger())
	if _, err := client.Track(context.Background(), "missing"); !errors.Is(err, ErrWaybillNotFound) {
		t.Fatalf("expected ErrWaybillNotFound, got %v", err)
	}
}

func TestTrackUnknownStatusValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(trackingResponse{Waybill: "WB42", Status: "TELEPORTED"})
	}))
	defer srv.Close()

	client, _ := NewHTTPClient(srv.URL, "t", testLogger())
	if _, err := client.Track(context.Background(), "WB42"); err == nil {
		t.Fatal("expected error for unknown status")
	}
}

func TestParseRetryAfter(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{name: "empty", header: "", want: 5 * time.Second},
		{name: "seconds", header: "7", want: 7 * time.Second},
		{name: "fallback", header: "bad", want: 5 * time.Second},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := parseRetryAfter(tc.header); got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
