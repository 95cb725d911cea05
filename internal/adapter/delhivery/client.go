package delhivery

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// ErrWaybillNotFound indicates the courier doesn't know the waybill.
var ErrWaybillNotFound = errors.New("waybill not found")

// TooManyRequestsError represents rate limiting signal from the courier API.
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}

// Client exposes courier shipment operations.
type Client interface {
	CreateShipment(ctx context.Context, order *model.Order) (string, error)
	Track(ctx context.Context, waybill string) (*model.TrackingInfo, error)
}

// HTTPClient implements Client via the Delhivery HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	token      string
	httpClient *http.Client
	logger     *slog.Logger
}

type shipmentRequest struct {
	Order    string          `json:"order"`
	Name     string          `json:"name"`
	Phone    string          `json:"phone"`
	Pincode  string          `json:"pin"`
	Weight   float64         `json:"weight"`
	Amount   int64           `json:"total_amount"`
	Products []packedProduct `json:"products"`
}

type packedProduct struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type shipmentResponse struct {
	Success bool   `json:"success"`
	Waybill string `json:"waybill"`
	Remarks string `json:"remarks,omitempty"`
}

type trackingResponse struct {
	Waybill  string `json:"waybill"`
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
}

// NewHTTPClient creates a courier client with default timeout.
func NewHTTPClient(baseURL, token string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse courier url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("courier url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		token:   token,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateShipment registers the parcel with the courier and returns the
// assigned waybill. The courier side is not idempotent, so callers must
// not retry blindly.
func (c *HTTPClient) CreateShipment(ctx context.Context, order *model.Order) (string, error) {
	payload := shipmentRequest{
		Order:   order.ID,
		Name:    order.CustomerName,
		Phone:   order.CustomerPhone,
		Weight:  order.TotalWeight,
		Amount:  int64(order.TotalAmount),
		Pincode: order.ShippingPincode,
	}
	for _, item := range order.Items {
		payload.Products = append(payload.Products, packedProduct{
			SKU:      item.ItemID,
			Name:     item.Name,
			Quantity: item.Quantity,
		})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/cmu/create.json")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return "", err
		}
		var data shipmentResponse
		if err := json.Unmarshal(raw, &data); err != nil {
			return "", err
		}
		if !data.Success || data.Waybill == "" {
			return "", fmt.Errorf("courier rejected shipment: %s", data.Remarks)
		}
		return data.Waybill, nil
	case http.StatusTooManyRequests:
		return "", TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("courier shipment request failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return "", fmt.Errorf("courier error: %s", resp.Status)
	}
}

// Track queries the courier for the shipment's current status.
func (c *HTTPClient) Track(ctx context.Context, waybill string) (*model.TrackingInfo, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/v1/packages/json")
	q := endpoint.Query()
	q.Set("waybill", waybill)
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Token "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, err
		}
		var data trackingResponse
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
		status, ok := model.ParseDeliveryStatus(data.Status)
		if !ok {
			return nil, fmt.Errorf("unknown courier status %q", data.Status)
		}
		return &model.TrackingInfo{Status: status, Location: data.Location}, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, ErrWaybillNotFound
	case http.StatusTooManyRequests:
		return nil, TooManyRequestsError{RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"))}
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("courier tracking request failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("courier error: %s", resp.Status)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return 5 * time.Second
	}
	if seconds, err := strconv.Atoi(header); err == nil {
		return time.Duration(seconds) * time.Second
	}
	if t, err := http.ParseTime(header); err == nil {
		return time.Until(t)
	}
	return 5 * time.Second
}
