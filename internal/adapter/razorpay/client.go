package razorpay

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/chowdhry/storefront/internal/domain/model"
)

// Client exposes the payment gateway operations the checkout and the
// callback reconciliation need.
type Client interface {
	CreateOrder(ctx context.Context, amount model.Paise, currency, receipt string) (*model.GatewayOrder, error)
	VerifySignature(gatewayOrderID, paymentID, signature string) bool
}

// HTTPClient implements Client against the Razorpay Orders API.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

type orderRequest struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
}

type orderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

const defaultBaseURL = "https://api.razorpay.com"

// NewHTTPClient creates a gateway client. An empty baseURL selects the
// production endpoint; tests point it at a local server.
func NewHTTPClient(baseURL, keyID, keySecret string, logger *slog.Logger) (*HTTPClient, error) {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// CreateOrder registers an order on the gateway side so the storefront
// widget can collect payment against it. Amount is in minor units.
func (c *HTTPClient) CreateOrder(ctx context.Context, amount model.Paise, currency, receipt string) (*model.GatewayOrder, error) {
	body, err := json.Marshal(orderRequest{Amount: int64(amount), Currency: currency, Receipt: receipt})
	if err != nil {
		return nil, err
	}

	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/v1/orders")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.SetBasicAuth(c.keyID, c.keySecret)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("gateway order creation failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("gateway error: %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var data orderResponse
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, err
	}
	return &model.GatewayOrder{ID: data.ID, Amount: model.Paise(data.Amount), Currency: data.Currency}, nil
}

// VerifySignature checks the HMAC-SHA256 signature the gateway attaches
// to success callbacks. The signed payload is "<orderID>|<paymentID>"
// keyed with the API secret.
func (c *HTTPClient) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(c.keySecret))
	mac.Write([]byte(gatewayOrderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
