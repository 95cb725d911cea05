package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
	"github.com/chowdhry/storefront/internal/domain/model"
)

// Client answers serviceability and delivery fee questions for a pincode.
type Client interface {
	Estimate(ctx context.Context, pincode string) (*model.Quote, error)
}

// HTTPClient implements Client against the internal geo distance service.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     *slog.Logger
}

type estimateResponse struct {
	Pincode  string  `json:"pincode"`
	Distance float64 `json:"distance_km"`
	Fee      int64   `json:"fee"`
}

// NewHTTPClient creates a geo service client with default timeout.
func NewHTTPClient(baseURL string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse geo url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("geo url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Estimate returns the distance and delivery fee for the pincode, or
// ErrNotServiceable when the pincode is outside the delivery area.
func (c *HTTPClient) Estimate(ctx context.Context, pincode string) (*model.Quote, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/estimate/", pincode)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

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
		var data estimateResponse
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, err
		}
		return &model.Quote{Distance: data.Distance, Fee: model.Paise(data.Fee)}, nil
	case http.StatusNoContent, http.StatusNotFound:
		return nil, domainErrors.ErrNotServiceable
	default:
		raw, _ := io.ReadAll(resp.Body)
		c.logger.Error("geo estimate request failed",
			slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return nil, fmt.Errorf("geo error: %s", resp.Status)
	}
}
