package geo

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainErrors "github.com/chowdhry/storefront/internal/domain/errors"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func TestNewHTTPClientValidatesURL(t *testing.T) {
	if _, err := NewHTTPClient("://bad-url", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewHTTPClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestEstimateReturnsQuote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/560034") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		json.NewEncoder(w).Encode(estimateResponse{Pincode: "560034", Distance: 12.5, Fee: 5000})
	}))
	defer srv.Close()

	client, err := NewHTTPClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	quote, err := client.Estimate(context.Background(), "560034")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if quote.Distance != 12.5 || quote.Fee != 5000 {
		t.Fatalf("unexpected quote: %+v", quote)
	}
}

func TestEstimateNotServiceable(t *testing.T) {
	for _, status := range []int{http.StatusNoContent, http.StatusNotFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		client, _ := NewHTTPClient(srv.URL, testLogger())
		_, err := client.Estimate(context.Background(), "999999")
		srv.Close()
		if !errors.Is(err, domainErrors.ErrNotServiceable) {
			t.Fatalf("status %d: expected ErrNotServiceable, got %v", status, err)
		}
	}
}

func TestEstimateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, _ := NewHTTPClient(srv.URL, testLogger())
	if _, err := client.Estimate(context.Background(), "560034"); err == nil {
		t.Fatal("expected server error")
	}
}
