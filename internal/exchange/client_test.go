package exchange

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetCurrentQuote_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/dolares/oficial", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"moneda": "USD",
			"casa": "oficial",
			"nombre": "Oficial",
			"compra": 1450.5,
			"venta": 1500.5,
			"fechaActualizacion": "2024-06-15T10:00:00.000Z"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)
	quote, err := client.GetCurrentQuote(context.Background(), "oficial")

	assert.NoError(t, err)
	assert.Equal(t, "USD", quote.Currency)
	assert.Equal(t, "oficial", quote.Kind)
	assert.Equal(t, "Oficial", quote.Name)
	assert.Equal(t, "1450.5", quote.BuyingPrice.String())
	assert.Equal(t, "1500.5", quote.SellingPrice.String())
	assert.Equal(t, "2024-06-15T10:00:00.000Z", quote.UpdatedAt)
}

func TestGetCurrentQuote_UnknownCurrencyType(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)
	_, err := client.GetCurrentQuote(context.Background(), "nonexistent")

	assert.True(t, errors.Is(err, ErrUnknownCurrencyType))
}

func TestGetCurrentQuote_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)
	_, err := client.GetCurrentQuote(context.Background(), "oficial")

	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
}

func TestGetCurrentQuote_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, server.URL)
	_, err := client.GetCurrentQuote(context.Background(), "oficial")

	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
}

func TestGetCurrentQuote_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"compra": "not a number`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)
	_, err := client.GetCurrentQuote(context.Background(), "oficial")

	assert.True(t, errors.Is(err, ErrUpstreamUnavailable))
}

func TestGetHistoricalQuote_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/cotizaciones/dolares/oficial/2023-12-01", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"casa": "oficial",
			"compra": 360.5,
			"venta": 377.0,
			"fecha": "2023-12-01"
		}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)
	date := time.Date(2023, time.December, 1, 0, 0, 0, 0, time.UTC)
	quote, err := client.GetHistoricalQuote(context.Background(), "oficial", date)

	assert.NoError(t, err)
	assert.Equal(t, "oficial", quote.Kind)
	assert.Equal(t, "360.5", quote.BuyingPrice.String())
	assert.Equal(t, "377", quote.SellingPrice.String())
	assert.Equal(t, "2023-12-01", quote.UpdatedAt)
}

func TestGetHistoricalQuote_NoQuoteForDate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL, server.URL)
	date := time.Date(2002, time.January, 1, 0, 0, 0, 0, time.UTC)
	_, err := client.GetHistoricalQuote(context.Background(), "oficial", date)

	assert.True(t, errors.Is(err, ErrNoQuoteForDate))
}
