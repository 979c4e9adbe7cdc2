// Package exchange is the client pair for the DolarAPI quotation services:
// one endpoint serves only the live rate, historical rates live behind a
// separate lookup by date. Every call is a single outbound request; there
// is no retry and no caching.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrUpstreamUnavailable = errors.New("exchange rate service unavailable")
	ErrUnknownCurrencyType = errors.New("unknown currency type")
	ErrNoQuoteForDate      = errors.New("no quote for date")
)

// Quote is a point-in-time buy/sell price pair for a named currency type,
// e.g. "oficial". Not persisted, fetched on demand.
type Quote struct {
	Currency     string
	Kind         string
	Name         string
	BuyingPrice  decimal.Decimal
	SellingPrice decimal.Decimal
	UpdatedAt    string
}

type Client struct {
	baseURL           string
	historicalBaseURL string
	httpClient        *http.Client
}

func NewClient(baseURL, historicalBaseURL string) *Client {
	return &Client{
		baseURL:           baseURL,
		historicalBaseURL: historicalBaseURL,
		httpClient:        &http.Client{Timeout: 10 * time.Second},
	}
}

type currentQuoteDTO struct {
	Currency     string          `json:"moneda"`
	Kind         string          `json:"casa"`
	Name         string          `json:"nombre"`
	BuyingPrice  decimal.Decimal `json:"compra"`
	SellingPrice decimal.Decimal `json:"venta"`
	UpdatedAt    string          `json:"fechaActualizacion"`
}

type historicalQuoteDTO struct {
	Kind         string          `json:"casa"`
	BuyingPrice  decimal.Decimal `json:"compra"`
	SellingPrice decimal.Decimal `json:"venta"`
	UpdatedAt    string          `json:"fecha"`
}

// GetCurrentQuote fetches today's quote for the named currency type.
func (c *Client) GetCurrentQuote(ctx context.Context, currencyType string) (Quote, error) {
	endpoint := fmt.Sprintf("%s/v1/dolares/%s", c.baseURL, url.PathEscape(currencyType))

	var dto currentQuoteDTO
	if err := c.getJSON(ctx, endpoint, ErrUnknownCurrencyType, &dto); err != nil {
		return Quote{}, err
	}
	return Quote{
		Currency:     dto.Currency,
		Kind:         dto.Kind,
		Name:         dto.Name,
		BuyingPrice:  dto.BuyingPrice,
		SellingPrice: dto.SellingPrice,
		UpdatedAt:    dto.UpdatedAt,
	}, nil
}

// GetHistoricalQuote fetches the quote for a specific past calendar date.
// A 404 on this endpoint means upstream has no data for that date.
func (c *Client) GetHistoricalQuote(ctx context.Context, currencyType string, date time.Time) (Quote, error) {
	endpoint := fmt.Sprintf("%s/v1/cotizaciones/dolares/%s/%s",
		c.historicalBaseURL, url.PathEscape(currencyType), date.Format("2006-01-02"))

	var dto historicalQuoteDTO
	if err := c.getJSON(ctx, endpoint, ErrNoQuoteForDate, &dto); err != nil {
		return Quote{}, err
	}
	return Quote{
		Kind:         dto.Kind,
		BuyingPrice:  dto.BuyingPrice,
		SellingPrice: dto.SellingPrice,
		UpdatedAt:    dto.UpdatedAt,
	}, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, notFoundErr error, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return notFoundErr
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: status %s", ErrUpstreamUnavailable, resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", ErrUpstreamUnavailable, err)
	}
	return nil
}
