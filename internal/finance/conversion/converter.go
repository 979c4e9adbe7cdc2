// Package conversion converts amounts between pesos and dollars using the
// "oficial" rate. The live endpoint only serves today's rate, so any other
// date goes through the historical lookup.
package conversion

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/exchange"
)

const officialRate = "oficial"

// RateGateway is what the converter needs from the exchange client.
type RateGateway interface {
	GetCurrentQuote(ctx context.Context, currencyType string) (exchange.Quote, error)
	GetHistoricalQuote(ctx context.Context, currencyType string, date time.Time) (exchange.Quote, error)
}

type Converter struct {
	gateway RateGateway
	now     func() time.Time
}

func New(gateway RateGateway) *Converter {
	return &Converter{gateway: gateway, now: time.Now}
}

// PesosToDollars divides by the selling price, rounded to 4 decimal places
// with banker's rounding.
func (c *Converter) PesosToDollars(ctx context.Context, amount decimal.Decimal, date time.Time) (decimal.Decimal, error) {
	quote, err := c.quoteFor(ctx, date)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if !quote.SellingPrice.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("quote selling price must be positive, got %s", quote.SellingPrice)
	}
	return amount.Div(quote.SellingPrice).RoundBank(4), nil
}

// DollarsToPesos multiplies by the selling price. Rounded to 4 decimal
// places with banker's rounding, same policy as the division path.
func (c *Converter) DollarsToPesos(ctx context.Context, amount decimal.Decimal, date time.Time) (decimal.Decimal, error) {
	quote, err := c.quoteFor(ctx, date)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return amount.Mul(quote.SellingPrice).RoundBank(4), nil
}

// quoteFor selects the rate source: the live endpoint for today's calendar
// date, the historical endpoint for everything else. Exactly one gateway
// call per conversion.
func (c *Converter) quoteFor(ctx context.Context, date time.Time) (exchange.Quote, error) {
	if sameCalendarDay(c.now(), date) {
		return c.gateway.GetCurrentQuote(ctx, officialRate)
	}
	return c.gateway.GetHistoricalQuote(ctx, officialRate, date)
}

func sameCalendarDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
