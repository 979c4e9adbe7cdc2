package application

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/spendwise/backend/internal/finance/domain"
)

// Converter is the conversion engine as seen by the write path.
type Converter interface {
	PesosToDollars(ctx context.Context, amount decimal.Decimal, date time.Time) (decimal.Decimal, error)
	DollarsToPesos(ctx context.Context, amount decimal.Decimal, date time.Time) (decimal.Decimal, error)
}

// isPesosCurrency infers the conversion direction from the currency's
// display name: any peso/ARS/argentino token means the input amount is
// denominated in pesos.
func isPesosCurrency(currency *domain.Currency) bool {
	if currency == nil || currency.Name == "" {
		return false
	}
	name := strings.ToLower(currency.Name)
	return strings.Contains(name, "peso") || strings.Contains(name, "ars") || strings.Contains(name, "argentino")
}

// normalizedAmounts holds both sides of a monetary record after exactly
// one conversion call.
type normalizedAmounts struct {
	InPesos   decimal.Decimal
	InDollars decimal.Decimal
}

// normalizeAmounts fills in the derived side of the record. Any conversion
// failure aborts the write; a partially-normalized record is never returned.
func normalizeAmounts(ctx context.Context, converter Converter, currency *domain.Currency, input decimal.Decimal, date time.Time) (normalizedAmounts, error) {
	if isPesosCurrency(currency) {
		dollars, err := converter.PesosToDollars(ctx, input, date)
		if err != nil {
			return normalizedAmounts{}, err
		}
		return normalizedAmounts{InPesos: input, InDollars: dollars}, nil
	}
	pesos, err := converter.DollarsToPesos(ctx, input, date)
	if err != nil {
		return normalizedAmounts{}, err
	}
	return normalizedAmounts{InPesos: pesos, InDollars: input}, nil
}

// normalizeFromPesos is the fixed-direction path used by incomes and by
// expenses recorded without a currency.
func normalizeFromPesos(ctx context.Context, converter Converter, pesos decimal.Decimal, date time.Time) (normalizedAmounts, error) {
	dollars, err := converter.PesosToDollars(ctx, pesos, date)
	if err != nil {
		return normalizedAmounts{}, err
	}
	return normalizedAmounts{InPesos: pesos, InDollars: dollars}, nil
}
