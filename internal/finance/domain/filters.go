package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Filter structs mirror the list query parameters. A nil field means "no
// constraint on this dimension". Enum-valued fields are raw strings so
// unrecognized values can be dropped instead of failing the request.

type ExpenseFilter struct {
	Description        *string
	MinAmountInPesos   *decimal.Decimal
	MaxAmountInPesos   *decimal.Decimal
	MinAmountInDollars *decimal.Decimal
	MaxAmountInDollars *decimal.Decimal
	StartDate          *time.Time
	EndDate            *time.Time
	CategoryID         *int64
	PaymentMethodID    *int64
	MicroExpense       *bool
}

type IncomeFilter struct {
	Description        *string
	MinAmountInPesos   *decimal.Decimal
	MaxAmountInPesos   *decimal.Decimal
	MinAmountInDollars *decimal.Decimal
	MaxAmountInDollars *decimal.Decimal
	StartDate          *time.Time
	EndDate            *time.Time
	SourceID           *int64
}

type SavingFilter struct {
	Description        *string
	MinAmountInPesos   *decimal.Decimal
	MaxAmountInPesos   *decimal.Decimal
	MinAmountInDollars *decimal.Decimal
	MaxAmountInDollars *decimal.Decimal
	StartDate          *time.Time
	EndDate            *time.Time
	CurrencyID         *int64
	SavingsWalletID    *int64
}

type DebtFilter struct {
	Description      *string
	Cancelled        *bool
	Personal         *bool
	StartDate        *time.Time
	EndDate          *time.Time
	MinAmountInPesos *decimal.Decimal
	MaxAmountInPesos *decimal.Decimal
	PaymentMethodID  *int64
	IssuingEntityID  *int64
}

type CategoryFilter struct {
	Name    *string
	Enabled *bool
	Type    *string
}

type CurrencyFilter struct {
	Name    *string
	Symbol  *string
	Enabled *bool
}

type PaymentMethodFilter struct {
	Name            *string
	Enabled         *bool
	Type            *string
	IssuingEntityID *int64
}

type IssuingEntityFilter struct {
	Description *string
	Enabled     *bool
}

type SavingsWalletFilter struct {
	Name    *string
	Enabled *bool
	Type    *string
}
