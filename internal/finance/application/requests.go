package application

import (
	"time"

	"github.com/shopspring/decimal"
)

// Write commands, already parsed by the HTTP layer. InputAmount is the
// amount as the user entered it, denominated by the referenced currency;
// the missing side is always derived, never accepted from the client.

type CreateExpenseRequest struct {
	Description     string
	InputAmount     *decimal.Decimal
	AmountInPesos   *decimal.Decimal
	Date            time.Time
	CategoryID      *int64
	PaymentMethodID *int64
	CurrencyID      *int64
	MicroExpense    bool
}

type CreateIncomeRequest struct {
	Description   string
	AmountInPesos decimal.Decimal
	SourceID      *int64
	Date          time.Time
}

type CreateSavingRequest struct {
	Description     string
	InputAmount     decimal.Decimal
	CurrencyID      int64
	SavingsWalletID *int64
	Date            time.Time
}

type CreateDebtRequest struct {
	Description     string
	AmountInPesos   decimal.Decimal
	AmountInDollars decimal.Decimal
	Date            time.Time
	DueDate         *time.Time
	Personal        bool
	Creditor        string
	IssuingEntityID *int64
	PaymentMethodID *int64
}

type CategoryRequest struct {
	Name string
	Type string
}

type CurrencyRequest struct {
	Name   string
	Symbol string
}

type PaymentMethodRequest struct {
	Name            string
	Type            string
	Brand           string
	Icon            string
	IssuingEntityID *int64
}

type IssuingEntityRequest struct {
	Description string
}

type SavingsWalletRequest struct {
	Name string
	Type string
	Icon string
}
