package domain

import (
	"time"

	"github.com/shopspring/decimal"

	financeErrors "github.com/spendwise/backend/internal/finance/errors"
)

// Expense is recorded in both currencies. One amount is the user's input,
// the counterpart is always derived from a fetched quote at write time.
type Expense struct {
	ID              int64           `json:"id"`
	UserID          string          `json:"-"`
	Description     string          `json:"description"`
	AmountInPesos   decimal.Decimal `json:"amount_in_pesos"`
	AmountInDollars decimal.Decimal `json:"amount_in_dollars"`
	Date            time.Time       `json:"date"`
	CategoryID      *int64          `json:"category_id"`
	PaymentMethodID *int64          `json:"payment_method_id"`
	CurrencyID      *int64          `json:"currency_id"`
	MicroExpense    bool            `json:"micro_expense"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (e *Expense) Validate() error {
	if len(e.Description) > 200 {
		return financeErrors.NewValidationError("Description must be of length less than 200")
	}
	if e.Date.IsZero() {
		return financeErrors.NewValidationError("Date is required")
	}
	return nil
}

// Income is always entered in pesos; the dollar amount is derived.
type Income struct {
	ID              int64           `json:"id"`
	UserID          string          `json:"-"`
	Description     string          `json:"description"`
	AmountInPesos   decimal.Decimal `json:"amount_in_pesos"`
	AmountInDollars decimal.Decimal `json:"amount_in_dollars"`
	SourceID        *int64          `json:"source_id"`
	Date            time.Time       `json:"date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (i *Income) Validate() error {
	if len(i.Description) > 200 {
		return financeErrors.NewValidationError("Description must be of length less than 200")
	}
	if i.Date.IsZero() {
		return financeErrors.NewValidationError("Date is required")
	}
	return nil
}

type Saving struct {
	ID              int64           `json:"id"`
	UserID          string          `json:"-"`
	Description     string          `json:"description"`
	CurrencyID      int64           `json:"currency_id"`
	SavingsWalletID *int64          `json:"savings_wallet_id"`
	AmountInPesos   decimal.Decimal `json:"amount_in_pesos"`
	AmountInDollars decimal.Decimal `json:"amount_in_dollars"`
	Date            time.Time       `json:"date"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

func (s *Saving) Validate() error {
	if s.CurrencyID == 0 {
		return financeErrors.NewValidationError("Currency is required")
	}
	if s.Date.IsZero() {
		return financeErrors.NewValidationError("Date is required")
	}
	return nil
}

// Debt amounts are entered directly in both currencies, no normalization.
type Debt struct {
	ID              int64           `json:"id"`
	UserID          string          `json:"-"`
	Description     string          `json:"description"`
	AmountInPesos   decimal.Decimal `json:"amount_in_pesos"`
	AmountInDollars decimal.Decimal `json:"amount_in_dollars"`
	Date            time.Time       `json:"date"`
	DueDate         *time.Time      `json:"due_date"`
	Cancelled       bool            `json:"cancelled"`
	Personal        bool            `json:"personal"`
	Creditor        string          `json:"creditor"`
	IssuingEntityID *int64          `json:"issuing_entity_id"`
	PaymentMethodID *int64          `json:"payment_method_id"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

type Category struct {
	ID        int64        `json:"id"`
	UserID    string       `json:"-"`
	Name      string       `json:"name"`
	Type      CategoryType `json:"type"`
	Enabled   bool         `json:"enabled"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

type Currency struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	Symbol    string    `json:"symbol"`
	Enabled   bool      `json:"enabled"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PaymentMethod struct {
	ID              int64             `json:"id"`
	UserID          string            `json:"-"`
	Name            string            `json:"name"`
	Type            PaymentMethodType `json:"type"`
	Brand           string            `json:"brand"`
	Icon            string            `json:"icon"`
	IssuingEntityID *int64            `json:"issuing_entity_id"`
	Enabled         bool              `json:"enabled"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type IssuingEntity struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"-"`
	Description string    `json:"description"`
	Enabled     bool      `json:"enabled"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type SavingsWallet struct {
	ID        int64             `json:"id"`
	UserID    string            `json:"-"`
	Name      string            `json:"name"`
	Type      SavingsWalletType `json:"type"`
	Icon      string            `json:"icon"`
	Enabled   bool              `json:"enabled"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}
