package domain

import (
	"context"

	"github.com/spendwise/backend/internal/finance/query"
)

// Repositories take an already-built predicate for list queries; the
// services own filter translation. FindByIDAndUser and Delete return
// errors.ErrRecordNotFound for records missing or owned by someone else.

type ExpenseRepository interface {
	Save(ctx context.Context, expense *Expense) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*Expense, error)
	Delete(ctx context.Context, id int64, userID string) error
	FindAll(ctx context.Context, pred *query.Predicate, page PageRequest) (Page[Expense], error)
}

type IncomeRepository interface {
	Save(ctx context.Context, income *Income) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*Income, error)
	Delete(ctx context.Context, id int64, userID string) error
	FindAll(ctx context.Context, pred *query.Predicate, page PageRequest) (Page[Income], error)
}

type SavingRepository interface {
	Save(ctx context.Context, saving *Saving) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*Saving, error)
	Delete(ctx context.Context, id int64, userID string) error
	FindAll(ctx context.Context, pred *query.Predicate, page PageRequest) (Page[Saving], error)
}

type DebtRepository interface {
	Save(ctx context.Context, debt *Debt) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*Debt, error)
	Delete(ctx context.Context, id int64, userID string) error
	FindAll(ctx context.Context, pred *query.Predicate, page PageRequest) (Page[Debt], error)
}

type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*Category, error)
	Delete(ctx context.Context, id int64, userID string) error
	SetEnabled(ctx context.Context, id int64, userID string, enabled bool) error
	FindAll(ctx context.Context, pred *query.Predicate, page PageRequest) (Page[Category], error)
}

type CurrencyRepository interface {
	Save(ctx context.Context, currency *Currency) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*Currency, error)
	Delete(ctx context.Context, id int64, userID string) error
	SetEnabled(ctx context.Context, id int64, userID string, enabled bool) error
	FindAll(ctx context.Context, pred *query.Predicate, page PageRequest) (Page[Currency], error)
}

type PaymentMethodRepository interface {
	Save(ctx context.Context, method *PaymentMethod) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*PaymentMethod, error)
	Delete(ctx context.Context, id int64, userID string) error
	SetEnabled(ctx context.Context, id int64, userID string, enabled bool) error
	FindAll(ctx context.Context, pred *query.Predicate, page PageRequest) (Page[PaymentMethod], error)
}

type IssuingEntityRepository interface {
	Save(ctx context.Context, entity *IssuingEntity) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*IssuingEntity, error)
	Delete(ctx context.Context, id int64, userID string) error
	SetEnabled(ctx context.Context, id int64, userID string, enabled bool) error
	FindAll(ctx context.Context, pred *query.Predicate, page PageRequest) (Page[IssuingEntity], error)
}

type SavingsWalletRepository interface {
	Save(ctx context.Context, wallet *SavingsWallet) error
	FindByIDAndUser(ctx context.Context, id int64, userID string) (*SavingsWallet, error)
	Delete(ctx context.Context, id int64, userID string) error
	SetEnabled(ctx context.Context, id int64, userID string, enabled bool) error
	FindAll(ctx context.Context, pred *query.Predicate, page PageRequest) (Page[SavingsWallet], error)
}
