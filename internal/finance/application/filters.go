package application

import (
	"github.com/spendwise/backend/internal/finance/domain"
	"github.com/spendwise/backend/internal/finance/query"
)

// Predicate builders. Every builder seeds the ownership condition and adds
// one condition per present filter field; absent fields contribute nothing.
// Invalid enum strings are skipped, never rejected.

func expensePredicate(filter domain.ExpenseFilter, userID string) *query.Predicate {
	p := query.OwnedBy(userID)
	if filter.Description != nil && *filter.Description != "" {
		p.ContainsFold("description", *filter.Description)
	}
	if filter.MinAmountInPesos != nil {
		p.Gte("amount_ars", *filter.MinAmountInPesos)
	}
	if filter.MaxAmountInPesos != nil {
		p.Lte("amount_ars", *filter.MaxAmountInPesos)
	}
	if filter.MinAmountInDollars != nil {
		p.Gte("amount_usd", *filter.MinAmountInDollars)
	}
	if filter.MaxAmountInDollars != nil {
		p.Lte("amount_usd", *filter.MaxAmountInDollars)
	}
	if filter.StartDate != nil {
		p.Gte("date", *filter.StartDate)
	}
	if filter.EndDate != nil {
		p.Lte("date", *filter.EndDate)
	}
	if filter.CategoryID != nil {
		p.Eq("category_id", *filter.CategoryID)
	}
	if filter.PaymentMethodID != nil {
		p.Eq("payment_method_id", *filter.PaymentMethodID)
	}
	if filter.MicroExpense != nil {
		p.Eq("micro_expense", *filter.MicroExpense)
	}
	return p
}

func incomePredicate(filter domain.IncomeFilter, userID string) *query.Predicate {
	p := query.OwnedBy(userID)
	if filter.Description != nil && *filter.Description != "" {
		p.ContainsFold("description", *filter.Description)
	}
	if filter.MinAmountInPesos != nil {
		p.Gte("amount_ars", *filter.MinAmountInPesos)
	}
	if filter.MaxAmountInPesos != nil {
		p.Lte("amount_ars", *filter.MaxAmountInPesos)
	}
	if filter.MinAmountInDollars != nil {
		p.Gte("amount_usd", *filter.MinAmountInDollars)
	}
	if filter.MaxAmountInDollars != nil {
		p.Lte("amount_usd", *filter.MaxAmountInDollars)
	}
	if filter.StartDate != nil {
		p.Gte("date", *filter.StartDate)
	}
	if filter.EndDate != nil {
		p.Lte("date", *filter.EndDate)
	}
	if filter.SourceID != nil {
		p.Eq("source_id", *filter.SourceID)
	}
	return p
}

func savingPredicate(filter domain.SavingFilter, userID string) *query.Predicate {
	p := query.OwnedBy(userID)
	if filter.Description != nil && *filter.Description != "" {
		p.ContainsFold("description", *filter.Description)
	}
	if filter.MinAmountInPesos != nil {
		p.Gte("amount_ars", *filter.MinAmountInPesos)
	}
	if filter.MaxAmountInPesos != nil {
		p.Lte("amount_ars", *filter.MaxAmountInPesos)
	}
	if filter.MinAmountInDollars != nil {
		p.Gte("amount_usd", *filter.MinAmountInDollars)
	}
	if filter.MaxAmountInDollars != nil {
		p.Lte("amount_usd", *filter.MaxAmountInDollars)
	}
	if filter.StartDate != nil {
		p.Gte("date", *filter.StartDate)
	}
	if filter.EndDate != nil {
		p.Lte("date", *filter.EndDate)
	}
	if filter.CurrencyID != nil {
		p.Eq("currency_id", *filter.CurrencyID)
	}
	if filter.SavingsWalletID != nil {
		p.Eq("savings_wallet_id", *filter.SavingsWalletID)
	}
	return p
}

func debtPredicate(filter domain.DebtFilter, userID string) *query.Predicate {
	p := query.OwnedBy(userID)
	if filter.Description != nil && *filter.Description != "" {
		p.ContainsFold("description", *filter.Description)
	}
	if filter.Cancelled != nil {
		p.Eq("cancelled", *filter.Cancelled)
	}
	if filter.Personal != nil {
		p.Eq("personal", *filter.Personal)
	}
	if filter.StartDate != nil {
		p.Gte("date", *filter.StartDate)
	}
	if filter.EndDate != nil {
		p.Lte("date", *filter.EndDate)
	}
	if filter.MinAmountInPesos != nil {
		p.Gte("amount_ars", *filter.MinAmountInPesos)
	}
	if filter.MaxAmountInPesos != nil {
		p.Lte("amount_ars", *filter.MaxAmountInPesos)
	}
	if filter.PaymentMethodID != nil {
		p.Eq("payment_method_id", *filter.PaymentMethodID)
	}
	if filter.IssuingEntityID != nil {
		p.Eq("issuing_entity_id", *filter.IssuingEntityID)
	}
	return p
}

func categoryPredicate(filter domain.CategoryFilter, userID string) *query.Predicate {
	p := query.OwnedBy(userID)
	if filter.Name != nil && *filter.Name != "" {
		p.ContainsFold("name", *filter.Name)
	}
	if filter.Enabled != nil {
		p.Eq("enabled", *filter.Enabled)
	}
	if filter.Type != nil {
		if categoryType, ok := domain.ParseCategoryType(*filter.Type); ok {
			p.Eq("type", string(categoryType))
		}
	}
	return p
}

func currencyPredicate(filter domain.CurrencyFilter, userID string) *query.Predicate {
	p := query.OwnedBy(userID)
	if filter.Name != nil && *filter.Name != "" {
		p.ContainsFold("name", *filter.Name)
	}
	if filter.Symbol != nil && *filter.Symbol != "" {
		p.Eq("symbol", *filter.Symbol)
	}
	if filter.Enabled != nil {
		p.Eq("enabled", *filter.Enabled)
	}
	return p
}

func paymentMethodPredicate(filter domain.PaymentMethodFilter, userID string) *query.Predicate {
	p := query.OwnedBy(userID)
	if filter.Name != nil && *filter.Name != "" {
		p.ContainsFold("name", *filter.Name)
	}
	if filter.Enabled != nil {
		p.Eq("enabled", *filter.Enabled)
	}
	if filter.Type != nil {
		if methodType, ok := domain.ParsePaymentMethodType(*filter.Type); ok {
			p.Eq("payment_method_type", string(methodType))
		}
	}
	if filter.IssuingEntityID != nil {
		p.Eq("issuing_entity_id", *filter.IssuingEntityID)
	}
	return p
}

func issuingEntityPredicate(filter domain.IssuingEntityFilter, userID string) *query.Predicate {
	p := query.OwnedBy(userID)
	if filter.Description != nil && *filter.Description != "" {
		p.ContainsFold("description", *filter.Description)
	}
	if filter.Enabled != nil {
		p.Eq("enabled", *filter.Enabled)
	}
	return p
}

func savingsWalletPredicate(filter domain.SavingsWalletFilter, userID string) *query.Predicate {
	p := query.OwnedBy(userID)
	if filter.Name != nil && *filter.Name != "" {
		p.ContainsFold("name", *filter.Name)
	}
	if filter.Enabled != nil {
		p.Eq("enabled", *filter.Enabled)
	}
	if filter.Type != nil {
		if walletType, ok := domain.ParseSavingsWalletType(*filter.Type); ok {
			p.Eq("savings_wallet_type", string(walletType))
		}
	}
	return p
}
