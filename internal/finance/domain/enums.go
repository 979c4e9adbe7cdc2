package domain

import "strings"

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "INCOME"
	CategoryTypeExpense CategoryType = "EXPENSE"
)

// ParseCategoryType is lenient on case. The second return is false for
// unknown values so filter conditions can be silently omitted.
func ParseCategoryType(s string) (CategoryType, bool) {
	switch CategoryType(strings.ToUpper(s)) {
	case CategoryTypeIncome:
		return CategoryTypeIncome, true
	case CategoryTypeExpense:
		return CategoryTypeExpense, true
	}
	return "", false
}

type PaymentMethodType string

const (
	PaymentMethodCreditCardVisa       PaymentMethodType = "CREDIT_CARD_VISA"
	PaymentMethodCreditCardMastercard PaymentMethodType = "CREDIT_CARD_MASTERCARD"
	PaymentMethodCreditCardAmex       PaymentMethodType = "CREDIT_CARD_AMERICAN_EXPRESS"
	PaymentMethodDebitCard            PaymentMethodType = "DEBIT_CARD"
	PaymentMethodCash                 PaymentMethodType = "CASH"
)

func ParsePaymentMethodType(s string) (PaymentMethodType, bool) {
	switch PaymentMethodType(strings.ToUpper(s)) {
	case PaymentMethodCreditCardVisa:
		return PaymentMethodCreditCardVisa, true
	case PaymentMethodCreditCardMastercard:
		return PaymentMethodCreditCardMastercard, true
	case PaymentMethodCreditCardAmex:
		return PaymentMethodCreditCardAmex, true
	case PaymentMethodDebitCard:
		return PaymentMethodDebitCard, true
	case PaymentMethodCash:
		return PaymentMethodCash, true
	}
	return "", false
}

type SavingsWalletType string

const (
	SavingsWalletBankAccount   SavingsWalletType = "BANK_ACCOUNT"
	SavingsWalletVirtualWallet SavingsWalletType = "VIRTUAL_WALLET"
	SavingsWalletCash          SavingsWalletType = "CASH"
	SavingsWalletCrypto        SavingsWalletType = "CRYPTO"
	SavingsWalletOther         SavingsWalletType = "OTHER"
)

func ParseSavingsWalletType(s string) (SavingsWalletType, bool) {
	switch SavingsWalletType(strings.ToUpper(s)) {
	case SavingsWalletBankAccount:
		return SavingsWalletBankAccount, true
	case SavingsWalletVirtualWallet:
		return SavingsWalletVirtualWallet, true
	case SavingsWalletCash:
		return SavingsWalletCash, true
	case SavingsWalletCrypto:
		return SavingsWalletCrypto, true
	case SavingsWalletOther:
		return SavingsWalletOther, true
	}
	return "", false
}
