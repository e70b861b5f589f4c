package domain

import (
	"fmt"
	"strings"
)

type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "card"
	PaymentMethodWallet PaymentMethod = "wallet"
	PaymentMethodCrypto PaymentMethod = "crypto"
)

// PaymentStrategy - взаимозаменяемый способ оплаты
type PaymentStrategy interface {
	Name() PaymentMethod
	// Pay проводит оплату на указанную сумму. Сумма не валидируется.
	Pay(amount float64)
}

type PaymentUsecase interface {
	SetPaymentStrategy(strategy PaymentStrategy)
	Selected() (PaymentStrategy, bool)
	ExecutePayment(amount float64) error
}

// ParsePaymentOption переводит пункт меню ("1", "2", "3") в способ оплаты
func ParsePaymentOption(option string) (PaymentMethod, error) {
	switch strings.TrimSpace(option) {
	case "1":
		return PaymentMethodCard, nil
	case "2":
		return PaymentMethodWallet, nil
	case "3":
		return PaymentMethodCrypto, nil
	default:
		return "", fmt.Errorf("payment option %q: %w", option, ErrInvalidChoice)
	}
}
