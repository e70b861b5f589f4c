package payment

import (
	"fmt"
	"io"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
)

// NewStrategy создает стратегию оплаты по ее имени
func NewStrategy(method domain.PaymentMethod, out io.Writer, currency string) (domain.PaymentStrategy, error) {
	switch method {
	case domain.PaymentMethodCard:
		return NewCardPayment(out, currency), nil
	case domain.PaymentMethodWallet:
		return NewWalletPayment(out, currency), nil
	case domain.PaymentMethodCrypto:
		return NewCryptoPayment(out, currency), nil
	default:
		return nil, fmt.Errorf("payment method %q: %w", method, domain.ErrUnknownPaymentMethod)
	}
}
