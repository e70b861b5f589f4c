package payment

import (
	"fmt"
	"io"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/format"
)

type CryptoPayment struct {
	out      io.Writer
	currency string
}

func NewCryptoPayment(out io.Writer, currency string) *CryptoPayment {
	return &CryptoPayment{out: out, currency: currency}
}

func (p *CryptoPayment) Name() domain.PaymentMethod {
	return domain.PaymentMethodCrypto
}

func (p *CryptoPayment) Pay(amount float64) {
	fmt.Fprintf(p.out, "Оплата криптовалютой: %s %s\n", format.Fixed2(amount), p.currency)
}
