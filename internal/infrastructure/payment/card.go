package payment

import (
	"fmt"
	"io"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/format"
)

// CardPayment - оплата банковской картой
type CardPayment struct {
	out      io.Writer
	currency string
}

func NewCardPayment(out io.Writer, currency string) *CardPayment {
	return &CardPayment{out: out, currency: currency}
}

func (p *CardPayment) Name() domain.PaymentMethod {
	return domain.PaymentMethodCard
}

func (p *CardPayment) Pay(amount float64) {
	fmt.Fprintf(p.out, "Оплата банковской картой: %s %s\n", format.Fixed2(amount), p.currency)
}
