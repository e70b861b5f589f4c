package payment

import (
	"fmt"
	"io"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/format"
)

// WalletPayment - оплата через внешний кошелек (PayPal)
type WalletPayment struct {
	out      io.Writer
	currency string
}

func NewWalletPayment(out io.Writer, currency string) *WalletPayment {
	return &WalletPayment{out: out, currency: currency}
}

func (p *WalletPayment) Name() domain.PaymentMethod {
	return domain.PaymentMethodWallet
}

func (p *WalletPayment) Pay(amount float64) {
	fmt.Fprintf(p.out, "Оплата через PayPal: %s %s\n", format.Fixed2(amount), p.currency)
}
