package display

import (
	"fmt"
	"io"

	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/format"
)

type BankDisplay struct {
	out io.Writer
}

func NewBankDisplay(out io.Writer) BankDisplay {
	return BankDisplay{out: out}
}

func (d BankDisplay) Update(currency string, rate float64) {
	fmt.Fprintf(d.out, "Банк получил обновление: %s = %s\n", currency, format.Fixed2(rate))
}

func (d BankDisplay) DetachedNotice() string {
	return "Банк отключен от уведомлений."
}
