package display

import (
	"fmt"
	"io"

	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/format"
)

type MobileAppDisplay struct {
	out io.Writer
}

func NewMobileAppDisplay(out io.Writer) MobileAppDisplay {
	return MobileAppDisplay{out: out}
}

func (d MobileAppDisplay) Update(currency string, rate float64) {
	fmt.Fprintf(d.out, "Мобильное приложение: %s = %s\n", currency, format.Fixed2(rate))
}

func (d MobileAppDisplay) DetachedNotice() string {
	return "Мобильное приложение отключено от уведомлений."
}
