package display

import (
	"fmt"
	"io"

	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/format"
)

type WebsiteDisplay struct {
	out io.Writer
}

func NewWebsiteDisplay(out io.Writer) WebsiteDisplay {
	return WebsiteDisplay{out: out}
}

func (d WebsiteDisplay) Update(currency string, rate float64) {
	fmt.Fprintf(d.out, "Сайт обновил курс: %s = %s\n", currency, format.Fixed2(rate))
}

func (d WebsiteDisplay) DetachedNotice() string {
	return "Сайт отключен от уведомлений."
}
