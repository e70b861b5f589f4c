// Package display содержит витрины, которые показывают курсы валют
// (банк, мобильное приложение, сайт). Все витрины - сравнимые значения,
// поэтому две витрины с одним и тем же writer считаются одной подпиской.
package display

import (
	"fmt"
	"io"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
)

const (
	Bank    = "bank"
	Mobile  = "mobile"
	Website = "website"
)

// Names - витрины в порядке подписки по умолчанию
var Names = []string{Bank, Mobile, Website}

// New создает витрину по ее имени
func New(name string, out io.Writer) (domain.RateObserver, error) {
	switch name {
	case Bank:
		return NewBankDisplay(out), nil
	case Mobile:
		return NewMobileAppDisplay(out), nil
	case Website:
		return NewWebsiteDisplay(out), nil
	default:
		return nil, fmt.Errorf("display %q: %w", name, domain.ErrUnknownObserver)
	}
}
