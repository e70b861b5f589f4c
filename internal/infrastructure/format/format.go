// Package format печатает суммы и курсы с двумя знаками после запятой.
// Округление одно на обе демонстрации: половина - от нуля, как в decimal.
package format

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Fixed2 - число с двумя знаками. decimal не хранит NaN и бесконечности,
// их печатаем через strconv: NaN, +Inf, -Inf.
func Fixed2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}
