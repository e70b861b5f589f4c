package usecase

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"reflect"
	"slices"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/format"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/metrics"
)

// DefaultExchangeUsecase - валютная биржа, рассылающая курсы подписчикам.
//
// Каждое изменение курса рассылает подписчикам последние курсы всех
// известных валют, а не только изменившейся.
type DefaultExchangeUsecase struct {
	rates     map[string]float64
	observers []domain.RateObserver
	out       io.Writer
	logger    *slog.Logger
	Metrics   *metrics.PatternMetrics
}

func NewDefaultExchangeUsecase(out io.Writer, logger *slog.Logger, m *metrics.PatternMetrics) *DefaultExchangeUsecase {
	return &DefaultExchangeUsecase{
		rates:   make(map[string]float64),
		out:     out,
		logger:  logger,
		Metrics: m,
	}
}

// AddObserver добавляет подписчика в конец списка. Повторная подписка
// разрешена, каждая копия получает свои уведомления.
func (uc *DefaultExchangeUsecase) AddObserver(observer domain.RateObserver) {
	uc.observers = append(uc.observers, observer)
	uc.logger.Debug("observer subscribed", "observer", fmt.Sprintf("%T", observer), "observers", len(uc.observers))
	uc.recordObserversMetrics()
}

// RemoveObserver снимает первую подписку, равную observer.
// Несравнимые подписчики ни с кем не равны, отсутствующий - no-op.
func (uc *DefaultExchangeUsecase) RemoveObserver(observer domain.RateObserver) {
	idx := slices.IndexFunc(uc.observers, func(o domain.RateObserver) bool {
		return sameObserver(o, observer)
	})
	if idx < 0 {
		uc.logger.Debug("observer not subscribed", "observer", fmt.Sprintf("%T", observer))
		return
	}

	uc.observers = slices.Delete(uc.observers, idx, idx+1)
	uc.logger.Debug("observer unsubscribed", "observer", fmt.Sprintf("%T", observer), "observers", len(uc.observers))
	uc.recordObserversMetrics()
}

// NotifyObservers рассылает каждому подписчику курсы всех известных валют:
// подписчики в порядке подписки, валюты по коду.
func (uc *DefaultExchangeUsecase) NotifyObservers() {
	currencies := slices.Sorted(maps.Keys(uc.rates))
	for _, observer := range uc.observers {
		for _, currency := range currencies {
			observer.Update(currency, uc.rates[currency])
			uc.recordDeliveryMetrics(currency)
		}
	}
}

// SetRate сохраняет курс до рассылки. Валюта и курс не валидируются.
func (uc *DefaultExchangeUsecase) SetRate(currency string, rate float64) {
	uc.rates[currency] = rate
	fmt.Fprintf(uc.out, "\nНовый курс: %s = %s\n", currency, format.Fixed2(rate))

	uc.logger.Info("rate updated",
		"currency", currency,
		"rate", rate,
		"deliveries", len(uc.observers)*len(uc.rates),
	)
	uc.recordRateUpdateMetrics(currency)

	uc.NotifyObservers()
}

func (uc *DefaultExchangeUsecase) Rate(currency string) (float64, bool) {
	rate, ok := uc.rates[currency]
	return rate, ok
}

// Rates возвращает копию известных курсов
func (uc *DefaultExchangeUsecase) Rates() map[string]float64 {
	return maps.Clone(uc.rates)
}

func (uc *DefaultExchangeUsecase) Observers() int {
	return len(uc.observers)
}

// sameObserver сравнивает подписчиков через ==, но не паникует на
// несравнимых динамических типах (например, struct со slice).
func sameObserver(a, b domain.RateObserver) bool {
	if a == nil || b == nil {
		return a == b
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

func (uc *DefaultExchangeUsecase) recordObserversMetrics() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordObservers(len(uc.observers))
}

func (uc *DefaultExchangeUsecase) recordRateUpdateMetrics(currency string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordRateUpdate(currency, len(uc.rates))
}

func (uc *DefaultExchangeUsecase) recordDeliveryMetrics(currency string) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordDelivery(currency)
}
