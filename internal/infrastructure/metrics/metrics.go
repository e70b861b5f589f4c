package metrics

import (
	"fmt"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

const namespace = "travel_stock"

// PatternMetrics содержит метрики обеих демонстраций
type PatternMetrics struct {
	registry *prometheus.Registry

	// Оплата
	PaymentsExecutedTotal *prometheus.CounterVec
	PaymentsAmountTotal   *prometheus.CounterVec
	PaymentsSkippedTotal  prometheus.Counter

	// Курсы валют
	RateUpdatesTotal       *prometheus.CounterVec
	RateDeliveriesTotal    *prometheus.CounterVec
	RateObserversGauge     prometheus.Gauge
	TrackedCurrenciesGauge prometheus.Gauge
}

// NewPatternMetrics регистрирует все метрики в собственном registry
func NewPatternMetrics() *PatternMetrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &PatternMetrics{
		registry: registry,

		PaymentsExecutedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_executed_total",
				Help:      "Количество проведенных оплат по способу оплаты",
			},
			[]string{"method"},
		),

		PaymentsAmountTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_amount_total",
				Help:      "Сумма положительных оплат по способу оплаты",
			},
			[]string{"method"},
		),

		PaymentsSkippedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "payments_skipped_total",
				Help:      "Попытки оплаты без выбранного способа",
			},
		),

		RateUpdatesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_updates_total",
				Help:      "Количество изменений курса по валютам",
			},
			[]string{"currency"},
		),

		RateDeliveriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "rate_deliveries_total",
				Help:      "Количество доставленных уведомлений по валютам",
			},
			[]string{"currency"},
		),

		RateObserversGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rate_observers",
				Help:      "Текущее количество подписчиков",
			},
		),

		TrackedCurrenciesGauge: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "tracked_currencies",
				Help:      "Количество валют с известным курсом",
			},
		),
	}
}

// RecordPaymentExecuted записывает проведенную оплату
func (m *PatternMetrics) RecordPaymentExecuted(method string, amount float64) {
	m.PaymentsExecutedTotal.WithLabelValues(method).Inc()
	// Counter.Add паникует на отрицательных значениях
	if amount > 0 {
		m.PaymentsAmountTotal.WithLabelValues(method).Add(amount)
	}
}

// RecordPaymentSkipped записывает попытку оплаты без выбранного способа
func (m *PatternMetrics) RecordPaymentSkipped() {
	m.PaymentsSkippedTotal.Inc()
}

// RecordRateUpdate записывает новый курс и размер рассылки
func (m *PatternMetrics) RecordRateUpdate(currency string, trackedCurrencies int) {
	m.RateUpdatesTotal.WithLabelValues(currency).Inc()
	m.TrackedCurrenciesGauge.Set(float64(trackedCurrencies))
}

// RecordDelivery записывает одно доставленное уведомление
func (m *PatternMetrics) RecordDelivery(currency string) {
	m.RateDeliveriesTotal.WithLabelValues(currency).Inc()
}

// RecordObservers обновляет количество подписчиков
func (m *PatternMetrics) RecordObservers(count int) {
	m.RateObserversGauge.Set(float64(count))
}

// Registry - registry, в котором зарегистрированы метрики
func (m *PatternMetrics) Registry() *prometheus.Registry {
	return m.registry
}

// Dump пишет все метрики в текстовом формате Prometheus
func (m *PatternMetrics) Dump(w io.Writer) error {
	families, err := m.Registry().Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}
	for _, family := range families {
		if _, err := expfmt.MetricFamilyToText(w, family); err != nil {
			return fmt.Errorf("failed to write metric %s: %w", family.GetName(), err)
		}
	}
	return nil
}
