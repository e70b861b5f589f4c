package usecase

import (
	"github.com/LavaJover/shvark-travel-stock/internal/domain"
)

type delivery struct {
	currency string
	rate     float64
}

type recordingObserver struct {
	name       string
	deliveries []delivery
	onUpdate   func(currency string, rate float64)
}

func (o *recordingObserver) Update(currency string, rate float64) {
	o.deliveries = append(o.deliveries, delivery{currency: currency, rate: rate})
	if o.onUpdate != nil {
		o.onUpdate(currency, rate)
	}
}

type recordingStrategy struct {
	method  domain.PaymentMethod
	amounts []float64
}

func (s *recordingStrategy) Name() domain.PaymentMethod {
	return s.method
}

func (s *recordingStrategy) Pay(amount float64) {
	s.amounts = append(s.amounts, amount)
}

// sliceObserver - несравнимый подписчик: == на нем паникует
type sliceObserver struct {
	tags []string
	hits *int
}

func (o sliceObserver) Update(string, float64) {
	if o.hits != nil {
		*o.hits++
	}
}
