package domain

// RateObserver получает обновления курсов валют
type RateObserver interface {
	Update(currency string, rate float64)
}

// RateSubject - валютная биржа, на которую подписываются наблюдатели.
// Подписчики сравниваются через ==, несравнимые ни с кем не равны.
type RateSubject interface {
	AddObserver(observer RateObserver)
	RemoveObserver(observer RateObserver)
	NotifyObservers()
}

type ExchangeUsecase interface {
	RateSubject
	SetRate(currency string, rate float64)
	Rate(currency string) (float64, bool)
	Rates() map[string]float64
	Observers() int
}
