package console

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/display"
	"github.com/google/uuid"
)

type RateAction string

const (
	RateActionSubscribe RateAction = "subscribe"
	RateActionSet       RateAction = "set"
	RateActionRemove    RateAction = "remove"
)

// RateStep - один шаг сценария демонстрации курсов
type RateStep struct {
	Action   RateAction
	Currency string
	Rate     float64
	Observer string
}

var DefaultRateScript = []RateStep{
	{Action: RateActionSubscribe, Observer: display.Bank},
	{Action: RateActionSubscribe, Observer: display.Mobile},
	{Action: RateActionSubscribe, Observer: display.Website},
	{Action: RateActionSet, Currency: "USD", Rate: 475.50},
	{Action: RateActionSet, Currency: "EUR", Rate: 505.30},
	{Action: RateActionRemove, Observer: display.Mobile},
	{Action: RateActionSet, Currency: "USD", Rate: 480.00},
}

// ValidateScript проверяет действия и имена витрин заранее, чтобы
// демонстрация не падала на середине.
func ValidateScript(script []RateStep) error {
	for i, step := range script {
		switch step.Action {
		case RateActionSet:
		case RateActionSubscribe, RateActionRemove:
			if _, err := display.New(step.Observer, nil); err != nil {
				return fmt.Errorf("rate script step %d: %w", i, err)
			}
		default:
			return fmt.Errorf("rate script step %d: action %q: %w", i, step.Action, domain.ErrUnknownRateAction)
		}
	}
	return nil
}

type detachable interface {
	DetachedNotice() string
}

func (c *Console) runObserverDemo(ctx context.Context) error {
	log := c.logger.With("run_id", uuid.NewString(), "demo", "observer")
	exchange := c.newExchange()
	observers := make(map[string]domain.RateObserver, len(display.Names))

	for _, step := range c.script {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch step.Action {
		case RateActionSubscribe:
			observer, err := c.observer(observers, step.Observer)
			if err != nil {
				return err
			}
			exchange.AddObserver(observer)
		case RateActionSet:
			exchange.SetRate(step.Currency, step.Rate)
		case RateActionRemove:
			observer, err := c.observer(observers, step.Observer)
			if err != nil {
				return err
			}
			exchange.RemoveObserver(observer)
			if d, ok := observer.(detachable); ok {
				fmt.Fprintf(c.out, "\n%s\n", d.DetachedNotice())
			}
		}
	}

	log.Info("observer demo finished", "observers", exchange.Observers(), "currencies", len(exchange.Rates()))
	return nil
}

func (c *Console) observer(observers map[string]domain.RateObserver, name string) (domain.RateObserver, error) {
	if observer, ok := observers[name]; ok {
		return observer, nil
	}
	observer, err := display.New(name, c.out)
	if err != nil {
		return nil, err
	}
	observers[name] = observer
	return observer, nil
}
