package console

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/payment"
	"github.com/google/uuid"
)

func (c *Console) runStrategyDemo(ctx context.Context) error {
	log := c.logger.With("run_id", uuid.NewString(), "demo", "strategy")

	uc, err := c.newPayment()
	if err != nil {
		return fmt.Errorf("failed to init payment usecase: %w", err)
	}

	fmt.Fprintln(c.out, "\nВыберите способ оплаты:")
	fmt.Fprintln(c.out, "1 - Банковская карта")
	fmt.Fprintln(c.out, "2 - PayPal")
	fmt.Fprintln(c.out, "3 - Криптовалюта")

	option, err := c.prompt(ctx, "Ваш выбор: ")
	if err != nil {
		return err
	}

	method, err := domain.ParsePaymentOption(option)
	if err != nil {
		log.Debug("invalid payment option", "error", err)
		fmt.Fprintln(c.out, invalidChoiceMessage)
		return nil
	}
	strategy, err := payment.NewStrategy(method, c.out, c.currencySuffix)
	if err != nil {
		return err
	}
	uc.SetPaymentStrategy(strategy)

	input, err := c.prompt(ctx, "Введите сумму оплаты: ")
	if err != nil {
		return err
	}

	amount, err := parseAmount(input)
	if err != nil {
		log.Debug("malformed amount", "input", input, "error", err)
		fmt.Fprintln(c.out, "Ошибка: введите число!")
		return nil
	}

	if err := uc.ExecutePayment(amount); err != nil && !errors.Is(err, domain.ErrPaymentMethodNotSelected) {
		return err
	}
	log.Info("strategy demo finished", "method", method)
	return nil
}

// parseAmount разбирает сумму. Переполнение (1e400) дает ±Inf и считается
// числом: такая сумма уходит в оплату без изменений.
func parseAmount(input string) (float64, error) {
	amount, err := strconv.ParseFloat(input, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, fmt.Errorf("%w: %w", domain.ErrInvalidAmount, err)
	}
	return amount, nil
}
