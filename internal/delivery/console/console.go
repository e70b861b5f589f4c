// Package console - интерактивное меню поверх stdin/stdout.
//
// Любой неверный ввод завершает текущую демонстрацию сообщением, ошибкой
// считается только сбой чтения ввода.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/logger"
)

const invalidChoiceMessage = "Неверный выбор!"

type PaymentUsecaseFactory func() (domain.PaymentUsecase, error)

type ExchangeUsecaseFactory func() domain.ExchangeUsecase

type Console struct {
	scanner        *bufio.Scanner
	out            io.Writer
	logger         *slog.Logger
	newPayment     PaymentUsecaseFactory
	newExchange    ExchangeUsecaseFactory
	currencySuffix string
	script         []RateStep
}

type Options struct {
	In             io.Reader
	Out            io.Writer
	Logger         *slog.Logger
	NewPayment     PaymentUsecaseFactory
	NewExchange    ExchangeUsecaseFactory
	CurrencySuffix string
	// Script - сценарий демонстрации курсов, пустой означает DefaultRateScript
	Script         []RateStep
}

func NewConsole(opts Options) (*Console, error) {
	script := opts.Script
	if len(script) == 0 {
		script = DefaultRateScript
	}
	if err := ValidateScript(script); err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	return &Console{
		scanner:        bufio.NewScanner(opts.In),
		out:            opts.Out,
		logger:         log,
		newPayment:     opts.NewPayment,
		newExchange:    opts.NewExchange,
		currencySuffix: opts.CurrencySuffix,
		script:         script,
	}, nil
}

// Run показывает главное меню и один раз запускает выбранную демонстрацию.
// Ответы обрезаются по пробелам: " 1 " выбирает стратегию.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "1 - Паттерн Стратегия (оплата)")
	fmt.Fprintln(c.out, "2 - Паттерн Наблюдатель (валютные курсы)")

	choice, err := c.prompt(ctx, "Выберите: ")
	if err != nil {
		return err
	}

	switch choice {
	case "1":
		return c.runStrategyDemo(ctx)
	case "2":
		return c.runObserverDemo(ctx)
	default:
		c.logger.Debug("invalid menu choice", "choice", choice)
		fmt.Fprintln(c.out, invalidChoiceMessage)
		return nil
	}
}

// prompt печатает подсказку и читает одну строку без пробелов по краям.
// EOF читается как пустая строка.
func (c *Console) prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(c.out, label)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return "", nil
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}
