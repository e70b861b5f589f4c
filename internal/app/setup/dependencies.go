package setup

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/LavaJover/shvark-travel-stock/internal/config"
	"github.com/LavaJover/shvark-travel-stock/internal/delivery/console"
	"github.com/LavaJover/shvark-travel-stock/internal/domain"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-travel-stock/internal/usecase"
)

type Dependencies struct {
	Config  *config.TravelStockConfig
	Logger  *slog.Logger
	Metrics *metrics.PatternMetrics
	Console *console.Console

	logCloser io.Closer
}

// InitializeDependencies связывает консоль с in и out. Логи пишутся в out,
// только если так указано в log_output.
func InitializeDependencies(cfg *config.TravelStockConfig, in io.Reader, out io.Writer) (*Dependencies, error) {
	log, logCloser, err := logger.New(cfg.LogConfig)
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	log = log.With("env", cfg.Env)

	m := metrics.NewPatternMetrics()

	script, err := RateScript(cfg.Exchange)
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("exchange script: %w", err)
	}

	c, err := console.NewConsole(console.Options{
		In:     in,
		Out:    out,
		Logger: log,
		NewPayment: func() (domain.PaymentUsecase, error) {
			return usecase.NewDefaultPaymentUsecase(out, log, m)
		},
		NewExchange: func() domain.ExchangeUsecase {
			return usecase.NewDefaultExchangeUsecase(out, log, m)
		},
		CurrencySuffix: cfg.Payment.CurrencySuffix,
		Script:         script,
	})
	if err != nil {
		_ = logCloser.Close()
		return nil, fmt.Errorf("console: %w", err)
	}

	return &Dependencies{
		Config:    cfg,
		Logger:    log,
		Metrics:   m,
		Console:   c,
		logCloser: logCloser,
	}, nil
}

// RateScript переводит сценарий из конфига. Пустой сценарий дает nil,
// и консоль берет сценарий по умолчанию.
func RateScript(cfg config.Exchange) ([]console.RateStep, error) {
	if len(cfg.Script) == 0 {
		return nil, nil
	}

	script := make([]console.RateStep, 0, len(cfg.Script))
	for _, step := range cfg.Script {
		script = append(script, console.RateStep{
			Action:   console.RateAction(step.Action),
			Currency: step.Currency,
			Rate:     step.Rate,
			Observer: step.Observer,
		})
	}
	if err := console.ValidateScript(script); err != nil {
		return nil, err
	}
	return script, nil
}

// Close выгружает метрики в w (если включено) и закрывает вывод логов
func (d *Dependencies) Close(w io.Writer) error {
	if d.Config.Metrics.DumpOnExit {
		if err := d.Metrics.Dump(w); err != nil {
			d.Logger.Error("failed to dump metrics", "error", err)
		}
	}
	return d.logCloser.Close()
}
