package usecase

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/metrics"
	nanoid "github.com/jaevor/go-nanoid"
)

const notSelectedNotice = "Способ оплаты не выбран!"

// DefaultPaymentUsecase хранит выбранную стратегию оплаты и исполняет ее
type DefaultPaymentUsecase struct {
	strategy    domain.PaymentStrategy
	out         io.Writer
	logger      *slog.Logger
	Metrics     *metrics.PatternMetrics
	idGenerator func() string
}

func NewDefaultPaymentUsecase(out io.Writer, logger *slog.Logger, m *metrics.PatternMetrics) (*DefaultPaymentUsecase, error) {
	idGenerator, err := nanoid.Standard(15)
	if err != nil {
		return nil, fmt.Errorf("failed to init receipt id generator: %w", err)
	}
	return &DefaultPaymentUsecase{
		out:         out,
		logger:      logger,
		Metrics:     m,
		idGenerator: idGenerator,
	}, nil
}

func (uc *DefaultPaymentUsecase) SetPaymentStrategy(strategy domain.PaymentStrategy) {
	uc.strategy = strategy
	if strategy != nil {
		uc.logger.Debug("payment strategy selected", "method", strategy.Name())
	}
}

func (uc *DefaultPaymentUsecase) Selected() (domain.PaymentStrategy, bool) {
	return uc.strategy, uc.strategy != nil
}

// ExecutePayment передает сумму выбранной стратегии ровно один раз, без изменений.
// Без стратегии печатает уведомление и возвращает ErrPaymentMethodNotSelected.
func (uc *DefaultPaymentUsecase) ExecutePayment(amount float64) error {
	if uc.strategy == nil {
		fmt.Fprintln(uc.out, notSelectedNotice)
		uc.recordPaymentSkippedMetrics()
		return domain.ErrPaymentMethodNotSelected
	}

	receiptID := uc.idGenerator()
	uc.strategy.Pay(amount)

	uc.logger.Debug("payment executed",
		"receipt_id", receiptID,
		"method", uc.strategy.Name(),
		"amount", amount,
	)
	uc.recordPaymentExecutedMetrics(amount)
	return nil
}

func (uc *DefaultPaymentUsecase) recordPaymentExecutedMetrics(amount float64) {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordPaymentExecuted(string(uc.strategy.Name()), amount)
}

func (uc *DefaultPaymentUsecase) recordPaymentSkippedMetrics() {
	if uc.Metrics == nil {
		return
	}
	uc.Metrics.RecordPaymentSkipped()
}
