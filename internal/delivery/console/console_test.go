package console

import (
	"bytes"
	"context"
	"errors"
	"math"
	"strings"
	"testing"
	"testing/iotest"

	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/LavaJover/shvark-travel-stock/internal/domain"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-travel-stock/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-travel-stock/internal/usecase"
)

const menu = "1 - Паттерн Стратегия (оплата)\n2 - Паттерн Наблюдатель (валютные курсы)\nВыберите: "

const paymentMenu = "\nВыберите способ оплаты:\n1 - Банковская карта\n2 - PayPal\n3 - Криптовалюта\nВаш выбор: "

func newTestConsole(g *WithT, input string, out *bytes.Buffer, m *metrics.PatternMetrics, script []RateStep) *Console {
	log := logger.Discard()
	c, err := NewConsole(Options{
		In:     strings.NewReader(input),
		Out:    out,
		Logger: log,
		NewPayment: func() (domain.PaymentUsecase, error) {
			return usecase.NewDefaultPaymentUsecase(out, log, m)
		},
		NewExchange: func() domain.ExchangeUsecase {
			return usecase.NewDefaultExchangeUsecase(out, log, m)
		},
		CurrencySuffix: "тг",
		Script:         script,
	})
	g.Expect(err).ToNot(HaveOccurred())
	return c
}

func TestRunInvalidMenuChoice(t *testing.T) {
	for _, input := range []string{"3\n", "abc\n", "\n", ""} {
		t.Run(strings.TrimSpace(input), func(t *testing.T) {
			g := NewWithT(t)
			var out bytes.Buffer
			c := newTestConsole(g, input, &out, nil, nil)

			g.Expect(c.Run(context.Background())).To(Succeed())
			g.Expect(out.String()).To(Equal(menu + "Неверный выбор!\n"))
		})
	}
}

func TestStrategyDemo(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expTail     string
		expPayments float64
	}{
		{
			name:        "card",
			input:       "1\n1\n1500\n",
			expTail:     "Введите сумму оплаты: Оплата банковской картой: 1500.00 тг\n",
			expPayments: 1,
		},
		{
			name:        "wallet with spaces",
			input:       " 1 \n 2 \n 99.9 \n",
			expTail:     "Введите сумму оплаты: Оплата через PayPal: 99.90 тг\n",
			expPayments: 1,
		},
		{
			name:        "crypto negative amount",
			input:       "1\n3\n-5\n",
			expTail:     "Введите сумму оплаты: Оплата криптовалютой: -5.00 тг\n",
			expPayments: 1,
		},
		{
			name:        "overflowing amount pays infinity",
			input:       "1\n1\n1e400\n",
			expTail:     "Введите сумму оплаты: Оплата банковской картой: +Inf тг\n",
			expPayments: 1,
		},
		{
			name:        "negative overflowing amount",
			input:       "1\n3\n-1e400\n",
			expTail:     "Введите сумму оплаты: Оплата криптовалютой: -Inf тг\n",
			expPayments: 1,
		},
		{
			name:        "rounds half away from zero",
			input:       "1\n2\n0.125\n",
			expTail:     "Введите сумму оплаты: Оплата через PayPal: 0.13 тг\n",
			expPayments: 1,
		},
		{
			name:    "malformed amount",
			input:   "1\n1\nтысяча\n",
			expTail: "Введите сумму оплаты: Ошибка: введите число!\n",
		},
		{
			name:    "missing amount",
			input:   "1\n2\n",
			expTail: "Введите сумму оплаты: Ошибка: введите число!\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := NewWithT(t)
			var out bytes.Buffer
			m := metrics.NewPatternMetrics()
			c := newTestConsole(g, test.input, &out, m, nil)

			g.Expect(c.Run(context.Background())).To(Succeed())
			g.Expect(out.String()).To(HavePrefix(menu + paymentMenu))
			g.Expect(out.String()).To(HaveSuffix(test.expTail))

			var executed float64
			for _, method := range []string{"card", "wallet", "crypto"} {
				executed += testutil.ToFloat64(m.PaymentsExecutedTotal.WithLabelValues(method))
			}
			g.Expect(executed).To(Equal(test.expPayments))
		})
	}
}

func TestStrategyDemoInvalidOptionSkipsAmount(t *testing.T) {
	g := NewWithT(t)
	var out bytes.Buffer
	c := newTestConsole(g, "1\n4\n100\n", &out, nil, nil)

	g.Expect(c.Run(context.Background())).To(Succeed())
	g.Expect(out.String()).To(Equal(menu + paymentMenu + "Неверный выбор!\n"))
	g.Expect(out.String()).ToNot(ContainSubstring("Введите сумму оплаты"))
}

func TestObserverDemo(t *testing.T) {
	g := NewWithT(t)
	var out bytes.Buffer
	m := metrics.NewPatternMetrics()
	c := newTestConsole(g, "2\n", &out, m, nil)

	g.Expect(c.Run(context.Background())).To(Succeed())

	transcript := out.String()
	g.Expect(transcript).To(HavePrefix(menu))
	g.Expect(transcript).To(ContainSubstring("\nМобильное приложение отключено от уведомлений.\n"))

	const lastUpdate = "\nНовый курс: USD = 480.00\n"
	g.Expect(strings.Count(transcript, lastUpdate)).To(Equal(1))
	tail := strings.Split(strings.TrimSuffix(transcript[strings.Index(transcript, lastUpdate)+len(lastUpdate):], "\n"), "\n")

	g.Expect(tail).To(ConsistOf(
		"Банк получил обновление: USD = 480.00",
		"Банк получил обновление: EUR = 505.30",
		"Сайт обновил курс: USD = 480.00",
		"Сайт обновил курс: EUR = 505.30",
	))
	g.Expect(strings.Join(tail, "\n")).ToNot(ContainSubstring("Мобильное приложение"))

	g.Expect(strings.Count(transcript, "Банк получил обновление:")).To(Equal(5))
	g.Expect(strings.Count(transcript, "Мобильное приложение:")).To(Equal(3))
	g.Expect(strings.Count(transcript, "Сайт обновил курс:")).To(Equal(5))
	g.Expect(testutil.ToFloat64(m.RateObserversGauge)).To(Equal(2.0))
}

func TestObserverDemoCustomScript(t *testing.T) {
	g := NewWithT(t)
	var out bytes.Buffer
	script := []RateStep{
		{Action: RateActionSubscribe, Observer: "website"},
		{Action: RateActionSubscribe, Observer: "website"},
		{Action: RateActionSet, Currency: "KZT", Rate: 1},
		{Action: RateActionRemove, Observer: "website"},
		{Action: RateActionRemove, Observer: "bank"},
	}
	c := newTestConsole(g, "2\n", &out, nil, script)

	g.Expect(c.Run(context.Background())).To(Succeed())
	g.Expect(out.String()).To(Equal(menu +
		"\nНовый курс: KZT = 1.00\n" +
		"Сайт обновил курс: KZT = 1.00\n" +
		"Сайт обновил курс: KZT = 1.00\n" +
		"\nСайт отключен от уведомлений.\n" +
		"\nБанк отключен от уведомлений.\n"))
}

func TestNewConsoleRejectsBadScript(t *testing.T) {
	tests := []struct {
		name   string
		script []RateStep
		expErr error
	}{
		{
			name:   "unknown action",
			script: []RateStep{{Action: "reset"}},
			expErr: domain.ErrUnknownRateAction,
		},
		{
			name:   "unknown observer",
			script: []RateStep{{Action: RateActionSubscribe, Observer: "radio"}},
			expErr: domain.ErrUnknownObserver,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			g := NewWithT(t)

			_, err := NewConsole(Options{In: strings.NewReader(""), Out: &bytes.Buffer{}, Script: test.script})
			g.Expect(err).To(MatchError(test.expErr))
		})
	}
}

func TestRunReadError(t *testing.T) {
	g := NewWithT(t)
	errBoom := errors.New("boom")
	c, err := NewConsole(Options{
		In:     iotest.ErrReader(errBoom),
		Out:    &bytes.Buffer{},
		Logger: logger.Discard(),
	})
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(c.Run(context.Background())).To(MatchError(errBoom))
}

func TestRunCanceledContext(t *testing.T) {
	g := NewWithT(t)
	var out bytes.Buffer
	c := newTestConsole(g, "2\n", &out, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	g.Expect(c.Run(ctx)).To(MatchError(context.Canceled))
	g.Expect(out.String()).ToNot(ContainSubstring("Выберите: "))
}

func TestNewConsoleWithoutLogger(t *testing.T) {
	g := NewWithT(t)
	var out bytes.Buffer
	c, err := NewConsole(Options{In: strings.NewReader("9\n"), Out: &out})
	g.Expect(err).ToNot(HaveOccurred())

	g.Expect(func() {
		g.Expect(c.Run(context.Background())).To(Succeed())
	}).ToNot(Panic())
	g.Expect(out.String()).To(Equal(menu + "Неверный выбор!\n"))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input  string
		exp    float64
		expErr bool
	}{
		{input: "1500", exp: 1500},
		{input: "-0.5", exp: -0.5},
		{input: "1e400", exp: math.Inf(1)},
		{input: "-1e400", exp: math.Inf(-1)},
		{input: "", expErr: true},
		{input: "12abc", expErr: true},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			g := NewWithT(t)

			amount, err := parseAmount(test.input)
			if test.expErr {
				g.Expect(err).To(MatchError(domain.ErrInvalidAmount))
				return
			}
			g.Expect(err).ToNot(HaveOccurred())
			g.Expect(amount).To(Equal(test.exp))
		})
	}
}
