package config

import (
	"fmt"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

const ConfigPathEnv = "TRAVEL_STOCK_CONFIG_PATH"

type TravelStockConfig struct {
	Env       string `yaml:"env" env:"TRAVEL_STOCK_ENV" env-default:"local"`
	LogConfig `yaml:"log_config"`
	Payment   `yaml:"payment"`
	Exchange  `yaml:"exchange"`
	Metrics   `yaml:"metrics"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level" env:"TRAVEL_STOCK_LOG_LEVEL" env-default:"warn"`
	LogFormat string `yaml:"log_format" env:"TRAVEL_STOCK_LOG_FORMAT" env-default:"text"`
	LogOutput string `yaml:"log_output" env:"TRAVEL_STOCK_LOG_OUTPUT" env-default:"stderr"`
}

type Payment struct {
	CurrencySuffix string `yaml:"currency_suffix" env:"TRAVEL_STOCK_CURRENCY_SUFFIX" env-default:"тг"`
}

// Exchange описывает сценарий демонстрации курсов.
// Пустой сценарий означает сценарий по умолчанию.
type Exchange struct {
	Script []RateStep `yaml:"script"`
}

type RateStep struct {
	Action   string  `yaml:"action"`
	Currency string  `yaml:"currency"`
	Rate     float64 `yaml:"rate"`
	Observer string  `yaml:"observer"`
}

type Metrics struct {
	DumpOnExit bool `yaml:"dump_on_exit" env:"TRAVEL_STOCK_METRICS_DUMP" env-default:"false"`
}

// Load читает конфиг по пути path. Пустой путь - только env и значения
// по умолчанию.
func Load(path string) (*TravelStockConfig, error) {
	var cfg TravelStockConfig

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read env config: %w", err)
		}
		return &cfg, nil
	}

	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to find config file: %w", err)
	}
	// YAML в структуру
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return &cfg, nil
}

func MustLoad() *TravelStockConfig {
	cfg, err := Load(os.Getenv(ConfigPathEnv))
	if err != nil {
		log.Fatalf("%v\n", err)
	}
	return cfg
}
