package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	configFilePathENV = "CONFIG_FILE"
	apiKeyENV         = "BINANCE_API_KEY"
	apiSecretENV      = "BINANCE_API_SECRET"
	tokenTelegramENV  = "TELEGRAM_TOKEN"
	databaseDSN       = "DATABASE_DSN"
)

// Config ...
type Config struct {
	Binance struct {
		APIKey          string  `yaml:"api_key"`
		APISecret       string  `yaml:"api_secret"`
		MarginMode      string  `yaml:"margin_mode"`       // isolated | cross
		PositionSizePct float64 `yaml:"position_size_pct"` // доля депозита на вход, %
		Leverage        int     `yaml:"leverage"`
		TakeProfitPct   float64 `yaml:"take_profit_pct"`
		StopLossPct     float64 `yaml:"stop_loss_pct"`
	} `yaml:"binance"`

	Telegram struct {
		Token  string `yaml:"token"`
		ChatID int64  `yaml:"chat_id"`
	} `yaml:"telegram"`

	// Опциональный Postgres для кулдаунов; пусто — in-memory.
	DB string `yaml:"db_dsn"`

	Engine struct {
		Timeframe       string  `yaml:"timeframe"`
		MaxPerSide      int     `yaml:"max_per_side"`
		BreakevenROIPct float64 `yaml:"breakeven_roi_pct"`
		RetryAttempts   int     `yaml:"retry_attempts"`

		// Интервалы настраиваются только через env (SWEEP_INTERVAL,
		// ENTRY_COOLDOWN, RETRY_DELAY) — yaml.v2 не парсит "30s".
		SweepInterval time.Duration `yaml:"-"`
		Cooldown      time.Duration `yaml:"-"`
		RetryDelay    time.Duration `yaml:"-"`
	} `yaml:"engine"`

	Health struct {
		Addr string `yaml:"addr"`
	} `yaml:"health"`

	Jaeger struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"jaeger"`
}

func NewConfig() (*Config, error) {
	configFileName := os.Getenv(configFilePathENV)
	if configFileName == "" {
		configFileName = "values_local.yaml"
	}
	file, err := os.Open("configs/" + configFileName)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}

	defer func() {
		_ = file.Close()
	}()

	config := Config{}
	config.Binance.MarginMode = getenvDefault("MARGIN_MODE", "isolated")
	config.Binance.PositionSizePct = floatFromEnv("POSITION_SIZE_PCT", 10)
	config.Binance.Leverage = intFromEnv("LEVERAGE", 5)
	config.Binance.TakeProfitPct = floatFromEnv("TAKE_PROFIT_PCT", 5)
	config.Binance.StopLossPct = floatFromEnv("STOP_LOSS_PCT", 2)

	config.Engine.Timeframe = getenvDefault("TIMEFRAME", "15m")
	config.Engine.SweepInterval = durationFromEnv("SWEEP_INTERVAL", "30s")
	config.Engine.Cooldown = durationFromEnv("ENTRY_COOLDOWN", "12h")
	config.Engine.MaxPerSide = intFromEnv("MAX_PER_SIDE", 5)
	config.Engine.BreakevenROIPct = floatFromEnv("BREAKEVEN_ROI_PCT", 15)
	config.Engine.RetryAttempts = intFromEnv("RETRY_ATTEMPTS", 5)
	config.Engine.RetryDelay = durationFromEnv("RETRY_DELAY", "5s")

	config.Health.Addr = getenvDefault("HEALTH_ADDR", ":8080")

	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}

	if v := os.Getenv(apiKeyENV); v != "" {
		config.Binance.APIKey = v
	}
	if v := os.Getenv(apiSecretENV); v != "" {
		config.Binance.APISecret = v
	}
	if v := os.Getenv(tokenTelegramENV); v != "" {
		config.Telegram.Token = v
	}
	if v := os.Getenv(databaseDSN); v != "" {
		config.DB = v
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// validate — невалидный конфиг фатален, но решение о выходе принимает main.
func (c *Config) validate() error {
	if c.Binance.APIKey == "" || c.Binance.APISecret == "" {
		return fmt.Errorf("config: binance api credentials are required")
	}
	switch c.Binance.MarginMode {
	case "isolated", "cross":
	default:
		return fmt.Errorf("config: invalid margin_mode %q", c.Binance.MarginMode)
	}
	if c.Binance.Leverage <= 0 {
		return fmt.Errorf("config: leverage must be positive")
	}
	if c.Binance.PositionSizePct <= 0 || c.Binance.PositionSizePct > 100 {
		return fmt.Errorf("config: position_size_pct out of range")
	}
	if c.Binance.TakeProfitPct <= 0 || c.Binance.StopLossPct <= 0 {
		return fmt.Errorf("config: take_profit_pct and stop_loss_pct must be positive")
	}
	return nil
}

func intFromEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func floatFromEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func durationFromEnv(key, def string) time.Duration {
	val := getenvDefault(key, def)
	d, err := time.ParseDuration(val)
	if err != nil {
		d, _ = time.ParseDuration(def)
	}
	return d
}
