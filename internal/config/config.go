package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL  string `yaml:"base_url"`
		Symbol   string `yaml:"symbol"`
		Interval string `yaml:"interval"`
		Limit    int    `yaml:"limit"`
	} `yaml:"data_source"`
	RSI struct {
		Window      int     `yaml:"window"`
		Overbought  float64 `yaml:"overbought"`
		ExitShort   float64 `yaml:"exit_short"`
		Oversold    float64 `yaml:"oversold"`
		LockProfits float64 `yaml:"lock_profits"`
	} `yaml:"rsi"`
	Schedule struct {
		PollCron    string `yaml:"poll_cron"`
		SummaryCron string `yaml:"summary_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Metrics struct {
		Addr string `yaml:"addr"`
	} `yaml:"metrics"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("BINANCE_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("INTERVAL"); v != "" {
		cfg.DataSource.Interval = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("POLL_CRON"); v != "" {
		cfg.Schedule.PollCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("METRICS_ADDR"); v != "" {
		cfg.Metrics.Addr = v
	}
	if v := os.Getenv("RSI_WINDOW"); v != "" {
		var window int
		if _, err := fmt.Sscanf(v, "%d", &window); err == nil {
			cfg.RSI.Window = window
		}
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "BTCUSDT"
	}
	if cfg.DataSource.Interval == "" {
		cfg.DataSource.Interval = "1m"
	}
	if cfg.DataSource.Limit == 0 {
		cfg.DataSource.Limit = 100
	}
	if cfg.RSI.Window == 0 {
		cfg.RSI.Window = 14
	}
	if cfg.RSI.Overbought == 0 {
		cfg.RSI.Overbought = 80
	}
	if cfg.RSI.ExitShort == 0 {
		cfg.RSI.ExitShort = 40
	}
	if cfg.RSI.Oversold == 0 {
		cfg.RSI.Oversold = 20
	}
	if cfg.RSI.LockProfits == 0 {
		cfg.RSI.LockProfits = 60
	}
	if cfg.Schedule.PollCron == "" {
		cfg.Schedule.PollCron = "*/15 * * * * *"
	}
	if cfg.Schedule.SummaryCron == "" {
		cfg.Schedule.SummaryCron = "0 0 8 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/rsi_sentinel.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if c.DataSource.Limit < 2 {
		return fmt.Errorf("data_source.limit must be at least 2 (need one delta to form an RSI)")
	}
	if c.RSI.Window <= 0 {
		return fmt.Errorf("rsi.window must be positive")
	}
	for name, v := range map[string]float64{
		"rsi.overbought":   c.RSI.Overbought,
		"rsi.exit_short":   c.RSI.ExitShort,
		"rsi.oversold":     c.RSI.Oversold,
		"rsi.lock_profits": c.RSI.LockProfits,
	} {
		if v < 0 || v > 100 {
			return fmt.Errorf("%s must be within [0,100]", name)
		}
	}
	if (c.Telegram.BotToken == "") != (c.Telegram.ChatID == "") {
		return fmt.Errorf("telegram.bot_token and telegram.chat_id must be set together")
	}
	return nil
}

// TelegramEnabled reports whether a Telegram sink is configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}
