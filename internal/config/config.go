package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration for both tools.
type Config struct {
	Binance struct {
		Symbol     string `yaml:"symbol"`
		KlineLimit int    `yaml:"kline_limit"`
	} `yaml:"binance"`
	Monitor struct {
		KlineTimeframes      []string `yaml:"kline_timeframes"`
		CheckIntervalMinutes int      `yaml:"check_interval_minutes"`
		PriceAlerts          struct {
			SharpChangePercent    float64 `yaml:"sharp_change_percent"`
			VolumeSpikeMultiplier float64 `yaml:"volume_spike_multiplier"`
		} `yaml:"price_alerts"`
	} `yaml:"monitor"`
	Hunter struct {
		Chains             []string `yaml:"chains"`
		SearchKeywords     []string `yaml:"search_keywords"`
		InfluencerAccounts []string `yaml:"influencer_accounts"`
		MinMentionsPerHour int      `yaml:"min_mentions_per_hour"`
		AlertCooldownHours int      `yaml:"alert_cooldown_hours"`
	} `yaml:"hunter"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Data struct {
		Dir string `yaml:"dir"`
	} `yaml:"data"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is fine: defaults plus environment
// variables make a runnable config.
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
	if v := os.Getenv("BINANCE_SYMBOL"); v != "" {
		cfg.Binance.Symbol = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CHECK_INTERVAL_MINUTES"); v != "" {
		var minutes int
		if _, err := fmt.Sscanf(v, "%d", &minutes); err == nil {
			cfg.Monitor.CheckIntervalMinutes = minutes
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}

	// Defaults
	if cfg.Binance.Symbol == "" {
		cfg.Binance.Symbol = "BTCUSDT"
	}
	if cfg.Binance.KlineLimit == 0 {
		cfg.Binance.KlineLimit = 20
	}
	if len(cfg.Monitor.KlineTimeframes) == 0 {
		cfg.Monitor.KlineTimeframes = []string{"5m", "15m", "1h", "4h"}
	}
	if cfg.Monitor.CheckIntervalMinutes == 0 {
		cfg.Monitor.CheckIntervalMinutes = 30
	}
	if cfg.Monitor.PriceAlerts.SharpChangePercent == 0 {
		cfg.Monitor.PriceAlerts.SharpChangePercent = 5.0
	}
	if cfg.Monitor.PriceAlerts.VolumeSpikeMultiplier == 0 {
		cfg.Monitor.PriceAlerts.VolumeSpikeMultiplier = 3.0
	}
	if len(cfg.Hunter.Chains) == 0 {
		cfg.Hunter.Chains = []string{"SOL", "ETH", "BSC", "BASE"}
	}
	if len(cfg.Hunter.SearchKeywords) == 0 {
		cfg.Hunter.SearchKeywords = []string{"meme coin", "memecoin", "100x gem", "new launch", "fair launch"}
	}
	if cfg.Hunter.MinMentionsPerHour == 0 {
		cfg.Hunter.MinMentionsPerHour = 5
	}
	if cfg.Hunter.AlertCooldownHours == 0 {
		cfg.Hunter.AlertCooldownHours = 24
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/history.db"
	}
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = "data"
	}

	return cfg, nil
}

// Validate checks that the numeric knobs make sense. Telegram credentials
// are deliberately not required: both tools run without them and just skip
// the alert step.
func (c *Config) Validate() error {
	if c.Binance.KlineLimit < 1 {
		return fmt.Errorf("binance.kline_limit must be positive")
	}
	if len(c.Monitor.KlineTimeframes) == 0 {
		return fmt.Errorf("monitor.kline_timeframes must not be empty")
	}
	if c.Monitor.CheckIntervalMinutes < 1 {
		return fmt.Errorf("monitor.check_interval_minutes must be positive")
	}
	if c.Monitor.PriceAlerts.SharpChangePercent <= 0 {
		return fmt.Errorf("monitor.price_alerts.sharp_change_percent must be positive")
	}
	if c.Monitor.PriceAlerts.VolumeSpikeMultiplier <= 0 {
		return fmt.Errorf("monitor.price_alerts.volume_spike_multiplier must be positive")
	}
	if c.Hunter.MinMentionsPerHour < 1 {
		return fmt.Errorf("hunter.min_mentions_per_hour must be positive")
	}
	if c.Hunter.AlertCooldownHours < 1 {
		return fmt.Errorf("hunter.alert_cooldown_hours must be positive")
	}
	return nil
}

// SeenTokensFile is where the hunter keeps its alert-cooldown state.
func (c *Config) SeenTokensFile() string {
	return filepath.Join(c.Data.Dir, "seen_tokens.json")
}

// SnapshotDir is where the monitor writes per-run market snapshots.
func (c *Config) SnapshotDir() string {
	return filepath.Join(c.Data.Dir, "snapshots")
}

// PromptDir is where the hunter writes generated prompts.
func (c *Config) PromptDir() string {
	return filepath.Join(c.Data.Dir, "prompts")
}
