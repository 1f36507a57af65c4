package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not be an error: %v", err)
	}

	if cfg.Binance.Symbol != "BTCUSDT" {
		t.Errorf("expected default symbol BTCUSDT, got %s", cfg.Binance.Symbol)
	}
	if cfg.Binance.KlineLimit != 20 {
		t.Errorf("expected default kline limit 20, got %d", cfg.Binance.KlineLimit)
	}
	if len(cfg.Monitor.KlineTimeframes) != 4 || cfg.Monitor.KlineTimeframes[0] != "5m" {
		t.Errorf("unexpected default timeframes: %v", cfg.Monitor.KlineTimeframes)
	}
	if cfg.Monitor.CheckIntervalMinutes != 30 {
		t.Errorf("expected default interval 30, got %d", cfg.Monitor.CheckIntervalMinutes)
	}
	if cfg.Monitor.PriceAlerts.SharpChangePercent != 5.0 {
		t.Errorf("expected default sharp change 5.0, got %v", cfg.Monitor.PriceAlerts.SharpChangePercent)
	}
	if cfg.Monitor.PriceAlerts.VolumeSpikeMultiplier != 3.0 {
		t.Errorf("expected default spike multiplier 3.0, got %v", cfg.Monitor.PriceAlerts.VolumeSpikeMultiplier)
	}
	if cfg.Hunter.AlertCooldownHours != 24 {
		t.Errorf("expected default cooldown 24h, got %d", cfg.Hunter.AlertCooldownHours)
	}
	if cfg.Hunter.MinMentionsPerHour != 5 {
		t.Errorf("expected default min mentions 5, got %d", cfg.Hunter.MinMentionsPerHour)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate: %v", err)
	}
}

func TestLoad_YAMLAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
binance:
  symbol: ETHUSDT
monitor:
  kline_timeframes: ["1h"]
  check_interval_minutes: 10
hunter:
  chains: ["SOL"]
`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BINANCE_SYMBOL", "SOLUSDT")
	t.Setenv("CHECK_INTERVAL_MINUTES", "7")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Environment wins over the file.
	if cfg.Binance.Symbol != "SOLUSDT" {
		t.Errorf("expected env override SOLUSDT, got %s", cfg.Binance.Symbol)
	}
	if cfg.Monitor.CheckIntervalMinutes != 7 {
		t.Errorf("expected env override 7, got %d", cfg.Monitor.CheckIntervalMinutes)
	}
	// File wins over defaults.
	if len(cfg.Monitor.KlineTimeframes) != 1 || cfg.Monitor.KlineTimeframes[0] != "1h" {
		t.Errorf("unexpected timeframes: %v", cfg.Monitor.KlineTimeframes)
	}
	if len(cfg.Hunter.Chains) != 1 || cfg.Hunter.Chains[0] != "SOL" {
		t.Errorf("unexpected chains: %v", cfg.Hunter.Chains)
	}
	// Untouched sections still get defaults.
	if cfg.Binance.KlineLimit != 20 {
		t.Errorf("expected default kline limit, got %d", cfg.Binance.KlineLimit)
	}
}

func TestValidate_RejectsBadValues(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}

	cfg.Monitor.CheckIntervalMinutes = -5
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative check interval")
	}

	cfg.Monitor.CheckIntervalMinutes = 30
	cfg.Monitor.PriceAlerts.VolumeSpikeMultiplier = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative spike multiplier")
	}
}

func TestDataPaths(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if got := cfg.SeenTokensFile(); got != filepath.Join("data", "seen_tokens.json") {
		t.Errorf("unexpected seen-tokens path: %s", got)
	}
	if got := cfg.SnapshotDir(); got != filepath.Join("data", "snapshots") {
		t.Errorf("unexpected snapshot dir: %s", got)
	}
}
