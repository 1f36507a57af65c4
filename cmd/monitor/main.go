package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hqzizania/crypto-monitoring-tools/internal/collector"
	"github.com/hqzizania/crypto-monitoring-tools/internal/config"
	"github.com/hqzizania/crypto-monitoring-tools/internal/notifier"
	"github.com/hqzizania/crypto-monitoring-tools/internal/recorder"
	"github.com/hqzizania/crypto-monitoring-tools/internal/scheduler"
	"github.com/hqzizania/crypto-monitoring-tools/internal/snapshot"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	once := flag.Bool("once", false, "run a single market check and exit")
	flag.Parse()

	log.Println("[INFO] market monitor starting...")

	// .env is optional; real environment variables win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("[INFO] loaded .env")
	}

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher. Keys are only needed for private endpoints, so empty
	// values are fine here.
	fetcher := collector.NewBinanceFetcher(os.Getenv("BINANCE_API_KEY"), os.Getenv("BINANCE_SECRET_KEY"), cfg.Proxy)
	log.Printf("[INFO] data source: %s, symbol: %s", fetcher.Name(), cfg.Binance.Symbol)

	// Init collector
	col := collector.NewCollector(fetcher, cfg.Binance.Symbol, cfg.Monitor.KlineTimeframes)
	col.KlineLimit = cfg.Binance.KlineLimit
	col.SpikeMultiplier = cfg.Monitor.PriceAlerts.VolumeSpikeMultiplier
	col.SharpChangePct = cfg.Monitor.PriceAlerts.SharpChangePercent

	// Init Telegram notifier (optional)
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if !tn.Enabled() {
		log.Println("[INFO] Telegram not configured, reports go to console only")
	}

	// Init recorder
	var rec recorder.Recorder
	if sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath); err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		rec = recorder.NewNoopRecorder()
	} else {
		rec = sr
		defer sr.Close()
	}

	sw := snapshot.NewWriter(cfg.SnapshotDir())

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sched := scheduler.NewScheduler(ctx, col, tn, rec, sw)

	if *once {
		sched.RunNow()
		return
	}

	if err := sched.Register(cfg.Monitor.CheckIntervalMinutes); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Start Telegram polling for /report and /status
	if tn.Enabled() {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Println("[INFO] Telegram polling started")
	}

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing market check now")
		go sched.RunNow()
	}

	log.Printf("[INFO] market monitor is running (every %dm). Press Ctrl+C to stop.", cfg.Monitor.CheckIntervalMinutes)

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] market monitor stopped")
}
