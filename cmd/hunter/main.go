package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/hqzizania/crypto-monitoring-tools/internal/config"
	"github.com/hqzizania/crypto-monitoring-tools/internal/hunter"
	"github.com/hqzizania/crypto-monitoring-tools/internal/notifier"
	"github.com/hqzizania/crypto-monitoring-tools/internal/recorder"
	"github.com/hqzizania/crypto-monitoring-tools/internal/seen"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	findings := flag.String("findings", "", "path to agent findings to analyze ('-' for stdin); omit to generate a search prompt")
	flag.Parse()

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

	if *findings == "" {
		generatePrompt(cfg)
		return
	}
	analyzeFindings(cfg, *findings)
}

// generatePrompt prints the search prompt and keeps a copy under the prompt
// directory.
func generatePrompt(cfg *config.Config) {
	prompt := hunter.BuildSearchPrompt(cfg, time.Now())
	fmt.Println(prompt)

	if path, err := hunter.SavePrompt(cfg.PromptDir(), "hunt", prompt); err != nil {
		log.Printf("[WARN] save prompt: %v", err)
	} else {
		log.Printf("[INFO] prompt saved: %s", path)
	}
}

func analyzeFindings(cfg *config.Config, source string) {
	text, err := readFindings(source)
	if err != nil {
		log.Fatalf("[FATAL] read findings: %v", err)
	}

	store := seen.NewStore(cfg.SeenTokensFile(), time.Duration(cfg.Hunter.AlertCooldownHours)*time.Hour)

	detections := hunter.AnalyzeFindings(text, store)
	if len(detections) == 0 {
		log.Println("[INFO] no new tokens found")
		return
	}
	log.Printf("[INFO] %d new token(s) detected", len(detections))

	alert := notifier.FormatDetectionAlert(detections)
	fmt.Println(alert)

	for _, d := range detections {
		prompt := hunter.BuildResearchPrompt(d)
		if path, err := hunter.SavePrompt(cfg.PromptDir(), "research", prompt); err != nil {
			log.Printf("[WARN] save research prompt for %s: %v", d.Address, err)
		} else {
			log.Printf("[INFO] research prompt saved: %s", path)
		}
	}

	// Record to SQLite
	var rec recorder.Recorder
	if sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath); err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		rec = recorder.NewNoopRecorder()
	} else {
		rec = sr
		defer sr.Close()
	}
	if err := rec.RecordDetections(detections); err != nil {
		log.Printf("[ERROR] record detections: %v", err)
	}

	// Alert via Telegram when configured
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	if tn.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		if err := tn.SendWithRetry(ctx, alert, 3); err != nil {
			log.Printf("[ERROR] send alert: %v", err)
		}
	}
}

func readFindings(source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	data, err := os.ReadFile(source)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
