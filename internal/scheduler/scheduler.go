package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/hqzizania/crypto-monitoring-tools/internal/collector"
	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
	"github.com/hqzizania/crypto-monitoring-tools/internal/notifier"
	"github.com/hqzizania/crypto-monitoring-tools/internal/recorder"
	"github.com/hqzizania/crypto-monitoring-tools/internal/snapshot"
)

// Scheduler drives the periodic market checks.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  *notifier.TelegramNotifier
	Recorder  recorder.Recorder
	Snapshots *snapshot.Writer
	Ctx       context.Context

	mu   sync.Mutex
	last *model.MarketSnapshot
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder, sw *snapshot.Writer) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(),
		Collector: col,
		Notifier:  tn,
		Recorder:  rec,
		Snapshots: sw,
		Ctx:       ctx,
	}
}

// Register schedules the market check every intervalMinutes.
func (s *Scheduler) Register(intervalMinutes int) error {
	expr := fmt.Sprintf("@every %dm", intervalMinutes)
	if _, err := s.Cron.AddFunc(expr, s.marketCheckTask); err != nil {
		return fmt.Errorf("register market check: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes one market check immediately (manual trigger, -once mode,
// RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.marketCheckTask()
}

func (s *Scheduler) marketCheckTask() {
	log.Println("[INFO] running market check")

	snap, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		log.Printf("[ERROR] market check aborted: %v", err)
		return
	}

	s.mu.Lock()
	s.last = snap
	s.mu.Unlock()

	report := notifier.FormatMarketReport(snap)
	fmt.Println(report)

	if path, err := s.Snapshots.WriteMarket(snap); err != nil {
		log.Printf("[ERROR] write snapshot: %v", err)
	} else {
		log.Printf("[INFO] snapshot saved: %s", path)
	}

	if err := s.Recorder.RecordMonitorRun(snap); err != nil {
		log.Printf("[ERROR] record monitor run: %v", err)
	}

	s.trySend(report)
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/report":
		s.marketCheckTask()
		return ""
	case "/status":
		s.mu.Lock()
		last := s.last
		s.mu.Unlock()
		if last == nil {
			return "No market check has completed yet."
		}
		return notifier.FormatMarketReport(last)
	default:
		return "Commands:\n• /report - run a market check now\n• /status - show the last report"
	}
}

func (s *Scheduler) trySend(text string) {
	if !s.Notifier.Enabled() {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
