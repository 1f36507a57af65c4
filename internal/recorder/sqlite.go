package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

// SQLiteRecorder persists monitor runs and token detections to a SQLite
// database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS monitor_runs (
			id                 INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp          INTEGER NOT NULL,
			symbol             TEXT,
			last_price         REAL,
			change_percent_24h REAL,
			volume_24h         REAL,
			high_24h           REAL,
			low_24h            REAL,
			trade_count        INTEGER,
			signals            TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON monitor_runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS timeframe_results (
			id                   INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id               INTEGER NOT NULL,
			interval             TEXT,
			trend                TEXT,
			strength             REAL,
			short_ma             REAL,
			medium_ma            REAL,
			price_change_percent REAL,
			rsi                  REAL,
			volume_spike         INTEGER,
			current_volume       REAL,
			avg_volume           REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_tf_run ON timeframe_results(run_id)`,

		`CREATE TABLE IF NOT EXISTS token_detections (
			id         INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp  INTEGER NOT NULL,
			address    TEXT,
			chain      TEXT,
			risk_level TEXT,
			risk_score INTEGER,
			context    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_detections_ts ON token_detections(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordMonitorRun inserts one run row plus a child row per timeframe.
func (r *SQLiteRecorder) RecordMonitorRun(snap *model.MarketSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := snap.Ticker
	res, err := r.db.Exec(`INSERT INTO monitor_runs
		(timestamp, symbol, last_price, change_percent_24h, volume_24h,
		 high_24h, low_24h, trade_count, signals)
		VALUES (?,?,?,?,?,?,?,?,?)`,
		snap.GeneratedAt.Unix(), snap.Symbol, t.LastPrice, t.ChangePercent24h,
		t.Volume24h, t.High24h, t.Low24h, t.TradeCount,
		strings.Join(snap.Signals, "\n"),
	)
	if err != nil {
		return fmt.Errorf("insert monitor run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("run id: %w", err)
	}

	for _, tf := range snap.Timeframes {
		ind := tf.Result
		if _, err := r.db.Exec(`INSERT INTO timeframe_results
			(run_id, interval, trend, strength, short_ma, medium_ma,
			 price_change_percent, rsi, volume_spike, current_volume, avg_volume)
			VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
			runID, tf.Interval, string(ind.Trend), ind.Strength, ind.ShortMA,
			ind.MediumMA, ind.PriceChangePercent, ind.RSI,
			boolToInt(ind.VolumeSpike), ind.CurrentVolume, ind.AvgVolume,
		); err != nil {
			return fmt.Errorf("insert %s result: %w", tf.Interval, err)
		}
	}
	return nil
}

// RecordDetections inserts one row per detection.
func (r *SQLiteRecorder) RecordDetections(detections []model.TokenDetection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, d := range detections {
		ts := d.DetectedAt
		if ts.IsZero() {
			ts = time.Now()
		}
		if _, err := r.db.Exec(`INSERT INTO token_detections
			(timestamp, address, chain, risk_level, risk_score, context)
			VALUES (?,?,?,?,?,?)`,
			ts.Unix(), d.Address, string(d.Chain), string(d.RiskLevel),
			d.RiskScore, d.Context,
		); err != nil {
			return fmt.Errorf("insert detection %s: %w", d.Address, err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
