package snapshot

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

// Writer persists one timestamped JSON file per monitor run.
type Writer struct {
	Dir string
}

// NewWriter creates a Writer rooted at dir. The directory is created lazily
// on first write.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// WriteMarket writes the snapshot as market_YYYYMMDD_HHMMSS.json and returns
// the full path. Runs landing in the same second get a numeric suffix, so a
// scheduled check and a command-triggered one never overwrite each other.
func (w *Writer) WriteMarket(snap *model.MarketSnapshot) (string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return "", fmt.Errorf("create snapshot dir: %w", err)
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode snapshot: %w", err)
	}

	stamp := snap.GeneratedAt.Format("20060102_150405")
	for i := 0; ; i++ {
		name := fmt.Sprintf("market_%s.json", stamp)
		if i > 0 {
			name = fmt.Sprintf("market_%s_%d.json", stamp, i)
		}
		path := filepath.Join(w.Dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if os.IsExist(err) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create snapshot: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("write snapshot: %w", err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("write snapshot: %w", err)
		}
		return path, nil
	}
}
