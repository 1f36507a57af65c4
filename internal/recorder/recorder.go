package recorder

import "github.com/hqzizania/crypto-monitoring-tools/internal/model"

// Recorder persists run history for later inspection. Snapshot JSON files
// remain the primary artifact; this is a queryable sidecar.
type Recorder interface {
	RecordMonitorRun(snap *model.MarketSnapshot) error
	RecordDetections(detections []model.TokenDetection) error
	Close() error
}
