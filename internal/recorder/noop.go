package recorder

import "github.com/hqzizania/crypto-monitoring-tools/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not available.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordMonitorRun(_ *model.MarketSnapshot) error       { return nil }
func (n *NoopRecorder) RecordDetections(_ []model.TokenDetection) error      { return nil }
func (n *NoopRecorder) Close() error                                         { return nil }
