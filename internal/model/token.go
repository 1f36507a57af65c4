package model

import "time"

// Chain identifies the blockchain a contract address lives on.
type Chain string

const (
	ChainSOL     Chain = "SOL"
	ChainETH     Chain = "ETH"
	ChainBSC     Chain = "BSC"
	ChainBASE    Chain = "BASE"
	ChainUnknown Chain = "UNKNOWN"
)

// RiskLevel buckets a keyword risk score.
type RiskLevel string

const (
	RiskLow      RiskLevel = "LOW"
	RiskMedium   RiskLevel = "MEDIUM"
	RiskHigh     RiskLevel = "HIGH"
	RiskCritical RiskLevel = "CRITICAL"
)

// TokenDetection is one newly discovered contract address together with its
// heuristic classification.
type TokenDetection struct {
	Address    string    `json:"address"`
	Chain      Chain     `json:"chain"`
	RiskLevel  RiskLevel `json:"risk_level"`
	RiskScore  int       `json:"risk_score"`
	Context    string    `json:"context,omitempty"`
	DetectedAt time.Time `json:"detected_at"`
}
