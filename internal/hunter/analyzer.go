package hunter

import (
	"log"
	"strings"
	"time"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
	"github.com/hqzizania/crypto-monitoring-tools/internal/seen"
	"github.com/hqzizania/crypto-monitoring-tools/internal/token"
)

// AnalyzeFindings mines free-text agent findings for contract addresses,
// classifies and risk-scores each one, and drops tokens the store has
// already alerted on within its cooldown. New detections are marked in the
// store before being returned.
func AnalyzeFindings(text string, store *seen.Store) []model.TokenDetection {
	addresses := token.ExtractAddresses(text)
	if len(addresses) == 0 {
		return nil
	}

	score, level := token.AssessRisk(text)

	detections := make([]model.TokenDetection, 0, len(addresses))
	for _, addr := range addresses {
		chain := token.DetectChain(text, addr)
		if store.Seen(addr, chain) {
			log.Printf("[INFO] %s (%s) still in cooldown, skipping", addr, chain)
			continue
		}
		store.Mark(addr, chain)

		detections = append(detections, model.TokenDetection{
			Address:    addr,
			Chain:      chain,
			RiskLevel:  level,
			RiskScore:  score,
			Context:    contextLine(text, addr),
			DetectedAt: time.Now(),
		})
	}
	return detections
}

// contextLine returns the first line of the findings that mentions the
// address, for inclusion in alerts.
func contextLine(text, addr string) string {
	for _, line := range strings.Split(text, "\n") {
		if strings.Contains(line, addr) {
			return strings.TrimSpace(line)
		}
	}
	return ""
}
