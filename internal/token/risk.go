package token

import (
	"strings"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

// Keyword classes for the risk heuristic. Each class present in the text
// counts exactly once no matter how often it occurs. Matching is
// case-insensitive substring matching, so "unaudited" still credits
// "audit".
var (
	riskKeywords     = []string{"rug pull", "scam", "honeypot", "beware", "warning", "avoid"}
	positiveKeywords = []string{"audit", "safe", "verified", "legit", "solid team", "lp locked"}
)

// AssessRisk scores the text against the keyword classes (+2 per risk
// keyword, -1 per positive keyword) and maps the score to a level.
func AssessRisk(text string) (int, model.RiskLevel) {
	t := strings.ToLower(text)
	score := 0
	for _, kw := range riskKeywords {
		if strings.Contains(t, kw) {
			score += 2
		}
	}
	for _, kw := range positiveKeywords {
		if strings.Contains(t, kw) {
			score--
		}
	}
	return score, levelForScore(score)
}

func levelForScore(score int) model.RiskLevel {
	switch {
	case score >= 4:
		return model.RiskCritical
	case score >= 2:
		return model.RiskHigh
	case score >= 0:
		return model.RiskMedium
	}
	return model.RiskLow
}
