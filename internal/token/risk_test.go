package token

import (
	"testing"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

func TestAssessRisk_WarningText(t *testing.T) {
	// "warning" +2, "rug pull" +2, "unaudited" credits "audit" -1.
	score, level := AssessRisk("warning: possible rug pull, unaudited")
	if score != 3 {
		t.Errorf("expected score 3, got %d", score)
	}
	if level != model.RiskHigh {
		t.Errorf("expected HIGH, got %s", level)
	}
}

func TestAssessRisk_PositiveText(t *testing.T) {
	score, level := AssessRisk("audited, LP locked, solid team")
	if score != -3 {
		t.Errorf("expected score -3, got %d", score)
	}
	if level != model.RiskLow {
		t.Errorf("expected LOW, got %s", level)
	}
}

func TestAssessRisk_CriticalPileUp(t *testing.T) {
	score, level := AssessRisk("WARNING: honeypot scam, avoid at all costs")
	if score != 8 {
		t.Errorf("expected score 8, got %d", score)
	}
	if level != model.RiskCritical {
		t.Errorf("expected CRITICAL, got %s", level)
	}
}

func TestAssessRisk_RepeatedKeywordCountsOnce(t *testing.T) {
	score, _ := AssessRisk("scam scam scam")
	if score != 2 {
		t.Errorf("repeated keyword must count once, got %d", score)
	}
}

func TestAssessRisk_NeutralText(t *testing.T) {
	score, level := AssessRisk("brand new token just launched")
	if score != 0 || level != model.RiskMedium {
		t.Errorf("expected 0/MEDIUM for neutral text, got %d/%s", score, level)
	}
}

func TestLevelForScore_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  model.RiskLevel
	}{
		{5, model.RiskCritical},
		{4, model.RiskCritical},
		{3, model.RiskHigh},
		{2, model.RiskHigh},
		{1, model.RiskMedium},
		{0, model.RiskMedium},
		{-1, model.RiskLow},
		{-6, model.RiskLow},
	}
	for _, tt := range tests {
		if got := levelForScore(tt.score); got != tt.want {
			t.Errorf("score %d: expected %s, got %s", tt.score, tt.want, got)
		}
	}
}
