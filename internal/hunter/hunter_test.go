package hunter

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/hqzizania/crypto-monitoring-tools/internal/config"
	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
	"github.com/hqzizania/crypto-monitoring-tools/internal/seen"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Hunter.InfluencerAccounts = []string{"@degen_caller", "@memewatch"}
	return cfg
}

func testStore(t *testing.T) *seen.Store {
	return seen.NewStore(filepath.Join(t.TempDir(), "seen_tokens.json"), 24*time.Hour)
}

func TestBuildSearchPrompt(t *testing.T) {
	cfg := testConfig(t)
	prompt := BuildSearchPrompt(cfg, time.Date(2026, 2, 3, 14, 30, 0, 0, time.UTC))

	for _, want := range []string{
		"2026-02-03 14:30 UTC",
		"SOL, ETH, BSC, BASE",
		"meme coin",
		"@degen_caller, @memewatch",
		"at least 5 times in the past hour",
		"contract address",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestBuildResearchPrompt(t *testing.T) {
	d := model.TokenDetection{
		Address:   "So11111111111111111111111111111111111111112",
		Chain:     model.ChainSOL,
		RiskLevel: model.RiskHigh,
		RiskScore: 3,
		Context:   "everyone is aping this",
	}
	prompt := BuildResearchPrompt(d)

	for _, want := range []string{d.Address, "SOL", "HIGH (score 3)", "everyone is aping this"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}

func TestAnalyzeFindings_DetectsAndClassifies(t *testing.T) {
	findings := "warning: possible rug pull, unaudited\n" +
		"CA: 0xABCDEF0123456789ABCDEF0123456789ABCDEF01 trending on ethereum"

	detections := AnalyzeFindings(findings, testStore(t))
	if len(detections) != 1 {
		t.Fatalf("expected 1 detection, got %d", len(detections))
	}

	d := detections[0]
	if d.Address != "0xABCDEF0123456789ABCDEF0123456789ABCDEF01" {
		t.Errorf("unexpected address: %s", d.Address)
	}
	if d.Chain != model.ChainETH {
		t.Errorf("expected ETH, got %s", d.Chain)
	}
	if d.RiskScore != 3 || d.RiskLevel != model.RiskHigh {
		t.Errorf("expected risk 3/HIGH, got %d/%s", d.RiskScore, d.RiskLevel)
	}
	if !strings.Contains(d.Context, "trending on ethereum") {
		t.Errorf("expected the mentioning line as context, got %q", d.Context)
	}
}

func TestAnalyzeFindings_CooldownSuppressesRepeats(t *testing.T) {
	store := testStore(t)
	findings := "fresh solana gem So11111111111111111111111111111111111111112"

	first := AnalyzeFindings(findings, store)
	if len(first) != 1 {
		t.Fatalf("expected 1 detection on first pass, got %d", len(first))
	}

	second := AnalyzeFindings(findings, store)
	if len(second) != 0 {
		t.Errorf("expected repeat detection to be suppressed, got %d", len(second))
	}
}

func TestAnalyzeFindings_NoAddresses(t *testing.T) {
	if got := AnalyzeFindings("nothing but vibes and rumors", testStore(t)); got != nil {
		t.Errorf("expected nil for text without addresses, got %v", got)
	}
}
