package hunter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hqzizania/crypto-monitoring-tools/internal/config"
	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

// BuildSearchPrompt renders the search instructions handed to an external
// AI agent with web access. The agent's free-text findings are fed back
// through AnalyzeFindings.
func BuildSearchPrompt(cfg *config.Config, now time.Time) string {
	var b strings.Builder

	b.WriteString("You are a crypto meme-token scout.\n")
	b.WriteString(fmt.Sprintf("Current time: %s\n\n", now.UTC().Format("2006-01-02 15:04 UTC")))

	b.WriteString("Search X/Twitter and the open web for meme tokens that launched or started trending within the last 24 hours.\n\n")
	b.WriteString(fmt.Sprintf("Chains to cover: %s\n", strings.Join(cfg.Hunter.Chains, ", ")))
	b.WriteString(fmt.Sprintf("Search terms: %s\n", strings.Join(cfg.Hunter.SearchKeywords, ", ")))
	if len(cfg.Hunter.InfluencerAccounts) > 0 {
		b.WriteString(fmt.Sprintf("Priority accounts to check: %s\n", strings.Join(cfg.Hunter.InfluencerAccounts, ", ")))
	}

	b.WriteString(fmt.Sprintf("\nOnly report tokens mentioned at least %d times in the past hour.\n", cfg.Hunter.MinMentionsPerHour))
	b.WriteString("For every candidate include:\n")
	b.WriteString("  - the contract address (CA) and its chain\n")
	b.WriteString("  - rough mentions per hour and which accounts are pushing it\n")
	b.WriteString("  - links to the loudest posts\n")
	b.WriteString("  - any risk chatter: rug pull claims, honeypot reports, audit status, LP lock\n")
	b.WriteString("\nReply in plain text. Contract addresses must appear verbatim.\n")

	return b.String()
}

// BuildResearchPrompt renders a follow-up deep-dive prompt for one detected
// token.
func BuildResearchPrompt(d model.TokenDetection) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Research the %s token with contract address %s.\n\n", d.Chain, d.Address))
	b.WriteString("Cover:\n")
	b.WriteString("  - deployment time, liquidity, and holder distribution\n")
	b.WriteString("  - whether the contract is verified and the LP is locked\n")
	b.WriteString("  - the communities and accounts promoting it\n")
	b.WriteString("  - red flags: mint authority, honeypot behavior, dev wallet dumps\n")
	if d.Context != "" {
		b.WriteString(fmt.Sprintf("\nIt surfaced in this context:\n%s\n", d.Context))
	}
	b.WriteString(fmt.Sprintf("\nKeyword screening put it at %s (score %d); verify or refute that.\n", d.RiskLevel, d.RiskScore))

	return b.String()
}

// SavePrompt writes a prompt under dir as <prefix>_<timestamp>.txt and
// returns the full path.
func SavePrompt(dir, prefix, text string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create prompt dir: %w", err)
	}
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", prefix, time.Now().Format("20060102_150405")))
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("write prompt: %w", err)
	}
	return path, nil
}
