package token

import (
	"strings"

	"github.com/hqzizania/crypto-monitoring-tools/internal/model"
)

// DetectChain classifies which chain an address belongs to from keywords in
// the surrounding text, checked in fixed priority order: SOL, BASE, BSC,
// ETH. The length rule covers bare base58 addresses, which run longer than
// the 40-char payload of an EVM address; 0x addresses skip it and fall
// through to the ETH rule.
func DetectChain(text, address string) model.Chain {
	t := strings.ToLower(text)
	isEVM := strings.HasPrefix(address, "0x")

	switch {
	case strings.Contains(t, "solana") || strings.Contains(t, "sol") || (!isEVM && len(address) > 40):
		return model.ChainSOL
	case strings.Contains(t, "base"):
		return model.ChainBASE
	case strings.Contains(t, "bsc") || strings.Contains(t, "binance smart chain"):
		return model.ChainBSC
	case strings.Contains(t, "ethereum") || strings.Contains(t, "eth") || isEVM:
		return model.ChainETH
	}
	return model.ChainUnknown
}
