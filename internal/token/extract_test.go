package token

import "testing"

const (
	evmAddr     = "0xABCDEF0123456789ABCDEF0123456789ABCDEF01"
	solMint     = "So11111111111111111111111111111111111111112"
	shortBase58 = "2xWpfA7yXqV3mN4bC5dE6fG7hJ8kL9mP2qRs"
)

func TestExtractAddresses_EVM(t *testing.T) {
	got := ExtractAddresses("new gem dropped " + evmAddr + " get in")
	if len(got) != 1 || got[0] != evmAddr {
		t.Errorf("expected exactly [%s], got %v", evmAddr, got)
	}
}

func TestExtractAddresses_DeduplicatesRepeats(t *testing.T) {
	got := ExtractAddresses(evmAddr + " posted again " + evmAddr)
	if len(got) != 1 {
		t.Errorf("expected one entry for a repeated address, got %v", got)
	}
}

func TestExtractAddresses_Base58(t *testing.T) {
	got := ExtractAddresses("wrapped sol " + solMint + " mooning")
	if len(got) != 1 || got[0] != solMint {
		t.Errorf("expected exactly [%s], got %v", solMint, got)
	}
}

func TestExtractAddresses_MixedChains(t *testing.T) {
	got := ExtractAddresses(evmAddr + " and " + solMint)
	if len(got) != 2 {
		t.Fatalf("expected 2 addresses, got %v", got)
	}
	// Sorted output: digits sort before uppercase letters.
	if got[0] != evmAddr || got[1] != solMint {
		t.Errorf("expected sorted [%s %s], got %v", evmAddr, solMint, got)
	}
}

func TestExtractAddresses_NoMatches(t *testing.T) {
	if got := ExtractAddresses("nothing to see here, just chatter"); got != nil {
		t.Errorf("expected nil for plain text, got %v", got)
	}
}
