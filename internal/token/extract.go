package token

import (
	"regexp"
	"sort"
)

// Contract address shapes: EVM (0x plus 40 hex chars) and base58
// (Solana-style, 32 to 44 chars, no 0/O/I/l).
var (
	evmAddressRe    = regexp.MustCompile(`0x[a-fA-F0-9]{40}`)
	base58AddressRe = regexp.MustCompile(`[1-9A-HJ-NP-Za-km-z]{32,44}`)
)

// ExtractAddresses returns the set of candidate contract addresses found in
// the text. Duplicates collapse to one entry; the result is sorted so
// repeated runs over the same text produce the same order.
func ExtractAddresses(text string) []string {
	seen := make(map[string]struct{})
	for _, m := range evmAddressRe.FindAllString(text, -1) {
		seen[m] = struct{}{}
	}
	for _, m := range base58AddressRe.FindAllString(text, -1) {
		seen[m] = struct{}{}
	}
	if len(seen) == 0 {
		return nil
	}
	addresses := make([]string, 0, len(seen))
	for a := range seen {
		addresses = append(addresses, a)
	}
	sort.Strings(addresses)
	return addresses
}
