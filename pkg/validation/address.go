package validation

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// ValidateWalletAddress validates a wallet address of the form
// 0x followed by exactly 40 hexadecimal characters.
func ValidateWalletAddress(addr string) error {
	if addr == "" {
		return fmt.Errorf("address cannot be empty")
	}

	if !strings.HasPrefix(addr, "0x") {
		return fmt.Errorf("address must start with 0x")
	}
	normalized := addr[2:]

	// Check length (40 hex characters = 20 bytes)
	if len(normalized) != 40 {
		return fmt.Errorf("invalid address length: expected 40 characters (without 0x), got %d", len(normalized))
	}

	// Validate hex format
	if _, err := hex.DecodeString(normalized); err != nil {
		return fmt.Errorf("invalid hex address: %w", err)
	}

	return nil
}
