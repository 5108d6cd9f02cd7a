package wallet

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

var generateKey = crypto.GenerateKey

// IsValidKey reports whether s is a well-formed hex wallet address
func IsValidKey(s string) bool {
	return common.IsHexAddress(s)
}

// Normalize returns the checksummed form of a wallet address
func Normalize(s string) string {
	return common.HexToAddress(s).Hex()
}

// GeneratePlaceholderKey derives a fresh wallet address for members
// registered without one. The private key is discarded; only the
// address is used as a unique placeholder until the member links a
// real wallet.
func GeneratePlaceholderKey() (string, error) {
	key, err := generateKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate wallet key: %w", err)
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}
