package lookup

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"math/big"
)

const (
	keySeedLength = 32
	keyAlphabet   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// KeyFunc generates a LookupKey.
type KeyFunc func() (string, error)

// NewKey returns the hex SHA-256 digest of a random alphanumeric string.
// Uniqueness is probabilistic; keys are not checked against the store.
func NewKey() (string, error) {
	seed, err := randomString(keySeedLength)
	if err != nil {
		return "", fmt.Errorf("cannot generate lookup key: %w", err)
	}
	sum := sha256.Sum256([]byte(seed))
	return hex.EncodeToString(sum[:]), nil
}

func randomString(n int) (string, error) {
	limit := big.NewInt(int64(len(keyAlphabet)))
	buf := make([]byte, n)
	for i := range buf {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", err
		}
		buf[i] = keyAlphabet[idx.Int64()]
	}
	return string(buf), nil
}
