package nacl

import (
	"crypto/rand"
	"fmt"
	"io"
)

// Nonce is a 24-byte value used for encryption. Uniqueness per key is the
// caller's obligation; it is not tracked here.
type Nonce [NonceSize]byte

// GenerateNonce creates a cryptographically secure random nonce. If random
// is nil the operating system CSPRNG (crypto/rand) is used.
//
// A 24-byte nonce is large enough that random generation carries negligible
// collision risk, so this is the recommended way to pick nonces.
//
//export NaclGenerateNonce
func GenerateNonce(random io.Reader) (Nonce, error) {
	if random == nil {
		random = rand.Reader
	}

	var nonce Nonce
	if _, err := io.ReadFull(random, nonce[:]); err != nil {
		return Nonce{}, fmt.Errorf("failed to read nonce entropy: %w", err)
	}

	return nonce, nil
}
