package nacl

import (
	"crypto/rand"
	"crypto/sha512"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/curve25519"
)

// KeyPair represents a NaCl crypto_box Curve25519 key pair.
//
//export NaclKeyPair
type KeyPair struct {
	Public  [PublicKeySize]byte
	Private [SecretKeySize]byte
}

// GenerateKeyPair creates a new random key pair. If random is nil the
// operating system CSPRNG (crypto/rand) is used; tests may inject a
// deterministic reader instead.
//
// The raw entropy is passed through SHA-512/256 before use as a scalar,
// extracting the entropy to guard against biased or partially broken random
// sources.
//
//export NaclGenerateKeyPair
func GenerateKeyPair(random io.Reader) (*KeyPair, error) {
	if random == nil {
		random = rand.Reader
	}

	keyPair := &KeyPair{}
	if _, err := io.ReadFull(random, keyPair.Private[:]); err != nil {
		return nil, fmt.Errorf("failed to read key entropy: %w", err)
	}
	keyPair.Private = sha512.Sum512_256(keyPair.Private[:])

	public, err := curve25519.X25519(keyPair.Private[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key: %w", err)
	}
	copy(keyPair.Public[:], public)

	logrus.WithFields(logrus.Fields{
		"function":          "GenerateKeyPair",
		"public_key_prefix": fmt.Sprintf("%x", keyPair.Public[:8]),
	}).Info("Generated new key pair")

	return keyPair, nil
}

// FromSecretKey rebuilds a key pair from an existing secret key by deriving
// the matching public key. The secret key is used as-is; it is expected to
// already be a valid Curve25519 scalar.
//
//export NaclKeyPairFromSecretKey
func FromSecretKey(secretKey [SecretKeySize]byte) (*KeyPair, error) {
	if isZeroKey(secretKey) {
		return nil, ErrInvalidSecretKey
	}

	public, err := curve25519.X25519(secretKey[:], curve25519.Basepoint)
	if err != nil {
		return nil, fmt.Errorf("failed to derive public key: %w", err)
	}

	keyPair := &KeyPair{Private: secretKey}
	copy(keyPair.Public[:], public)

	return keyPair, nil
}

// isZeroKey checks if a key consists of all zeros.
func isZeroKey(key [32]byte) bool {
	for _, b := range key {
		if b != 0 {
			return false
		}
	}
	return true
}
