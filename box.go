package nacl

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/curve25519"
	"golang.org/x/crypto/salsa20/salsa"
)

// zeroHSalsaNonce is the fixed all-zero nonce used when diversifying a raw
// Curve25519 shared secret into a secretbox session key.
var zeroHSalsaNonce [16]byte

// deriveSessionKey compresses a raw Curve25519 shared secret into a uniform
// 32-byte secretbox key with HSalsa20 under the zero nonce. The derivation
// is deterministic, so both sides of an exchange obtain the identical key.
func deriveSessionKey(shared [32]byte) [32]byte {
	var key [32]byte
	salsa.HSalsa20(&key, &zeroHSalsaNonce, &shared, &salsa.Sigma)
	return key
}

// Precompute derives the session key shared between a peer's public key and
// our secret key: a Curve25519 scalar multiplication followed by HSalsa20
// key diversification. This is NaCl's crypto_box_beforenm.
//
// The returned key can be passed directly to EncryptSymmetric and
// DecryptSymmetric for results identical to Encrypt and Decrypt, letting
// callers that exchange many messages with the same peer pay for the scalar
// multiplication once.
//
//export NaclPrecompute
func Precompute(peerPublic [PublicKeySize]byte, secret [SecretKeySize]byte) ([KeySize]byte, error) {
	logrus.WithFields(logrus.Fields{
		"function":        "Precompute",
		"peer_key_prefix": fmt.Sprintf("%x", peerPublic[:8]),
	}).Debug("Deriving session key from Curve25519 agreement")

	shared, err := curve25519.X25519(secret[:], peerPublic[:])
	if err != nil {
		return [KeySize]byte{}, fmt.Errorf("failed to compute shared secret: %w", err)
	}

	var sharedKey [32]byte
	copy(sharedKey[:], shared)
	sessionKey := deriveSessionKey(sharedKey)

	// Wipe the undiversified secret; only the session key leaves this scope.
	ZeroBytes(shared)
	ZeroBytes(sharedKey[:])

	return sessionKey, nil
}

// Encrypt encrypts and authenticates a message for a peer using public-key
// cryptography: the sender's secret key, the receiver's public key, and a
// nonce. This is NaCl's crypto_box.
//
// Nonces MUST NOT be reused with a given public/secret key pair.
//
//export NaclEncrypt
func Encrypt(message []byte, nonce Nonce, peerPublic [PublicKeySize]byte, secret [SecretKeySize]byte) ([]byte, error) {
	sessionKey, err := Precompute(peerPublic, secret)
	if err != nil {
		return nil, err
	}

	ciphertext := EncryptSymmetric(message, nonce, sessionKey)
	ZeroBytes(sessionKey[:])

	return ciphertext, nil
}

// Decrypt authenticates and decrypts a ciphertext produced by Encrypt,
// using the sender's public key, the receiver's secret key, and the nonce
// the message was sealed with. This is NaCl's crypto_box_open.
//
// It returns ErrAuthFailed if the ciphertext has been tampered with or is
// too short to be valid.
//
//export NaclDecrypt
func Decrypt(ciphertext []byte, nonce Nonce, peerPublic [PublicKeySize]byte, secret [SecretKeySize]byte) ([]byte, error) {
	sessionKey, err := Precompute(peerPublic, secret)
	if err != nil {
		return nil, err
	}

	plaintext, err := DecryptSymmetric(ciphertext, nonce, sessionKey)
	ZeroBytes(sessionKey[:])
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}
