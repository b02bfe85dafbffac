package nacl

import (
	"golang.org/x/crypto/poly1305"
	"golang.org/x/crypto/salsa20/salsa"
)

// macKeySize is the number of leading keystream bytes reserved for the
// one-time Poly1305 key. This matches the NaCl secretbox layout exactly: the
// first 16 bytes form the Poly1305 "r" value and the next 16 the "s" value.
const macKeySize = 32

// keystream fills stream, which must be zero-filled on entry, with the
// XSalsa20 keystream for the given nonce and key. The first 16 bytes of the
// nonce select the HSalsa20 subkey and the remaining 8 seed the Salsa20
// block counter, as in the NaCl crypto_secretbox construction.
func keystream(stream []byte, nonce Nonce, key [32]byte) {
	var subKey [32]byte
	var hNonce [16]byte
	copy(hNonce[:], nonce[:16])
	salsa.HSalsa20(&subKey, &hNonce, &key, &salsa.Sigma)

	var counter [16]byte
	copy(counter[:], nonce[16:])
	salsa.XORKeyStream(stream, stream, &counter, &subKey)

	ZeroBytes(subKey[:])
}

// EncryptSymmetric encrypts and authenticates a message with a symmetric
// key using the NaCl crypto_secretbox construction (XSalsa20 + Poly1305).
// The returned ciphertext is a 16-byte authentication tag followed by the
// encrypted payload, len(message)+Overhead bytes in total.
//
// The nonce MUST NOT be reused with the same key. Nonces are long enough
// that randomly generated nonces have negligible risk of collision.
//
//export NaclEncryptSymmetric
func EncryptSymmetric(message []byte, nonce Nonce, key [32]byte) []byte {
	// The first macKeySize bytes of keystream are reserved for the one-time
	// authenticator key; the payload is XORed against the remainder.
	stream := make([]byte, macKeySize+len(message))
	keystream(stream, nonce, key)

	var macKey [32]byte
	copy(macKey[:], stream[:macKeySize])

	ciphertext := make([]byte, Overhead+len(message))
	payload := ciphertext[Overhead:]
	for i, b := range message {
		payload[i] = b ^ stream[macKeySize+i]
	}

	var tag [poly1305.TagSize]byte
	poly1305.Sum(&tag, payload, &macKey)
	copy(ciphertext[:Overhead], tag[:])

	ZeroBytes(macKey[:])
	ZeroBytes(stream)

	return ciphertext
}

// DecryptSymmetric authenticates and decrypts a crypto_secretbox ciphertext
// with a symmetric key. It returns ErrAuthFailed if the ciphertext is too
// short to carry a tag or if the tag does not match.
//
// The tag comparison runs in constant time via Poly1305's verifier. No
// plaintext bytes are recovered unless authentication succeeds.
//
//export NaclDecryptSymmetric
func DecryptSymmetric(ciphertext []byte, nonce Nonce, key [32]byte) ([]byte, error) {
	if len(ciphertext) < Overhead {
		// Too short to carry a tag. Nothing secret-dependent has been
		// computed yet, so rejecting early leaks nothing exploitable.
		return nil, ErrAuthFailed
	}

	payload := ciphertext[Overhead:]

	stream := make([]byte, macKeySize+len(payload))
	keystream(stream, nonce, key)

	var macKey [32]byte
	copy(macKey[:], stream[:macKeySize])

	var tag [poly1305.TagSize]byte
	copy(tag[:], ciphertext[:Overhead])

	if !poly1305.Verify(&tag, payload, &macKey) {
		ZeroBytes(macKey[:])
		ZeroBytes(stream)
		return nil, ErrAuthFailed
	}

	plaintext := make([]byte, len(payload))
	for i := range payload {
		plaintext[i] = payload[i] ^ stream[macKeySize+i]
	}

	ZeroBytes(macKey[:])
	ZeroBytes(stream)

	return plaintext, nil
}
