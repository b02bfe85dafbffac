package nacl

const (
	// PublicKeySize is the length of a Curve25519 public key in bytes.
	PublicKeySize = 32

	// SecretKeySize is the length of a Curve25519 secret key in bytes.
	SecretKeySize = 32

	// KeySize is the length of a symmetric secretbox key in bytes. Session
	// keys returned by Precompute have this length.
	KeySize = 32

	// NonceSize is the length of an encryption nonce in bytes.
	NonceSize = 24

	// Overhead is the number of bytes of authentication tag prepended to
	// every ciphertext.
	Overhead = 16
)
