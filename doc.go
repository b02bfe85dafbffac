// Package nacl implements NaCl-compatible authenticated encryption.
//
// The package provides the two classic NaCl constructions through Go's
// x/crypto primitives: crypto_secretbox, symmetric authenticated encryption
// built from XSalsa20 and a Poly1305 one-time authenticator, and crypto_box,
// public-key authenticated encryption built from Curve25519 key agreement
// on top of the same secretbox core. The NaCl C library has a flat
// namespace, so the API-compatible routines all live in this one package.
//
// Ciphertexts are bit-compatible with any other NaCl implementation: a
// 16-byte authentication tag followed by the encrypted payload, under a
// 32-byte key and a 24-byte nonce.
//
// # Public-Key Encryption
//
// Generate key pairs and seal messages between two parties:
//
//	keys, err := nacl.GenerateKeyPair(nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer nacl.WipeKeyPair(keys)
//
//	nonce, _ := nacl.GenerateNonce(nil)
//	ciphertext, err := nacl.Encrypt(message, nonce, peer.Public, keys.Private)
//
//	// On the receiving side
//	plaintext, err := nacl.Decrypt(ciphertext, nonce, sender.Public, keys.Private)
//
// # Symmetric Encryption
//
// With an established 32-byte key, use the secretbox core directly:
//
//	ciphertext := nacl.EncryptSymmetric(message, nonce, key)
//	plaintext, err := nacl.DecryptSymmetric(ciphertext, nonce, key)
//
// # Session Key Precomputation
//
// Encrypt and Decrypt perform a Curve25519 scalar multiplication on every
// call. Callers exchanging many messages with the same peer should derive
// the session key once and switch to the symmetric routines, which is
// exactly what NaCl's crypto_box_beforenm/afternm split provides:
//
//	sessionKey, err := nacl.Precompute(peer.Public, keys.Private)
//	ciphertext := nacl.EncryptSymmetric(message, nonce, sessionKey)
//
// # Nonces
//
// Nonces MUST be unique for a given key or key pair; reuse destroys both
// confidentiality and authenticity. The package does not track nonces for
// the caller. At 24 bytes, randomly generated nonces (GenerateNonce) have
// negligible collision risk.
//
// # Error Handling
//
// Tampered, truncated, or otherwise invalid ciphertexts are reported as
// ErrAuthFailed without revealing any recovered bytes. Tag verification is
// constant time. Wrong key or nonce sizes cannot occur at runtime: all
// fixed-length values are fixed-size array types checked by the compiler.
//
// # Randomness
//
// Every function that needs entropy accepts an io.Reader so tests can
// substitute a deterministic source. Passing nil selects crypto/rand, which
// is what production callers should do.
//
// # Secure Memory Handling
//
// Intermediate key material (HSalsa20 subkeys, one-time authenticator keys,
// session keys inside Encrypt/Decrypt) is wiped before returning. Callers
// own the lifetime of their keys and can use SecureWipe, ZeroBytes, and
// WipeKeyPair for cleanup:
//
//	defer nacl.WipeKeyPair(keys)
//	defer nacl.ZeroBytes(sessionKey[:])
//
// # Thread Safety
//
// All operations are pure functions of their inputs with no shared mutable
// state, and are safe for concurrent use as long as each call owns its own
// buffers.
package nacl
