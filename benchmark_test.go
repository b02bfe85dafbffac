package nacl

import (
	"testing"
)

// BenchmarkGenerateKeyPair measures key pair generation performance
func BenchmarkGenerateKeyPair(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := GenerateKeyPair(nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkGenerateNonce measures nonce generation performance
func BenchmarkGenerateNonce(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, err := GenerateNonce(nil)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkPrecompute measures session key derivation performance
func BenchmarkPrecompute(b *testing.B) {
	alice, err := GenerateKeyPair(nil)
	if err != nil {
		b.Fatal(err)
	}
	bob, err := GenerateKeyPair(nil)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Precompute(bob.Public, alice.Private)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncrypt measures public-key encryption performance
func BenchmarkEncrypt(b *testing.B) {
	alice, err := GenerateKeyPair(nil)
	if err != nil {
		b.Fatal(err)
	}
	bob, err := GenerateKeyPair(nil)
	if err != nil {
		b.Fatal(err)
	}
	nonce, err := GenerateNonce(nil)
	if err != nil {
		b.Fatal(err)
	}
	message := []byte("This is a benchmark test message for encryption performance")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Encrypt(message, nonce, bob.Public, alice.Private)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDecrypt measures public-key decryption performance
func BenchmarkDecrypt(b *testing.B) {
	alice, err := GenerateKeyPair(nil)
	if err != nil {
		b.Fatal(err)
	}
	bob, err := GenerateKeyPair(nil)
	if err != nil {
		b.Fatal(err)
	}
	nonce, err := GenerateNonce(nil)
	if err != nil {
		b.Fatal(err)
	}
	message := []byte("This is a benchmark test message for decryption performance")

	ciphertext, err := Encrypt(message, nonce, bob.Public, alice.Private)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := Decrypt(ciphertext, nonce, alice.Public, bob.Private)
		if err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkEncryptSymmetric measures secretbox sealing with a precomputed
// session key, the amortized fast path.
func BenchmarkEncryptSymmetric(b *testing.B) {
	alice, err := GenerateKeyPair(nil)
	if err != nil {
		b.Fatal(err)
	}
	bob, err := GenerateKeyPair(nil)
	if err != nil {
		b.Fatal(err)
	}
	nonce, err := GenerateNonce(nil)
	if err != nil {
		b.Fatal(err)
	}
	sessionKey, err := Precompute(bob.Public, alice.Private)
	if err != nil {
		b.Fatal(err)
	}
	message := []byte("This is a benchmark test message for encryption performance")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		EncryptSymmetric(message, nonce, sessionKey)
	}
}

// BenchmarkDecryptSymmetric measures secretbox opening with a precomputed
// session key.
func BenchmarkDecryptSymmetric(b *testing.B) {
	key := [32]byte{1}
	nonce := Nonce{2}
	message := []byte("This is a benchmark test message for decryption performance")

	ciphertext := EncryptSymmetric(message, nonce, key)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, err := DecryptSymmetric(ciphertext, nonce, key)
		if err != nil {
			b.Fatal(err)
		}
	}
}
