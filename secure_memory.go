package nacl

import (
	"errors"
	"runtime"
)

// SecureWipe overwrites the contents of a byte slice holding sensitive
// material. It returns an error if the slice is nil.
//
// This is best effort: Go offers no guarantee the data was never copied by
// the runtime, but the write itself is kept live so the compiler cannot
// elide it.
//
//export NaclSecureWipe
func SecureWipe(data []byte) error {
	if data == nil {
		return errors.New("cannot wipe nil data")
	}

	for i := range data {
		data[i] = 0
	}
	runtime.KeepAlive(data)

	return nil
}

// ZeroBytes erases the contents of a byte slice containing sensitive data.
// This is a convenience function that ignores the error from SecureWipe.
//
//export NaclZeroBytes
func ZeroBytes(data []byte) {
	_ = SecureWipe(data)
}

// WipeKeyPair securely erases the private key in a KeyPair. The public half
// is left intact. This should be called when a KeyPair is no longer needed.
//
//export NaclWipeKeyPair
func WipeKeyPair(kp *KeyPair) error {
	if kp == nil {
		return errors.New("cannot wipe nil KeyPair")
	}
	return SecureWipe(kp.Private[:])
}
