package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySecret is returned by [NewFieldCipher] when no passphrase is
	// supplied. There is no built-in fallback key.
	ErrEmptySecret = errors.New("encryption secret is empty")

	// ErrUnsupportedValue is returned when a Go value has no JSON form and
	// therefore cannot be turned into a [Value].
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrDecryption matches every [*DecryptionError] via [errors.Is].
	ErrDecryption = errors.New("decryption failed")

	errTrailingData = errors.New("unexpected data after JSON value")
)

// Reasons a stored value could not be decrypted. They are wrapped by
// [DecryptionError] and can be matched with [errors.Is].
var (
	ErrMalformedIV         = errors.New("malformed initialization vector")
	ErrMalformedCiphertext = errors.New("malformed ciphertext")
	ErrInvalidPadding      = errors.New("invalid padding")
	ErrInvalidPlaintext    = errors.New("plaintext is not valid UTF-8")
)

// DecryptionError reports a stored value that cannot be decrypted under the
// configured key: wrong key, truncated or corrupted data, or non-hex input.
// It must reach the caller; the cipher never substitutes a fallback value.
type DecryptionError struct {
	// Path locates the failing leaf inside a structured record
	// (e.g. "address.city" or "goals[1]"). Empty for single values.
	Path string

	// Err is the underlying reason, one of the Err* reasons above or a
	// hex decoding error.
	Err error
}

// Error implements the error interface.
func (e *DecryptionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", ErrDecryption, e.Err)
	}
	return fmt.Sprintf("%s at %s: %v", ErrDecryption, e.Path, e.Err)
}

// Unwrap returns the underlying reason.
func (e *DecryptionError) Unwrap() error {
	return e.Err
}

// Is makes every DecryptionError match [ErrDecryption].
func (e *DecryptionError) Is(target error) bool {
	return target == ErrDecryption
}

// EncryptionError reports a leaf that could not be encrypted, typically
// because the system random source failed.
type EncryptionError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *EncryptionError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("encryption failed: %v", e.Err)
	}
	return fmt.Sprintf("encryption failed at %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying reason.
func (e *EncryptionError) Unwrap() error {
	return e.Err
}
