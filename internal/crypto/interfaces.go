package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher protects record fields at rest. Data-access code calls it right
// before writing to storage and right after reading from it.
//
// Stored format of a single field:
//
//	<32 hex chars of IV>:<hex ciphertext>
//
// The format is shared with data written by earlier releases and must not
// change.
//
// The format carries no authentication tag. Decryption rejects most
// corrupted or tampered inputs through the padding and UTF-8 checks, but a
// modified ciphertext can still decrypt to different valid text. Callers
// must not rely on a Cipher to detect tampering.
type Cipher interface {
	// EncryptValue encrypts one value. Strings are encrypted as their text,
	// everything else is serialized to JSON first. Every call draws a fresh
	// random IV, so equal inputs give different outputs.
	EncryptValue(v Value) (string, error)

	// DecryptValue reverses EncryptValue. Input without a ':' separator is
	// returned unchanged as a string value. Decrypted text that parses as
	// JSON is returned as the parsed value, anything else as a string.
	// Fails with a *DecryptionError when the input cannot be decrypted
	// under the configured key.
	DecryptValue(s string) (Value, error)

	// EncryptObject walks v and encrypts every scalar leaf, keeping the
	// shape: nulls stay null, sequences keep order and length, mappings
	// keep their keys.
	EncryptObject(v Value) (Value, error)

	// DecryptObject is the inverse walk of EncryptObject.
	DecryptObject(v Value) (Value, error)
}
