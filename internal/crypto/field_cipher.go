// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	// ivLength is the size of the per-value initialization vector. It equals
	// the AES block size, as CBC requires.
	ivLength = aes.BlockSize

	// separator splits the hex IV from the hex ciphertext.
	separator = ":"
)

// FieldCipher is the AES-256-CBC implementation of [Cipher].
//
// The key is SHA-256 of the configured passphrase. FieldCipher holds no
// mutable state after construction: it is built once at startup, passed to
// the data-access layer, and shared by concurrent requests without locking.
type FieldCipher struct {
	block cipher.Block

	// random supplies IVs. crypto/rand.Reader outside of tests.
	random io.Reader
}

var _ Cipher = (*FieldCipher)(nil)

// NewFieldCipher derives the 256-bit key from passphrase and returns a
// ready [FieldCipher]. Returns [ErrEmptySecret] if passphrase is empty.
func NewFieldCipher(passphrase string) (*FieldCipher, error) {
	if passphrase == "" {
		return nil, ErrEmptySecret
	}

	key := sha256.Sum256([]byte(passphrase))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	return &FieldCipher{block: block, random: rand.Reader}, nil
}

// EncryptValue implements [Cipher]. It returns an [*EncryptionError] if the
// value cannot be serialized or no IV can be drawn.
func (c *FieldCipher) EncryptValue(v Value) (string, error) {
	sealed, err := c.seal(v)
	if err != nil {
		return "", &EncryptionError{Err: err}
	}
	return sealed, nil
}

// DecryptValue implements [Cipher].
func (c *FieldCipher) DecryptValue(s string) (Value, error) {
	opened, err := c.openString(s)
	if err != nil {
		return Value{}, &DecryptionError{Err: err}
	}
	return opened, nil
}

// seal produces "<hex iv>:<hex ciphertext>" for v.
func (c *FieldCipher) seal(v Value) (string, error) {
	plaintext, err := plaintextOf(v)
	if err != nil {
		return "", err
	}

	iv := make([]byte, ivLength)
	if _, err := io.ReadFull(c.random, iv); err != nil {
		return "", fmt.Errorf("generate iv: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(iv) + separator + hex.EncodeToString(ciphertext), nil
}

// openString decrypts one stored field. Strings without the separator are
// legacy or never-encrypted data and pass through untouched.
func (c *FieldCipher) openString(s string) (Value, error) {
	ivHex, ciphertextHex, found := strings.Cut(s, separator)
	if !found {
		return String(s), nil
	}

	plaintext, err := c.open(ivHex, ciphertextHex)
	if err != nil {
		return Value{}, err
	}

	parsed, err := parseJSON(plaintext)
	if err != nil {
		return String(string(plaintext)), nil
	}
	return parsed, nil
}

func (c *FieldCipher) open(ivHex, ciphertextHex string) ([]byte, error) {
	iv, err := hex.DecodeString(ivHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedIV, err)
	}
	if len(iv) != ivLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedIV, len(iv), ivLength)
	}

	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of %d",
			ErrMalformedCiphertext, len(ciphertext), aes.BlockSize)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil, err
	}

	// CBC carries no tag. A wrong key or a flipped ciphertext byte turns at
	// least one block into noise, which is rejected here or by the padding
	// check above.
	if !utf8.Valid(plaintext) {
		return nil, ErrInvalidPlaintext
	}

	return plaintext, nil
}

// plaintextOf returns the bytes encrypted for v: the text itself for a
// string, the JSON encoding for anything else.
func plaintextOf(v Value) ([]byte, error) {
	if s, ok := v.Str(); ok {
		return []byte(strings.ToValidUTF8(s, "\uFFFD")), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v.Any()); err != nil {
		return nil, fmt.Errorf("marshal value: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrInvalidPadding
	}

	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrInvalidPadding
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrInvalidPadding
		}
	}

	return data[:len(data)-n], nil
}
