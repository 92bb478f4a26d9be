// Package crypto implements field-level encryption of records at rest.
//
// Records are modelled as [Value] trees (null, scalar, sequence, mapping).
// [FieldCipher] encrypts a single value with AES-256-CBC and a random IV per
// call, and walks whole records leaf by leaf so the stored document keeps the
// shape of the original while every leaf becomes an opaque
// "<iv hex>:<ciphertext hex>" string.
package crypto
