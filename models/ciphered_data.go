package models

type (
	// CipheredValue is a single field in its at-rest form,
	// "<32 hex IV>:<hex ciphertext>". The storage layer treats it as an
	// opaque string and never sees the plaintext.
	CipheredValue string

	// CipheredDocument is a JSON document whose leaves are all
	// CipheredValue strings. Its shape (keys, nesting, array lengths)
	// is visible to storage, its leaf values are not.
	CipheredDocument string
)
