package service

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/MKhiriev/fin360/internal/crypto"
)

// encryptFields encrypts a flat record with a single EncryptObject walk and
// returns the ciphertext of every field.
func encryptFields(c crypto.Cipher, fields map[string]crypto.Value) (map[string]string, error) {
	encrypted, err := c.EncryptObject(crypto.Mapping(fields))
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(fields))
	for key := range fields {
		leaf, _ := encrypted.Field(key)
		s, ok := leaf.Str()
		if !ok {
			return nil, fmt.Errorf("%w: field %q was not encrypted", ErrCorruptRecord, key)
		}
		out[key] = s
	}
	return out, nil
}

// decryptFields is the inverse of encryptFields. The result is a mapping
// with one decrypted leaf per field.
func decryptFields(c crypto.Cipher, fields map[string]string) (crypto.Value, error) {
	encrypted := make(map[string]crypto.Value, len(fields))
	for key, s := range fields {
		encrypted[key] = crypto.String(s)
	}
	return c.DecryptObject(crypto.Mapping(encrypted))
}

// textOf returns the text a decrypted value stood for. Scalars come back
// through [crypto.Value.Text]; a string that happened to be valid JSON
// ("null", "[1,2]") was parsed on decryption and is serialized back.
func textOf(v crypto.Value) string {
	if s, ok := v.Text(); ok {
		return s
	}
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// fieldText returns the text of a field. ok is false only when the key is
// absent. A stored text of "null" decrypts to a JSON null and reads back as
// "null".
func fieldText(record crypto.Value, key string) (string, bool) {
	v, ok := record.Field(key)
	if !ok {
		return "", false
	}
	return textOf(v), true
}

func requiredText(record crypto.Value, key string) (string, error) {
	s, ok := fieldText(record, key)
	if !ok {
		return "", fmt.Errorf("%w: missing %q", ErrCorruptRecord, key)
	}
	return s, nil
}

func requiredDecimal(record crypto.Value, key string) (decimal.Decimal, error) {
	s, err := requiredText(record, key)
	if err != nil {
		return decimal.Zero, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q is not a number", ErrCorruptRecord, key)
	}
	return d, nil
}

// fieldBool reads a boolean leaf, accepting its text form too. Missing or
// unreadable values yield def.
func fieldBool(record crypto.Value, key string, def bool) bool {
	v, ok := record.Field(key)
	if !ok {
		return def
	}
	if b, ok := v.Boolean(); ok {
		return b
	}
	if s, ok := v.Text(); ok {
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	}
	return def
}

// fieldTexts reads a sequence of scalars. A missing field yields an empty
// slice.
func fieldTexts(record crypto.Value, key string) []string {
	v, ok := record.Field(key)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, v.Len())
	for _, item := range v.Items() {
		if item.IsNull() {
			continue
		}
		out = append(out, textOf(item))
	}
	return out
}

// decimalValue is the numeric leaf stored for a decimal amount.
func decimalValue(d decimal.Decimal) crypto.Value {
	return crypto.Number(json.Number(d.String()))
}
