package crypto

import "strconv"

// leafFunc transforms one scalar found at path.
type leafFunc func(leaf Value, path string) (Value, error)

// EncryptObject implements [Cipher]. Each scalar leaf becomes a string
// holding its encrypted form. Errors are [*EncryptionError] values that
// name the failing leaf.
func (c *FieldCipher) EncryptObject(v Value) (Value, error) {
	return walk(v, "", c.encryptLeaf)
}

// DecryptObject implements [Cipher]. String leaves are decrypted; other
// scalars, which EncryptObject never produces, are returned as they are.
// Errors are [*DecryptionError] values that name the failing leaf.
func (c *FieldCipher) DecryptObject(v Value) (Value, error) {
	return walk(v, "", c.decryptLeaf)
}

func (c *FieldCipher) encryptLeaf(leaf Value, path string) (Value, error) {
	sealed, err := c.seal(leaf)
	if err != nil {
		return Value{}, &EncryptionError{Path: path, Err: err}
	}
	return String(sealed), nil
}

func (c *FieldCipher) decryptLeaf(leaf Value, path string) (Value, error) {
	s, ok := leaf.Str()
	if !ok {
		return leaf, nil
	}

	opened, err := c.openString(s)
	if err != nil {
		return Value{}, &DecryptionError{Path: path, Err: err}
	}
	return opened, nil
}

// walk rebuilds v, handing every scalar to leaf. Inputs are never modified.
func walk(v Value, path string, leaf leafFunc) (Value, error) {
	switch v.kind {
	case KindNull:
		return v, nil

	case KindSequence:
		items := make([]Value, len(v.items))
		for i, item := range v.items {
			out, err := walk(item, path+"["+strconv.Itoa(i)+"]", leaf)
			if err != nil {
				return Value{}, err
			}
			items[i] = out
		}
		return Value{kind: KindSequence, items: items}, nil

	case KindMapping:
		fields := make(map[string]Value, len(v.fields))
		for key, item := range v.fields {
			out, err := walk(item, joinPath(path, key), leaf)
			if err != nil {
				return Value{}, err
			}
			fields[key] = out
		}
		return Value{kind: KindMapping, fields: fields}, nil

	default:
		return leaf(v, path)
	}
}

func joinPath(parent, key string) string {
	if parent == "" {
		return key
	}
	return parent + "." + key
}
