package frontmatter

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// entry is one key/value pair of a Mapping.
type entry struct {
	key string
	val Value
}

// Mapping is an insertion-ordered key/value container with unique,
// case-sensitive keys. The zero value is an empty mapping ready for
// use. Chains of templates stay small, so lookups scan linearly.
type Mapping struct {
	entries []entry
}

// Get returns the value for key and whether it is present.
func (m Mapping) Get(key string) (Value, bool) {
	for _, en := range m.entries {
		if en.key == key {
			return en.val, true
		}
	}

	return Value{}, false
}

// Has reports whether key is present.
func (m Mapping) Has(key string) bool {
	_, ok := m.Get(key)

	return ok
}

// Set stores a value. An existing key keeps its position; a new
// key is appended.
func (m *Mapping) Set(key string, val Value) {
	for idx := range m.entries {
		if m.entries[idx].key == key {
			m.entries[idx].val = val

			return
		}
	}

	m.entries = append(m.entries, entry{key: key, val: val})
}

// Delete removes key if present and reports whether it was.
func (m *Mapping) Delete(key string) bool {
	for idx := range m.entries {
		if m.entries[idx].key == key {
			m.entries = append(
				m.entries[:idx], m.entries[idx+1:]...,
			)

			return true
		}
	}

	return false
}

// Keys returns the keys in insertion order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m.entries))

	for _, en := range m.entries {
		keys = append(keys, en.key)
	}

	return keys
}

// Len returns the number of keys.
func (m Mapping) Len() int {
	return len(m.entries)
}

// Clone returns an independent copy. Sequence payloads are copied
// so mutations of the clone never show through.
func (m Mapping) Clone() Mapping {
	cloned := make([]entry, 0, len(m.entries))

	for _, en := range m.entries {
		val := en.val
		if val.kind == KindSequence {
			val = SequenceValue(val.seq...)
		}

		cloned = append(cloned, entry{key: en.key, val: val})
	}

	return Mapping{entries: cloned}
}

// MarshalJSON encodes the mapping as a JSON object with keys in
// insertion order.
func (m Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for idx, en := range m.entries {
		if idx > 0 {
			buf.WriteByte(',')
		}

		key, err := json.Marshal(en.key)
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')

		val, err := json.Marshal(en.val)
		if err != nil {
			return nil, err
		}

		buf.Write(val)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}
