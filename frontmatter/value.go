package frontmatter

import (
	json "github.com/goccy/go-json"
)

// Kind discriminates the two value shapes a front-matter key can
// hold. Merge behavior is defined per kind combination, so the
// shape is tagged explicitly instead of being rediscovered by
// type switches at every use site.
type Kind int

const (
	// KindScalar is a single value: string, number, boolean, or
	// any other non-sequence YAML node carried opaquely.
	KindScalar Kind = iota

	// KindSequence is an ordered list of scalar items.
	KindSequence
)

// Value is a tagged union over {scalar, sequence}.
type Value struct {
	kind   Kind
	scalar any
	seq    []any
}

// ScalarValue wraps a single value.
func ScalarValue(v any) Value {
	return Value{kind: KindScalar, scalar: v}
}

// SequenceValue wraps an ordered list of items.
func SequenceValue(items ...any) Value {
	seq := make([]any, len(items))
	copy(seq, items)

	return Value{kind: KindSequence, seq: seq}
}

// Kind reports the value shape.
func (v Value) Kind() Kind {
	return v.kind
}

// IsSequence reports whether the value is a sequence.
func (v Value) IsSequence() bool {
	return v.kind == KindSequence
}

// Scalar returns the wrapped scalar. It is nil for sequences.
func (v Value) Scalar() any {
	return v.scalar
}

// Sequence returns a copy of the wrapped items. It is nil for
// scalars.
func (v Value) Sequence() []any {
	if v.kind != KindSequence {
		return nil
	}

	seq := make([]any, len(v.seq))
	copy(seq, v.seq)

	return seq
}

// Concat returns a new sequence value holding the items of v
// followed by the items of other. Both inputs must be sequences;
// duplicates and ordering are preserved.
func (v Value) Concat(other Value) Value {
	seq := make([]any, 0, len(v.seq)+len(other.seq))
	seq = append(seq, v.seq...)
	seq = append(seq, other.seq...)

	return Value{kind: KindSequence, seq: seq}
}

// MarshalJSON encodes the scalar or sequence payload directly,
// without wrapping it in a kind envelope.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == KindSequence {
		return json.Marshal(v.seq)
	}

	return json.Marshal(v.scalar)
}

// yamlValue returns the payload in the shape goccy/go-yaml
// expects for marshaling.
func (v Value) yamlValue() any {
	if v.kind == KindSequence {
		return v.seq
	}

	return v.scalar
}

// valueOf tags a decoded YAML node: sequences keep their items,
// everything else (including nested mappings, carried opaquely)
// is a scalar.
func valueOf(raw any) Value {
	if seq, ok := raw.([]any); ok {
		items := make([]any, len(seq))
		copy(items, seq)

		return Value{kind: KindSequence, seq: items}
	}

	return Value{kind: KindScalar, scalar: raw}
}
