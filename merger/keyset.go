package merger

// KeySet is a set of property names.
type KeySet map[string]struct{}

// NewKeySet builds a set from the given keys.
func NewKeySet(keys ...string) KeySet {
	ks := make(KeySet, len(keys))

	for _, k := range keys {
		ks[k] = struct{}{}
	}

	return ks
}

// Has reports whether key is in the set.
func (ks KeySet) Has(key string) bool {
	_, ok := ks[key]

	return ok
}

// Union returns a new set holding every key of ks and other.
func (ks KeySet) Union(other KeySet) KeySet {
	out := make(KeySet, len(ks)+len(other))

	for k := range ks {
		out[k] = struct{}{}
	}

	for k := range other {
		out[k] = struct{}{}
	}

	return out
}

// Subtract returns a new set holding the keys of ks that are not
// in other.
func (ks KeySet) Subtract(other KeySet) KeySet {
	out := make(KeySet, len(ks))

	for k := range ks {
		if _, ok := other[k]; !ok {
			out[k] = struct{}{}
		}
	}

	return out
}

// Len returns the number of keys in the set.
func (ks KeySet) Len() int {
	return len(ks)
}
