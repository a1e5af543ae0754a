package merger

import (
	"fmt"

	"github.com/byte4ever/frontmatter_templates/frontmatter"
)

// DeleteKey is the reserved property name a template uses to list
// inherited keys it suppresses. It never survives into resolved
// metadata.
const DeleteKey = "delete"

// MalformedDeleteListError reports a delete list whose value is
// not a sequence of strings. It is advisory: callers degrade the
// list to "exclude nothing" and surface the error as a warning.
type MalformedDeleteListError struct {
	Reason string
}

func (e *MalformedDeleteListError) Error() string {
	return fmt.Sprintf(
		"malformed %q list: %s", DeleteKey, e.Reason,
	)
}

// ExtractDeleteList returns the exclusion set declared under the
// reserved "delete" key. An absent key yields an empty set. A
// value that is not a sequence of strings yields an empty set
// together with a *MalformedDeleteListError.
func ExtractDeleteList(
	m frontmatter.Mapping,
) (KeySet, error) {
	val, ok := m.Get(DeleteKey)
	if !ok {
		return NewKeySet(), nil
	}

	if !val.IsSequence() {
		return NewKeySet(), &MalformedDeleteListError{
			Reason: "value is not a sequence",
		}
	}

	items := val.Sequence()
	ks := make(KeySet, len(items))

	for _, item := range items {
		name, ok := item.(string)
		if !ok {
			return NewKeySet(), &MalformedDeleteListError{
				Reason: fmt.Sprintf(
					"item %v is not a string", item,
				),
			}
		}

		ks[name] = struct{}{}
	}

	return ks, nil
}

// Merge combines two mappings with override semantics: every key
// of incoming replaces the same key of base, except that two
// sequence values concatenate (base items first, duplicates and
// order preserved). Keys only in base carry through. Overridden
// keys keep their base position; new keys append in incoming
// order. Neither input is mutated.
func Merge(
	base frontmatter.Mapping,
	incoming frontmatter.Mapping,
) frontmatter.Mapping {
	out := base.Clone()

	for _, key := range incoming.Keys() {
		inVal, _ := incoming.Get(key)

		baseVal, ok := out.Get(key)
		if ok && baseVal.IsSequence() && inVal.IsSequence() {
			out.Set(key, baseVal.Concat(inVal))

			continue
		}

		// All other kind combinations: incoming wins, its
		// kind is authoritative.
		out.Set(key, inVal)
	}

	return out
}

// ApplyDeleteList returns a copy of m without the keys of
// exclusions, except keys also in explicitKeys. explicitKeys is
// the key set of the current template's own metadata, which is
// what makes explicit redefinition win over inherited exclusion.
func ApplyDeleteList(
	m frontmatter.Mapping,
	exclusions KeySet,
	explicitKeys KeySet,
) frontmatter.Mapping {
	out := m.Clone()

	for key := range exclusions {
		if explicitKeys.Has(key) {
			continue
		}

		out.Delete(key)
	}

	return out
}

// StripReservedKeys returns a copy of m without the reserved
// "delete" key. Idempotent.
func StripReservedKeys(
	m frontmatter.Mapping,
) frontmatter.Mapping {
	out := m.Clone()
	out.Delete(DeleteKey)

	return out
}
