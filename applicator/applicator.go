package applicator

import (
	"fmt"
	"log/slog"

	"github.com/byte4ever/frontmatter_templates/frontmatter"
	"github.com/byte4ever/frontmatter_templates/merger"
)

// Template is one link of an inheritance chain: a parsed metadata
// mapping plus a body. Name identifies it in warnings and errors.
type Template struct {
	Name     string
	Metadata frontmatter.Mapping
	Body     string
}

// ResolvedDocument is the result of merging a chain: the final
// metadata mapping, the leaf body, and any non-fatal warnings
// collected along the way (one per malformed delete list).
type ResolvedDocument struct {
	Metadata frontmatter.Mapping
	Body     string
	Warnings []string
}

// state is the loop-carried value of the fold.
type state struct {
	accumulated frontmatter.Mapping
	exclusions  merger.KeySet
}

// MergeTemplates reduces an ordered chain, root first, into a
// ResolvedDocument. Order is significant and caller-guaranteed.
// An empty chain resolves to an empty document.
func MergeTemplates(
	templates []Template,
) ResolvedDocument {
	st := state{
		accumulated: frontmatter.Mapping{},
		exclusions:  merger.NewKeySet(),
	}

	var warnings []string

	for _, tpl := range templates {
		var stepWarns []string

		st, stepWarns = step(st, tpl)
		warnings = append(warnings, stepWarns...)
	}

	doc := ResolvedDocument{
		Metadata: st.accumulated,
		Warnings: warnings,
	}

	if len(templates) > 0 {
		doc.Body = templates[len(templates)-1].Body
	}

	return doc
}

// step advances the fold by one template. It is pure: the input
// state is not mutated, so any prefix of a chain can be replayed
// in isolation.
//
// The exclusion set is updated before it is applied: the set
// grows by the template's own delete list and shrinks by the
// template's explicit keys, and that updated set filters the
// merged mapping. A key a template both deletes and defines
// therefore survives with the template's value, and a key deleted
// here disappears in this very step, not one step later.
func step(
	st state,
	tpl Template,
) (state, []string) {
	var warnings []string

	explicit := merger.NewKeySet(tpl.Metadata.Keys()...)

	deleted, err := merger.ExtractDeleteList(tpl.Metadata)
	if err != nil {
		msg := fmt.Sprintf(
			"template %s: %v", tpl.Name, err,
		)

		slog.Warn(
			"ignoring delete list",
			"template", tpl.Name,
			"error", err,
		)

		warnings = append(warnings, msg)
	}

	exclusions := st.exclusions.
		Union(deleted).
		Subtract(explicit)

	merged := merger.Merge(st.accumulated, tpl.Metadata)

	accumulated := merger.StripReservedKeys(
		merger.ApplyDeleteList(
			merged, exclusions, explicit,
		),
	)

	return state{
		accumulated: accumulated,
		exclusions:  exclusions,
	}, warnings
}
