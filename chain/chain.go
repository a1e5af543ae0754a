package chain

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/byte4ever/frontmatter_templates/applicator"
	"github.com/byte4ever/frontmatter_templates/frontmatter"
)

const (
	// DefaultParentKey is the front-matter key naming a
	// template's parent.
	DefaultParentKey = "template"

	// DefaultMaxDepth bounds chain length against runaway
	// parent references.
	DefaultMaxDepth = 64
)

// ErrCycle is returned when a template chain references one of
// its own descendants.
var ErrCycle = errors.New("inheritance cycle")

// ErrDepthExceeded is returned when a chain is longer than the
// configured maximum.
var ErrDepthExceeded = errors.New("chain depth exceeded")

// Resolver loads template files and follows parent references.
type Resolver struct {
	// Dir is the directory template names resolve against.
	Dir string

	// ParentKey overrides the front-matter key naming the
	// parent template (default "template").
	ParentKey string

	// MaxDepth overrides the chain length bound (default 64).
	MaxDepth int
}

// Resolve follows parent references from the leaf template named
// by leaf (a file name relative to Dir; ".md" is appended when
// the name has no extension) and returns the chain ordered root
// to leaf. The parent-reference key is consumed by resolution and
// stripped from each template's metadata.
func (r *Resolver) Resolve(
	leaf string,
) ([]applicator.Template, error) {
	const errCtx = "resolving template chain"

	parentKey := r.ParentKey
	if parentKey == "" {
		parentKey = DefaultParentKey
	}

	maxDepth := r.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	seen := make(map[string]struct{})

	// Collected leaf first, reversed before returning.
	var reversed []applicator.Template

	name := normalizeName(leaf)

	for name != "" {
		if len(reversed) >= maxDepth {
			return nil, fmt.Errorf(
				"%s: %w at %s (max %d)",
				errCtx, ErrDepthExceeded, name, maxDepth,
			)
		}

		if _, ok := seen[name]; ok {
			return nil, fmt.Errorf(
				"%s: %w at %s", errCtx, ErrCycle, name,
			)
		}

		seen[name] = struct{}{}

		tpl, parent, err := r.load(name, parentKey)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		reversed = append(reversed, tpl)
		name = parent
	}

	chain := make(
		[]applicator.Template, 0, len(reversed),
	)

	for idx := len(reversed) - 1; idx >= 0; idx-- {
		chain = append(chain, reversed[idx])
	}

	return chain, nil
}

// load reads and parses one template file, returning the template
// and the normalized name of its parent ("" for a root).
func (r *Resolver) load(
	name string,
	parentKey string,
) (applicator.Template, string, error) {
	var none applicator.Template

	data, err := os.ReadFile(filepath.Join(r.Dir, name)) //nolint:gosec // template dir is caller-provided
	if err != nil {
		return none, "", fmt.Errorf(
			"reading template %s: %w", name, err,
		)
	}

	block, body, err := frontmatter.Split(string(data))
	if err != nil {
		return none, "", named(err, name)
	}

	meta, err := frontmatter.Parse(block)
	if err != nil {
		return none, "", named(err, name)
	}

	parent := ""

	if val, ok := meta.Get(parentKey); ok {
		ref, isStr := val.Scalar().(string)
		if !isStr {
			return none, "", fmt.Errorf(
				"template %s: %q reference must be a string",
				name, parentKey,
			)
		}

		parent = normalizeName(ref)
		meta.Delete(parentKey)
	}

	return applicator.Template{
		Name:     name,
		Metadata: meta,
		Body:     body,
	}, parent, nil
}

// named fills in the file name on a *ParseError so resolution
// failures identify the offending template.
func named(err error, name string) error {
	var pe *frontmatter.ParseError
	if errors.As(err, &pe) && pe.Name == "" {
		pe.Name = name
	}

	return err
}

// normalizeName appends the default markdown extension to bare
// template names.
func normalizeName(name string) string {
	if name == "" {
		return ""
	}

	if filepath.Ext(name) == "" {
		return name + ".md"
	}

	return name
}
