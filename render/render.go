package render

import (
	"fmt"
	"log/slog"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/frontmatter_templates/applicator"
	"github.com/byte4ever/frontmatter_templates/chain"
	"github.com/byte4ever/frontmatter_templates/frontmatter"
)

// Renderer resolves template chains and produces final documents.
type Renderer struct {
	// Resolver loads templates and follows parent references.
	Resolver *chain.Resolver

	// StartTag and EndTag delimit body placeholders (default
	// "{{" and "}}").
	StartTag string
	EndTag   string
}

// resolvedJSON is the wire shape of a resolved document.
type resolvedJSON struct {
	Metadata frontmatter.Mapping `json:"metadata"`
	Body     string              `json:"body"`
	Warnings []string            `json:"warnings,omitempty"`
}

// Resolve merges the chain behind leaf and expands body
// placeholders against the resolved metadata. Unknown
// placeholders are preserved as-is.
func (re *Renderer) Resolve(
	leaf string,
) (applicator.ResolvedDocument, error) {
	const errCtx = "resolving document"

	templates, err := re.Resolver.Resolve(leaf)
	if err != nil {
		return applicator.ResolvedDocument{}, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	doc := applicator.MergeTemplates(templates)

	for _, warn := range doc.Warnings {
		slog.Warn("merge warning", "leaf", leaf, "warning", warn)
	}

	doc.Body = re.expandBody(doc.Body, doc.Metadata)

	return doc, nil
}

// Document renders the resolved document as fenced text.
func (re *Renderer) Document(leaf string) (string, error) {
	const errCtx = "rendering document"

	doc, err := re.Resolve(leaf)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	out, err := frontmatter.Join(doc.Metadata, doc.Body)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return out, nil
}

// JSON renders the resolved document as JSON with metadata key
// order preserved.
func (re *Renderer) JSON(leaf string) ([]byte, error) {
	const errCtx = "rendering document as json"

	doc, err := re.Resolve(leaf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	out, err := json.Marshal(resolvedJSON{
		Metadata: doc.Metadata,
		Body:     doc.Body,
		Warnings: doc.Warnings,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	return out, nil
}

// tags returns the configured placeholder delimiters, falling
// back to double-brace defaults.
func (re *Renderer) tags() (string, string) {
	startTag := re.StartTag
	if startTag == "" {
		startTag = "{{"
	}

	endTag := re.EndTag
	if endTag == "" {
		endTag = "}}"
	}

	return startTag, endTag
}

// expandBody substitutes {{key}} placeholders with stringified
// metadata values: scalars print directly, sequences join with
// ", ". Unknown placeholders stay untouched.
func (re *Renderer) expandBody(
	body string,
	meta frontmatter.Mapping,
) string {
	if meta.Len() == 0 {
		return body
	}

	startTag, endTag := re.tags()

	return fasttemplate.ExecuteStringStd(
		body, startTag, endTag, bodyContext(meta),
	)
}

// bodyContext converts a mapping into the string-valued context
// fasttemplate substitutes from.
func bodyContext(
	meta frontmatter.Mapping,
) map[string]any {
	ctx := make(map[string]any, meta.Len())

	for _, key := range meta.Keys() {
		val, _ := meta.Get(key)

		if !val.IsSequence() {
			ctx[key] = fmt.Sprint(val.Scalar())

			continue
		}

		items := val.Sequence()
		parts := make([]string, 0, len(items))

		for _, item := range items {
			parts = append(parts, fmt.Sprint(item))
		}

		ctx[key] = strings.Join(parts, ", ")
	}

	return ctx
}
