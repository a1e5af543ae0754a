package frontmatter

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

const fence = "---"

// ParseError reports a structurally invalid front-matter block.
// Name identifies the offending template or file when known.
type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf(
			"parsing front-matter: %v", e.Err,
		)
	}

	return fmt.Sprintf(
		"parsing front-matter of %s: %v", e.Name, e.Err,
	)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse decodes a raw front-matter block into a Mapping, keeping
// key order. Structurally invalid YAML yields a *ParseError. A
// block that parses but has non-mapping top-level content (a bare
// scalar or sequence) is treated as an empty mapping.
func Parse(blockText string) (Mapping, error) {
	var raw any

	err := yaml.UnmarshalWithOptions(
		[]byte(blockText), &raw, yaml.UseOrderedMap(),
	)
	if err != nil {
		return Mapping{}, &ParseError{Err: err}
	}

	ms, ok := raw.(yaml.MapSlice)
	if !ok {
		return Mapping{}, nil
	}

	var m Mapping

	for _, item := range ms {
		m.Set(fmt.Sprint(item.Key), valueOf(item.Value))
	}

	return m, nil
}

// Render re-emits a Mapping as canonical YAML, keys in insertion
// order. An empty mapping renders as the empty string.
func Render(m Mapping) (string, error) {
	const errCtx = "rendering front-matter"

	if m.Len() == 0 {
		return "", nil
	}

	ms := make(yaml.MapSlice, 0, m.Len())

	for _, en := range m.entries {
		ms = append(ms, yaml.MapItem{
			Key:   en.key,
			Value: en.val.yamlValue(),
		})
	}

	out, err := yaml.Marshal(ms)
	if err != nil {
		return "", fmt.Errorf("%s: %w", errCtx, err)
	}

	return string(out), nil
}

// Split separates a document into its front-matter block and body.
// A document starts front-matter with a "---" line and closes it
// with another; the closing fence may sit at end of input. A
// document without an opening fence has no front-matter and is all
// body. A fence that is opened but never closed is a *ParseError.
func Split(doc string) (block string, body string, err error) {
	if !strings.HasPrefix(doc, fence+"\n") {
		return "", doc, nil
	}

	rest := doc[len(fence)+1:]

	if idx := strings.Index(rest, "\n"+fence+"\n"); idx >= 0 {
		return rest[:idx], rest[idx+len(fence)+2:], nil
	}

	if strings.HasSuffix(rest, "\n"+fence) {
		return rest[:len(rest)-len(fence)-1], "", nil
	}

	return "", "", &ParseError{
		Err: fmt.Errorf("missing closing %q fence", fence),
	}
}

// Join renders a Mapping and assembles it with a body into a
// fenced document. An empty mapping produces the body alone.
func Join(m Mapping, body string) (string, error) {
	block, err := Render(m)
	if err != nil {
		return "", err
	}

	if block == "" {
		return body, nil
	}

	var sb strings.Builder

	sb.WriteString(fence)
	sb.WriteByte('\n')
	sb.WriteString(block)
	sb.WriteString(fence)
	sb.WriteByte('\n')
	sb.WriteString(body)

	return sb.String(), nil
}
