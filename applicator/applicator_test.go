package applicator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/frontmatter_templates/applicator"
	"github.com/byte4ever/frontmatter_templates/frontmatter"
)

// meta builds a mapping from alternating key/value arguments.
// []any values become sequences, everything else a scalar.
func meta(kv ...any) frontmatter.Mapping {
	var m frontmatter.Mapping

	for idx := 0; idx < len(kv); idx += 2 {
		key := kv[idx].(string)

		switch val := kv[idx+1].(type) {
		case []any:
			m.Set(key, frontmatter.SequenceValue(val...))
		default:
			m.Set(key, frontmatter.ScalarValue(val))
		}
	}

	return m
}

// tpl builds a named template with empty body.
func tpl(name string, m frontmatter.Mapping) applicator.Template {
	return applicator.Template{Name: name, Metadata: m}
}

// assertMetaEqual compares two mappings key by key, order
// included.
func assertMetaEqual(
	tb testing.TB,
	want frontmatter.Mapping,
	got frontmatter.Mapping,
) {
	tb.Helper()

	require.Equal(tb, want.Keys(), got.Keys())

	for _, key := range want.Keys() {
		wantVal, _ := want.Get(key)
		gotVal, _ := got.Get(key)

		assert.Equal(
			tb, wantVal, gotVal,
			"value mismatch for key %q", key,
		)
	}
}

func TestMergeTemplates_delete_then_redefine(t *testing.T) {
	t.Parallel()

	doc := applicator.MergeTemplates([]applicator.Template{
		tpl("a", meta(
			"author", "John",
			"date", "2024-01-01",
			"tags", []any{"base"},
		)),
		tpl("b", meta(
			"delete", []any{"author", "tags"},
			"category", "blog",
		)),
		tpl("c", meta(
			"author", "Jane",
			"tags", []any{"specific"},
		)),
	})

	assertMetaEqual(
		t,
		meta(
			"date", "2024-01-01",
			"category", "blog",
			"author", "Jane",
			"tags", []any{"specific"},
		),
		doc.Metadata,
	)
	assert.Empty(t, doc.Warnings)
}

func TestMergeTemplates_single_template(t *testing.T) {
	t.Parallel()

	doc := applicator.MergeTemplates([]applicator.Template{
		tpl("a", meta("x", 1)),
	})

	assertMetaEqual(t, meta("x", 1), doc.Metadata)
}

func TestMergeTemplates_malformed_delete_list(t *testing.T) {
	t.Parallel()

	doc := applicator.MergeTemplates([]applicator.Template{
		tpl("a", meta(
			"delete", "not-an-array",
			"y", 2,
		)),
	})

	assertMetaEqual(t, meta("y", 2), doc.Metadata)

	require.Len(t, doc.Warnings, 1)
	assert.Contains(t, doc.Warnings[0], "template a")
	assert.Contains(t, doc.Warnings[0], "malformed")
}

func TestMergeTemplates_exclusion_persists(t *testing.T) {
	t.Parallel()

	doc := applicator.MergeTemplates([]applicator.Template{
		tpl("a", meta("z", []any{1})),
		tpl("b", meta("delete", []any{"z"})),
		tpl("c", meta()),
	})

	assertMetaEqual(t, meta(), doc.Metadata)
}

func TestMergeTemplates_delete_of_unknown_key(t *testing.T) {
	t.Parallel()

	doc := applicator.MergeTemplates([]applicator.Template{
		tpl("a", meta()),
		tpl("b", meta("delete", []any{"w"})),
	})

	assertMetaEqual(t, meta(), doc.Metadata)
	assert.Empty(t, doc.Warnings)
}

func TestMergeTemplates_empty_chain(t *testing.T) {
	t.Parallel()

	doc := applicator.MergeTemplates(nil)

	assert.Zero(t, doc.Metadata.Len())
	assert.Empty(t, doc.Body)
	assert.Empty(t, doc.Warnings)
}

func TestMergeTemplates_body_comes_from_leaf(t *testing.T) {
	t.Parallel()

	doc := applicator.MergeTemplates([]applicator.Template{
		{Name: "root", Metadata: meta("x", 1), Body: "root body"},
		{Name: "mid", Metadata: meta(), Body: "mid body"},
		{Name: "leaf", Metadata: meta(), Body: "leaf body"},
	})

	assert.Equal(t, "leaf body", doc.Body)
}

func TestMergeTemplates_delete_and_define_same_step(
	t *testing.T,
) {
	t.Parallel()

	doc := applicator.MergeTemplates([]applicator.Template{
		tpl("a", meta("author", "John")),
		tpl("b", meta(
			"delete", []any{"author"},
			"author", "Jane",
		)),
	})

	assertMetaEqual(t, meta("author", "Jane"), doc.Metadata)
}

func TestMergeTemplates_reexclusion_after_redefine(
	t *testing.T,
) {
	t.Parallel()

	chain := []applicator.Template{
		tpl("a", meta("k", "v0")),
		tpl("b", meta("delete", []any{"k"})),
		tpl("c", meta("k", "v1")),
		tpl("d", meta("delete", []any{"k"})),
		tpl("e", meta()),
	}

	doc := applicator.MergeTemplates(chain)
	assertMetaEqual(t, meta(), doc.Metadata)

	// Without the final re-delete the redefined value
	// survives the rest of the chain.
	doc = applicator.MergeTemplates([]applicator.Template{
		chain[0], chain[1], chain[2], tpl("e", meta()),
	})
	assertMetaEqual(t, meta("k", "v1"), doc.Metadata)
}

func TestMergeTemplates_reserved_key_never_survives(
	t *testing.T,
) {
	t.Parallel()

	doc := applicator.MergeTemplates([]applicator.Template{
		tpl("a", meta("delete", []any{"x"}, "x", 1)),
		tpl("b", meta("delete", []any{"y"}, "y", 2)),
		tpl("c", meta("delete", []any{})),
	})

	assert.False(t, doc.Metadata.Has("delete"))
}

func TestMergeTemplates_sequences_concatenate_along_chain(
	t *testing.T,
) {
	t.Parallel()

	doc := applicator.MergeTemplates([]applicator.Template{
		tpl("a", meta("tags", []any{"a", "b"})),
		tpl("b", meta("tags", []any{"c"})),
	})

	tags, ok := doc.Metadata.Get("tags")
	require.True(t, ok)
	assert.Equal(t, []any{"a", "b", "c"}, tags.Sequence())
}

func TestMergeTemplates_explicit_override_concatenates(
	t *testing.T,
) {
	t.Parallel()

	// A key both deleted and redefined in the same template
	// still concatenates with the surviving ancestor value.
	doc := applicator.MergeTemplates([]applicator.Template{
		tpl("a", meta("tags", []any{"base"})),
		tpl("b", meta(
			"delete", []any{"tags"},
			"tags", []any{"own"},
		)),
	})

	tags, ok := doc.Metadata.Get("tags")
	require.True(t, ok)
	assert.Equal(t, []any{"base", "own"}, tags.Sequence())
}

func TestMergeTemplates_malformed_list_blocks_nothing(
	t *testing.T,
) {
	t.Parallel()

	doc := applicator.MergeTemplates([]applicator.Template{
		tpl("a", meta("keep", 1)),
		tpl("b", meta("delete", 42)),
		tpl("c", meta("also", 2)),
	})

	assertMetaEqual(
		t,
		meta("keep", 1, "also", 2),
		doc.Metadata,
	)
	require.Len(t, doc.Warnings, 1)
	assert.Contains(t, doc.Warnings[0], "template b")
}
