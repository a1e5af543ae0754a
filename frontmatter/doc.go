// Package frontmatter provides the data model and codec for document
// front-matter blocks: an insertion-ordered key/value Mapping whose
// values are tagged as scalar or sequence, YAML parsing and canonical
// re-emission via goccy/go-yaml, and "---" fence splitting/joining of
// full documents.
package frontmatter
