// Package render runs the full resolution pipeline: it resolves a
// leaf document's template chain, merges front-matter through
// package applicator, expands {{key}} placeholders in the body
// against the resolved metadata with valyala/fasttemplate, and
// re-emits the fenced document (or a JSON form of it). RenderAll
// processes many leaves with a bounded worker pool and skips
// rewriting outputs whose content digest is unchanged.
package render
