// Package chain resolves template inheritance chains from disk.
// Given a leaf document, it follows the parent-reference key in
// each file's front-matter (default "template") until it reaches
// a root, and returns the chain ordered root to leaf, ready for
// applicator.MergeTemplates. Cycles, missing parents, and
// unparsable files fail resolution with the offending file named.
package chain
