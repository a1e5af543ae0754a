// Package applicator reduces an ordered template chain (root to
// leaf) into one resolved document. It threads accumulated
// metadata and a cumulative exclusion set through a left-fold
// whose per-template step is a pure state transition, calling
// package merger for every mapping operation. The leaf template's
// body becomes the document body; intermediate bodies are unused.
package applicator
