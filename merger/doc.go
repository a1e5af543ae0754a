// Package merger provides the pure, stateless transformations of
// front-matter inheritance: extracting a template's delete list,
// merging two mappings with override-or-concatenate semantics,
// applying an exclusion set with explicit-redefinition protection,
// and stripping the reserved "delete" key. It knows nothing about
// template chains; package applicator drives it.
package merger
