// Package parse reads tagline annotations into trees.
//
// An annotation is usually found in a comment of some host language, so
// a leading '#' marker is stripped up to and including the first space
// and remembered as the root's Prefix:
//
//	root, diags := parse.Parse("# service.port = 8080")
//
// Parsing fails soft. On any diagnostic, the result is a copy of the tree
// being extended (or an empty tree) and the diagnostics say what went
// wrong.
//
// Annotations spanning several lines are read with FromLines, where each
// line extends the result of the lines before it.
package parse
