// Package encode writes trees as canonical tagline source, or as JSON or
// YAML.
//
// Tagline output is a single line: the root prefix followed by the
// root's properties separated by spaces.
//
//	# a.b = [3, 4] name = "two words" -gone
//
// The output depends only on the tree. Encoding the result of parsing
// encoded output yields the same text again.
package encode
