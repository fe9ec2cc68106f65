// Package schema validates trees against schemas written in tagline.
//
// A schema is itself a tree with reserved sections:
//
//	# required: { name=string age=number }
//	  optional: { tags="string[]" owner=person }
//	  types: { person: { required: { email=string } } }
//	  allowUnknown=@true
//
// Built in type names are string, number, boolean, date, tag and any,
// each with an array form such as "string[]". Other names refer to
// entries of types, whose own required, optional and allowUnknown apply
// to the property.
//
// A property is declared either with a type name as its value,
// name=string, or with a type property, name: { type=string }. Nested
// required and optional sections on a property apply to its properties,
// or to the properties of each element for array types.
//
// Validate reports every problem it finds. Problems with a property stop
// the checks below that property but not those of its siblings.
package schema
