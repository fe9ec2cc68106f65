// Package ir provides the tree representation of tagline annotations.
//
// # Overview
//
// Every annotation, whether parsed from text, built with the mutation
// functions or decoded from JSON, is an ir.Node tree. A node has an
// optional value and an optional ordered map of named properties:
//
//	# service.port = 8080 tags = [a, b] owner { team = infra }
//
// The value is a recursive tagged union discriminated by Type:
//
//   - BareType: no value, a bare name
//   - StringType, NumberType, BoolType, DateType: scalars, kept as their
//     literal text in Text
//   - ArrayType: ordered list of nodes in Elements
//   - RefType: a reference, see Ref
//
// # Parents and References
//
// Each node records its owner in Parent, with ParentField or ParentIndex
// telling where in the owner it lives. Ownership goes strictly from a
// node to its properties and elements; Parent is only used to resolve
// references, which walk up a number of parents and then down a Path.
// References are resolved when read, so cloning a subtree never leaves a
// stale pointer behind.
//
// # Tombstones
//
// A property with Tombstone set was removed explicitly, typically in an
// annotation which extends another one. Reads treat it as absent, while
// encoding writes it as -name so that the removal survives a round trip.
//
// # Value Semantics
//
// Set, Delete and Unset never modify their receiver: they deep copy the
// whole tree and return the modified copy. Builder, which does modify
// nodes in place, is meant for code which builds trees it owns.
package ir
