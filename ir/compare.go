package ir

import "slices"

// Equal reports whether a and b hold the same values, properties (in the
// same order) and tombstones. Parent links and root prefixes are not
// compared. A nil property map equals an empty one.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type || a.Tombstone != b.Tombstone || a.Text != b.Text {
		return false
	}
	switch a.Type {
	case DateType:
		if !a.Date.Equal(b.Date) {
			return false
		}
	case RefType:
		if a.Ref.Up != b.Ref.Up || !slices.Equal(a.Ref.Path, b.Ref.Path) {
			return false
		}
	case ArrayType:
		if len(a.Elements) != len(b.Elements) {
			return false
		}
		for i := range a.Elements {
			if !Equal(a.Elements[i], b.Elements[i]) {
				return false
			}
		}
	}
	if !slices.Equal(a.Props.Keys(), b.Props.Keys()) {
		return false
	}
	for k, av := range a.Props.All() {
		if !Equal(av, b.Props.Get(k)) {
			return false
		}
	}
	return true
}
