package ir

// Builder gives write access to a node under construction. It is the only
// code allowed to allocate a node's property map in place, so it must not
// be handed nodes which are shared with a caller; the interpreter and the
// mutation functions only build on clones.
type Builder struct {
	n *Node
}

func Build(n *Node) Builder {
	return Builder{n: n}
}

func (b Builder) Node() *Node {
	return b.n
}

// Props returns the property map of the node, allocating it if needed.
func (b Builder) Props() *Props {
	if b.n.Props == nil {
		b.n.Props = NewProps()
	}
	return b.n.Props
}

// ClearProps replaces all properties with an empty map.
func (b Builder) ClearProps() {
	b.n.Props = NewProps()
}

// SetValue moves the value of src onto the node, leaving properties alone.
func (b Builder) SetValue(src *Node) {
	b.n.assignValue(src)
}

func (b Builder) ClearValue() {
	b.n.clearValue()
}

// TakeProps moves the properties of src onto the node.
func (b Builder) TakeProps(src *Node) {
	if src.Props == nil {
		b.n.Props = nil
		return
	}
	b.n.Props = src.Props
	for k, v := range src.Props.All() {
		adopt(b.n, v, k, -1)
	}
	src.Props = nil
}

// Child returns the structural child for seg, tombstones included.
func (b Builder) Child(seg Segment) *Node {
	return b.n.child(seg)
}

// Reach walks all but the last segment of p from the node, creating
// missing intermediate nodes, turning them into arrays or giving them
// property maps as the following segment demands, replacing references
// and clearing tombstones. It returns the last segment and the node which
// owns it. p must not be empty.
func (b Builder) Reach(p Path) (Segment, *Node) {
	if len(p) == 0 {
		panic("reach: empty path")
	}
	cur := b.n
	for _, seg := range p[:len(p)-1] {
		Build(cur).container(seg)
		next := cur.child(seg)
		if next == nil {
			next = &Node{}
			Build(cur).Put(seg, next)
		}
		if next.Type == RefType {
			next.clearValue()
		}
		next.Tombstone = false
		cur = next
	}
	last := p[len(p)-1]
	Build(cur).container(last)
	return last, cur
}

func (b Builder) container(seg Segment) {
	if !seg.IsIndex {
		b.Props()
		return
	}
	if b.n.Type != ArrayType {
		b.n.clearValue()
		b.n.Type = ArrayType
	}
}

// Put stores child under seg, padding arrays with empty nodes as needed.
func (b Builder) Put(seg Segment, child *Node) {
	if !seg.IsIndex {
		adopt(b.n, child, seg.Field, -1)
		b.Props().set(seg.Field, child)
		return
	}
	b.container(seg)
	for len(b.n.Elements) <= seg.Index {
		pad := &Node{}
		adopt(b.n, pad, "", len(b.n.Elements))
		b.n.Elements = append(b.n.Elements, pad)
	}
	adopt(b.n, child, "", seg.Index)
	b.n.Elements[seg.Index] = child
}

// Remove deletes the child under seg, splicing arrays. It reports whether
// there was such a child.
func (b Builder) Remove(seg Segment) bool {
	if !seg.IsIndex {
		return b.n.Props != nil && b.n.Props.remove(seg.Field)
	}
	if b.n.Type != ArrayType || seg.Index < 0 || seg.Index >= len(b.n.Elements) {
		return false
	}
	b.n.Elements = append(b.n.Elements[:seg.Index], b.n.Elements[seg.Index+1:]...)
	for i := seg.Index; i < len(b.n.Elements); i++ {
		b.n.Elements[i].ParentIndex = i
	}
	return true
}
