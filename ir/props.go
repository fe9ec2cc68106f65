package ir

import (
	"iter"
	"slices"
)

// Props is an insertion ordered map from property name to node.
// Replacing the node under an existing name keeps the name's position.
type Props struct {
	keys []string
	vals map[string]*Node
}

func NewProps() *Props {
	return &Props{vals: map[string]*Node{}}
}

func (p *Props) Len() int {
	if p == nil {
		return 0
	}
	return len(p.keys)
}

func (p *Props) Get(name string) *Node {
	if p == nil {
		return nil
	}
	return p.vals[name]
}

func (p *Props) Keys() []string {
	if p == nil {
		return nil
	}
	return slices.Clone(p.keys)
}

// All iterates every entry in order, tombstones included.
func (p *Props) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if p == nil {
			return
		}
		for _, k := range p.keys {
			if !yield(k, p.vals[k]) {
				return
			}
		}
	}
}

func (p *Props) set(name string, n *Node) {
	if _, ok := p.vals[name]; !ok {
		p.keys = append(p.keys, name)
	}
	p.vals[name] = n
}

func (p *Props) remove(name string) bool {
	if _, ok := p.vals[name]; !ok {
		return false
	}
	delete(p.vals, name)
	p.keys = slices.DeleteFunc(p.keys, func(k string) bool { return k == name })
	return true
}

// visible counts entries which are not tombstones.
func (p *Props) visible() int {
	n := 0
	for _, v := range p.All() {
		if !v.Tombstone {
			n++
		}
	}
	return n
}
