package array

import (
	"fmt"
	"strings"
)

const defaultBitsPerLevel uint32 = 5 // degree 32, as in most persistent vector implementations

// props holds the tuning parameters of the backing tree. The zero value is
// usable and initializes lazily to the defaults.
type props struct {
	bits   uint32 // number of index bits consumed per tree level
	degree uint32 // fan-out, = 2^bits
	mask   uint32 // low-bits mask, = degree-1
	shift  uint32 // bits-per-level * (tree height - 1)
}

func (p props) init() props {
	if p.degree == 0 {
		p.bits = defaultBitsPerLevel
		p.degree = 1 << p.bits
		p.mask = p.degree - 1
	}
	return p
}

func (p props) withShift(s uint32) props {
	p.shift = s
	return p
}

// vnode is a node of the backing tree: either an inner node carrying child
// links, or a leaf carrying a full bucket of elements.
type vnode[T any] struct {
	children []*vnode[T]
	leafs    []T
}

func (node *vnode[T]) String() string {
	if node == nil {
		return "[]"
	}
	if node.leafs != nil {
		return fmt.Sprintf("%v", node.leafs)
	}
	var sb strings.Builder
	sb.WriteRune('[')
	for i, ch := range node.children {
		if ch == nil {
			continue
		}
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteRune('•')
	}
	sb.WriteRune(']')
	return sb.String()
}

// clone copies a node one level deep; children are copied as links only
// (structural sharing).
func (node *vnode[T]) clone() *vnode[T] {
	cow := &vnode[T]{}
	if node == nil {
		return cow
	}
	if node.leafs != nil {
		cow.leafs = make([]T, len(node.leafs))
		copy(cow.leafs, node.leafs)
	}
	if node.children != nil {
		cow.children = make([]*vnode[T], len(node.children))
		copy(cow.children, node.children)
	}
	return cow
}

func emptyNode[T any](degree uint32) *vnode[T] {
	return &vnode[T]{children: make([]*vnode[T], degree)}
}

// newLeaf copies a full tail bucket into a fresh leaf node.
func newLeaf[T any](tail []T) *vnode[T] {
	leaf := &vnode[T]{leafs: make([]T, len(tail))}
	copy(leaf.leafs, tail)
	return leaf
}

// newPath wraps a leaf for tail into a chain of level/bits single-child
// inner nodes.
func newPath[T any](level, bits, degree uint32, tail []T) *vnode[T] {
	node := newLeaf(tail)
	for l := level; l > 0; l -= bits {
		wrapper := emptyNode[T](degree)
		wrapper.children[0] = node
		node = wrapper
	}
	return node
}

func cloneTail[T any](tail []T, length int) []T {
	newTail := make([]T, length)
	copy(newTail, tail)
	return newTail
}

// walk visits the elements below node, in index order.
func walk[T any](node *vnode[T], visit func(T)) {
	if node == nil {
		return
	}
	if node.leafs != nil {
		for _, x := range node.leafs {
			visit(x)
		}
		return
	}
	for _, ch := range node.children {
		walk(ch, visit)
	}
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("array: "+msg, msgargs...)
		panic(msg)
	}
}
