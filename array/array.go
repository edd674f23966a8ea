package array

/*
{-| Fast immutable arrays. The elements in an array must have the same type.

# Arrays
@docs empty, initialize, repeat, fromList

# Query
@docs isEmpty, length, get

# Manipulate
@docs set, push, append, slice

# Lists
@docs toList, toIndexedList

# Transform
@docs map, indexedMap, filter, foldl, foldr

-}
*/

import (
	"github.com/npillmayer/elmkit/maybe"
	"github.com/npillmayer/elmkit/tuple"
)

// Array is an immutable persistent sequence. The zero value is a usable
// empty array:
//
//     a := array.Array[int]{}.Push(42)
//
// Elements [0…tailOffset) live in a bit-partitioned tree of buckets; the
// last, possibly partial bucket is kept aside as the tail.
type Array[T any] struct {
	props
	length uint32
	tail   []T
	root   *vnode[T]
}

// Empty constructs an array with options, if you need any.
func Empty[T any](opts ...Option) Array[T] {
	v := Array[T]{}
	v.props = v.props.init()
	for _, option := range opts {
		v.props = option.config(v.props)
	}
	return v
}

// Option is a type to help initializing arrays at creation time.
type Option struct {
	config func(props) props
}

// BitsPerLevel is an option to indirectly set the degree of the underlying
// tree for an array. The degree of the tree will be 2^bits. Accepted values
// are [1…5]; default is 5, i.e. a degree of 32.
//
// Use it like this:
//
//     a := array.Empty[int](array.BitsPerLevel(2))
//
func BitsPerLevel(n int) Option {
	conf := func(p props) props {
		if n <= 0 {
			n = 2
		} else if n > 5 {
			n = 5
		}
		p = props{bits: uint32(n)}
		p.degree = 1 << p.bits
		p.mask = p.degree - 1
		return p
	}
	return Option{config: conf}
}

// Initialize creates an array of n elements, with element i set to f(i).
func Initialize[T any](n int, f func(int) T, opts ...Option) Array[T] {
	v := Empty[T](opts...)
	for i := 0; i < n; i++ {
		v = v.Push(f(i))
	}
	return v
}

// Repeat creates an array of n equal elements.
func Repeat[T any](n int, x T, opts ...Option) Array[T] {
	return Initialize(n, func(int) T { return x }, opts...)
}

// FromList creates an array from a slice of elements.
func FromList[T any](xs []T, opts ...Option) Array[T] {
	v := Empty[T](opts...)
	for _, x := range xs {
		v = v.Push(x)
	}
	return v
}

// --- Query -----------------------------------------------------------------

func (v Array[T]) Length() int {
	return int(v.length)
}

func (v Array[T]) IsEmpty() bool {
	return v.length == 0
}

// Get returns the element at index i, or Nothing if the index is out of range.
func (v Array[T]) Get(i int) maybe.Maybe[T] {
	if i < 0 || uint32(i) >= v.length {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.at(uint32(i)))
}

// Last returns the hindmost element, if any.
func (v Array[T]) Last() maybe.Maybe[T] {
	if len(v.tail) == 0 {
		return maybe.Nothing[T]()
	}
	return maybe.Just(v.tail[len(v.tail)-1])
}

// at reads a valid index from tail or tree.
func (v Array[T]) at(i uint32) T {
	v.props = v.props.init()
	if i >= v.tailOffset() {
		return v.tail[i&v.mask]
	}
	node := v.root
	for level := v.shift; level > 0; level -= v.bits {
		node = node.children[(i>>level)&v.mask]
	}
	return node.leafs[i&v.mask]
}

// --- Manipulate ------------------------------------------------------------

// Set returns a copy of the array with the element at index i replaced.
// An out-of-range index returns the array unchanged.
func (v Array[T]) Set(i int, value T) Array[T] {
	if i < 0 || uint32(i) >= v.length {
		return v
	}
	v.props = v.props.init()
	inx := uint32(i)
	if inx >= v.tailOffset() {
		newTail := cloneTail(v.tail, len(v.tail))
		newTail[inx&v.mask] = value
		return Array[T]{length: v.length, props: v.props, root: v.root, tail: newTail}
	}
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		subidx := (inx >> level) & v.mask
		child := node.children[subidx]
		child = child.clone()
		node.children[subidx] = child
		node = child
	}
	node.leafs[inx&v.mask] = value
	return Array[T]{length: v.length, props: v.props, root: newRoot, tail: v.tail}
}

// Push returns a copy of the array with value appended at the end.
func (v Array[T]) Push(value T) Array[T] {
	v.props = v.props.init()
	if !v.tailFull() { // just append value to tail
		tracer().Debugf("tail not full, appending %v to %v", value, v.tail)
		newTail := cloneTail(v.tail, len(v.tail)+1)
		newTail[len(newTail)-1] = value
		return Array[T]{length: v.length + 1, props: v.props, root: v.root, tail: newTail}
	}
	// tail is full ⇒ have to move tail into tree
	newTail := []T{value}
	assertThat(v.length >= v.degree, "inconsistency: array.length expected to be ≥ degree")
	if v.length == v.degree { // if old size = degree ⇒ tail becomes new root
		assertThat(v.root == nil, "inconsistency: array.root expected to be nil")
		leaf := newLeaf(v.tail)
		return Array[T]{length: v.length + 1, props: v.props.withShift(0), root: leaf, tail: newTail}
	}
	// check for root is full ⇒ increment shift
	if (v.length >> v.bits) > (1 << v.shift) {
		s := v.shift + v.bits
		newRoot := emptyNode[T](v.degree)
		newRoot.children[0] = v.root
		newRoot.children[1] = newPath(v.shift, v.bits, v.degree, v.tail)
		tracer().Debugf("created new array tail %v", newTail)
		return Array[T]{length: v.length + 1, props: v.props.withShift(s), root: newRoot, tail: newTail}
	}
	// still space in root
	newRoot := v.pushLeaf(v.length - 1)
	return Array[T]{length: v.length + 1, props: v.props, root: newRoot, tail: newTail}
}

func (v Array[T]) pushLeaf(i uint32) *vnode[T] {
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > v.bits; level -= v.bits {
		subidx := (i >> level) & v.mask
		child := node.children[subidx]
		if child == nil {
			node.children[subidx] = newPath(level-v.bits, v.bits, v.degree, v.tail)
			return newRoot
		}
		child = child.clone()
		node.children[subidx] = child
		node = child
	}
	node.children[(i>>v.bits)&v.mask] = newLeaf(v.tail)
	return newRoot
}

// Pop returns a copy of the array with the hindmost element removed.
// Popping an empty array is a no-op.
func (v Array[T]) Pop() Array[T] {
	if v.length == 0 {
		return v
	}
	v.props = v.props.init()
	if v.length == 1 {
		v = Array[T]{props: v.props}
		v.shift = 0
		return v
	}
	if ((v.length - 1) & v.mask) > 0 { // tail keeps more than one element
		newTail := cloneTail(v.tail, len(v.tail)-1)
		return Array[T]{length: v.length - 1, props: v.props, root: v.root, tail: newTail}
	}
	newTrieSize := v.length - v.degree - 1 // new tree size minus length of new tail
	if newTrieSize == 0 {                  // root vanishes into tail
		v = Array[T]{length: v.degree, props: v.props, root: nil, tail: v.root.leafs}
		v.shift = 0
		return v
	}
	if newTrieSize == 1<<v.shift { // can lower the height
		return v.lowerTrie()
	}
	return v.popTrie()
}

func (v Array[T]) lowerTrie() Array[T] {
	lowerShift := v.shift - v.bits
	newRoot := v.root.children[0]
	// find new tail: the single leaf below children[1]
	node := v.root.children[1]
	for level := lowerShift; level > 0; level -= v.bits {
		node = node.children[0]
	}
	v = Array[T]{length: v.length - 1, props: v.props, root: newRoot, tail: node.leafs}
	v.shift = lowerShift
	return v
}

func (v Array[T]) popTrie() Array[T] {
	newTrieSize := v.length - v.degree - 1
	forkPoint := newTrieSize ^ (newTrieSize - 1) // where does the node-path fork?
	var forked bool
	newRoot := v.root.clone()
	node := newRoot
	for level := v.shift; level > 0; level -= v.bits {
		subidx := (newTrieSize >> level) & v.mask
		child := node.children[subidx]
		switch {
		case forked: // already unlinked further up, just walk down to the leaf
			node = child
		case (forkPoint >> level) != 0: // unlink the leaf's path here
			forked = true
			node.children[subidx] = nil
			node = child
		default:
			child = child.clone()
			node.children[subidx] = child
			node = child
		}
	}
	return Array[T]{length: v.length - 1, props: v.props, root: newRoot, tail: node.leafs}
}

func (v Array[T]) tailOffset() uint32 {
	if v.length == 0 {
		return 0
	}
	return (v.length - 1) &^ v.mask
}

func (v Array[T]) tailFull() bool {
	if len(v.tail) < int(v.degree) {
		tracer().Debugf("tail is not full: %v", v.tail)
		return false
	}
	tracer().Debugf("tail is full: %v", v.tail)
	return true
}

// Append returns the concatenation of two arrays.
func (v Array[T]) Append(other Array[T]) Array[T] {
	other.each(func(x T) {
		v = v.Push(x)
	})
	return v
}

// Slice extracts the index range [from…to) into a new array. Negative indices
// count from the end:
//
//     array.FromList([]int{0, 1, 2, 3, 4}).Slice(1, -1)   // == [1, 2, 3]
//
func (v Array[T]) Slice(from, to int) Array[T] {
	lo := translate(from, int(v.length))
	hi := translate(to, int(v.length))
	w := Array[T]{props: v.props.init()}
	for i := lo; i < hi; i++ {
		w = w.Push(v.at(uint32(i)))
	}
	return w
}

// translate resolves a possibly negative index against length n and clamps
// it into [0, n].
func translate(i, n int) int {
	if i < 0 {
		i += n
	}
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// --- Lists -----------------------------------------------------------------

// each visits all elements in index order.
func (v Array[T]) each(visit func(T)) {
	walk(v.root, visit)
	for _, x := range v.tail {
		visit(x)
	}
}

func (v Array[T]) ToList() []T {
	xs := make([]T, 0, v.length)
	v.each(func(x T) {
		xs = append(xs, x)
	})
	return xs
}

func (v Array[T]) ToIndexedList() []tuple.Pair[int, T] {
	ps := make([]tuple.Pair[int, T], 0, v.length)
	v.each(func(x T) {
		ps = append(ps, tuple.P(len(ps), x))
	})
	return ps
}

// --- Transform -------------------------------------------------------------

// Foldl reduces an array from the left.
func Foldl[T, A any](f func(T, A) A, acc A, v Array[T]) A {
	v.each(func(x T) {
		acc = f(x, acc)
	})
	return acc
}

// Foldr reduces an array from the right.
func Foldr[T, A any](f func(T, A) A, acc A, v Array[T]) A {
	xs := v.ToList()
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// Map applies a function to every element of an array.
func Map[T, S any](f func(T) S, v Array[T]) Array[S] {
	w := Empty[S]()
	v.each(func(x T) {
		w = w.Push(f(x))
	})
	return w
}

// IndexedMap applies a function to every element, with its index.
func IndexedMap[T, S any](f func(int, T) S, v Array[T]) Array[S] {
	w := Empty[S]()
	i := 0
	v.each(func(x T) {
		w = w.Push(f(i, x))
		i++
	})
	return w
}

// Filter keeps the elements a predicate tells to keep.
func Filter[T any](pred func(T) bool, v Array[T]) Array[T] {
	w := Array[T]{props: v.props.init()}
	v.each(func(x T) {
		if pred(x) {
			w = w.Push(x)
		}
	})
	return w
}
