package dict

/*
{-| A dictionary mapping unique keys to values. The keys can be any comparable
type. Insert, remove, and query operations all take O(log n) time.

# Build
@docs empty, singleton, insert, update, remove

# Query
@docs isEmpty, member, get, size

# Lists
@docs keys, values, toList, fromList

# Transform
@docs map, foldl, foldr, filter, partition

# Combine
@docs union, intersect, diff, merge

-}
*/

import (
	"github.com/npillmayer/elmkit/basics"
	"github.com/npillmayer/elmkit/maybe"
	"github.com/npillmayer/elmkit/tuple"
)

const defaultLowWaterMark uint = 3 // 2^n - 1
// high water mark includes space for +1 child link and for a stopper
var defaultHighWaterMark uint = uint(ceiling(int(defaultLowWaterMark)*2)) - 2

type props struct {
	lowWaterMark  uint
	highWaterMark uint
}

func (p props) init() props {
	if p.highWaterMark == 0 {
		p.lowWaterMark = defaultLowWaterMark
		p.highWaterMark = defaultHighWaterMark
	}
	return p
}

// Dict is an immutable persistent dictionary, backed by an in-memory B-tree.
// An empty instance is usable as an empty dictionary, i.e. this is legal:
//
//     d := dict.Dict[int, int]{}.Insert(1, 42)
//
// returning a dictionary containing a single key ⟨1⟩ associated with value 42.
//
type Dict[K basics.Ordered, V any] struct {
	props
	root  *xnode[K, V]
	size  int
	depth uint
}

// Empty constructs a dictionary with options, if you need any.
// Use it like this:
//
//     d := dict.Empty[int, string](dict.Degree(16))
//     d = d.Insert(42, "Galaxy")
//
func Empty[K basics.Ordered, V any](opts ...Option) Dict[K, V] {
	d := Dict[K, V]{}
	d.props = d.props.init()
	for _, option := range opts {
		d.props = option.config(d.props)
	}
	return d
}

// Singleton constructs a dictionary with a single key/value entry.
func Singleton[K basics.Ordered, V any](key K, value V) Dict[K, V] {
	return Empty[K, V]().Insert(key, value)
}

// Option is a type to help initializing dictionaries at creation time.
type Option struct {
	config func(props) props
}

// Degree is an option to set the minimum number of children a node of the
// backing tree owns. The lower bound for the degree is 3.
//
// Use it like this:
//
//     d := dict.Empty[int, string](dict.Degree(16))
//
func Degree(n int) Option {
	conf := func(p props) props {
		low := max(2, n-1)
		p.lowWaterMark = uint(low)
		p.highWaterMark = uint(ceiling(int(p.lowWaterMark)*2)) - 2
		return p
	}
	return Option{config: conf}
}

// --- Query -----------------------------------------------------------------

// Get locates a key in a dictionary, if present, and returns the value associated
// with the key, or Nothing.
func (d Dict[K, V]) Get(key K) maybe.Maybe[V] {
	var found bool
	var path slotPath[K, V] = make([]slot[K, V], d.depth)
	if found, path = d.findKeyAndPath(key, path); found {
		return maybe.Just(path.last().item().value)
	}
	return maybe.Nothing[V]()
}

// Member checks if a key is present in a dictionary.
func (d Dict[K, V]) Member(key K) bool {
	found, _ := d.findKeyAndPath(key, make([]slot[K, V], d.depth))
	return found
}

// Size returns the number of key/value entries, in constant time.
func (d Dict[K, V]) Size() int {
	return d.size
}

func (d Dict[K, V]) IsEmpty() bool {
	return d.size == 0
}

// --- Build -----------------------------------------------------------------

// Insert returns a copy of a dictionary with a new key inserted, which is
// associated with `value`. If an entry for key is already present, the associated
// value will be replaced (in a new incarnation of the dictionary, nevertheless).
func (d Dict[K, V]) Insert(key K, value V) Dict[K, V] {
	d.props = d.props.init()
	var path slotPath[K, V] = make([]slot[K, V], d.depth)
	var found bool
	if found, path = d.findKeyAndPath(key, path); found {
		return d.replacing(key, value, path) // copy with replaced value
	}
	tracer().Debugf("insert: slot path = %s", path)
	item := xitem[K, V]{key, value}
	if d.root == nil { // virgin dictionary => insert first node and return
		root := xnode[K, V]{}.withInsertedItem(item, 0)
		d.root, d.depth, d.size = &root, 1, 1
		return d
	}
	leafSlot := path.last()
	assertThat(leafSlot.node.isLeaf(), "attempt to insert item at non-leaf")
	cow := leafSlot.node.withInsertedItem(item, leafSlot.index) // copy-on-write
	tracer().Debugf("insert: created copy of (leaf + key@%d) = %s", leafSlot.index, &cow)
	newRoot := path.dropLast().foldR(splitAndClone[K, V](d.highWaterMark),
		slot[K, V]{node: &cow, index: leafSlot.index},
	)
	tracer().Debugf("insert: new root = %s", newRoot)
	if newRoot.node.overfull(d.highWaterMark) {
		newRoot = xnode[K, V]{}.splitChild(newRoot)
		d.depth++
	}
	d.root = newRoot.node
	d.size++
	return d
}

func (d Dict[K, V]) replacing(key K, value V, path slotPath[K, V]) Dict[K, V] {
	assertThat(len(path) > 0, "cannot replace item without path")
	tracer().Debugf("replace: slot path = %s", path)
	hit := path[len(path)-1] // slot where `key` lives
	item := xitem[K, V]{key: key, value: value}
	cow := hit.node.withReplacedValue(item, hit.index)
	tracer().Debugf("created copy of node for replacement: %s", &cow)
	newRoot := path.dropLast().foldR(cloneSeam[K, V], slot[K, V]{node: &cow, index: hit.index})
	tracer().Debugf("replace: top = %s", newRoot)
	d.root = newRoot.node
	return d
}

// Remove returns a copy of a dictionary with key deleted, if present, together with
// its associated value. If key is not found, the dictionary is returned unchanged.
func (d Dict[K, V]) Remove(key K) Dict[K, V] {
	d.props = d.props.init()
	var path slotPath[K, V] = make([]slot[K, V], d.depth)
	var found bool
	if found, path = d.findKeyAndPath(key, path); !found {
		return d // no need for modification
	}
	tracer().Debugf("deletion: slot path = %s", path)
	del := path.last()
	var cowLeaf xnode[K, V]
	var leafSlot slot[K, V]
	if del.node.isLeaf() {
		cow := del.node.withDeletedItem(del.index) // copy-on-write
		tracer().Debugf("created copy of leaf w/out deleted item: %v", cow.items)
		leafSlot = slot[K, V]{node: &cow, index: del.index}
	} else { // for inner node:
		// swap item with rightmost item of left subtree or leftmost item of right subtree
		cow := del.node.clone()                                           // cow is clone of inner node
		path[len(path)-1].node = &cow                                     // remember clone in path
		leafItem, leafPath := del.stealPredOrSucc(path, d.lowWaterMark)   // from left or right subtree
		cow.items[del.index] = leafItem                                   // insert stolen item
		l := leafPath.last()                                              //
		cowLeaf = l.node.withDeletedItem(l.index)                         // remove stolen item from leaf
		path = leafPath                                                   // continue with path from root to leaf
		leafSlot = slot[K, V]{node: &cowLeaf, index: l.index}             // leaf to start balancing
	}
	// balance from leaf-node upwards, starting at the leaf where we deleted an item
	tracer().Debugf("after delete: path = %v", path)
	newRoot := path.dropLast().foldR(balance[K, V](d.lowWaterMark),
		leafSlot,
	)
	tracer().Debugf("deletion: new root = %s", newRoot)
	d.root = newRoot.node
	d.size--
	switch { // catch border cases where root is empty after deletion
	case newRoot.len() == 0 && !newRoot.node.isLeaf():
		d.root = newRoot.node.children[0]
		d.depth--
	case newRoot.len() == 0 && newRoot.node.isLeaf():
		d.root = nil
		d.depth = 0
	}
	return d
}

// Update changes the value for a given key with an update function. The update
// function receives Nothing if the key is absent, and may return Nothing to
// remove the entry.
func (d Dict[K, V]) Update(key K, f func(maybe.Maybe[V]) maybe.Maybe[V]) Dict[K, V] {
	var v V
	switch m := f(d.Get(key)).Match(); m {
	case m.Just(&v):
		return d.Insert(key, v)
	case m.Nothing():
	}
	return d.Remove(key)
}

// --- Lists -----------------------------------------------------------------

// Keys returns all keys of a dictionary, in ascending order.
func (d Dict[K, V]) Keys() []K {
	keys := make([]K, 0, d.size)
	return foldAsc(d.root, func(key K, value V, acc []K) []K {
		return append(acc, key)
	}, keys)
}

// Values returns all values of a dictionary, in the order of their keys.
func (d Dict[K, V]) Values() []V {
	values := make([]V, 0, d.size)
	return foldAsc(d.root, func(key K, value V, acc []V) []V {
		return append(acc, value)
	}, values)
}

// ToList converts a dictionary into an association list of key/value pairs,
// in ascending key order.
func (d Dict[K, V]) ToList() []tuple.Pair[K, V] {
	pairs := make([]tuple.Pair[K, V], 0, d.size)
	return foldAsc(d.root, func(key K, value V, acc []tuple.Pair[K, V]) []tuple.Pair[K, V] {
		return append(acc, tuple.P(key, value))
	}, pairs)
}

// ToDescList converts a dictionary into an association list of key/value pairs,
// in descending key order.
func (d Dict[K, V]) ToDescList() []tuple.Pair[K, V] {
	pairs := make([]tuple.Pair[K, V], 0, d.size)
	return foldDesc(d.root, func(key K, value V, acc []tuple.Pair[K, V]) []tuple.Pair[K, V] {
		return append(acc, tuple.P(key, value))
	}, pairs)
}

// FromList converts an association list into a dictionary. Later entries win
// over earlier ones with the same key.
func FromList[K basics.Ordered, V any](pairs []tuple.Pair[K, V], opts ...Option) Dict[K, V] {
	d := Empty[K, V](opts...)
	for _, p := range pairs {
		d = d.Insert(p.First, p.Second)
	}
	return d
}

// --- Transform -------------------------------------------------------------

// Foldl folds f over the key/value entries of a dictionary, in ascending key order.
func Foldl[K basics.Ordered, V, R any](f func(K, V, R) R, initial R, d Dict[K, V]) R {
	return foldAsc(d.root, f, initial)
}

// Foldr folds f over the key/value entries of a dictionary, in descending key order.
func Foldr[K basics.Ordered, V, R any](f func(K, V, R) R, initial R, d Dict[K, V]) R {
	return foldDesc(d.root, f, initial)
}

// Map applies a function to all values of a dictionary.
func Map[K basics.Ordered, A, B any](f func(K, A) B, d Dict[K, A]) Dict[K, B] {
	return Foldl(func(key K, value A, acc Dict[K, B]) Dict[K, B] {
		return acc.Insert(key, f(key, value))
	}, Empty[K, B](), d)
}

// Filter keeps the entries a predicate tells to keep.
func (d Dict[K, V]) Filter(pred func(K, V) bool) Dict[K, V] {
	return Foldl(func(key K, value V, acc Dict[K, V]) Dict[K, V] {
		if pred(key, value) {
			return acc.Insert(key, value)
		}
		return acc
	}, Empty[K, V](), d)
}

// Partition splits a dictionary according to a predicate. The first dictionary
// contains all entries which satisfy the predicate, the second all that don't.
func (d Dict[K, V]) Partition(pred func(K, V) bool) (Dict[K, V], Dict[K, V]) {
	type pair struct{ yes, no Dict[K, V] }
	r := Foldl(func(key K, value V, acc pair) pair {
		if pred(key, value) {
			acc.yes = acc.yes.Insert(key, value)
		} else {
			acc.no = acc.no.Insert(key, value)
		}
		return acc
	}, pair{Empty[K, V](), Empty[K, V]()}, d)
	return r.yes, r.no
}

// --- Combine ---------------------------------------------------------------

// Union combines two dictionaries. If there is a collision, preference is given
// to the receiver.
func (d Dict[K, V]) Union(other Dict[K, V]) Dict[K, V] {
	return Foldl(func(key K, value V, acc Dict[K, V]) Dict[K, V] {
		return acc.Insert(key, value)
	}, other, d)
}

// Intersect keeps a key/value entry of the receiver when its key appears in other.
func (d Dict[K, V]) Intersect(other Dict[K, V]) Dict[K, V] {
	return d.Filter(func(key K, value V) bool {
		return other.Member(key)
	})
}

// Diff removes from the receiver any entry whose key appears in other.
func (d Dict[K, V]) Diff(other Dict[K, V]) Dict[K, V] {
	return Foldl(func(key K, value V, acc Dict[K, V]) Dict[K, V] {
		return acc.Remove(key)
	}, d, other)
}
