package dict

/*
Remarks:
--------

- 'cow' stands for copy-on-write and is used throughout the code for variables holding
  clones of nodes.

- We use a programming-style reminiscent of functional programming (see remarks on
  re-balancing) where it makes things easier to understand.

- A new modified incarnation of a dictionary always is reflected by a new root.

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/elmkit/basics"
)

// xitem is a key/value entry of a tree node.
type xitem[K basics.Ordered, V any] struct {
	key   K
	value V
}

// xnode is a node of the B-tree. Leafs have no children; inner nodes hold
// len(items)+1 child links.
type xnode[K basics.Ordered, V any] struct {
	items    []xitem[K, V]
	children []*xnode[K, V]
}

func (node *xnode[K, V]) String() string {
	if node == nil {
		return "⟨⟩"
	}
	var sb strings.Builder
	sb.WriteRune('⟨')
	for i, item := range node.items {
		if i > 0 {
			sb.WriteRune(' ')
		}
		sb.WriteString(fmt.Sprintf("%v", item.key))
	}
	sb.WriteRune('⟩')
	return sb.String()
}

func (node *xnode[K, V]) isLeaf() bool {
	return node == nil || len(node.children) == 0
}

func (node xnode[K, V]) overfull(highWaterMark uint) bool {
	return uint(len(node.items)) > highWaterMark
}

func (node *xnode[K, V]) underfull(lowWaterMark uint) bool {
	if node == nil {
		return true
	}
	return uint(len(node.items)) < lowWaterMark
}

func (node xnode[K, V]) clone() xnode[K, V] {
	return node.cloneWithCapacity(0)
}

// cloneWithCapacity copies a node, providing space for cap items. Children are
// copied as links only (structural sharing).
func (node xnode[K, V]) cloneWithCapacity(cap int) xnode[K, V] {
	cow := xnode[K, V]{}
	if cap < ceiling(len(node.items)) {
		cap = ceiling(len(node.items))
	}
	if cap == 0 {
		return cow
	}
	cow.items = make([]xitem[K, V], len(node.items), cap)
	copy(cow.items, node.items)
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, V], len(node.children), cap+1)
		copy(cow.children, node.children)
	}
	return cow
}

// asNonLeaf provides a node with a children-link slice, if it doesn't already
// have one.
func (node xnode[K, V]) asNonLeaf() xnode[K, V] {
	if !node.isLeaf() {
		return node
	}
	cow := node
	cow.children = make([]*xnode[K, V], len(node.items)+1, ceiling(len(node.items))+1)
	return cow
}

// slice copies the segment [from…to) of a node's items, together with the
// child links embracing the segment.
func (node xnode[K, V]) slice(from, to int) xnode[K, V] {
	cow := xnode[K, V]{}
	cow.items = make([]xitem[K, V], to-from, ceiling(to-from))
	copy(cow.items, node.items[from:to])
	if !node.isLeaf() {
		cow.children = make([]*xnode[K, V], to-from+1, ceiling(to-from)+1)
		copy(cow.children, node.children[from:to+1])
	}
	return cow
}

func (node *xnode[K, V]) findSlot(key K) (bool, int) {
	items, itemcnt := node.items, len(node.items)
	k := key
	slotinx := sort.Search(itemcnt, func(i int) bool {
		return items[i].key >= k // sort.Search will find the smallest i for which this is true
	})
	tracer().Debugf("slot index ∈ %v = %d", items, slotinx)
	return slotinx < itemcnt && k == items[slotinx].key, slotinx
}

func (d Dict[K, V]) findKeyAndPath(key K, pathBuf slotPath[K, V]) (found bool, path slotPath[K, V]) {
	path = pathBuf[:0] // we track the path to the key's slot
	if d.root == nil {
		return
	}
	var index int
	var node *xnode[K, V] = d.root // walking nodes, start search at the top
	for !node.isLeaf() {
		tracer().Debugf("node = %v", node)
		found, index = node.findSlot(key)
		path = append(path, slot[K, V]{node: node, index: index})
		if found {
			return // we have an exact match
		}
		node = node.children[index]
	}
	tracer().Debugf("node = %v", node)
	found, index = node.findSlot(key)
	path = append(path, slot[K, V]{node: node, index: index})
	tracer().Debugf("slot path for key=%v -> %s", key, path)
	return
}

// --- COW node operations ---------------------------------------------------

func (node xnode[K, V]) withReplacedValue(item xitem[K, V], at int) xnode[K, V] {
	assertThat(at < len(node.items), "given item index out of range: %d ≥ %d", at, len(node.items))
	cow := node.clone()
	cow.items[at].value = item.value
	return cow
}

func (node xnode[K, V]) withDeletedItem(at int) xnode[K, V] {
	assertThat(at < len(node.items), "given item index out of range: %d ≥ %d", at, len(node.items))
	cow := node.clone()
	cow.items = append(cow.items[:at], cow.items[at+1:]...)
	if !cow.isLeaf() {
		cow.children = append(cow.children[:at], cow.children[at+1:]...)
	}
	return cow
}

func (node xnode[K, V]) withInsertedItem(item xitem[K, V], at int) xnode[K, V] {
	assertThat(at <= len(node.items), "given item index out of range: %d > %d", at, len(node.items))
	cap := max(ceiling(len(node.items)+1), len(node.items)+1)
	cow := node.cloneWithCapacity(cap) // change-on-write behaviour requires copying
	var stopper xitem[K, V]
	cow.items = append(cow.items, stopper)
	copy(cow.items[at+1:], cow.items[at:])
	cow.items[at] = item
	if !cow.isLeaf() { // a new item brings a new (empty) child link to its right
		cow.children = append(cow.children, nil)
		copy(cow.children[at+2:], cow.children[at+1:])
		cow.children[at+1] = nil
	}
	return cow
}

func (node xnode[K, V]) withCutRight() (xnode[K, V], xitem[K, V], *xnode[K, V]) {
	assertThat(len(node.items) > 0, "attempt to cut right item from empty node")
	cow := node.clone()
	item := cow.items[len(cow.items)-1]
	cow.items = cow.items[:len(cow.items)-1]
	var rnode *xnode[K, V]
	if !cow.isLeaf() {
		rnode = cow.children[len(cow.children)-1]
		cow.children = cow.children[:len(cow.children)-1]
	}
	return cow, item, rnode
}

func (node xnode[K, V]) withCutLeft() (xnode[K, V], xitem[K, V], *xnode[K, V]) {
	assertThat(len(node.items) > 0, "attempt to cut left item from empty node")
	cow := node.clone()
	item := cow.items[0]
	cow.items = cow.items[1:len(cow.items)]
	var lnode *xnode[K, V]
	if !cow.isLeaf() {
		lnode = cow.children[0]
		cow.children = cow.children[1:len(cow.children)]
	}
	return cow, item, lnode
}

// splitChild splits an overfull child node.
// It is not checked if the child is indeed overfull.
// Returns a modified copy of node with 2 new children, where the left one substitutes
// a child of node.
//
// It's legal to pass in xnode{} as node (in order to create a new root).
//
func (node xnode[K, V]) splitChild(s slot[K, V]) slot[K, V] {
	child := s.node
	half := len(child.items) / 2
	medianitem := child.items[half]
	siblingL := child.slice(0, half)
	siblingR := child.slice(half+1, len(child.items))
	found, index := node.findSlot(medianitem.key)
	assertThat(!found, "internal inconsistency: child has same key as parent (during split)")
	cow := node.withInsertedItem(medianitem, index).asNonLeaf()
	cow.children[index] = &siblingL
	cow.children[index+1] = &siblingR
	return slot[K, V]{node: &cow, index: index}
}

// --- Spine rebuilding ------------------------------------------------------

func splitAndClone[K basics.Ordered, V any](highWaterMark uint) func(slot[K, V], slot[K, V]) slot[K, V] {
	return func(parent, child slot[K, V]) slot[K, V] {
		tracer().Debugf("split&propagate: parent = %s, child = %s", parent, child)
		if child.node.overfull(highWaterMark) {
			tracer().Debugf("child is overfull: %v", child)
			return parent.node.splitChild(child)
		}
		return cloneSeam(parent, child)
	}
}

func cloneSeam[K basics.Ordered, V any](parent, child slot[K, V]) slot[K, V] {
	tracer().Debugf("seam: parent = %s, child = %s", parent, child)
	cowParent := parent.node.clone()
	cowParent.children[parent.index] = child.node
	return slot[K, V]{node: &cowParent, index: parent.index}
}

func balance[K basics.Ordered, V any](lowWaterMark uint) func(slot[K, V], slot[K, V]) slot[K, V] {
	return func(parent, child slot[K, V]) slot[K, V] {
		tracer().Debugf("balance: parent = %s, child = %s", parent, child)
		if child.node.underfull(lowWaterMark) {
			tracer().Debugf("child is underfull: %v", child)
			return parent.balance(child, lowWaterMark)
		}
		return cloneSeam(parent, child)
	}
}

func (parent slot[K, V]) balance(child slot[K, V], lowWaterMark uint) slot[K, V] {
	assertThat(len(parent.node.children) > 0, "attempt to balance parent w/ zero children")
	if !parent.leftSibling(child).underfull(lowWaterMark + 1) {
		// steal item from left sibling ⇒ rotate right
		return parent.rotateRight(parent.leftSibling(child), child)
	} else if !parent.rightSibling(child).underfull(lowWaterMark + 1) {
		// steal item from right sibling ⇒ rotate left
		return parent.rotateLeft(child, parent.rightSibling(child))
	}
	// steal item from parent and merge with a sibling
	return parent.merge(parent.siblings2(child))
}

// merge steals an item from parent and merges child with a sibling.
// Returns a new parent which may be underfull or even empty (in case of parent being root).
func (parent slot[K, V]) merge(mi mergeinfo[K, V]) slot[K, V] {
	parent = mi.parent
	assertThat(parent.len() > 0, "attempt to extract an item from an empty parent node")
	cow := parent.node.withDeletedItem(parent.index)
	newParent := slot[K, V]{node: &cow, index: parent.index}
	lsbl, rsbl := mi.left, mi.right // rsbl may be slot{}, i.e. empty
	cap := ceiling(lsbl.len() + rsbl.len() + 1)
	cowch := lsbl.node.cloneWithCapacity(cap)
	assertThat(len(cowch.items) == len(lsbl.node.items), "internal inconsistency")
	cowch.items = append(cowch.items, parent.item())
	cowch.items = append(cowch.items, rsbl.items()...)
	if !cowch.isLeaf() && rsbl.len() > 0 {
		cowch.children = append(cowch.children, rsbl.node.children...)
		assertThat(len(cowch.children) == len(cowch.items)+1, "internal inconsistency")
	}
	cow.children[parent.index] = &cowch // link new parent to new child
	return newParent
}

func (parent slot[K, V]) rotateRight(lsbl, rsbl slot[K, V]) slot[K, V] {
	cow := parent.node.clone()
	newParent := slot[K, V]{node: &cow, index: parent.index}
	// cut rightmost item from left sibling
	cowlsbl, lsblitem, grandChild := lsbl.node.withCutRight()
	// replace parent item with item from left sibling
	parentinx := parent.index - 1 // parent item between the two siblings
	parentitem := slot[K, V]{node: &cow, index: parentinx}.replaceItem(lsblitem)
	// insert parent item as leftmost item in child; the stolen grand child
	// becomes the item's left sibling link
	cowrsbl := rsbl.node.withInsertedItem(parentitem, 0)
	if !cowrsbl.isLeaf() {
		cowrsbl.children[1] = cowrsbl.children[0]
		cowrsbl.children[0] = grandChild
	}
	// link new children of parent/cow
	cow.children[parentinx] = &cowlsbl
	cow.children[parentinx+1] = &cowrsbl
	return newParent
}

func (parent slot[K, V]) rotateLeft(lsbl, rsbl slot[K, V]) slot[K, V] {
	cow := parent.node.clone()
	newParent := slot[K, V]{node: &cow, index: parent.index}
	// cut leftmost item from right sibling
	cowrsbl, rsblitem, grandChild := rsbl.node.withCutLeft()
	// replace parent item with item from right sibling
	parentinx := parent.index // parent item between the two siblings
	parentitem := slot[K, V]{node: &cow, index: parentinx}.replaceItem(rsblitem)
	// insert parent item as rightmost item in child
	cowlsbl := lsbl.node.withInsertedItem(parentitem, len(lsbl.node.items))
	if !cowlsbl.isLeaf() {
		cowlsbl.children[len(cowlsbl.items)] = grandChild
	}
	// link new children of parent/cow
	cow.children[parentinx] = &cowlsbl
	cow.children[parentinx+1] = &cowrsbl
	return newParent
}

// stealPredOrSucc extends a path, which ends at an inner node holding the item to
// delete, down to the leaf holding the item's in-order predecessor or successor
// (whichever subtree can better spare an item). It returns the leaf item to steal,
// together with the extended path.
func (s slot[K, V]) stealPredOrSucc(path slotPath[K, V], lowWaterMark uint) (xitem[K, V], slotPath[K, V]) {
	inner := path.last() // clone of the inner node holding the doomed item
	node := inner.node.children[inner.index]
	if !node.underfull(lowWaterMark + 1) { // predecessor: rightmost item of left subtree
		for !node.isLeaf() {
			path = append(path, slot[K, V]{node: node, index: len(node.children) - 1})
			node = node.children[len(node.children)-1]
		}
		path = append(path, slot[K, V]{node: node, index: len(node.items) - 1})
		return node.items[len(node.items)-1], path
	}
	// successor: leftmost item of right subtree
	path[len(path)-1].index = inner.index + 1 // seam continues right of the doomed item
	node = inner.node.children[inner.index+1]
	for !node.isLeaf() {
		path = append(path, slot[K, V]{node: node, index: 0})
		node = node.children[0]
	}
	path = append(path, slot[K, V]{node: node, index: 0})
	return node.items[0], path
}

// --- Folding over tree items -----------------------------------------------

// foldAsc folds f over the subtree rooted in node, in ascending key order.
func foldAsc[K basics.Ordered, V, R any](node *xnode[K, V], f func(K, V, R) R, acc R) R {
	if node == nil {
		return acc
	}
	leaf := node.isLeaf()
	for i, item := range node.items {
		if !leaf {
			acc = foldAsc(node.children[i], f, acc)
		}
		acc = f(item.key, item.value, acc)
	}
	if !leaf {
		acc = foldAsc(node.children[len(node.items)], f, acc)
	}
	return acc
}

// foldDesc folds f over the subtree rooted in node, in descending key order.
func foldDesc[K basics.Ordered, V, R any](node *xnode[K, V], f func(K, V, R) R, acc R) R {
	if node == nil {
		return acc
	}
	leaf := node.isLeaf()
	if !leaf {
		acc = foldDesc(node.children[len(node.items)], f, acc)
	}
	for i := len(node.items) - 1; i >= 0; i-- {
		acc = f(node.items[i].key, node.items[i].value, acc)
		if !leaf {
			acc = foldDesc(node.children[i], f, acc)
		}
	}
	return acc
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("dict: "+msg, msgargs...)
		panic(msg)
	}
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ceiling rounds n, plus space for a stopper item and a child link, up to the
// next power of two.
func ceiling(n int) int {
	if n == 0 {
		return 0
	}
	c := 2
	for c < n+2 {
		c <<= 1
	}
	return c
}
