package array

import (
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	tp "github.com/xlab/treeprint"
)

func TestArrayConstructor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elmkit.array")
	defer teardown()
	//
	v := Empty[int](BitsPerLevel(2))
	if v.mask != 0x03 {
		t.Errorf("expected mask to be 0011, is %x", v.mask)
	}
	v = Empty[int]()
	if v.degree != 32 {
		t.Errorf("expected default degree to be 32, is %d", v.degree)
	}
}

func TestArrayZeroValueUsable(t *testing.T) {
	v := Array[int]{}.Push(42)
	if v.Length() != 1 || v.Get(0).WithDefault(0) != 42 {
		t.Error("expected zero-value array to be usable, isn't")
	}
}

func TestArrayPushIntoTail(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elmkit.array")
	defer teardown()
	//
	v := Empty[int](BitsPerLevel(2))
	for i := 0; i < 4; i++ {
		v = v.Push(i)
		if len(v.tail) != i+1 {
			t.Logf(printVec(v))
			t.Errorf("expected tail of length %d, is %d", i+1, len(v.tail))
		}
	}
	if v.root != nil {
		t.Error("expected tree to still be empty with tail not yet overflown, isn't")
	}
	v = v.Push(4) // tail overflows into the tree
	if v.root == nil || len(v.tail) != 1 {
		t.Logf(printVec(v))
		t.Error("expected full tail to move into the tree, didn't")
	}
}

func TestArrayGrowsAndIndexes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elmkit.array")
	defer teardown()
	//
	v := Empty[int](BitsPerLevel(2))
	const n = 100 // forces several root splits at degree 4
	for i := 0; i < n; i++ {
		v = v.Push(i * 7)
	}
	t.Logf(printVec(v))
	if v.Length() != n {
		t.Fatalf("expected length %d, is %d", n, v.Length())
	}
	for i := 0; i < n; i++ {
		if v.at(uint32(i)) != i*7 {
			t.Fatalf("expected element %d to be %d, is %d", i, i*7, v.at(uint32(i)))
		}
	}
}

func TestArrayPersistence(t *testing.T) {
	v1 := FromList([]int{1, 2, 3}, BitsPerLevel(1))
	v2 := v1.Push(4)
	v3 := v2.Set(0, 99)
	if v1.Length() != 3 || v2.Length() != 4 {
		t.Error("expected push to leave the original array alone, doesn't")
	}
	if v2.at(0) != 1 || v3.at(0) != 99 {
		t.Error("expected set to modify the copy only, doesn't")
	}
}

func TestArrayPop(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "elmkit.array")
	defer teardown()
	//
	v := Empty[int](BitsPerLevel(2))
	const n = 70
	for i := 0; i < n; i++ {
		v = v.Push(i)
	}
	for i := n - 1; i >= 0; i-- {
		if v.Last().WithDefault(-1) != i {
			t.Logf(printVec(v))
			t.Fatalf("expected last element to be %d, is %v", i, v.Last())
		}
		v = v.Pop()
		if v.Length() != i {
			t.Fatalf("expected length %d after pop, is %d", i, v.Length())
		}
	}
	if !v.IsEmpty() {
		t.Error("expected array to be empty after popping everything, isn't")
	}
}

// --- Print array tree ------------------------------------------------------

func printVec[T any](v Array[T]) string {
	header := fmt.Sprintf("\nArray(length=%d, shift=%d, degree=%d)\n", v.length, v.shift, v.degree)
	tail := fmt.Sprintf("       tail=%v\n", v.tail)
	printer := tp.New()
	printTreeNode(printer, v.root)
	return header + tail + printer.String() + "\n"
}

func printTreeNode[T any](printer tp.Tree, node *vnode[T]) {
	if node == nil {
		return
	}
	if node.leafs != nil {
		printer.AddNode(node.String())
		return
	}
	branch := printer.AddBranch(node.String())
	for _, ch := range node.children {
		printTreeNode(branch, ch)
	}
}
