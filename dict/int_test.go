package dict

import "testing"

// test internals

func TestInternalCeiling(t *testing.T) {
	c := []struct {
		n    int
		ceil int
	}{
		{0, 0},
		{2, 4},
		{3, 8},
		{4, 8},
		{6, 8},
		{7, 16},
	}
	for i, x := range c {
		xx := ceiling(x.n)
		if xx != x.ceil {
			t.Errorf("%d: expected ceiling(%d) to be %d, is %d", i, x.n, x.ceil, xx)
		}
	}
}

func TestInternalInsertedItem(t *testing.T) {
	node := xnode[int, int]{items: []xitem[int, int]{{1, 1}, {3, 3}, {5, 5}}}
	cow := node.withInsertedItem(xitem[int, int]{2, 2}, 1)
	if cow.String() != "⟨1 2 3 5⟩" {
		t.Errorf("expected insertion to yield ⟨1 2 3 5⟩, is %s", &cow)
	}
	if len(node.items) != 3 {
		t.Error("expected insertion to leave the original node alone, doesn't")
	}
}

func TestInternalDeletedItem(t *testing.T) {
	node := xnode[int, int]{items: []xitem[int, int]{{1, 1}, {3, 3}, {5, 5}}}
	cow := node.withDeletedItem(1)
	if cow.String() != "⟨1 5⟩" {
		t.Errorf("expected deletion to yield ⟨1 5⟩, is %s", &cow)
	}
	if len(node.items) != 3 {
		t.Error("expected deletion to leave the original node alone, doesn't")
	}
}

func TestInternalCut(t *testing.T) {
	node := xnode[int, int]{items: []xitem[int, int]{{1, 1}, {3, 3}, {5, 5}}}
	cow, item, _ := node.withCutRight()
	if item.key != 5 || cow.String() != "⟨1 3⟩" {
		t.Errorf("expected cut-right to yield 5 and ⟨1 3⟩, is %v and %s", item.key, &cow)
	}
	cow, item, _ = node.withCutLeft()
	if item.key != 1 || cow.String() != "⟨3 5⟩" {
		t.Errorf("expected cut-left to yield 1 and ⟨3 5⟩, is %v and %s", item.key, &cow)
	}
}
