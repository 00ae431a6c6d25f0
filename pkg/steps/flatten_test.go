package steps

import "testing"

func testTree(t *testing.T) []*Node {
	t.Helper()
	return Parse(Def{
		{Key: "setup", Value: Group(Def{
			{Key: "fetchDeps", Value: Do(noop)},
			{Key: "writeConfig", Value: Do(noop)},
		})},
	})
}

func TestFlatten_PreOrder(t *testing.T) {
	flat := Flatten(testTree(t))

	want := []string{"setup", "fetchDeps", "writeConfig"}
	if len(flat) != len(want) {
		t.Fatalf("len(flat) = %d, want %d", len(flat), len(want))
	}
	for i, key := range want {
		if flat[i].Key != key {
			t.Errorf("flat[%d].Key = %q, want %q", i, flat[i].Key, key)
		}
	}
}

func TestFlatten_ChildrenBeforeNextSibling(t *testing.T) {
	nodes := Parse(Def{
		{Key: "first", Value: Group(Def{
			{Key: "firstChild", Value: Do(noop)},
		})},
		{Key: "second", Value: Do(noop)},
	})

	flat := Flatten(nodes)
	want := []string{"first", "firstChild", "second"}
	for i, key := range want {
		if flat[i].Key != key {
			t.Errorf("flat[%d].Key = %q, want %q", i, flat[i].Key, key)
		}
	}
}

func TestLeaves_ExcludesGroups(t *testing.T) {
	leaves := Leaves(testTree(t))

	want := []string{"fetchDeps", "writeConfig"}
	if len(leaves) != len(want) {
		t.Fatalf("len(leaves) = %d, want %d", len(leaves), len(want))
	}
	for i, key := range want {
		if leaves[i].Key != key {
			t.Errorf("leaves[%d].Key = %q, want %q", i, leaves[i].Key, key)
		}
		if !leaves[i].IsLeaf() {
			t.Errorf("leaves[%d] is not a leaf", i)
		}
	}
}

func TestLeaves_Empty(t *testing.T) {
	if got := Leaves(nil); len(got) != 0 {
		t.Errorf("Leaves(nil) = %d nodes, want 0", len(got))
	}
}
