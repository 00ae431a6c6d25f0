package steps

// Flatten returns all nodes in depth-first pre-order: each node is
// followed by its descendants before its next sibling. Groups are
// included alongside leaves, which is the order a renderer draws the
// tree in.
func Flatten(nodes []*Node) []*Node {
	out := make([]*Node, 0, len(nodes))
	var walk func(ns []*Node)
	walk = func(ns []*Node) {
		for _, n := range ns {
			out = append(out, n)
			walk(n.Children)
		}
	}
	walk(nodes)
	return out
}

// Leaves returns only the work-carrying nodes, in the same depth-first
// order Flatten uses. Groups are traversed but not emitted; the result
// is the execution order of the tree.
func Leaves(nodes []*Node) []*Node {
	var out []*Node
	var walk func(ns []*Node)
	walk = func(ns []*Node) {
		for _, n := range ns {
			if n.IsLeaf() {
				out = append(out, n)
			}
			walk(n.Children)
		}
	}
	walk(nodes)
	return out
}
