package steps

// Parse converts a definition into a tree of Nodes, preserving
// declaration order.
//
// The parse is best-effort, not validating: entries whose value is
// nil, carries a nil work function, or is some foreign Value
// implementation are silently dropped. Callers relying on an entry
// appearing in the tree should pre-check with IsGroup/IsLabeled.
func Parse(def Def) []*Node {
	return parse(def, 0)
}

func parse(def Def, indent int) []*Node {
	nodes := make([]*Node, 0, len(def))
	for _, entry := range def {
		switch v := entry.Value.(type) {
		case workValue:
			if v.fn == nil {
				continue
			}
			nodes = append(nodes, &Node{
				Key:    entry.Key,
				Label:  GenerateLabel(entry.Key),
				Indent: indent,
				Run:    v.fn,
			})
		case labeledValue:
			if v.fn == nil {
				continue
			}
			nodes = append(nodes, &Node{
				Key:    entry.Key,
				Label:  v.label,
				Indent: indent,
				Run:    v.fn,
			})
		case groupValue:
			nodes = append(nodes, &Node{
				Key:      entry.Key,
				Label:    GenerateLabel(entry.Key),
				Indent:   indent,
				Children: parse(v.def, indent+1),
			})
		default:
			// Unrecognized declaration shape: dropped by policy.
			continue
		}
	}
	return nodes
}
