// Package steps models a declarative tree of named work items.
//
// Callers describe work as an ordered definition whose entries are one
// of three shapes: a bare work function, a labeled work function, or a
// nested group of further entries. Parse turns a definition into a tree
// of Nodes that an executor walks in declaration order and a renderer
// displays with indentation.
//
//	def := steps.Def{
//	    {Key: "loadModules", Value: steps.Do(loadModules)},
//	    {Key: "build", Value: steps.Group(steps.Def{
//	        {Key: "compile", Value: steps.Do(compile)},
//	        {Key: "link", Value: steps.Labeled("Link objects", link)},
//	    })},
//	}
//	nodes := steps.Parse(def)
package steps

import "context"

// Work is the unit of work carried by a leaf step.
type Work func(ctx context.Context) error

// Value is one declaration in a Def. It is a closed union: the only
// implementations are the ones produced by Do, Labeled, and Group.
type Value interface {
	stepValue()
}

type workValue struct {
	fn Work
}

type labeledValue struct {
	label string
	fn    Work
}

type groupValue struct {
	def Def
}

func (workValue) stepValue()    {}
func (labeledValue) stepValue() {}
func (groupValue) stepValue()   {}

// Do declares a leaf step whose label is generated from its key.
func Do(fn Work) Value {
	return workValue{fn: fn}
}

// Labeled declares a leaf step with an explicit display label. The
// label always overrides generation, even when empty.
func Labeled(label string, fn Work) Value {
	return labeledValue{label: label, fn: fn}
}

// Group declares a nested definition parsed one indent level deeper.
func Group(def Def) Value {
	return groupValue{def: def}
}

// Entry pairs a declaration key with its value.
type Entry struct {
	Key   string
	Value Value
}

// Def is an ordered steps definition. Declaration order is execution
// order, which is why this is a slice and not a map.
type Def []Entry

// IsGroup reports whether v declares a nested definition.
func IsGroup(v Value) bool {
	_, ok := v.(groupValue)
	return ok
}

// IsLabeled reports whether v is an explicit label plus work pair with
// a usable work function.
func IsLabeled(v Value) bool {
	lv, ok := v.(labeledValue)
	return ok && lv.fn != nil
}

// Node is one node in a parsed step tree: a leaf carrying work, or a
// group carrying children. The parser never constructs a node with
// both or neither.
type Node struct {
	// Key is the original declaration identifier.
	Key string
	// Label is the display string.
	Label string
	// Indent is the nesting depth, zero for roots.
	Indent int
	// Run is the work item. Nil on group nodes.
	Run Work
	// Children are the parsed nested entries. Nil on leaves.
	Children []*Node
}

// IsLeaf reports whether the node carries work.
func (n *Node) IsLeaf() bool {
	return n.Run != nil
}

// IsGroup reports whether the node is a group of child steps.
func (n *Node) IsGroup() bool {
	return n.Run == nil
}
