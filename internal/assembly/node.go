package assembly

// Kind distinguishes the two node types in a design tree.
type Kind int

const (
	KindComponent Kind = iota
	KindBody
)

func (k Kind) String() string {
	if k == KindBody {
		return "body"
	}
	return "component"
}

// Node is a single entry in the assembly tree: either a component that owns
// sub-components and bodies, or a leaf body. Nodes are created by the
// document codec; callers mutate Name (through Document.Rename) and Visible
// only.
type Node struct {
	Name    string
	Kind    Kind
	Visible bool
	Parent  *Node
	Child   []*Node
	Mesh    *Mesh
}

// IsRoot reports whether this node is the designated root component. The
// root is never renamed and never exported on its own.
func (n *Node) IsRoot() bool {
	return n.Parent == nil && n.Kind == KindComponent
}

// Children returns the direct children in tree order: sub-component
// occurrences first, then bodies, matching the document layout.
func (n *Node) Children() []*Node {
	return n.Child
}

// Bodies returns the bodies owned directly by this component.
func (n *Node) Bodies() []*Node {
	var bodies []*Node
	for _, c := range n.Child {
		if c.Kind == KindBody {
			bodies = append(bodies, c)
		}
	}
	return bodies
}

// Components returns the direct sub-components of this component.
func (n *Node) Components() []*Node {
	var comps []*Node
	for _, c := range n.Child {
		if c.Kind == KindComponent {
			comps = append(comps, c)
		}
	}
	return comps
}

// Walk visits n and every descendant depth-first in tree order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, c := range n.Child {
		c.Walk(visit)
	}
}
