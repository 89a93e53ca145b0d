// Package export selects the tagged nodes of an assembly and emits one
// mesh file per selected node, toggling visibility so nested tagged
// sub-trees are never duplicated across exports.
package export

import (
	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
	"github.com/dubpixel/dpx-FusionVersioning/internal/nametag"
)

// SelectRoots returns the export roots of the tree in depth-first order.
//
// A node is an export root when its name matches the prefix, it is not the
// designated root, and, for a body, its owning component is not itself a
// match (a matching owner sweeps the body into its own export). Tagged
// components nested inside other tagged components are still selected:
// each tagged ancestor is exported as a distinct unit. Nodes reachable
// through more than one occurrence placement are reported once.
func SelectRoots(root *assembly.Node, prefix nametag.Prefix) []*assembly.Node {
	var roots []*assembly.Node
	seen := make(map[*assembly.Node]bool)

	root.Walk(func(n *assembly.Node) {
		if n == root || seen[n] {
			return
		}
		if !prefix.Matches(n.Name) {
			return
		}
		if n.Kind == assembly.KindBody && n.Parent != nil && n.Parent != root && prefix.Matches(n.Parent.Name) {
			return
		}
		seen[n] = true
		roots = append(roots, n)
	})

	return roots
}
