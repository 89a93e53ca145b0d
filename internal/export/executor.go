package export

import (
	"fmt"
	"path/filepath"

	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
	"github.com/dubpixel/dpx-FusionVersioning/internal/nametag"
)

// MeshExporter writes one node's visible sub-tree to a mesh file.
type MeshExporter interface {
	Export(node *assembly.Node, path string) error
}

// Failure records one export root whose emit step failed.
type Failure struct {
	Name string
	Err  error
}

func (f Failure) Error() string {
	return fmt.Sprintf("%s: %v", f.Name, f.Err)
}

// Summary is the outcome of an ExportAll run.
type Summary struct {
	Exported int
	Files    []string
	Failures []Failure
}

// Executor runs the per-root visibility protocol. Roots are processed
// strictly one after another because visibility is a single shared
// property on each node.
type Executor struct {
	Sink      MeshExporter
	Prefix    nametag.Prefix
	OutputDir string
}

// ExportAll exports every root in order. A failing emit is recorded and
// the remaining roots are still processed. When it returns, every touched
// node's visibility equals its value before the call.
func (e *Executor) ExportAll(roots []*assembly.Node) Summary {
	var summary Summary

	for _, root := range roots {
		path := filepath.Join(e.OutputDir, root.Name+".stl")
		if err := e.exportOne(root, path); err != nil {
			summary.Failures = append(summary.Failures, Failure{Name: root.Name, Err: err})
			continue
		}
		summary.Exported++
		summary.Files = append(summary.Files, path)
	}

	return summary
}

// exportOne runs the capture/arrange/emit/restore sequence for one root.
// Restoration is deferred so it runs on every exit path, including a
// panicking sink.
func (e *Executor) exportOne(root *assembly.Node, path string) error {
	snapshot := capture(root)
	defer snapshot.restore()

	root.Visible = true
	for _, child := range root.Children() {
		// A matching sub-component gets its own export later; hide it so
		// its geometry stays out of this file. Bodies are always swept
		// into the owning component's export, matching or not.
		hide := child.Kind == assembly.KindComponent && e.Prefix.Matches(child.Name)
		child.Visible = !hide
	}

	return e.Sink.Export(root, path)
}

// visSnapshot remembers the pre-arrange visibility of every node the
// arrange step will touch.
type visSnapshot struct {
	nodes   []*assembly.Node
	visible []bool
}

func capture(root *assembly.Node) *visSnapshot {
	snap := &visSnapshot{}
	snap.add(root)
	for _, child := range root.Children() {
		snap.add(child)
	}
	return snap
}

func (s *visSnapshot) add(n *assembly.Node) {
	s.nodes = append(s.nodes, n)
	s.visible = append(s.visible, n.Visible)
}

func (s *visSnapshot) restore() {
	for i, n := range s.nodes {
		n.Visible = s.visible[i]
	}
}
