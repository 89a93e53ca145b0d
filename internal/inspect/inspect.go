// Package inspect renders an assembly document for the terminal.
package inspect

import (
	"fmt"
	"os"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
	"github.com/dubpixel/dpx-FusionVersioning/internal/nametag"
	"github.com/dubpixel/dpx-FusionVersioning/internal/ui"
)

// Inspector displays assembly documents.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

// Inspect loads a document and prints its metadata, history and tree.
func (i *Inspector) Inspect(path string) error {
	doc, err := assembly.Load(path)
	if err != nil {
		return fmt.Errorf("error reading document: %w", err)
	}

	prefix := nametag.ComputePrefix(doc.Name)

	ui.PrintHeader(fmt.Sprintf("Inspecting: %s", path))
	ui.PrintKeyValue("Document", doc.Name)
	ui.PrintKeyValue("Version", fmt.Sprintf("v%d", doc.Version))
	ui.PrintKeyValue("Prefix", prefix.Underscore)

	if len(doc.History) > 0 {
		ui.PrintHeader("History:")
		for _, entry := range doc.History {
			ui.PrintStep(fmt.Sprintf("v%d: %s", entry.Version, entry.Message))
		}
	}

	ui.PrintHeader("Assembly Tree:")
	i.printNode(doc.Root, prefix, 0)

	return nil
}

// printNode recursively prints a node and its children with tag and
// visibility annotations.
func (i *Inspector) printNode(node *assembly.Node, prefix nametag.Prefix, depth int) {
	marker := "•"
	if node.Kind == assembly.KindBody {
		marker = "-"
	}

	name := node.Name
	if name == "" {
		name = "(unnamed)"
	}

	var notes string
	if _, version, tagged := nametag.SplitVersion(node.Name); tagged {
		notes += ui.Muted(fmt.Sprintf(" [v%d]", version))
	}
	if !node.IsRoot() && prefix.Matches(node.Name) {
		notes += " " + ui.Highlight("tagged")
	}
	if !node.Visible {
		notes += ui.Muted(" (hidden)")
	}
	if node.Kind == assembly.KindBody && node.Mesh != nil {
		notes += ui.Muted(fmt.Sprintf(" [%d facets]", len(node.Mesh.Triangles)))
	}

	ui.PrintTreeRow(depth, marker, name+notes)

	for _, child := range node.Children() {
		i.printNode(child, prefix, depth+1)
	}
}

// Source prints the raw document with YAML syntax highlighting.
func (i *Inspector) Source(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading document: %w", err)
	}

	if err := quick.Highlight(os.Stdout, string(data), "yaml", "terminal256", "monokai"); err != nil {
		// Fall back to the unstyled source rather than failing the command.
		fmt.Print(string(data))
	}
	return nil
}
