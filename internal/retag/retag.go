// Package retag walks an assembly tree and applies version tags to every
// component and body whose name matches the file-derived prefix.
package retag

import (
	"fmt"

	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
	"github.com/dubpixel/dpx-FusionVersioning/internal/nametag"
)

// Options tunes the retag pass.
type Options struct {
	// SkipUnchanged suppresses the rename write when the computed name
	// equals the current name. The default re-assigns unconditionally so
	// the host still sees a change notification.
	SkipUnchanged bool
}

// NodeError records a single node whose rename was refused by the host.
type NodeError struct {
	Name string
	Kind assembly.Kind
	Err  error
}

func (e NodeError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Kind, e.Name, e.Err)
}

// Host is the slice of the document model the retag pass needs: the flat
// component list and the rename operation. *assembly.Document satisfies it.
type Host interface {
	AllComponents() []*assembly.Node
	Rename(node *assembly.Node, name string) error
}

// Result aggregates the outcome of one retag pass. Renamed counts matched
// nodes; Skipped counts prefix mismatches. The root component appears in
// neither.
type Result struct {
	ComponentsRenamed int
	ComponentsSkipped int
	BodiesRenamed     int
	BodiesSkipped     int
	Errors            []NodeError
}

// TotalRenamed is the number of nodes that received the new version tag.
func (r Result) TotalRenamed() int {
	return r.ComponentsRenamed + r.BodiesRenamed
}

// Retag applies the next version tag to every matching component and body
// in the document. The root component is never touched. A rename the host
// refuses is recorded in Result.Errors and the walk continues.
func Retag(host Host, prefix nametag.Prefix, nextVersion int, opts Options) Result {
	var result Result

	for _, comp := range host.AllComponents() {
		if !comp.IsRoot() {
			retagNode(host, comp, prefix, nextVersion, opts, &result)
		}
		for _, body := range comp.Bodies() {
			if body.Name == "" {
				// Bodies the host reports without a name are not counted
				// on either side.
				continue
			}
			retagNode(host, body, prefix, nextVersion, opts, &result)
		}
	}

	return result
}

func retagNode(host Host, node *assembly.Node, prefix nametag.Prefix, nextVersion int, opts Options, result *Result) {
	if !prefix.Matches(node.Name) {
		if node.Kind == assembly.KindComponent {
			result.ComponentsSkipped++
		} else {
			result.BodiesSkipped++
		}
		return
	}

	newName := nametag.Retagged(node.Name, nextVersion)
	if !opts.SkipUnchanged || newName != node.Name {
		if err := host.Rename(node, newName); err != nil {
			result.Errors = append(result.Errors, NodeError{Name: node.Name, Kind: node.Kind, Err: err})
			return
		}
	}

	// A node whose name was already current still counts as renamed, so
	// the summary is stable whichever way SkipUnchanged is set.
	if node.Kind == assembly.KindComponent {
		result.ComponentsRenamed++
	} else {
		result.BodiesRenamed++
	}
}
