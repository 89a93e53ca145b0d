package assembly

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrRootRename is returned when a caller tries to rename the designated
// root component, which the document model owns.
var ErrRootRename = errors.New("the root component cannot be renamed")

// HistoryEntry records one committed save.
type HistoryEntry struct {
	Version int    `yaml:"version"`
	Message string `yaml:"message"`
}

// Document is an assembly design file: a named tree of components and
// bodies plus a save-version counter and commit history.
type Document struct {
	Name    string
	Version int
	History []HistoryEntry
	Root    *Node

	path string
}

// yamlDocument is the on-disk layout.
type yamlDocument struct {
	Name    string         `yaml:"name"`
	Version int            `yaml:"version"`
	History []HistoryEntry `yaml:"history,omitempty"`
	Root    yamlNode       `yaml:"root"`
}

type yamlNode struct {
	Name       string     `yaml:"name"`
	Visible    *bool      `yaml:"visible,omitempty"`
	Components []yamlNode `yaml:"components,omitempty"`
	Bodies     []yamlBody `yaml:"bodies,omitempty"`
}

type yamlBody struct {
	Name    string `yaml:"name"`
	Visible *bool  `yaml:"visible,omitempty"`
	Mesh    *Mesh  `yaml:"mesh,omitempty"`
}

// Load reads and validates an assembly document.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var raw yamlDocument
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	doc := &Document{
		Name:    raw.Name,
		Version: raw.Version,
		History: raw.History,
		Root:    buildNode(raw.Root, nil),
		path:    path,
	}

	if err := doc.validate(); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}

	return doc, nil
}

func buildNode(raw yamlNode, parent *Node) *Node {
	node := &Node{
		Name:    raw.Name,
		Kind:    KindComponent,
		Visible: visibleOrDefault(raw.Visible),
		Parent:  parent,
	}

	for _, sub := range raw.Components {
		node.Child = append(node.Child, buildNode(sub, node))
	}
	for _, body := range raw.Bodies {
		node.Child = append(node.Child, &Node{
			Name:    body.Name,
			Kind:    KindBody,
			Visible: visibleOrDefault(body.Visible),
			Parent:  node,
			Mesh:    body.Mesh,
		})
	}

	return node
}

func visibleOrDefault(v *bool) bool {
	if v == nil {
		return true
	}
	return *v
}

func (d *Document) validate() error {
	if d.Name == "" {
		return fmt.Errorf("document name is required")
	}
	if d.Version < 0 {
		return fmt.Errorf("version must not be negative")
	}
	if d.Root == nil || d.Root.Name == "" {
		return fmt.Errorf("root component is required")
	}
	return nil
}

// Path returns the backing file this document was loaded from.
func (d *Document) Path() string {
	return d.path
}

// Saved reports whether the document has ever been committed. A version of
// zero means the file exists on disk but carries no saved revision yet.
func (d *Document) Saved() bool {
	return d.Version > 0
}

// NextVersion is the version the next commit will produce.
func (d *Document) NextVersion() int {
	return d.Version + 1
}

// AllComponents returns every component in the tree, root first, in
// depth-first tree order.
func (d *Document) AllComponents() []*Node {
	var comps []*Node
	d.Root.Walk(func(n *Node) {
		if n.Kind == KindComponent {
			comps = append(comps, n)
		}
	})
	return comps
}

// Rename changes a node's name. The root component is owned by the
// document and is rejected, the same way the host rejects renaming the
// root through the API.
func (d *Document) Rename(node *Node, name string) error {
	if node.IsRoot() {
		return ErrRootRename
	}
	node.Name = name
	return nil
}

// Save writes the document back to its backing file.
func (d *Document) Save() error {
	raw := yamlDocument{
		Name:    d.Name,
		Version: d.Version,
		History: d.History,
		Root:    flattenNode(d.Root),
	}

	data, err := yaml.Marshal(&raw)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}

	dir := filepath.Dir(d.path)
	if dir != "" && dir != "." {
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("document directory is not accessible: %w", err)
		}
	}

	if err := os.WriteFile(d.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	return nil
}

// Commit bumps the save-version counter, records the message in the
// history, and saves the file. On a write failure the in-memory counter is
// rolled back so a retry commits the same version.
func (d *Document) Commit(message string) error {
	d.Version++
	d.History = append(d.History, HistoryEntry{Version: d.Version, Message: message})

	if err := d.Save(); err != nil {
		d.Version--
		d.History = d.History[:len(d.History)-1]
		return err
	}
	return nil
}

func flattenNode(node *Node) yamlNode {
	raw := yamlNode{Name: node.Name}
	if !node.Visible {
		raw.Visible = boolPtr(false)
	}

	for _, c := range node.Child {
		switch c.Kind {
		case KindComponent:
			raw.Components = append(raw.Components, flattenNode(c))
		case KindBody:
			body := yamlBody{Name: c.Name, Mesh: c.Mesh}
			if !c.Visible {
				body.Visible = boolPtr(false)
			}
			raw.Bodies = append(raw.Bodies, body)
		}
	}

	return raw
}

func boolPtr(b bool) *bool {
	return &b
}
