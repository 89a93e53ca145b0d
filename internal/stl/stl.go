// Package stl writes assembly sub-trees as STL mesh files and parses them
// back for verification.
package stl

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dubpixel/dpx-FusionVersioning/internal/assembly"
)

const headerSize = 80

// Exporter writes one node's visible sub-tree to a binary STL file. It is
// the mesh sink of the export pipeline: the visibility protocol decides
// what is visible, the exporter only sweeps up what it can see.
type Exporter struct{}

// NewExporter creates a new STL exporter.
func NewExporter() *Exporter {
	return &Exporter{}
}

// Export writes the node's visible geometry to path. A hidden component
// prunes its whole sub-tree; a hidden body contributes nothing. A node
// with no visible geometry still produces a valid, empty STL file.
func (e *Exporter) Export(node *assembly.Node, path string) error {
	triangles := CollectTriangles(node)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create output file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	if err := writeBinary(w, node.Name, triangles); err != nil {
		return fmt.Errorf("error writing %s: %w", filepath.Base(path), err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("error writing %s: %w", filepath.Base(path), err)
	}
	return nil
}

// CollectTriangles gathers the mesh facets of every visible body in the
// node's sub-tree, in tree order.
func CollectTriangles(node *assembly.Node) []assembly.Triangle {
	if !node.Visible {
		return nil
	}

	var triangles []assembly.Triangle
	if node.Kind == assembly.KindBody {
		if node.Mesh != nil {
			triangles = append(triangles, node.Mesh.Triangles...)
		}
		return triangles
	}

	for _, child := range node.Children() {
		triangles = append(triangles, CollectTriangles(child)...)
	}
	return triangles
}

// writeBinary emits the 80-byte header, triangle count and little-endian
// triangle records.
func writeBinary(w io.Writer, name string, triangles []assembly.Triangle) error {
	header := make([]byte, headerSize)
	copy(header, name)
	if _, err := w.Write(header); err != nil {
		return fmt.Errorf("error writing header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, uint32(len(triangles))); err != nil {
		return fmt.Errorf("error writing triangle count: %w", err)
	}

	for i := range triangles {
		if err := binary.Write(w, binary.LittleEndian, &triangles[i]); err != nil {
			return fmt.Errorf("error writing triangle %d: %w", i, err)
		}
		// Attribute byte count, always zero.
		if err := binary.Write(w, binary.LittleEndian, uint16(0)); err != nil {
			return fmt.Errorf("error writing triangle %d: %w", i, err)
		}
	}

	return nil
}

// Parser reads STL files back into meshes.
type Parser struct{}

// NewParser creates a new STL parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse reads an STL file, detecting ASCII or binary format.
func (p *Parser) Parse(filename string) (*assembly.Mesh, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("cannot open file: %w", err)
	}
	defer file.Close()

	header := make([]byte, headerSize)
	if _, err := io.ReadFull(file, header); err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}
	if _, err := file.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("error seeking: %w", err)
	}

	if strings.HasPrefix(string(header), "solid ") {
		return p.parseASCII(file)
	}
	return p.parseBinary(file)
}

func (p *Parser) parseASCII(reader io.Reader) (*assembly.Mesh, error) {
	scanner := bufio.NewScanner(reader)
	mesh := &assembly.Mesh{}

	var current assembly.Triangle
	var vertexCount int

	for scanner.Scan() {
		fields := strings.Fields(strings.TrimSpace(scanner.Text()))
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "facet":
			if len(fields) >= 5 && fields[1] == "normal" {
				fmt.Sscanf(strings.Join(fields[2:], " "), "%f %f %f",
					&current.Normal.X, &current.Normal.Y, &current.Normal.Z)
			}
			vertexCount = 0
		case "vertex":
			if len(fields) >= 4 {
				var v assembly.Vector3
				fmt.Sscanf(strings.Join(fields[1:], " "), "%f %f %f", &v.X, &v.Y, &v.Z)
				switch vertexCount {
				case 0:
					current.V1 = v
				case 1:
					current.V2 = v
				case 2:
					current.V3 = v
				}
				vertexCount++
			}
		case "endfacet":
			mesh.Triangles = append(mesh.Triangles, current)
			current = assembly.Triangle{}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}
	return mesh, nil
}

func (p *Parser) parseBinary(reader io.Reader) (*assembly.Mesh, error) {
	header := make([]byte, headerSize)
	if _, err := io.ReadFull(reader, header); err != nil {
		return nil, fmt.Errorf("error reading header: %w", err)
	}

	var count uint32
	if err := binary.Read(reader, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("error reading triangle count: %w", err)
	}

	mesh := &assembly.Mesh{Triangles: make([]assembly.Triangle, count)}
	for i := uint32(0); i < count; i++ {
		if err := binary.Read(reader, binary.LittleEndian, &mesh.Triangles[i]); err != nil {
			return nil, fmt.Errorf("error reading triangle %d: %w", i, err)
		}
		var attributeCount uint16
		if err := binary.Read(reader, binary.LittleEndian, &attributeCount); err != nil {
			return nil, fmt.Errorf("error reading triangle %d: %w", i, err)
		}
	}

	return mesh, nil
}
