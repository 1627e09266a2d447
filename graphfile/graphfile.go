// Package graphfile reads and writes core.Graph values as YAML documents:
//
//	vertices: [a, b, c, d]
//	edges:
//	  - [a, b]
//	  - [c, d]
//
// Vertices listed only under edges are added implicitly. Unknown keys are
// rejected.
package graphfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/coclique/core"
)

// ErrMalformedEdge indicates an edge entry that is not a pair of vertex IDs.
var ErrMalformedEdge = errors.New("graphfile: malformed edge")

// Document is the on-disk shape of a graph.
type Document struct {
	Vertices []string   `yaml:"vertices"`
	Edges    [][]string `yaml:"edges"`
}

// Load decodes one YAML document from r into a new graph.
// An empty input yields an empty graph.
func Load(r io.Reader) (*core.Graph, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("graphfile: decode: %w", err)
	}

	return doc.Graph()
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	defer f.Close()

	return Load(f)
}

// Graph builds the graph described by d.
func (d Document) Graph() (*core.Graph, error) {
	g := core.NewGraph(core.WithCapacity(len(d.Vertices)))
	for i, id := range d.Vertices {
		if err := g.AddVertex(id); err != nil {
			return nil, fmt.Errorf("graphfile: vertices[%d]: %w", i, err)
		}
	}
	for i, e := range d.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("graphfile: edges[%d] has %d elements: %w", i, len(e), ErrMalformedEdge)
		}
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("graphfile: edges[%d] %v: %w", i, e, err)
		}
	}

	return g, nil
}

// FromGraph snapshots g into a Document with sorted vertices and edges.
func FromGraph(g *core.Graph) Document {
	edges := g.Edges()
	doc := Document{
		Vertices: g.Vertices(),
		Edges:    make([][]string, len(edges)),
	}
	for i, e := range edges {
		doc.Edges[i] = []string{e.From, e.To}
	}

	return doc
}

// Save encodes g to w.
func Save(w io.Writer, g *core.Graph) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromGraph(g)); err != nil {
		return fmt.Errorf("graphfile: encode: %w", err)
	}

	return enc.Close()
}
