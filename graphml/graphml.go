package graphml

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvlath/core"
)

// Sentinel errors for GraphML loading.
var (
	// ErrNoGraph indicates a document without a <graph> element.
	ErrNoGraph = errors.New("graphml: no graph element")

	// ErrDirected indicates edgedefault="directed" or a directed edge.
	ErrDirected = errors.New("graphml: directed graphs are not supported")

	// ErrMissingWeight indicates an edge without a weight value or default.
	ErrMissingWeight = errors.New("graphml: edge has no weight")

	// ErrBadWeight indicates a weight that does not parse as a float.
	ErrBadWeight = errors.New("graphml: weight is not a number")
)

// DefaultWeightAttr is the attr.name of the edge weight key.
const DefaultWeightAttr = "distance"

// Option configures the loader.
type Option func(*options)

type options struct {
	weightAttr string
}

// WithWeightAttr reads edge weights from the key named attr. Empty values are ignored.
func WithWeightAttr(attr string) Option {
	return func(o *options) {
		if attr != "" {
			o.weightAttr = attr
		}
	}
}

type document struct {
	Keys   []key   `xml:"key"`
	Graphs []graph `xml:"graph"`
}

type key struct {
	ID      string  `xml:"id,attr"`
	For     string  `xml:"for,attr"`
	Name    string  `xml:"attr.name,attr"`
	Default *string `xml:"default"`
}

type graph struct {
	EdgeDefault string `xml:"edgedefault,attr"`
	Nodes       []node `xml:"node"`
	Edges       []edge `xml:"edge"`
}

type node struct {
	ID string `xml:"id,attr"`
}

type edge struct {
	Source   string `xml:"source,attr"`
	Target   string `xml:"target,attr"`
	Directed string `xml:"directed,attr"`
	Data     []data `xml:"data"`
}

type data struct {
	Key   string `xml:"key,attr"`
	Value string `xml:",chardata"`
}

// LoadFile opens path and decodes it with Decode.
func LoadFile(path string, opts ...Option) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphml: %w", err)
	}
	defer f.Close()

	g, err := Decode(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// Decode reads one GraphML document from r.
func Decode(r io.Reader, opts ...Option) (*core.Graph, error) {
	o := options{weightAttr: DefaultWeightAttr}
	for _, opt := range opts {
		opt(&o)
	}

	var doc document
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphml: decode: %w", err)
	}
	if len(doc.Graphs) == 0 {
		return nil, ErrNoGraph
	}
	gr := doc.Graphs[0]
	if gr.EdgeDefault == "directed" {
		return nil, ErrDirected
	}

	weightKey, def, err := resolveWeightKey(doc.Keys, o.weightAttr)
	if err != nil {
		return nil, err
	}

	g := core.NewGraph(core.WithCapacity(len(gr.Nodes), len(gr.Edges)))
	for _, n := range gr.Nodes {
		if _, err = g.AddVertex(n.ID); err != nil {
			return nil, fmt.Errorf("graphml: node %q: %w", n.ID, err)
		}
	}
	for i, e := range gr.Edges {
		if e.Directed == "true" {
			return nil, fmt.Errorf("graphml: edge %d: %w", i, ErrDirected)
		}
		w, err := edgeWeight(e, weightKey, def)
		if err != nil {
			return nil, fmt.Errorf("graphml: edge %d (%s–%s): %w", i, e.Source, e.Target, err)
		}
		if _, err = g.AddEdge(e.Source, e.Target, w); err != nil {
			return nil, fmt.Errorf("graphml: edge %d (%s–%s): %w", i, e.Source, e.Target, err)
		}
	}

	return g, nil
}

// resolveWeightKey finds the edge key whose attr.name is attr and its
// parsed default. No matching key yields an empty id.
func resolveWeightKey(keys []key, attr string) (string, *float64, error) {
	for _, k := range keys {
		if k.Name != attr || (k.For != "edge" && k.For != "all" && k.For != "") {
			continue
		}
		if k.Default == nil {
			return k.ID, nil, nil
		}
		v, err := parseWeight(*k.Default)
		if err != nil {
			return "", nil, fmt.Errorf("graphml: key %q default: %w", k.ID, err)
		}
		return k.ID, &v, nil
	}

	return "", nil, nil
}

func edgeWeight(e edge, weightKey string, def *float64) (float64, error) {
	if weightKey != "" {
		for _, d := range e.Data {
			if d.Key == weightKey {
				return parseWeight(d.Value)
			}
		}
	}
	if def != nil {
		return *def, nil
	}

	return 0, ErrMissingWeight
}

func parseWeight(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrBadWeight)
	}

	return v, nil
}
