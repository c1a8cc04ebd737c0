package knowledge

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/nexusmind/nexus/graph"
)

// Definition is the YAML shape of a knowledge base. Links are symmetric
// neighbor pairs (propagation only); Edges are directed weighted relations
// (propagation and scoring).
type Definition struct {
	Name  string    `yaml:"name"`
	Nodes []NodeDef `yaml:"nodes"`
	Links []LinkDef `yaml:"links,omitempty"`
	Edges []EdgeDef `yaml:"edges,omitempty"`
}

// NodeDef declares one node. Base defaults to 1.0 when omitted.
type NodeDef struct {
	ID     string   `yaml:"id"`
	Domain string   `yaml:"domain,omitempty"`
	Type   string   `yaml:"type,omitempty"`
	Base   *float64 `yaml:"base,omitempty"`
}

// LinkDef declares a symmetric neighbor pair.
type LinkDef struct {
	A string `yaml:"a"`
	B string `yaml:"b"`
}

// EdgeDef declares a directed weighted relation.
type EdgeDef struct {
	Source   string  `yaml:"source"`
	Target   string  `yaml:"target"`
	Weight   float64 `yaml:"weight"`
	Relation string  `yaml:"relation,omitempty"`
}

// Load decodes a YAML knowledge base definition and builds its graph.
func Load(r io.Reader, optFns ...func(o *graph.Options)) (*graph.Graph, error) {
	var def Definition
	if err := yaml.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("decode knowledge base: %w", err)
	}
	return def.Build(optFns...)
}

// LoadFile reads and builds a knowledge base definition from a YAML file.
func LoadFile(path string, optFns ...func(o *graph.Options)) (*graph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open knowledge base: %w", err)
	}
	defer f.Close()
	return Load(f, optFns...)
}

// Build constructs the graph described by the definition. Node order in the
// definition becomes the graph's insertion order, so scoring tie-breaks and
// settling order follow the file.
func (d Definition) Build(optFns ...func(o *graph.Options)) (*graph.Graph, error) {
	g := graph.New(optFns...)
	if d.Name != "" {
		g.Metadata["name"] = d.Name
	}
	for _, nd := range d.Nodes {
		base := 1.0
		if nd.Base != nil {
			base = *nd.Base
		}
		if _, err := g.AddNode(nd.ID, base, func(o *graph.NodeOptions) {
			o.Domain = nd.Domain
			o.Type = nd.Type
		}); err != nil {
			return nil, err
		}
	}
	for _, l := range d.Links {
		if err := g.Connect(l.A, l.B); err != nil {
			return nil, err
		}
	}
	for _, e := range d.Edges {
		if err := g.AddEdge(e.Source, e.Target, e.Weight, e.Relation); err != nil {
			return nil, err
		}
	}
	return g, nil
}
