package compiler

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/mutk-project/relgraph/pkg/graph"
)

type originEntry struct {
	Label  string  `yaml:"label"`
	Length float64 `yaml:"length"`
	Sex    string  `yaml:"sex"`
}

type vertexEntry struct {
	Sex    string        `yaml:"sex"`
	Ploidy int           `yaml:"ploidy"`
	Origin []originEntry `yaml:"origin,omitempty"`
}

var strata = []struct {
	key string
	typ graph.VertexType
}{
	{"founding", graph.Founder},
	{"germline", graph.Germline},
	{"somatic", graph.Somatic},
	{"sample", graph.Sample},
}

// PrintGraph writes the finalized graph as a YAML 1.2 document with exactly
// four top-level keys, in order: founding, germline, somatic, sample. Each
// maps vertex label to its sex, ploidy, and (if it has in-edges) the origin
// records C7 groups it under.
func (c *Compiler) PrintGraph(w io.Writer) error {
	if c.graph == nil {
		return fmt.Errorf("compiler: PrintGraph called before a successful Construct")
	}

	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, group := range strata {
		valueNode, err := c.stratumNode(group.typ)
		if err != nil {
			return err
		}
		doc.Content = append(doc.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: group.key}, valueNode)
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	return enc.Encode(doc)
}

func (c *Compiler) stratumNode(t graph.VertexType) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, id := range c.graph.Vertices() {
		v, _ := c.graph.Vertex(id)
		if v.Type != t {
			continue
		}

		entry := vertexEntry{Sex: v.Sex.String(), Ploidy: v.Ploidy}
		for _, e := range c.graph.InEdges(id) {
			parent, _ := c.graph.Vertex(e.From)
			entry.Origin = append(entry.Origin, originEntry{Label: parent.Label, Length: e.Length, Sex: parent.Sex.String()})
		}

		valNode := &yaml.Node{}
		if err := valNode.Encode(entry); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Value: v.Label}, valNode)
	}
	return node, nil
}
