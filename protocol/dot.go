package protocol

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"
)

// GraphvizDot is the table drawn as a graph: diners and forks are nodes, an
// edge from a diner to a fork is labelled with the order it is taken in.
type GraphvizDot struct {
	Graph *gographviz.Escape
}

// NewGraphvizDot creates a new graphviz dot graph of the protocol.
func NewGraphvizDot(p *Protocol) (*GraphvizDot, error) {
	dot := &GraphvizDot{Graph: gographviz.NewEscape()}
	if err := dot.Graph.SetDir(true); err != nil {
		return nil, err
	}
	if err := dot.Graph.SetName("table"); err != nil {
		return nil, err
	}
	for i := 0; i < p.Forks; i++ {
		attrs := map[string]string{
			"label": fmt.Sprintf("fork %d", i),
			"shape": "box",
		}
		if err := dot.Graph.AddNode(dot.Graph.Name, ForkName(i), attrs); err != nil {
			return nil, err
		}
	}
	for _, d := range p.Diners {
		attrs := map[string]string{
			"label": fmt.Sprintf("diner %d", d.Diner),
			"shape": "ellipse",
		}
		if err := dot.Graph.AddNode(dot.Graph.Name, DinerName(d.Diner), attrs); err != nil {
			return nil, err
		}
		if err := dot.addEdge(d, d.First, 1, "solid"); err != nil {
			return nil, err
		}
		if p.Solo() {
			continue
		}
		if err := dot.addEdge(d, d.Second, 2, "dashed"); err != nil {
			return nil, err
		}
	}
	return dot, nil
}

func (dot *GraphvizDot) addEdge(d Diner, fork, order int, style string) error {
	attrs := map[string]string{
		"label": fmt.Sprintf("%d", order),
		"style": style,
	}
	return dot.Graph.AddEdge(DinerName(d.Diner), ForkName(fork), true, attrs)
}

// WriteTo implements io.WriterTo interface.
func (dot *GraphvizDot) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, dot.Graph.String())
	return int64(n), err
}
