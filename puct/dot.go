package puct

import (
	"fmt"
	"io"

	"github.com/awalterschulze/gographviz"
)

// DOT writes the current search tree to w in Graphviz DOT format. A
// diagnostics aid for inspecting PUCT tree shape, not a board render.
func (t *Tree) DOT(w io.Writer) error {
	g := gographviz.NewGraph()
	if err := g.SetName("puctsearch"); err != nil {
		return err
	}
	if err := g.SetDir(true); err != nil {
		return err
	}
	addNode := func(h Handle) {
		n := t.at(h)
		label := fmt.Sprintf("\"move=%d visits=%d wins=%.1f value=%.2f\"", n.move, n.visits, n.wins, n.value)
		_ = g.AddNode("puctsearch", fmt.Sprintf("n%d", h), map[string]string{"label": label})
	}
	var walk func(h Handle)
	walk = func(h Handle) {
		addNode(h)
		name := fmt.Sprintf("n%d", h)
		for _, c := range t.at(h).children {
			addNode(c)
			_ = g.AddEdge(name, fmt.Sprintf("n%d", c), true, nil)
			walk(c)
		}
	}
	walk(t.Root)
	_, err := io.WriteString(w, g.String())
	return err
}
