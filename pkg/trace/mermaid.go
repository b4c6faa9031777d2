package trace

import (
	"fmt"
	"strings"
)

// Mermaid renders the trace tree as a Mermaid flowchart. The diagram is a
// view over the tree; it carries node types as CSS classes so UIs can style
// phases, soundings, and errors differently.
func Mermaid(roots []*Node) string {
	var b strings.Builder
	b.WriteString("graph TD\n")

	ids := make(map[string]string)
	next := 0
	var walk func(n *Node)
	walk = func(n *Node) {
		short := fmt.Sprintf("n%d", next)
		next++
		ids[n.ID] = short

		label := n.Name
		if label == "" {
			label = n.NodeType
		}
		fmt.Fprintf(&b, "    %s[%q]\n", short, label)
		if n.NodeType != "" {
			fmt.Fprintf(&b, "    class %s %s\n", short, n.NodeType)
		}
		for _, c := range n.Children {
			walk(c)
			fmt.Fprintf(&b, "    %s --> %s\n", short, ids[c.ID])
		}
	}
	for _, root := range roots {
		walk(root)
	}

	return b.String()
}
