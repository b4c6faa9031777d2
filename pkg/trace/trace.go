// Package trace provides the in-memory trace tree, trace id generation,
// canonical JSON hashing, and the Mermaid view over a recorded trace.
package trace

import (
	"sort"

	"github.com/google/uuid"
)

// Node is one vertex of the execution trace tree. Parent linkage is recorded
// on every log row, so the tree is reconstructible from the log alone.
type Node struct {
	ID       string  `json:"id"`
	NodeType string  `json:"node_type"`
	Name     string  `json:"name"`
	ParentID string  `json:"parent_id,omitempty"`
	Depth    int     `json:"depth"`
	Children []*Node `json:"children,omitempty"`
}

// NewID returns a fresh trace id (UUIDv4).
func NewID() string {
	return uuid.NewString()
}

// RowRef is the minimal projection of a log row needed to rebuild the tree.
type RowRef struct {
	TraceID   string
	ParentID  string
	NodeType  string
	Name      string
	Depth     int
	Timestamp int64
}

// BuildTree reconstructs the trace tree from log row projections. Rows that
// share a trace_id collapse into one node (a phase emits many rows under the
// same trace id); the earliest row names the node. Roots are rows whose
// parent is empty or unknown.
func BuildTree(rows []RowRef) []*Node {
	nodes := make(map[string]*Node)
	first := make(map[string]int64)

	for _, r := range rows {
		if r.TraceID == "" {
			continue
		}
		existing, ok := nodes[r.TraceID]
		if !ok {
			nodes[r.TraceID] = &Node{
				ID:       r.TraceID,
				NodeType: r.NodeType,
				Name:     r.Name,
				ParentID: r.ParentID,
				Depth:    r.Depth,
			}
			first[r.TraceID] = r.Timestamp
			continue
		}
		// Keep the earliest row's identity for the node
		if r.Timestamp < first[r.TraceID] {
			existing.NodeType = r.NodeType
			existing.Name = r.Name
			existing.ParentID = r.ParentID
			existing.Depth = r.Depth
			first[r.TraceID] = r.Timestamp
		}
	}

	var roots []*Node
	for _, n := range nodes {
		if n.ParentID == "" {
			roots = append(roots, n)
			continue
		}
		parent, ok := nodes[n.ParentID]
		if !ok {
			roots = append(roots, n)
			continue
		}
		parent.Children = append(parent.Children, n)
	}

	sortTree(roots, first)
	return roots
}

func sortTree(nodes []*Node, first map[string]int64) {
	sort.Slice(nodes, func(i, j int) bool {
		return first[nodes[i].ID] < first[nodes[j].ID]
	})
	for _, n := range nodes {
		sortTree(n.Children, first)
	}
}
