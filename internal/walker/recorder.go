package walker

import (
	"github.com/dominikbraun/graph"
)

// GraphRecorder is a Sink that accumulates discovered call edges into a
// directed graph. It reconstructs caller/callee pairs purely from the event
// stream by tracking the signature entered at each depth, so it composes
// with any other sink without walker cooperation.
type GraphRecorder struct {
	g     graph.Graph[string, string]
	stack []string // signature entered at each depth
}

// NewGraphRecorder creates an empty graph recorder.
func NewGraphRecorder() *GraphRecorder {
	return &GraphRecorder{
		g: graph.New(graph.StringHash, graph.Directed()),
	}
}

func (r *GraphRecorder) Emit(e Event) {
	switch e.Kind {
	case EventEnter, EventCycle, EventTruncated:
		_ = r.g.AddVertex(e.Signature)
		if e.Depth > 0 && e.Depth-1 < len(r.stack) {
			// Re-discovered edges are fine; AddEdge rejects duplicates.
			_ = r.g.AddEdge(r.stack[e.Depth-1], e.Signature,
				graph.EdgeAttribute("kind", string(e.Edge)))
		}
		if e.Kind == EventEnter {
			if e.Depth < len(r.stack) {
				r.stack = r.stack[:e.Depth]
			}
			r.stack = append(r.stack, e.Signature)
		}
	}
}

// Summary returns the number of distinct signatures and edges discovered.
func (r *GraphRecorder) Summary() (nodes, edges int) {
	nodes, _ = r.g.Order()
	edges, _ = r.g.Size()
	return nodes, edges
}
