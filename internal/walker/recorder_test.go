package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGraphRecorder_Summary(t *testing.T) {
	t.Parallel()

	r := NewGraphRecorder()
	for _, e := range []Event{
		{Kind: EventEnter, Signature: "Home.Index", Depth: 0},
		{Kind: EventEnter, Signature: "Home.BuildModel", Depth: 1, Edge: EdgeDirectInvocation},
		{Kind: EventEnter, Signature: "Home.Render", Depth: 1, Edge: EdgeDirectInvocation},
		{Kind: EventCycle, Signature: "Home.Index", Depth: 2, Edge: EdgeDirectInvocation},
	} {
		r.Emit(e)
	}

	nodes, edges := r.Summary()
	assert.Equal(t, 3, nodes)
	assert.Equal(t, 3, edges) // Index->BuildModel, Index->Render, Render->Index
}

func TestGraphRecorder_IgnoresAnnotations(t *testing.T) {
	t.Parallel()

	r := NewGraphRecorder()
	r.Emit(Event{Kind: EventEnter, Signature: "Home.Index", Depth: 0})
	r.Emit(Event{Kind: EventCreation, TypeName: "Order", Depth: 0})
	r.Emit(Event{Kind: EventDependency, MemberType: "IOrderService", Depth: 0})

	nodes, edges := r.Summary()
	assert.Equal(t, 1, nodes)
	assert.Equal(t, 0, edges)
}

func TestGraphRecorder_DuplicateEdges(t *testing.T) {
	t.Parallel()

	r := NewGraphRecorder()
	r.Emit(Event{Kind: EventEnter, Signature: "A", Depth: 0})
	r.Emit(Event{Kind: EventEnter, Signature: "B", Depth: 1, Edge: EdgeDirectInvocation})
	// Second sighting of the same edge through a cycle hit.
	r.Emit(Event{Kind: EventCycle, Signature: "B", Depth: 1, Edge: EdgeDirectInvocation})

	nodes, edges := r.Summary()
	assert.Equal(t, 2, nodes)
	assert.Equal(t, 1, edges)
}
