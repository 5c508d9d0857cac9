package walker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

func TestKeyPolicy(t *testing.T) {
	t.Parallel()

	one := &codemodel.Member{Name: "Render", ContainingType: "Home", ParamCount: 1}
	two := &codemodel.Member{Name: "Render", ContainingType: "Home", ParamCount: 2}

	collapsing := KeyPolicy{}
	assert.Equal(t, "Home.Render", collapsing.Key(one))
	assert.Equal(t, collapsing.Key(one), collapsing.Key(two))

	aware := KeyPolicy{OverloadAware: true}
	assert.Equal(t, "Home.Render/1", aware.Key(one))
	assert.NotEqual(t, aware.Key(one), aware.Key(two))
}

// Test: with collapsing keys the second overload reports a cycle hit;
// overload-aware keys expand both.
func TestWalker_OverloadCollapsing(t *testing.T) {
	t.Parallel()

	setup := func() (*fakeProvider, *codemodel.Member) {
		p := newFakeProvider()
		c := p.addType("Home", "")
		m := p.addMethod(c, "M")
		r1 := p.addMember(c, &codemodel.Member{Name: "Render", Kind: codemodel.KindMethod, Public: true, ParamCount: 1})
		r2 := p.addMember(c, &codemodel.Member{Name: "RenderAll", Kind: codemodel.KindMethod, Public: true, ParamCount: 2})
		// RenderAll delegates to an overload of Render; the fake scope
		// resolves by name, so model the overload as the same name with a
		// different parameter count reached from a second call site.
		p.setBody(m, invoke("Render"), invoke("Render"))
		p.setBody(r1)
		p.setBody(r2)
		return p, m
	}

	t.Run("collapsing", func(t *testing.T) {
		t.Parallel()
		p, m := setup()
		events := walkToLog(t, p, m, Policies{})

		require.Len(t, events, 3)
		assert.Equal(t, EventEnter, events[1].Kind)
		assert.Equal(t, "Home.Render", events[1].Signature)
		assert.Equal(t, EventCycle, events[2].Kind)
		assert.Equal(t, "Home.Render", events[2].Signature)
	})

	t.Run("overload aware keys include arity", func(t *testing.T) {
		t.Parallel()
		p, m := setup()
		w := New(p, noFilter(), Policies{OverloadAwareKeys: true})
		rec := &Recorder{}
		require.NoError(t, w.Walk(context.Background(), m, rec))

		assert.Equal(t, "Home.M/0", rec.Events[0].Signature)
		assert.Equal(t, "Home.Render/1", rec.Events[1].Signature)
	})
}
