package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

func newResolver(p *fakeProvider) *EntryResolver {
	return NewEntryResolver(p,
		SuffixTypeClassifier{Suffix: "Controller"},
		RouteActionClassifier{
			Attributes:  []string{"Http", "Route"},
			ResultTypes: []string{"ActionResult"},
		},
		"Controller")
}

func TestEntryResolver_ResolveType(t *testing.T) {
	t.Parallel()

	p := newFakeProvider()
	p.addType("OrdersController", "ControllerBase")
	p.addType("Order", "")
	p.addType("LegacyHandler", "ApiController") // matched through the base type

	r := newResolver(p)

	t.Run("exact name", func(t *testing.T) {
		t.Parallel()
		found, err := r.ResolveType("OrdersController")
		require.NoError(t, err)
		assert.Equal(t, "OrdersController", found.Name)
	})

	t.Run("bare hint gets the suffix appended", func(t *testing.T) {
		t.Parallel()
		found, err := r.ResolveType("Orders")
		require.NoError(t, err)
		assert.Equal(t, "OrdersController", found.Name)
	})

	t.Run("case-insensitive", func(t *testing.T) {
		t.Parallel()
		found, err := r.ResolveType("orderscontroller")
		require.NoError(t, err)
		assert.Equal(t, "OrdersController", found.Name)
	})

	t.Run("base type carries the marker", func(t *testing.T) {
		t.Parallel()
		found, err := r.ResolveType("LegacyHandler")
		require.NoError(t, err)
		assert.Equal(t, "LegacyHandler", found.Name)
	})

	t.Run("name matches but classifier rejects", func(t *testing.T) {
		t.Parallel()
		_, err := r.ResolveType("Order")
		assert.ErrorIs(t, err, ErrTypeNotFound)
	})

	t.Run("unknown hint", func(t *testing.T) {
		t.Parallel()
		_, err := r.ResolveType("Missing")
		assert.ErrorIs(t, err, ErrTypeNotFound)
	})
}

func TestEntryResolver_ResolveMethod(t *testing.T) {
	t.Parallel()

	p := newFakeProvider()
	c := p.addType("OrdersController", "ControllerBase")
	p.addMethod(c, "Index")
	p.addMember(c, &codemodel.Member{Name: "Index", Kind: codemodel.KindField}) // never matches

	r := newResolver(p)

	found, err := r.ResolveMethod(c, "index")
	require.NoError(t, err)
	assert.Equal(t, codemodel.KindMethod, found.Kind)

	_, err = r.ResolveMethod(c, "Missing")
	assert.ErrorIs(t, err, ErrMethodNotFound)
}

func TestEntryResolver_DiscoverActions(t *testing.T) {
	t.Parallel()

	p := newFakeProvider()
	c := p.addType("OrdersController", "ControllerBase")
	p.addMember(c, &codemodel.Member{Name: "Index", Kind: codemodel.KindMethod, Public: true, Attributes: []string{"HttpGet"}})
	p.addMember(c, &codemodel.Member{Name: "Create", Kind: codemodel.KindMethod, Public: true, Attributes: []string{"HttpPost"}})
	p.addMember(c, &codemodel.Member{Name: "Export", Kind: codemodel.KindMethod, Public: true, ReturnType: "ActionResult"})
	p.addMember(c, &codemodel.Member{Name: "helper", Kind: codemodel.KindMethod, Public: false})
	p.addMember(c, &codemodel.Member{Name: "Shared", Kind: codemodel.KindMethod, Public: true, Static: true, Attributes: []string{"HttpGet"}})
	p.addMember(c, &codemodel.Member{Name: "_orders", Kind: codemodel.KindField})

	r := newResolver(p)

	assert.Equal(t, []string{"Index", "Create", "Export"}, r.DiscoverActions(c))
}

func TestRouteActionClassifier(t *testing.T) {
	t.Parallel()

	c := RouteActionClassifier{Attributes: []string{"Http"}, ResultTypes: []string{"ActionResult"}}

	assert.True(t, c.IsAction(&codemodel.Member{Name: "A", Kind: codemodel.KindMethod, Public: true, Attributes: []string{"HttpGet"}}))
	assert.True(t, c.IsAction(&codemodel.Member{Name: "B", Kind: codemodel.KindMethod, Public: true, ReturnType: "Task<IActionResult>"}))
	assert.False(t, c.IsAction(&codemodel.Member{Name: "C", Kind: codemodel.KindMethod, Public: true}))
	assert.False(t, c.IsAction(&codemodel.Member{Name: "D", Kind: codemodel.KindMethod, Attributes: []string{"HttpGet"}}))
	assert.False(t, c.IsAction(&codemodel.Member{Name: "E", Kind: codemodel.KindConstructor, Public: true, Attributes: []string{"HttpGet"}}))
}
