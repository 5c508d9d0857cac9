package walker

import (
	"errors"
	"strings"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

var (
	// ErrTypeNotFound is returned when no controller-like type matches the hint.
	ErrTypeNotFound = errors.New("entry type not found")

	// ErrMethodNotFound is returned when the named action is absent on the
	// resolved type.
	ErrMethodNotFound = errors.New("entry method not found")
)

// TypeClassifier decides whether a type is a plausible traversal entry
// point. Implementations are swappable so the name heuristics can be tested
// and replaced independently of the walker.
type TypeClassifier interface {
	IsEntryType(t *codemodel.Type) bool
}

// ActionClassifier decides whether a member looks like a request-handling
// action.
type ActionClassifier interface {
	IsAction(m *codemodel.Member) bool
}

// SuffixTypeClassifier matches types whose name ends with a marker suffix,
// or whose declared base-type name contains it.
type SuffixTypeClassifier struct {
	Suffix string
}

func (c SuffixTypeClassifier) IsEntryType(t *codemodel.Type) bool {
	if strings.HasSuffix(t.Name, c.Suffix) {
		return true
	}
	return t.BaseType != "" && strings.Contains(t.BaseType, c.Suffix)
}

// RouteActionClassifier matches public instance methods that either carry a
// routing/HTTP-verb attribute or whose return-type name matches an
// action-result marker. Attribute matching is by substring, mirroring the
// observed heuristic.
type RouteActionClassifier struct {
	Attributes  []string
	ResultTypes []string
}

func (c RouteActionClassifier) IsAction(m *codemodel.Member) bool {
	if m.Kind != codemodel.KindMethod || !m.Public || m.Static {
		return false
	}
	for _, attr := range m.Attributes {
		for _, marker := range c.Attributes {
			if strings.Contains(attr, marker) {
				return true
			}
		}
	}
	for _, marker := range c.ResultTypes {
		if strings.Contains(m.ReturnType, marker) {
			return true
		}
	}
	return false
}

// EntryResolver locates the starting type and method from user-supplied
// name hints.
type EntryResolver struct {
	provider codemodel.Provider
	types    TypeClassifier
	actions  ActionClassifier
	suffix   string
}

// NewEntryResolver creates an entry resolver. suffix is the marker appended
// to bare type hints (a hint of "Orders" also matches "OrdersController").
func NewEntryResolver(provider codemodel.Provider, types TypeClassifier, actions ActionClassifier, suffix string) *EntryResolver {
	return &EntryResolver{
		provider: provider,
		types:    types,
		actions:  actions,
		suffix:   suffix,
	}
}

// ResolveType finds the first type, in provider enumeration order, whose
// name matches the hint (with or without the suffix, case-insensitively)
// and that the type classifier accepts. Ties are not resolved further:
// first match wins.
func (r *EntryResolver) ResolveType(typeHint string) (*codemodel.Type, error) {
	for _, t := range r.provider.Types() {
		if !strings.EqualFold(t.Name, typeHint) && !strings.EqualFold(t.Name, typeHint+r.suffix) {
			continue
		}
		if r.types.IsEntryType(t) {
			return t, nil
		}
	}
	return nil, ErrTypeNotFound
}

// ResolveMethod returns the first member of t whose name equals actionHint
// case-insensitively.
func (r *EntryResolver) ResolveMethod(t *codemodel.Type, actionHint string) (*codemodel.Member, error) {
	for _, m := range r.provider.Members(t) {
		if m.Kind != codemodel.KindMethod {
			continue
		}
		if strings.EqualFold(m.Name, actionHint) {
			return m, nil
		}
	}
	return nil, ErrMethodNotFound
}

// DiscoverActions lists the action-like member names of t, in member
// enumeration order. Used when no action hint is supplied; the walker does
// not run in that mode.
func (r *EntryResolver) DiscoverActions(t *codemodel.Type) []string {
	var names []string
	for _, m := range r.provider.Members(t) {
		if r.actions.IsAction(m) {
			names = append(names, m.Name)
		}
	}
	return names
}
