package walker

import (
	"context"
	"errors"

	"github.com/mvp-joe/callscope/internal/codemodel"
)

// DefaultMaxDepth bounds recursion when no explicit cap is configured.
const DefaultMaxDepth = 64

// Policies are the documented traversal policy choices with observable
// effects on output shape.
type Policies struct {
	// MaxDepth caps traversal depth; hitting it emits a truncation event
	// instead of failing the run. Zero means DefaultMaxDepth.
	MaxDepth int

	// OverloadAwareKeys makes signature keys distinguish overloads by
	// parameter count. Off by default: overloads collapse to one key.
	OverloadAwareKeys bool

	// ExpandPropertyDependencies follows calls made through properties
	// the same way as calls made through fields. Off by default.
	ExpandPropertyDependencies bool
}

// Walker performs the depth-first call-graph traversal. It consumes the
// code model through the Provider interface and emits traversal events;
// it never parses source itself.
type Walker struct {
	provider codemodel.Provider
	filter   *NoiseFilter
	deps     *DependencyClassifier
	keys     KeyPolicy
	maxDepth int

	typesByName map[string]*codemodel.Type
}

// New creates a walker over the given provider.
func New(provider codemodel.Provider, filter *NoiseFilter, policies Policies) *Walker {
	maxDepth := policies.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Walker{
		provider: provider,
		filter:   filter,
		deps:     &DependencyClassifier{ExpandProperties: policies.ExpandPropertyDependencies},
		keys:     KeyPolicy{OverloadAware: policies.OverloadAwareKeys},
		maxDepth: maxDepth,
	}
}

// traversal is the per-run context threaded explicitly through every
// recursive call. The visited set belongs to exactly one Walk invocation
// and is never shared across runs.
type traversal struct {
	ctx     context.Context
	visited map[string]bool
	sink    Sink
}

// Walk traverses the call graph reachable from entry and emits one event
// stream to sink. Cancellation is checked once per node enter; any other
// provider failure is recovered locally and never aborts the run.
//
// Output is fully determined by provider enumeration order and the
// source-lexical ordering of body expressions. Each signature key is
// expanded at most once per run, so diamond-shaped reachability truncates
// exactly like a true cycle.
func (w *Walker) Walk(ctx context.Context, entry *codemodel.Member, sink Sink) error {
	tr := &traversal{
		ctx:     ctx,
		visited: make(map[string]bool),
		sink:    sink,
	}
	return w.walkNode(tr, entry, 0, "")
}

// walkNode processes one method node at the given depth.
func (w *Walker) walkNode(tr *traversal, m *codemodel.Member, depth int, edge EdgeKind) error {
	if err := tr.ctx.Err(); err != nil {
		return err
	}

	key := w.keys.Key(m)
	if tr.visited[key] {
		tr.sink.Emit(Event{Kind: EventCycle, Signature: key, Depth: depth, Edge: edge})
		return nil
	}
	if depth >= w.maxDepth {
		tr.sink.Emit(Event{Kind: EventTruncated, Signature: key, Depth: depth, Edge: edge})
		return nil
	}

	tr.sink.Emit(Event{Kind: EventEnter, Signature: key, Depth: depth, Edge: edge})
	tr.visited[key] = true

	return w.expandNode(tr, m, key, depth)
}

// expandNode examines the node's body and recurses into discovered calls.
// The node boundary converts provider errors and panics into terminal
// leaves so a single bad node cannot take down the surrounding traversal.
func (w *Walker) expandNode(tr *traversal, m *codemodel.Member, key string, depth int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			tr.sink.Emit(Event{Kind: EventTerminal, Signature: key, Depth: depth, Reason: ReasonFault})
			err = nil
		}
	}()

	body, berr := w.provider.SourceDefinition(m)
	if berr != nil {
		reason := ReasonFault
		if errors.Is(berr, codemodel.ErrNoDefinition) {
			reason = ReasonNoSource
		}
		tr.sink.Emit(Event{Kind: EventTerminal, Signature: key, Depth: depth, Reason: reason})
		return nil
	}

	scope, serr := w.provider.SemanticScope(body)
	if serr != nil {
		reason := ReasonFault
		if errors.Is(serr, codemodel.ErrNoScope) {
			reason = ReasonNoScope
		}
		tr.sink.Emit(Event{Kind: EventTerminal, Signature: key, Depth: depth, Reason: reason})
		return nil
	}

	// Direct call expressions, in source-lexical order. Unresolvable call
	// expressions are skipped; noise-filtered targets are never emitted.
	// Calls mediated by a field or property of the enclosing type are left
	// to the dependency pass, which classifies their edges.
	for _, e := range body.Descendants(codemodel.ExprInvocation) {
		if w.isDependencyMediated(scope, e) {
			continue
		}
		target, rerr := scope.ResolveInvocation(e)
		if rerr != nil {
			continue
		}
		if w.filter.ShouldSkip(target) {
			continue
		}
		if err := w.walkNode(tr, target, depth+1, EdgeDirectInvocation); err != nil {
			return err
		}
	}

	// Object-creation expressions: annotate the construction at the current
	// depth, then descend into the constructor.
	for _, e := range body.Descendants(codemodel.ExprCreation) {
		ctor, rerr := scope.ResolveCreation(e)
		if rerr != nil {
			continue
		}
		tr.sink.Emit(Event{Kind: EventCreation, TypeName: ctor.ContainingType, Depth: depth})
		if w.filter.ShouldSkip(ctor) {
			continue
		}
		if err := w.walkNode(tr, ctor, depth+1, EdgeObjectCreation); err != nil {
			return err
		}
	}

	// Injected-dependency usages mediated by fields and properties of the
	// enclosing type.
	for _, use := range w.deps.Classify(body, scope, w.enclosingMembers(m)) {
		tr.sink.Emit(Event{Kind: EventDependency, MemberType: use.Member.ReturnType, Depth: depth})
		for _, invoked := range use.Invoked {
			if w.filter.ShouldSkip(invoked) {
				continue
			}
			if err := w.walkNode(tr, invoked, depth+1, EdgeDependencyInvocation); err != nil {
				return err
			}
		}
	}

	return nil
}

// isDependencyMediated reports whether the invocation's receiver resolves
// to a field or property, making it the dependency classifier's business.
func (w *Walker) isDependencyMediated(scope codemodel.Scope, e codemodel.Expr) bool {
	if e.Receiver == "" {
		return false
	}
	receiver, err := scope.ResolveIdentifier(codemodel.Expr{
		Kind:   codemodel.ExprIdentifier,
		Offset: e.Offset,
		Target: e.Receiver,
	})
	if err != nil {
		return false
	}
	return receiver.Kind == codemodel.KindField || receiver.Kind == codemodel.KindProperty
}

// enclosingMembers returns the declared members of the node's containing
// type, or nil when the type is not part of the loaded model.
func (w *Walker) enclosingMembers(m *codemodel.Member) []*codemodel.Member {
	if w.typesByName == nil {
		w.typesByName = make(map[string]*codemodel.Type)
		for _, t := range w.provider.Types() {
			if _, exists := w.typesByName[t.Name]; !exists {
				w.typesByName[t.Name] = t
			}
		}
	}
	t, ok := w.typesByName[m.ContainingType]
	if !ok {
		return nil
	}
	return w.provider.Members(t)
}
