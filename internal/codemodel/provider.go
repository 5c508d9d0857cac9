package codemodel

import "errors"

var (
	// ErrNoDefinition is returned when a member has no source definition
	// available (external, compiled-only, or framework member).
	ErrNoDefinition = errors.New("no source definition available")

	// ErrNoScope is returned when a body cannot be semantically resolved.
	ErrNoScope = errors.New("no semantic scope available")

	// ErrUnresolved is returned by scopes when an expression does not bind
	// to any known symbol.
	ErrUnresolved = errors.New("expression does not resolve to a known symbol")
)

// Provider supplies the parsed, semantically resolved view of a codebase.
// The walker consumes this interface and never parses source itself.
//
// Enumeration order is part of the contract: Types and Members must return
// the same order on every call for the same loaded workspace, as traversal
// output is fully determined by it.
type Provider interface {
	// Types enumerates all declared types across all compilation units.
	Types() []*Type

	// Members enumerates the declared members of a type.
	Members(t *Type) []*Member

	// SourceDefinition returns the syntactic body of a member, or
	// ErrNoDefinition if none is available.
	SourceDefinition(m *Member) (*Body, error)

	// SemanticScope returns a resolver for the body's sub-expressions,
	// or ErrNoScope if resolution is unavailable.
	SemanticScope(b *Body) (Scope, error)
}

// Scope resolves body sub-expressions to member symbols.
type Scope interface {
	// ResolveInvocation resolves a call expression to its statically
	// declared target method.
	ResolveInvocation(e Expr) (*Member, error)

	// ResolveCreation resolves an object-creation expression to the
	// constructor of the created type.
	ResolveCreation(e Expr) (*Member, error)

	// ResolveIdentifier resolves a bare identifier to the field or
	// property of the enclosing type it names, if any.
	ResolveIdentifier(e Expr) (*Member, error)
}
